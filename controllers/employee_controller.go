package controllers

import (
	"net/http"

	"hotel-desk/hotel"
	"hotel-desk/services"
	"hotel-desk/utils"

	"github.com/gin-gonic/gin"
)

type employeeView struct {
	EmpID    int      `json:"empId"`
	Name     string   `json:"name"`
	Position string   `json:"position"`
	Salary   float64  `json:"salary"`
	Tasks    []string `json:"tasks"`
}

func newEmployeeView(e hotel.Employee) employeeView {
	tasks := e.Tasks()
	if tasks == nil {
		tasks = []string{}
	}
	return employeeView{
		EmpID:    e.ID(),
		Name:     e.Name(),
		Position: e.Position(),
		Salary:   e.Salary(),
		Tasks:    tasks,
	}
}

type createEmployeePayload struct {
	EmpID    int      `json:"empId"`
	Name     string   `json:"name" binding:"required"`
	Position string   `json:"position"`
	Salary   float64  `json:"salary"`
	Tasks    []string `json:"tasks"`
}

type updateEmployeePayload struct {
	Name     *string  `json:"name"`
	Position *string  `json:"position"`
	Salary   *float64 `json:"salary"`
}

type taskPayload struct {
	Task string `json:"task" binding:"required"`
}

type EmployeeController struct {
	HotelSvc *services.HotelService
}

func NewEmployeeController(svc *services.HotelService) *EmployeeController {
	return &EmployeeController{HotelSvc: svc}
}

// GetEmployees (GET /api/employees)
func (ctrl *EmployeeController) GetEmployees(c *gin.Context) {
	employees := ctrl.HotelSvc.Employees()
	views := make([]employeeView, 0, len(employees))
	for _, e := range employees {
		views = append(views, newEmployeeView(e))
	}
	utils.JSONSuccess(c, http.StatusOK, views)
}

// GetEmployee (GET /api/employees/:id)
func (ctrl *EmployeeController) GetEmployee(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	e, found := ctrl.HotelSvc.Employee(id)
	if !found {
		utils.JSONError(c, http.StatusNotFound, hotel.MsgEmployeeNotFound)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, newEmployeeView(e))
}

// CreateEmployee (POST /api/employees)
func (ctrl *EmployeeController) CreateEmployee(c *gin.Context) {
	var payload createEmployeePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid employee payload: "+err.Error())
		return
	}

	e, err := hotel.NewEmployee(payload.EmpID, payload.Name, payload.Position, payload.Salary)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	for _, task := range payload.Tasks {
		e.AddTask(task)
	}

	out, err := ctrl.HotelSvc.AddEmployee(e)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONOutcome(c, out, http.StatusCreated)
}

// UpdateEmployee (PUT /api/employees/:id)
func (ctrl *EmployeeController) UpdateEmployee(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	var payload updateEmployeePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid employee payload: "+err.Error())
		return
	}

	out, err := ctrl.HotelSvc.UpdateEmployee(id, services.EmployeeChanges{
		Name:     payload.Name,
		Position: payload.Position,
		Salary:   payload.Salary,
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONOutcome(c, out, http.StatusOK)
}

// DeleteEmployee (DELETE /api/employees/:id)
func (ctrl *EmployeeController) DeleteEmployee(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	out, err := ctrl.HotelSvc.RemoveEmployee(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONOutcome(c, out, http.StatusOK)
}

// AddTask (POST /api/employees/:id/tasks)
func (ctrl *EmployeeController) AddTask(c *gin.Context) {
	ctrl.changeTask(c, ctrl.HotelSvc.AssignTask)
}

// RemoveTask (DELETE /api/employees/:id/tasks)
func (ctrl *EmployeeController) RemoveTask(c *gin.Context) {
	ctrl.changeTask(c, ctrl.HotelSvc.RemoveTask)
}

func (ctrl *EmployeeController) changeTask(c *gin.Context, change func(id int, task string) (hotel.Outcome, error)) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	var payload taskPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid task payload: "+err.Error())
		return
	}

	out, err := change(id, payload.Task)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONOutcome(c, out, http.StatusOK)
}
