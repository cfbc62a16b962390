package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"hotel-desk/hotel"
	"hotel-desk/logger"
	"hotel-desk/models"

	"gorm.io/gorm"
)

// HotelService wraps the hotel aggregate and, when DB is set, mirrors every
// successful change into the database. A failed write undoes the change in
// the aggregate before the error is returned.
type HotelService struct {
	DB    *gorm.DB
	Hotel *hotel.Hotel
	Log   *logger.Logger

	mu  sync.Mutex
	now func() time.Time
}

// EmployeeChanges lists the fields an update touches; nil fields are kept.
type EmployeeChanges struct {
	Name     *string
	Position *string
	Salary   *float64
}

func NewHotelService(db *gorm.DB, name string, log *logger.Logger) *HotelService {
	return &HotelService{
		DB:    db,
		Hotel: hotel.New(name),
		Log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *HotelService) tx(fn func(tx *gorm.DB) error) error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Transaction(fn)
}

// Load hydrates the aggregate from the database. Reserved rooms are replayed
// through CheckIn so the aggregate rebuilds its own reservations.
func (s *HotelService) Load() error {
	if s.DB == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var setting models.HotelSetting
	err := s.DB.First(&setting).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		setting = models.HotelSetting{Name: s.Hotel.Name()}
		if err := s.DB.Create(&setting).Error; err != nil {
			return fmt.Errorf("failed to create hotel setting: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to load hotel setting: %w", err)
	default:
		s.Hotel.SetName(setting.Name)
	}

	var rooms []models.Room
	if err := s.DB.Order("room_number").Find(&rooms).Error; err != nil {
		return fmt.Errorf("failed to load rooms: %w", err)
	}
	for _, row := range rooms {
		room, guest, err := roomFromRow(row)
		if err != nil {
			return err
		}
		if out := s.Hotel.AddRoom(room); !out.OK() {
			return fmt.Errorf("room %d: %s", row.RoomNumber, out.Message)
		}
		if guest != "" {
			if out := s.Hotel.CheckIn(row.RoomNumber, guest); !out.OK() {
				return fmt.Errorf("room %d: %s", row.RoomNumber, out.Message)
			}
		}
	}

	var employees []models.Employee
	if err := s.DB.Order("emp_id").Find(&employees).Error; err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}
	for _, row := range employees {
		e, err := employeeFromRow(row)
		if err != nil {
			return err
		}
		if out := s.Hotel.AddEmployee(e); !out.OK() {
			return fmt.Errorf("employee %d: %s", row.EmpID, out.Message)
		}
	}

	sum := s.Hotel.Summary()
	s.Log.Info("hotel loaded", "name", sum.Name, "rooms", sum.Rooms, "reserved", sum.Reserved, "employees", sum.Employees)
	return nil
}

func (s *HotelService) Summary() hotel.Summary {
	return s.Hotel.Summary()
}

func (s *HotelService) Rename(name string) (hotel.Outcome, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return hotel.Outcome{Kind: hotel.KindInvalid, Message: "Hotel name is required."}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.Hotel.Name()
	s.Hotel.SetName(name)

	err := s.tx(func(tx *gorm.DB) error {
		var setting models.HotelSetting
		if err := tx.First(&setting).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			return tx.Create(&models.HotelSetting{Name: name}).Error
		}
		setting.Name = name
		return tx.Save(&setting).Error
	})
	if err != nil {
		s.Hotel.SetName(previous)
		return hotel.Outcome{}, fmt.Errorf("failed to save hotel name: %w", err)
	}

	s.Log.Info("hotel renamed", "from", previous, "to", name)
	return hotel.Outcome{Kind: hotel.KindOK, Message: fmt.Sprintf("Hotel renamed to %s.", name)}, nil
}

// ---------------------------------------------------------------------------
// Rooms
// ---------------------------------------------------------------------------

func (s *HotelService) Rooms() []hotel.Room {
	return s.Hotel.Rooms()
}

func (s *HotelService) Room(number int) (hotel.Room, bool) {
	return s.Hotel.FindRoom(number)
}

func (s *HotelService) AddRoom(room *hotel.Room) (hotel.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.Hotel.AddRoom(room)
	if !out.OK() {
		s.Log.Info("room not added", "room", out.RoomNumber, "kind", out.Kind.String())
		return out, nil
	}

	stored, _ := s.Hotel.FindRoom(out.RoomNumber)
	row := roomToRow(stored)
	if err := s.tx(func(tx *gorm.DB) error { return tx.Create(&row).Error }); err != nil {
		s.Hotel.RemoveRoom(out.RoomNumber)
		return hotel.Outcome{}, fmt.Errorf("failed to save room %d: %w", out.RoomNumber, err)
	}

	s.Log.Info("room added", "room", out.RoomNumber, "type", stored.Type(), "price", stored.Price())
	return out, nil
}

func (s *HotelService) RemoveRoom(number int) (hotel.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, existed := s.Hotel.FindRoom(number)
	out := s.Hotel.RemoveRoom(number)
	if !existed || !out.OK() {
		s.Log.Info("room not removed", "room", number, "kind", out.Kind.String())
		return out, nil
	}

	err := s.tx(func(tx *gorm.DB) error {
		return tx.Unscoped().Where("room_number = ?", number).Delete(&models.Room{}).Error
	})
	if err != nil {
		s.restoreRoom(snapshot)
		return hotel.Outcome{}, fmt.Errorf("failed to delete room %d: %w", number, err)
	}

	s.Log.Info("room removed", "room", number, "guest", out.Guest)
	return out, nil
}

func (s *HotelService) restoreRoom(snapshot hotel.Room) {
	guest := snapshot.Guest()
	if guest != "" {
		snapshot.CheckOut()
	}
	s.Hotel.AddRoom(&snapshot)
	if guest != "" {
		s.Hotel.CheckIn(snapshot.Number(), guest)
	}
}

// UpdateRoom changes the state first, then the price, so a refused transition
// leaves the room untouched.
func (s *HotelService) UpdateRoom(number int, price *float64, state *hotel.RoomState) (hotel.Outcome, error) {
	if price != nil && *price < 0 {
		return hotel.Outcome{Kind: hotel.KindInvalid, Message: fmt.Sprintf("Room price %.2f is negative.", *price)}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before, found := s.Hotel.FindRoom(number)
	if !found {
		return hotel.Outcome{Kind: hotel.KindNotFound, Message: hotel.MsgRoomNotFound, RoomNumber: number}, nil
	}

	out := hotel.Outcome{Kind: hotel.KindOK, Message: fmt.Sprintf("Room %d updated.", number), RoomNumber: number}
	if state != nil && *state != before.State() {
		if out = s.Hotel.SetRoomState(number, *state); !out.OK() {
			return out, nil
		}
	}
	if price != nil {
		out = s.Hotel.SetRoomPrice(number, *price)
	}

	after, _ := s.Hotel.FindRoom(number)
	err := s.tx(func(tx *gorm.DB) error {
		return tx.Model(&models.Room{}).Where("room_number = ?", number).Updates(map[string]interface{}{
			"status": string(after.State()),
			"price":  after.Price(),
		}).Error
	})
	if err != nil {
		s.Hotel.SetRoomPrice(number, before.Price())
		if after.State() != before.State() {
			s.Hotel.SetRoomState(number, before.State())
		}
		return hotel.Outcome{}, fmt.Errorf("failed to update room %d: %w", number, err)
	}

	s.Log.Info("room updated", "room", number, "state", after.State(), "price", after.Price())
	return out, nil
}

// ---------------------------------------------------------------------------
// Reservations
// ---------------------------------------------------------------------------

func (s *HotelService) Reservations() map[int]string {
	return s.Hotel.Reservations()
}

func (s *HotelService) CheckIn(number int, guest string) (hotel.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.Hotel.CheckIn(number, guest)
	if !out.OK() {
		s.Log.Info("check-in refused", "room", number, "kind", out.Kind.String(), "message", out.Message)
		return out, nil
	}

	if err := s.recordTransition(number, out.Guest, hotel.Occupied, models.OperationCheckIn); err != nil {
		s.Hotel.CheckOut(number)
		return hotel.Outcome{}, fmt.Errorf("failed to record check-in for room %d: %w", number, err)
	}

	s.Log.Info("guest checked in", "room", number, "guest", out.Guest)
	return out, nil
}

func (s *HotelService) CheckOut(number int) (hotel.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.Hotel.CheckOut(number)
	if !out.OK() {
		s.Log.Info("check-out refused", "room", number, "kind", out.Kind.String(), "message", out.Message)
		return out, nil
	}

	if err := s.recordTransition(number, out.Guest, hotel.Vacant, models.OperationCheckOut); err != nil {
		s.Hotel.CheckIn(number, out.Guest)
		return hotel.Outcome{}, fmt.Errorf("failed to record check-out for room %d: %w", number, err)
	}

	s.Log.Info("guest checked out", "room", number, "guest", out.Guest)
	return out, nil
}

func (s *HotelService) recordTransition(number int, guest string, state hotel.RoomState, operation string) error {
	heldBy := guest
	if state == hotel.Vacant {
		heldBy = ""
	}
	return s.tx(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Room{}).Where("room_number = ?", number).Updates(map[string]interface{}{
			"status":     string(state),
			"guest_name": heldBy,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.RoomOperation{
			RoomNumber: number,
			GuestName:  guest,
			Operation:  operation,
			OperatedAt: s.now(),
		}).Error
	})
}

// History lists the recorded check-ins and check-outs of a room, oldest
// first. Without a database there is no history.
func (s *HotelService) History(number int) ([]models.RoomOperation, error) {
	ops := []models.RoomOperation{}
	if s.DB == nil {
		return ops, nil
	}
	if err := s.DB.Where("room_number = ?", number).Order("operated_at, id").Find(&ops).Error; err != nil {
		return nil, fmt.Errorf("failed to load history for room %d: %w", number, err)
	}
	return ops, nil
}

// ---------------------------------------------------------------------------
// Employees
// ---------------------------------------------------------------------------

func (s *HotelService) Employees() []hotel.Employee {
	return s.Hotel.Employees()
}

func (s *HotelService) Employee(id int) (hotel.Employee, bool) {
	return s.Hotel.FindEmployee(id)
}

func (s *HotelService) AddEmployee(e *hotel.Employee) (hotel.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.Hotel.AddEmployee(e)
	if !out.OK() {
		s.Log.Info("employee not added", "message", out.Message)
		return out, nil
	}

	stored, _ := s.Hotel.FindEmployee(e.ID())
	row := employeeToRow(stored)
	if err := s.tx(func(tx *gorm.DB) error { return tx.Create(&row).Error }); err != nil {
		s.Hotel.RemoveEmployee(e.ID())
		return hotel.Outcome{}, fmt.Errorf("failed to save employee %d: %w", e.ID(), err)
	}

	s.Log.Info("employee added", "employee", e.ID(), "position", e.Position())
	return out, nil
}

func (s *HotelService) RemoveEmployee(id int) (hotel.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, existed := s.Hotel.FindEmployee(id)
	out := s.Hotel.RemoveEmployee(id)
	if !existed || !out.OK() {
		s.Log.Info("employee not removed", "employee", id, "kind", out.Kind.String())
		return out, nil
	}

	err := s.tx(func(tx *gorm.DB) error {
		return tx.Where("emp_id = ?", id).Delete(&models.Employee{}).Error
	})
	if err != nil {
		s.Hotel.AddEmployee(&snapshot)
		return hotel.Outcome{}, fmt.Errorf("failed to delete employee %d: %w", id, err)
	}

	s.Log.Info("employee removed", "employee", id)
	return out, nil
}

func (s *HotelService) UpdateEmployee(id int, changes EmployeeChanges) (hotel.Outcome, error) {
	if changes.Name != nil && strings.TrimSpace(*changes.Name) == "" {
		return hotel.Outcome{Kind: hotel.KindInvalid, Message: "Employee name is required."}, nil
	}
	if changes.Salary != nil && *changes.Salary < 0 {
		return hotel.Outcome{Kind: hotel.KindInvalid, Message: fmt.Sprintf("Salary %.2f is negative.", *changes.Salary)}, nil
	}

	return s.mutateEmployee(id, "employee updated", func() hotel.Outcome {
		return s.Hotel.UpdateEmployee(id, func(e *hotel.Employee) {
			if changes.Name != nil {
				e.SetName(strings.TrimSpace(*changes.Name))
			}
			if changes.Position != nil {
				e.SetPosition(*changes.Position)
			}
			if changes.Salary != nil {
				e.SetSalary(*changes.Salary)
			}
		})
	})
}

func (s *HotelService) AssignTask(id int, task string) (hotel.Outcome, error) {
	return s.mutateEmployee(id, "task assigned", func() hotel.Outcome {
		return s.Hotel.AssignTask(id, task)
	})
}

func (s *HotelService) RemoveTask(id int, task string) (hotel.Outcome, error) {
	return s.mutateEmployee(id, "task removed", func() hotel.Outcome {
		return s.Hotel.RemoveTask(id, task)
	})
}

// mutateEmployee runs change against the aggregate and saves the employee
// row, restoring the previous employee if the save fails.
func (s *HotelService) mutateEmployee(id int, logMsg string, change func() hotel.Outcome) (hotel.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, found := s.Hotel.FindEmployee(id)
	out := change()
	if !found || !out.OK() {
		s.Log.Info(logMsg+" skipped", "employee", id, "kind", out.Kind.String(), "message", out.Message)
		return out, nil
	}

	stored, _ := s.Hotel.FindEmployee(id)
	row := employeeToRow(stored)
	err := s.tx(func(tx *gorm.DB) error {
		return tx.Model(&models.Employee{}).Where("emp_id = ?", id).Updates(map[string]interface{}{
			"name":     row.Name,
			"position": row.Position,
			"salary":   row.Salary,
			"tasks":    row.Tasks,
		}).Error
	})
	if err != nil {
		s.Hotel.UpdateEmployee(id, func(e *hotel.Employee) { *e = snapshot })
		return hotel.Outcome{}, fmt.Errorf("failed to save employee %d: %w", id, err)
	}

	s.Log.Info(logMsg, "employee", id)
	return out, nil
}
