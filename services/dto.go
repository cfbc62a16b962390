package services

import (
	"fmt"

	"hotel-desk/hotel"
	"hotel-desk/models"
)

func roomToRow(r hotel.Room) models.Room {
	return models.Room{
		RoomNumber: r.Number(),
		Type:       string(r.Type()),
		Status:     string(r.State()),
		Price:      r.Price(),
		GuestName:  r.Guest(),
	}
}

// roomFromRow rebuilds a room and the guest it was holding. A reserved room
// comes back vacant so that the caller replays the check-in through the
// hotel.
func roomFromRow(row models.Room) (*hotel.Room, string, error) {
	typ, err := hotel.ParseRoomType(row.Type)
	if err != nil {
		return nil, "", fmt.Errorf("room %d: %w", row.RoomNumber, err)
	}
	state, err := hotel.ParseRoomState(row.Status)
	if err != nil {
		return nil, "", fmt.Errorf("room %d: %w", row.RoomNumber, err)
	}
	if row.GuestName != "" {
		state = hotel.Vacant
	}
	room, err := hotel.NewRoom(typ, row.RoomNumber, state, row.Price)
	if err != nil {
		return nil, "", fmt.Errorf("room %d: %w", row.RoomNumber, err)
	}
	return room, row.GuestName, nil
}

func employeeToRow(e hotel.Employee) models.Employee {
	return models.Employee{
		EmpID:    e.ID(),
		Name:     e.Name(),
		Position: e.Position(),
		Salary:   e.Salary(),
		Tasks:    e.Tasks(),
	}
}

func employeeFromRow(row models.Employee) (*hotel.Employee, error) {
	e, err := hotel.NewEmployee(row.EmpID, row.Name, row.Position, row.Salary)
	if err != nil {
		return nil, fmt.Errorf("employee %d: %w", row.EmpID, err)
	}
	for _, task := range row.Tasks {
		e.AddTask(task)
	}
	return e, nil
}
