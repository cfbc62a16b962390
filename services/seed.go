package services

import (
	"errors"

	"hotel-desk/hotel"
)

type seedRoom struct {
	Type   hotel.RoomType
	Number int
	Price  float64
}

var demoRooms = []seedRoom{
	{Type: hotel.Double, Number: 101, Price: 150},
	{Type: hotel.Suite, Number: 102, Price: 300},
	{Type: hotel.Individual, Number: 103, Price: 100},
}

// SeedDemo fills an empty registry with the demo rooms and a receptionist.
// A registry that already has rooms or staff is left alone.
func (s *HotelService) SeedDemo() error {
	sum := s.Summary()
	if sum.Rooms > 0 || sum.Employees > 0 {
		s.Log.Info("demo seed skipped", "rooms", sum.Rooms, "employees", sum.Employees)
		return nil
	}

	var errs []error
	for _, sr := range demoRooms {
		room, err := hotel.NewRoom(sr.Type, sr.Number, hotel.Vacant, sr.Price)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, err := s.AddRoom(room); err != nil {
			errs = append(errs, err)
		}
	}

	receptionist, err := hotel.NewEmployee(1, "John Doe", "Receptionist", 30000)
	if err != nil {
		return errors.Join(append(errs, err)...)
	}
	receptionist.AddTask("Attend to guests at the reception")
	receptionist.AddTask("Manage bookings")
	if _, err := s.AddEmployee(receptionist); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	s.Log.Info("demo data seeded", "rooms", len(demoRooms), "employees", 1)
	return nil
}
