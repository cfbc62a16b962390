// Package hotel holds the front-desk aggregate: rooms, staff and the
// reservations produced by check-in and check-out.
//
// A Hotel is safe for concurrent use. All of its state is guarded by a single
// lock, and every accessor hands out copies so callers can only change the
// registry through Hotel operations.
package hotel

import (
	"fmt"
	"strings"
	"sync"
)

type Hotel struct {
	mu        sync.RWMutex
	name      string
	rooms     []*Room
	employees []*Employee
}

// Summary is a point-in-time view of the registry.
type Summary struct {
	Name      string `json:"name"`
	Rooms     int    `json:"rooms"`
	Occupied  int    `json:"occupied"`
	Vacant    int    `json:"vacant"`
	Reserved  int    `json:"reserved"`
	Employees int    `json:"employees"`
}

func New(name string) *Hotel {
	return &Hotel{name: name}
}

func (h *Hotel) Name() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.name
}

func (h *Hotel) SetName(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.name = name
}

func (h *Hotel) Summary() Summary {
	h.mu.RLock()
	defer h.mu.RUnlock()

	s := Summary{Name: h.name, Rooms: len(h.rooms), Employees: len(h.employees)}
	for _, r := range h.rooms {
		if r.IsOccupied() {
			s.Occupied++
		} else {
			s.Vacant++
		}
		if r.guest != "" {
			s.Reserved++
		}
	}
	return s
}

// ---------------------------------------------------------------------------
// Rooms
// ---------------------------------------------------------------------------

// AddRoom registers a copy of room. Room numbers are unique within a hotel.
// A room joins without a guest: reservations only come from CheckIn.
func (h *Hotel) AddRoom(room *Room) Outcome {
	if room == nil {
		return fail(KindInvalid, "Room is required.")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.roomLocked(room.number) != nil {
		out := fail(KindConflict, fmt.Sprintf("Room %d already exists.", room.number))
		out.RoomNumber = room.number
		return out
	}
	r := *room
	r.guest = ""
	h.rooms = append(h.rooms, &r)

	out := ok(fmt.Sprintf("Room %d added.", r.number))
	out.RoomNumber = r.number
	return out
}

// RemoveRoom drops the room and any reservation it holds.
func (h *Hotel) RemoveRoom(number int) Outcome {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, r := range h.rooms {
		if r.number == number {
			h.rooms = append(h.rooms[:i], h.rooms[i+1:]...)
			out := ok(fmt.Sprintf("Room %d removed.", number))
			out.RoomNumber = number
			out.Guest = r.guest
			return out
		}
	}
	out := fail(KindNoop, MsgRoomNotFound)
	out.RoomNumber = number
	return out
}

func (h *Hotel) FindRoom(number int) (Room, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if r := h.roomLocked(number); r != nil {
		return *r, true
	}
	return Room{}, false
}

// Rooms returns copies of every room in registration order.
func (h *Hotel) Rooms() []Room {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Room, 0, len(h.rooms))
	for _, r := range h.rooms {
		out = append(out, *r)
	}
	return out
}

func (h *Hotel) SetRoomPrice(number int, price float64) Outcome {
	if price < 0 {
		return fail(KindInvalid, fmt.Sprintf("Room price %.2f is negative.", price))
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	r := h.roomLocked(number)
	if r == nil {
		return fail(KindNotFound, MsgRoomNotFound)
	}
	r.SetPrice(price)
	out := ok(fmt.Sprintf("Room %d price set to %.2f.", number, price))
	out.RoomNumber = number
	return out
}

// SetRoomState moves a room between Vacant and Occupied outside of the
// reservation flow, e.g. a room blocked for maintenance. It goes through the
// room's own transitions. A room holding a guest can only be vacated by
// CheckOut.
func (h *Hotel) SetRoomState(number int, state RoomState) Outcome {
	if err := state.Validate(); err != nil {
		return fail(KindInvalid, err.Error())
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	r := h.roomLocked(number)
	if r == nil {
		return fail(KindNotFound, MsgRoomNotFound)
	}

	var out Outcome
	switch state {
	case Occupied:
		out = r.CheckIn()
	case Vacant:
		if r.guest != "" {
			out = fail(KindInvalidTransition,
				fmt.Sprintf("Room %d is reserved for %s; check the guest out instead.", number, r.guest))
			break
		}
		out = r.CheckOut()
	}
	out.RoomNumber = number
	return out
}

// ---------------------------------------------------------------------------
// Reservations
// ---------------------------------------------------------------------------

// CheckIn occupies a vacant room on behalf of guest.
func (h *Hotel) CheckIn(number int, guest string) Outcome {
	guest = strings.TrimSpace(guest)

	h.mu.Lock()
	defer h.mu.Unlock()

	r := h.roomLocked(number)
	if r == nil {
		return fail(KindNotFound, MsgRoomNotFound)
	}
	if r.IsOccupied() {
		return fail(KindInvalidTransition, MsgRoomNotAvailable)
	}
	if guest == "" {
		return fail(KindInvalid, MsgGuestNameRequired)
	}

	if out := r.CheckIn(); !out.OK() {
		return out
	}
	r.guest = guest

	return Outcome{
		Kind:       KindOK,
		Message:    checkInMessage(guest, number),
		RoomNumber: number,
		Guest:      guest,
	}
}

// CheckOut releases the room held by a checked-in guest. Rooms occupied
// without a reservation are reported as having no guest.
func (h *Hotel) CheckOut(number int) Outcome {
	h.mu.Lock()
	defer h.mu.Unlock()

	r := h.roomLocked(number)
	if r == nil || r.guest == "" {
		return fail(KindNotFound, MsgNoGuestInRoom)
	}

	guest := r.guest
	if out := r.CheckOut(); !out.OK() {
		return out
	}

	return Outcome{
		Kind:       KindOK,
		Message:    checkOutMessage(guest, number),
		RoomNumber: number,
		Guest:      guest,
	}
}

// Reservations maps room numbers to the guests checked into them.
func (h *Hotel) Reservations() map[int]string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	res := make(map[int]string)
	for _, r := range h.rooms {
		if r.guest != "" {
			res[r.number] = r.guest
		}
	}
	return res
}

func (h *Hotel) Guest(number int) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	r := h.roomLocked(number)
	if r == nil || r.guest == "" {
		return "", false
	}
	return r.guest, true
}

// ---------------------------------------------------------------------------
// Employees
// ---------------------------------------------------------------------------

func (h *Hotel) AddEmployee(e *Employee) Outcome {
	if e == nil {
		return fail(KindInvalid, "Employee is required.")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.employeeLocked(e.id) != nil {
		return fail(KindConflict, fmt.Sprintf("Employee %d already exists.", e.id))
	}
	c := e.clone()
	h.employees = append(h.employees, &c)
	return ok(fmt.Sprintf("Employee %d added.", e.id))
}

func (h *Hotel) RemoveEmployee(id int) Outcome {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, e := range h.employees {
		if e.id == id {
			h.employees = append(h.employees[:i], h.employees[i+1:]...)
			return ok(fmt.Sprintf("Employee %d removed.", id))
		}
	}
	return fail(KindNoop, MsgEmployeeNotFound)
}

func (h *Hotel) FindEmployee(id int) (Employee, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if e := h.employeeLocked(id); e != nil {
		return e.clone(), true
	}
	return Employee{}, false
}

func (h *Hotel) Employees() []Employee {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Employee, 0, len(h.employees))
	for _, e := range h.employees {
		out = append(out, e.clone())
	}
	return out
}

// UpdateEmployee applies fn to the stored employee under the hotel lock.
// Changing the id to one already taken is rejected and rolled back.
func (h *Hotel) UpdateEmployee(id int, fn func(e *Employee)) Outcome {
	h.mu.Lock()
	defer h.mu.Unlock()

	e := h.employeeLocked(id)
	if e == nil {
		return fail(KindNotFound, MsgEmployeeNotFound)
	}

	before := e.clone()
	fn(e)
	if e.id != id {
		for _, other := range h.employees {
			if other != e && other.id == e.id {
				*e = before
				return fail(KindConflict, fmt.Sprintf("Employee %d already exists.", other.id))
			}
		}
	}
	return ok(fmt.Sprintf("Employee %d updated.", e.id))
}

func (h *Hotel) AssignTask(id int, task string) Outcome {
	if strings.TrimSpace(task) == "" {
		return fail(KindInvalid, "Task is required.")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	e := h.employeeLocked(id)
	if e == nil {
		return fail(KindNotFound, MsgEmployeeNotFound)
	}
	e.AddTask(task)
	return ok(fmt.Sprintf("Task %q assigned to employee %d.", task, id))
}

func (h *Hotel) RemoveTask(id int, task string) Outcome {
	h.mu.Lock()
	defer h.mu.Unlock()

	e := h.employeeLocked(id)
	if e == nil {
		return fail(KindNotFound, MsgEmployeeNotFound)
	}
	return e.RemoveTask(task)
}

func (h *Hotel) roomLocked(number int) *Room {
	for _, r := range h.rooms {
		if r.number == number {
			return r
		}
	}
	return nil
}

func (h *Hotel) employeeLocked(id int) *Employee {
	for _, e := range h.employees {
		if e.id == id {
			return e
		}
	}
	return nil
}
