package hotel

import (
	"errors"
	"fmt"
	"strings"
)

// RoomType is the category a room is sold as.
type RoomType string

const (
	Individual RoomType = "Individual"
	Double     RoomType = "Double"
	Suite      RoomType = "Suite"
)

// RoomTypes lists every valid room type in display order.
func RoomTypes() []RoomType {
	return []RoomType{Individual, Double, Suite}
}

func (t RoomType) Validate() error {
	switch t {
	case Individual, Double, Suite:
		return nil
	}
	return fmt.Errorf("room type %q is invalid", string(t))
}

// ParseRoomType accepts any casing of a room type name.
func ParseRoomType(s string) (RoomType, error) {
	for _, t := range RoomTypes() {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("room type %q is invalid", s)
}

// RoomState is the occupancy of a room.
//
//	Vacant <──> Occupied
//
// Transitions are gated by the current state; there is no terminal state.
type RoomState string

const (
	Vacant   RoomState = "Vacant"
	Occupied RoomState = "Occupied"
)

func (s RoomState) Validate() error {
	switch s {
	case Vacant, Occupied:
		return nil
	}
	return fmt.Errorf("room state %q is invalid", string(s))
}

// ParseRoomState accepts any casing of a room state name.
func ParseRoomState(s string) (RoomState, error) {
	for _, st := range []RoomState{Vacant, Occupied} {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("room state %q is invalid", s)
}

// Room is one physical room. The guest of the current reservation lives on
// the room itself, so a reservation can never outlive its occupancy.
type Room struct {
	roomType RoomType
	number   int
	state    RoomState
	price    float64
	guest    string
}

// NewRoom validates every field and returns a room in the given state.
func NewRoom(roomType RoomType, number int, state RoomState, price float64) (*Room, error) {
	var numberErr, priceErr error
	if number <= 0 {
		numberErr = fmt.Errorf("room number %d is not positive", number)
	}
	if price < 0 {
		priceErr = fmt.Errorf("room price %.2f is negative", price)
	}
	if err := errors.Join(roomType.Validate(), numberErr, state.Validate(), priceErr); err != nil {
		return nil, err
	}
	return &Room{roomType: roomType, number: number, state: state, price: price}, nil
}

func (r *Room) Type() RoomType   { return r.roomType }
func (r *Room) Number() int      { return r.number }
func (r *Room) State() RoomState { return r.state }
func (r *Room) Price() float64   { return r.price }

// Guest returns the guest holding the room through a Hotel check-in, or "".
func (r *Room) Guest() string { return r.guest }

func (r *Room) SetType(t RoomType) { r.roomType = t }

func (r *Room) SetPrice(price float64) { r.price = price }

func (r *Room) IsOccupied() bool {
	return r.state == Occupied
}

func (r *Room) CheckIn() Outcome {
	if r.IsOccupied() {
		return fail(KindInvalidTransition, MsgRoomOccupied)
	}
	r.state = Occupied
	out := ok(MsgRoomCheckedIn)
	out.RoomNumber = r.number
	return out
}

// CheckOut vacates the room and drops any guest it was holding.
func (r *Room) CheckOut() Outcome {
	if !r.IsOccupied() {
		return fail(KindInvalidTransition, MsgRoomVacant)
	}
	r.state = Vacant
	r.guest = ""
	out := ok(MsgRoomCheckedOut)
	out.RoomNumber = r.number
	return out
}
