package hotel

import "fmt"

// Kind tags the result of a front-desk operation.
type Kind int

const (
	KindOK Kind = iota
	KindNotFound
	KindInvalidTransition
	KindNoop
	KindConflict
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindNotFound:
		return "not_found"
	case KindInvalidTransition:
		return "invalid_transition"
	case KindNoop:
		return "noop"
	case KindConflict:
		return "conflict"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// MarshalText lets outcomes travel as JSON with readable kinds.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Outcome is what every fallible Room, Employee and Hotel operation returns.
// Failures are values: nothing is mutated when Kind is not KindOK.
type Outcome struct {
	Kind       Kind   `json:"kind"`
	Message    string `json:"message"`
	RoomNumber int    `json:"roomNumber,omitempty"`
	Guest      string `json:"guest,omitempty"`
}

func (o Outcome) OK() bool { return o.Kind == KindOK }

func (o Outcome) String() string { return o.Message }

const (
	MsgRoomNotFound      = "Room not found."
	MsgRoomNotAvailable  = "Room not available or already occupied."
	MsgNoGuestInRoom     = "No guest found in the specified room."
	MsgRoomOccupied      = "Room is already occupied."
	MsgRoomVacant        = "Room is already vacant."
	MsgRoomCheckedIn     = "Check-in completed successfully."
	MsgRoomCheckedOut    = "Check-out completed successfully."
	MsgTaskNotFound      = "Task not found in the employee's task list."
	MsgEmployeeNotFound  = "Employee not found."
	MsgGuestNameRequired = "Guest name is required."
)

func ok(msg string) Outcome { return Outcome{Kind: KindOK, Message: msg} }

func fail(kind Kind, msg string) Outcome { return Outcome{Kind: kind, Message: msg} }

func checkInMessage(guest string, number int) string {
	return fmt.Sprintf("Check-in successful for %s in room %d.", guest, number)
}

func checkOutMessage(guest string, number int) string {
	return fmt.Sprintf("Check-out successful for %s from room %d.", guest, number)
}
