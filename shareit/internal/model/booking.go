package model

import (
	"fmt"
	"time"

	"github.com/Astemirdum/shareit/pkg/datetime"
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

type decision struct {
	from     Status
	approved bool
}

// transitions lists every legal owner decision. WAITING is the only state a booking leaves.
var transitions = map[decision]Status{
	{from: StatusWaiting, approved: true}:  StatusApproved,
	{from: StatusWaiting, approved: false}: StatusRejected,
}

// Decide returns the status the owner's decision leads to, or false if s is final.
func (s Status) Decide(approved bool) (Status, bool) {
	to, ok := transitions[decision{from: s, approved: approved}]
	return to, ok
}

type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

var states = map[State]struct{}{
	StateAll: {}, StateCurrent: {}, StatePast: {}, StateFuture: {}, StateWaiting: {}, StateRejected: {},
}

type UnknownStateError struct {
	State string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("Unknown state: %s", e.State)
}

// ParseState reads a booking list filter. Empty means ALL.
func ParseState(raw string) (State, error) {
	if raw == "" {
		return StateAll, nil
	}
	s := State(raw)
	if _, ok := states[s]; !ok {
		return "", &UnknownStateError{State: raw}
	}
	return s, nil
}

type Booking struct {
	ItemID   int64
	BookerID int64
	Start    time.Time
	End      time.Time
	Status   Status
}

type CreateBooking struct {
	ItemID int64             `json:"itemId"`
	Start  datetime.DateTime `json:"start"`
	End    datetime.DateTime `json:"end"`
}

type UserRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ItemRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingView struct {
	ID      int64             `json:"id"`
	Start   datetime.DateTime `json:"start"`
	End     datetime.DateTime `json:"end"`
	Status  Status            `json:"status"`
	Booker  UserRef           `json:"booker"`
	Item    ItemRef           `json:"item"`
	OwnerID int64             `json:"-"`
}

type BookingFilter struct {
	State State
	Now   time.Time
	Page  Page
}
