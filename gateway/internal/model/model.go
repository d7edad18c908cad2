package model

import "github.com/Astemirdum/shareit/pkg/datetime"

type CreateUser struct {
	Name  string `json:"name" validate:"notblank" example:"Ann"`
	Email string `json:"email" validate:"required,email" example:"ann@mail.io"`
}

type UpdateUser struct {
	Name  *string `json:"name" validate:"omitempty,notblank"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type CreateItem struct {
	Name        string `json:"name" validate:"notblank" example:"drill"`
	Description string `json:"description" validate:"notblank" example:"cordless drill"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId" validate:"omitempty,gt=0"`
}

type UpdateItem struct {
	Name        *string `json:"name" validate:"omitempty,notblank"`
	Description *string `json:"description" validate:"omitempty,notblank"`
	Available   *bool   `json:"available"`
}

type CreateComment struct {
	Text string `json:"text" validate:"notblank"`
}

type CreateBooking struct {
	ItemID int64             `json:"itemId" validate:"required,gt=0"`
	Start  datetime.DateTime `json:"start" validate:"required,future" swaggertype:"string" example:"2030-01-01T10:00:00"`
	End    datetime.DateTime `json:"end" validate:"required,future" swaggertype:"string" example:"2030-01-02T10:00:00"`
}

type CreateItemRequest struct {
	Description string `json:"description" validate:"notblank"`
}

type BookingState string

var bookingStates = map[BookingState]struct{}{
	"ALL": {}, "CURRENT": {}, "PAST": {}, "FUTURE": {}, "WAITING": {}, "REJECTED": {},
}

func (s BookingState) Valid() bool {
	_, ok := bookingStates[s]
	return ok
}
