package model

import (
	"time"

	"github.com/Astemirdum/shareit/pkg/datetime"
)

type User struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}

type CreateUser struct {
	Name  string `json:"name" validate:"notblank"`
	Email string `json:"email" validate:"required,email"`
}

// UserPatch holds a partial user update. Nil fields are left untouched.
type UserPatch struct {
	Name  *string `json:"name" validate:"omitempty,notblank"`
	Email *string `json:"email" validate:"omitempty,email"`
}

func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	return u
}

type Item struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Available   bool   `json:"available" db:"available"`
	OwnerID     int64  `json:"-" db:"owner_id"`
	RequestID   *int64 `json:"requestId,omitempty" db:"request_id"`
}

type CreateItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

// ItemPatch holds a partial item update. Nil fields are left untouched.
type ItemPatch struct {
	Name        *string `json:"name" validate:"omitempty,notblank"`
	Description *string `json:"description" validate:"omitempty,notblank"`
	Available   *bool   `json:"available"`
}

func (p ItemPatch) Apply(it Item) Item {
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Description != nil {
		it.Description = *p.Description
	}
	if p.Available != nil {
		it.Available = *p.Available
	}
	return it
}

// ItemView is an item as seen by a requester. Booking slots are filled for the owner only.
type ItemView struct {
	Item        `json:",inline"`
	LastBooking *BookingShort `json:"lastBooking"`
	NextBooking *BookingShort `json:"nextBooking"`
	Comments    []CommentView `json:"comments"`
}

type BookingShort struct {
	ID       int64 `json:"id" db:"id"`
	BookerID int64 `json:"bookerId" db:"booker_id"`
	ItemID   int64 `json:"-" db:"item_id"`
}

type Comment struct {
	ItemID   int64
	AuthorID int64
	Text     string
	Created  time.Time
}

type CreateComment struct {
	Text string `json:"text"`
}

type CommentView struct {
	ID         int64             `json:"id"`
	Text       string            `json:"text"`
	AuthorName string            `json:"authorName"`
	Created    datetime.DateTime `json:"created"`
	ItemID     int64             `json:"-"`
}

type ItemRequest struct {
	ID          int64     `json:"id" db:"id"`
	Description string    `json:"description" db:"description"`
	RequestorID int64     `json:"-" db:"requestor_id"`
	Created     time.Time `json:"-" db:"created"`
}

type CreateItemRequest struct {
	Description string `json:"description"`
}

// RequestItem is an item offered in answer to a request.
type RequestItem struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	OwnerID   int64  `json:"ownerId" db:"owner_id"`
	RequestID int64  `json:"-" db:"request_id"`
}

type ItemRequestView struct {
	ID          int64             `json:"id"`
	Description string            `json:"description"`
	Created     datetime.DateTime `json:"created"`
	Items       []RequestItem     `json:"items"`
}

func NewItemRequestView(r ItemRequest, items []RequestItem) ItemRequestView {
	if items == nil {
		items = []RequestItem{}
	}
	return ItemRequestView{
		ID:          r.ID,
		Description: r.Description,
		Created:     datetime.New(r.Created),
		Items:       items,
	}
}

// Page is an offset window. Size 0 means unbounded.
type Page struct {
	From int
	Size int
}
