package handler

import (
	"context"

	"github.com/Astemirdum/shareit/shareit/internal/model"
	"github.com/Astemirdum/shareit/shareit/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type ShareitService interface {
	CreateUser(ctx context.Context, in model.CreateUser) (model.User, error)
	UpdateUser(ctx context.Context, id int64, patch model.UserPatch) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, id int64) error

	CreateItem(ctx context.Context, ownerID int64, in model.CreateItem) (model.Item, error)
	UpdateItem(ctx context.Context, ownerID, itemID int64, patch model.ItemPatch) (model.Item, error)
	GetItem(ctx context.Context, requesterID, itemID int64) (model.ItemView, error)
	ListOwnerItems(ctx context.Context, ownerID int64) ([]model.ItemView, error)
	SearchItems(ctx context.Context, text string) ([]model.Item, error)
	AddComment(ctx context.Context, authorID, itemID int64, in model.CreateComment) (model.CommentView, error)

	CreateBooking(ctx context.Context, bookerID int64, in model.CreateBooking) (model.BookingView, error)
	ApproveBooking(ctx context.Context, ownerID, bookingID int64, approved bool) (model.BookingView, error)
	GetBooking(ctx context.Context, requesterID, bookingID int64) (model.BookingView, error)
	ListBookerBookings(ctx context.Context, bookerID int64, state model.State, page model.Page) ([]model.BookingView, error)
	ListOwnerBookings(ctx context.Context, ownerID int64, state model.State, page model.Page) ([]model.BookingView, error)

	CreateRequest(ctx context.Context, userID int64, in model.CreateItemRequest) (model.ItemRequestView, error)
	ListOwnRequests(ctx context.Context, userID int64) ([]model.ItemRequestView, error)
	ListOtherRequests(ctx context.Context, userID int64, page model.Page) ([]model.ItemRequestView, error)
	GetRequest(ctx context.Context, userID, requestID int64) (model.ItemRequestView, error)
}

var _ ShareitService = (*service.Service)(nil)
