package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Astemirdum/shareit/pkg/datetime"
	"github.com/Astemirdum/shareit/pkg/kafka"
	"github.com/Astemirdum/shareit/shareit/internal/errs"
	"github.com/Astemirdum/shareit/shareit/internal/model"
	"github.com/Astemirdum/shareit/shareit/internal/repository"
	"github.com/Astemirdum/shareit/shareit/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	repo_mocks "github.com/Astemirdum/shareit/shareit/internal/repository/mocks"
	service_mocks "github.com/Astemirdum/shareit/shareit/internal/service/mocks"
)

var now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T, opts ...service.Option) (*service.Service, *repo_mocks.MockRepository) {
	t.Helper()
	c := gomock.NewController(t)
	repo := repo_mocks.NewMockRepository(c)
	repo.EXPECT().Tx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(repository.Repository) error) error {
			return fn(repo)
		}).AnyTimes()
	opts = append([]service.Option{service.WithClock(func() time.Time { return now })}, opts...)
	return service.NewService(repo, zap.NewNop(), opts...), repo
}

func bookingView(id int64, status model.Status) model.BookingView {
	return model.BookingView{
		ID:      id,
		Start:   datetime.New(now.Add(24 * time.Hour)),
		End:     datetime.New(now.Add(48 * time.Hour)),
		Status:  status,
		Booker:  model.UserRef{ID: 2, Name: "Bob"},
		Item:    model.ItemRef{ID: 7, Name: "drill"},
		OwnerID: 1,
	}
}

func TestService_CreateBooking(t *testing.T) {
	t.Parallel()
	type input struct {
		bookerID int64
		in       model.CreateBooking
	}
	valid := model.CreateBooking{
		ItemID: 7,
		Start:  datetime.New(now.Add(24 * time.Hour)),
		End:    datetime.New(now.Add(48 * time.Hour)),
	}
	tests := []struct {
		name         string
		input        input
		mockBehavior func(r *repo_mocks.MockRepository, p *service_mocks.MockEventPublisher, in input)
		want         model.BookingView
		wantErr      error
	}{
		{
			name:  "ok",
			input: input{bookerID: 2, in: valid},
			mockBehavior: func(r *repo_mocks.MockRepository, p *service_mocks.MockEventPublisher, in input) {
				r.EXPECT().GetUser(gomock.Any(), in.bookerID).Return(model.User{ID: 2, Name: "Bob"}, nil)
				r.EXPECT().GetItem(gomock.Any(), int64(7)).Return(model.Item{ID: 7, Name: "drill", Available: true, OwnerID: 1}, nil)
				r.EXPECT().CreateBooking(gomock.Any(), model.Booking{
					ItemID:   7,
					BookerID: 2,
					Start:    in.in.Start.Time,
					End:      in.in.End.Time,
					Status:   model.StatusWaiting,
				}).Return(int64(3), nil)
				r.EXPECT().GetBooking(gomock.Any(), int64(3)).Return(bookingView(3, model.StatusWaiting), nil)
				p.EXPECT().Publish(gomock.Any(), kafka.BookingEvent{
					Timestamp: now,
					EventType: kafka.EventBookingCreated,
					BookingID: 3,
					ItemID:    7,
					BookerID:  2,
					OwnerID:   1,
					Status:    "WAITING",
				}).Return(nil)
			},
			want: bookingView(3, model.StatusWaiting),
		},
		{
			name: "end before start",
			input: input{bookerID: 2, in: model.CreateBooking{
				ItemID: 7,
				Start:  datetime.New(now.Add(48 * time.Hour)),
				End:    datetime.New(now.Add(24 * time.Hour)),
			}},
			mockBehavior: func(r *repo_mocks.MockRepository, p *service_mocks.MockEventPublisher, in input) {},
			wantErr:      errs.ErrInvalidRequest,
		},
		{
			name: "end equals start",
			input: input{bookerID: 2, in: model.CreateBooking{
				ItemID: 7,
				Start:  datetime.New(now.Add(24 * time.Hour)),
				End:    datetime.New(now.Add(24 * time.Hour)),
			}},
			mockBehavior: func(r *repo_mocks.MockRepository, p *service_mocks.MockEventPublisher, in input) {},
			wantErr:      errs.ErrInvalidRequest,
		},
		{
			name: "start in the past",
			input: input{bookerID: 2, in: model.CreateBooking{
				ItemID: 7,
				Start:  datetime.New(now.Add(-time.Hour)),
				End:    datetime.New(now.Add(time.Hour)),
			}},
			mockBehavior: func(r *repo_mocks.MockRepository, p *service_mocks.MockEventPublisher, in input) {},
			wantErr:      errs.ErrInvalidRequest,
		},
		{
			name:         "missing dates",
			input:        input{bookerID: 2, in: model.CreateBooking{ItemID: 7}},
			mockBehavior: func(r *repo_mocks.MockRepository, p *service_mocks.MockEventPublisher, in input) {},
			wantErr:      errs.ErrInvalidRequest,
		},
		{
			name:  "unknown booker",
			input: input{bookerID: 99, in: valid},
			mockBehavior: func(r *repo_mocks.MockRepository, p *service_mocks.MockEventPublisher, in input) {
				r.EXPECT().GetUser(gomock.Any(), in.bookerID).Return(model.User{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name:  "unknown item",
			input: input{bookerID: 2, in: valid},
			mockBehavior: func(r *repo_mocks.MockRepository, p *service_mocks.MockEventPublisher, in input) {
				r.EXPECT().GetUser(gomock.Any(), in.bookerID).Return(model.User{ID: 2}, nil)
				r.EXPECT().GetItem(gomock.Any(), int64(7)).Return(model.Item{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name:  "item not available",
			input: input{bookerID: 2, in: valid},
			mockBehavior: func(r *repo_mocks.MockRepository, p *service_mocks.MockEventPublisher, in input) {
				r.EXPECT().GetUser(gomock.Any(), in.bookerID).Return(model.User{ID: 2}, nil)
				r.EXPECT().GetItem(gomock.Any(), int64(7)).Return(model.Item{ID: 7, Available: false, OwnerID: 1}, nil)
			},
			wantErr: errs.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			publisher := service_mocks.NewMockEventPublisher(c)
			svc, repo := newService(t, service.WithEventPublisher(publisher))
			tt.mockBehavior(repo, publisher, tt.input)

			got, err := svc.CreateBooking(context.Background(), tt.input.bookerID, tt.input.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_ApproveBooking(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		ownerID      int64
		approved     bool
		mockBehavior func(r *repo_mocks.MockRepository, p *service_mocks.MockEventPublisher)
		wantStatus   model.Status
		wantErr      error
	}{
		{
			name:     "approve",
			ownerID:  1,
			approved: true,
			mockBehavior: func(r *repo_mocks.MockRepository, p *service_mocks.MockEventPublisher) {
				r.EXPECT().GetBooking(gomock.Any(), int64(3)).Return(bookingView(3, model.StatusWaiting), nil)
				r.EXPECT().UpdateBookingStatus(gomock.Any(), int64(3), model.StatusWaiting, model.StatusApproved).Return(nil)
				p.EXPECT().Publish(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e kafka.BookingEvent) error {
						require.Equal(t, kafka.EventBookingApproved, e.EventType)
						require.Equal(t, "APPROVED", e.Status)
						return nil
					})
			},
			wantStatus: model.StatusApproved,
		},
		{
			name:     "reject",
			ownerID:  1,
			approved: false,
			mockBehavior: func(r *repo_mocks.MockRepository, p *service_mocks.MockEventPublisher) {
				r.EXPECT().GetBooking(gomock.Any(), int64(3)).Return(bookingView(3, model.StatusWaiting), nil)
				r.EXPECT().UpdateBookingStatus(gomock.Any(), int64(3), model.StatusWaiting, model.StatusRejected).Return(nil)
				p.EXPECT().Publish(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e kafka.BookingEvent) error {
						require.Equal(t, kafka.EventBookingRejected, e.EventType)
						return nil
					})
			},
			wantStatus: model.StatusRejected,
		},
		{
			name:     "publish failure does not fail approval",
			ownerID:  1,
			approved: true,
			mockBehavior: func(r *repo_mocks.MockRepository, p *service_mocks.MockEventPublisher) {
				r.EXPECT().GetBooking(gomock.Any(), int64(3)).Return(bookingView(3, model.StatusWaiting), nil)
				r.EXPECT().UpdateBookingStatus(gomock.Any(), int64(3), model.StatusWaiting, model.StatusApproved).Return(nil)
				p.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(context.DeadlineExceeded)
			},
			wantStatus: model.StatusApproved,
		},
		{
			name:     "not the owner",
			ownerID:  2,
			approved: true,
			mockBehavior: func(r *repo_mocks.MockRepository, p *service_mocks.MockEventPublisher) {
				r.EXPECT().GetBooking(gomock.Any(), int64(3)).Return(bookingView(3, model.StatusWaiting), nil)
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name:     "already approved",
			ownerID:  1,
			approved: false,
			mockBehavior: func(r *repo_mocks.MockRepository, p *service_mocks.MockEventPublisher) {
				r.EXPECT().GetBooking(gomock.Any(), int64(3)).Return(bookingView(3, model.StatusApproved), nil)
			},
			wantErr: errs.ErrConflict,
		},
		{
			name:     "lost race",
			ownerID:  1,
			approved: true,
			mockBehavior: func(r *repo_mocks.MockRepository, p *service_mocks.MockEventPublisher) {
				r.EXPECT().GetBooking(gomock.Any(), int64(3)).Return(bookingView(3, model.StatusWaiting), nil)
				r.EXPECT().UpdateBookingStatus(gomock.Any(), int64(3), model.StatusWaiting, model.StatusApproved).Return(errs.ErrConflict)
			},
			wantErr: errs.ErrConflict,
		},
		{
			name:     "unknown booking",
			ownerID:  1,
			approved: true,
			mockBehavior: func(r *repo_mocks.MockRepository, p *service_mocks.MockEventPublisher) {
				r.EXPECT().GetBooking(gomock.Any(), int64(3)).Return(model.BookingView{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			publisher := service_mocks.NewMockEventPublisher(c)
			svc, repo := newService(t, service.WithEventPublisher(publisher))
			tt.mockBehavior(repo, publisher)

			got, err := svc.ApproveBooking(context.Background(), tt.ownerID, 3, tt.approved)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, got.Status)
			require.Equal(t, int64(3), got.ID)
		})
	}
}

func TestService_GetBooking(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		requesterID int64
		wantErr     error
	}{
		{name: "booker", requesterID: 2},
		{name: "owner", requesterID: 1},
		{name: "stranger", requesterID: 5, wantErr: errs.ErrForbidden},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newService(t)
			repo.EXPECT().GetBooking(gomock.Any(), int64(3)).Return(bookingView(3, model.StatusWaiting), nil)

			got, err := svc.GetBooking(context.Background(), tt.requesterID, 3)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, bookingView(3, model.StatusWaiting), got)
		})
	}
}

func TestService_ListBookerBookings(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)
	page := model.Page{From: 10, Size: 5}
	repo.EXPECT().GetUser(gomock.Any(), int64(2)).Return(model.User{ID: 2}, nil)
	repo.EXPECT().ListBookerBookings(gomock.Any(), int64(2), model.BookingFilter{
		State: model.StateFuture,
		Now:   now,
		Page:  page,
	}).Return([]model.BookingView{bookingView(3, model.StatusWaiting)}, nil)

	got, err := svc.ListBookerBookings(context.Background(), 2, model.StateFuture, page)
	require.NoError(t, err)
	require.Len(t, got, 1)

	svc, repo = newService(t)
	repo.EXPECT().GetUser(gomock.Any(), int64(9)).Return(model.User{}, errs.ErrNotFound)
	_, err = svc.ListOwnerBookings(context.Background(), 9, model.StateAll, model.Page{})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_GetItem(t *testing.T) {
	t.Parallel()
	item := model.Item{ID: 7, Name: "drill", Description: "bosch", Available: true, OwnerID: 1}
	last := model.BookingShort{ID: 4, BookerID: 2, ItemID: 7}
	next := model.BookingShort{ID: 5, BookerID: 3, ItemID: 7}

	t.Run("owner sees booking slots", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().GetItem(gomock.Any(), int64(7)).Return(item, nil)
		repo.EXPECT().ListComments(gomock.Any(), []int64{7}).Return([]model.CommentView{}, nil)
		repo.EXPECT().LastBookings(gomock.Any(), []int64{7}, now).Return([]model.BookingShort{last}, nil)
		repo.EXPECT().NextBookings(gomock.Any(), []int64{7}, now).Return([]model.BookingShort{next}, nil)

		got, err := svc.GetItem(context.Background(), 1, 7)
		require.NoError(t, err)
		require.Equal(t, &last, got.LastBooking)
		require.Equal(t, &next, got.NextBooking)
		require.Equal(t, []model.CommentView{}, got.Comments)
	})

	t.Run("non-owner sees no booking slots", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		comment := model.CommentView{ID: 1, Text: "ok", AuthorName: "Bob", ItemID: 7}
		repo.EXPECT().GetItem(gomock.Any(), int64(7)).Return(item, nil)
		repo.EXPECT().ListComments(gomock.Any(), []int64{7}).Return([]model.CommentView{comment}, nil)

		got, err := svc.GetItem(context.Background(), 2, 7)
		require.NoError(t, err)
		require.Nil(t, got.LastBooking)
		require.Nil(t, got.NextBooking)
		require.Equal(t, []model.CommentView{comment}, got.Comments)
	})

	t.Run("unknown item", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().GetItem(gomock.Any(), int64(8)).Return(model.Item{}, errs.ErrNotFound)

		_, err := svc.GetItem(context.Background(), 1, 8)
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.EqualError(t, err, "item 8: not found")
	})
}

func TestService_ListOwnerItems(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)
	items := []model.Item{
		{ID: 7, Name: "drill", OwnerID: 1, Available: true},
		{ID: 8, Name: "saw", OwnerID: 1, Available: true},
	}
	ids := []int64{7, 8}
	repo.EXPECT().ListOwnerItems(gomock.Any(), int64(1)).Return(items, nil)
	repo.EXPECT().LastBookings(gomock.Any(), ids, now).Return([]model.BookingShort{{ID: 4, BookerID: 2, ItemID: 8}}, nil)
	repo.EXPECT().NextBookings(gomock.Any(), ids, now).Return([]model.BookingShort{{ID: 5, BookerID: 3, ItemID: 7}}, nil)
	repo.EXPECT().ListComments(gomock.Any(), ids).Return([]model.CommentView{
		{ID: 1, Text: "great", AuthorName: "Bob", ItemID: 8},
	}, nil)

	got, err := svc.ListOwnerItems(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.Equal(t, int64(7), got[0].ID)
	require.Nil(t, got[0].LastBooking)
	require.Equal(t, int64(5), got[0].NextBooking.ID)
	require.Empty(t, got[0].Comments)
	require.NotNil(t, got[0].Comments)

	require.Equal(t, int64(8), got[1].ID)
	require.Equal(t, int64(4), got[1].LastBooking.ID)
	require.Nil(t, got[1].NextBooking)
	require.Len(t, got[1].Comments, 1)
}

func TestService_AddComment(t *testing.T) {
	t.Parallel()
	t.Run("no finished booking", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().GetUser(gomock.Any(), int64(2)).Return(model.User{ID: 2}, nil)
		repo.EXPECT().GetItem(gomock.Any(), int64(7)).Return(model.Item{ID: 7, OwnerID: 1}, nil)
		repo.EXPECT().HasFinishedBooking(gomock.Any(), int64(7), int64(2), now, false).Return(false, nil)

		_, err := svc.AddComment(context.Background(), 2, 7, model.CreateComment{Text: "nice"})
		require.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("blank text", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t)
		_, err := svc.AddComment(context.Background(), 2, 7, model.CreateComment{Text: "  "})
		require.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("approved booking required", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t, service.WithCommentRequireApproved(true))
		want := model.CommentView{ID: 1, Text: "nice", AuthorName: "Bob", Created: datetime.New(now), ItemID: 7}
		repo.EXPECT().GetUser(gomock.Any(), int64(2)).Return(model.User{ID: 2, Name: "Bob"}, nil)
		repo.EXPECT().GetItem(gomock.Any(), int64(7)).Return(model.Item{ID: 7, OwnerID: 1}, nil)
		repo.EXPECT().HasFinishedBooking(gomock.Any(), int64(7), int64(2), now, true).Return(true, nil)
		repo.EXPECT().CreateComment(gomock.Any(), model.Comment{
			ItemID:   7,
			AuthorID: 2,
			Text:     "nice",
			Created:  now,
		}).Return(want, nil)

		got, err := svc.AddComment(context.Background(), 2, 7, model.CreateComment{Text: "nice"})
		require.NoError(t, err)
		require.Equal(t, want, got)
	})
}

func TestService_Items(t *testing.T) {
	t.Parallel()
	available := true

	t.Run("create with unknown request", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		requestID := int64(40)
		repo.EXPECT().GetUser(gomock.Any(), int64(1)).Return(model.User{ID: 1}, nil)
		repo.EXPECT().GetRequest(gomock.Any(), requestID).Return(model.ItemRequest{}, errs.ErrNotFound)

		_, err := svc.CreateItem(context.Background(), 1, model.CreateItem{
			Name: "drill", Description: "bosch", Available: &available, RequestID: &requestID,
		})
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("create without available", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t)
		_, err := svc.CreateItem(context.Background(), 1, model.CreateItem{Name: "drill", Description: "bosch"})
		require.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("update by stranger", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().GetItem(gomock.Any(), int64(7)).Return(model.Item{ID: 7, Name: "drill", Description: "bosch", OwnerID: 1}, nil)

		name := "hammer"
		_, err := svc.UpdateItem(context.Background(), 2, 7, model.ItemPatch{Name: &name})
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("update merges patch", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().GetItem(gomock.Any(), int64(7)).Return(model.Item{ID: 7, Name: "drill", Description: "bosch", Available: true, OwnerID: 1}, nil)
		want := model.Item{ID: 7, Name: "drill", Description: "bosch", Available: false, OwnerID: 1}
		repo.EXPECT().UpdateItem(gomock.Any(), want).Return(want, nil)

		off := false
		got, err := svc.UpdateItem(context.Background(), 1, 7, model.ItemPatch{Available: &off})
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("blank search", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t)
		got, err := svc.SearchItems(context.Background(), "   ")
		require.NoError(t, err)
		require.Equal(t, []model.Item{}, got)
	})
}

func TestService_Users(t *testing.T) {
	t.Parallel()
	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t)
		_, err := svc.CreateUser(context.Background(), model.CreateUser{Name: "Ann", Email: "not-an-email"})
		require.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().CreateUser(gomock.Any(), model.User{Name: "Ann", Email: "ann@mail.io"}).Return(model.User{}, errs.ErrConflict)
		_, err := svc.CreateUser(context.Background(), model.CreateUser{Name: "Ann", Email: "ann@mail.io"})
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("patch keeps absent fields", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		email := "mary@mail.io"
		repo.EXPECT().GetUser(gomock.Any(), int64(1)).Return(model.User{ID: 1, Name: "Ann", Email: "ann@mail.io"}, nil)
		repo.EXPECT().UpdateUser(gomock.Any(), model.User{ID: 1, Name: "Ann", Email: email}).
			Return(model.User{ID: 1, Name: "Ann", Email: email}, nil)

		got, err := svc.UpdateUser(context.Background(), 1, model.UserPatch{Email: &email})
		require.NoError(t, err)
		require.Equal(t, "Ann", got.Name)
	})

	t.Run("delete unknown", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().DeleteUser(gomock.Any(), int64(5)).Return(errs.ErrNotFound)
		require.ErrorIs(t, svc.DeleteUser(context.Background(), 5), errs.ErrNotFound)
	})
}

func TestService_Requests(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)
	requests := []model.ItemRequest{
		{ID: 2, Description: "need a saw", RequestorID: 1, Created: now},
		{ID: 1, Description: "need a drill", RequestorID: 1, Created: now.Add(-time.Hour)},
	}
	repo.EXPECT().GetUser(gomock.Any(), int64(1)).Return(model.User{ID: 1}, nil)
	repo.EXPECT().ListUserRequests(gomock.Any(), int64(1)).Return(requests, nil)
	repo.EXPECT().ListItemsByRequests(gomock.Any(), []int64{2, 1}).Return([]model.RequestItem{
		{ID: 7, Name: "drill", OwnerID: 3, RequestID: 1},
	}, nil)

	got, err := svc.ListOwnRequests(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, []model.ItemRequestView{
		{ID: 2, Description: "need a saw", Created: datetime.New(now), Items: []model.RequestItem{}},
		{ID: 1, Description: "need a drill", Created: datetime.New(now.Add(-time.Hour)), Items: []model.RequestItem{
			{ID: 7, Name: "drill", OwnerID: 3, RequestID: 1},
		}},
	}, got)

	_, err = svc.CreateRequest(context.Background(), 1, model.CreateItemRequest{Description: " "})
	require.ErrorIs(t, err, errs.ErrInvalidRequest)
}
