package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/shareit/pkg/datetime"
	"github.com/Astemirdum/shareit/shareit/internal/errs"
	"github.com/Astemirdum/shareit/shareit/internal/handler"
	"github.com/Astemirdum/shareit/shareit/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/shareit/shareit/internal/handler/mocks"
)

var (
	start = time.Date(2030, 3, 11, 12, 0, 0, 0, time.UTC)
	end   = start.Add(24 * time.Hour)
)

func waitingBooking() model.BookingView {
	return model.BookingView{
		ID:      3,
		Start:   datetime.New(start),
		End:     datetime.New(end),
		Status:  model.StatusWaiting,
		Booker:  model.UserRef{ID: 2, Name: "Bob"},
		Item:    model.ItemRef{ID: 7, Name: "drill"},
		OwnerID: 1,
	}
}

const waitingBookingJSON = `{"id":3,"start":"2030-03-11T12:00:00","end":"2030-03-12T12:00:00","status":"WAITING","booker":{"id":2,"name":"Bob"},"item":{"id":7,"name":"drill"}}`

type request struct {
	method string
	target string
	userID string
	body   string
}

type response struct {
	expectedCode int
	expectedBody string
}

func serve(t *testing.T, mockBehavior func(r *service_mocks.MockShareitService), req request) *httptest.ResponseRecorder {
	t.Helper()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockShareitService(c)
	mockBehavior(svc)

	h := handler.New(svc, zap.NewExample().Named("test"))
	e := h.NewRouter()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(req.method, req.target, strings.NewReader(req.body))
	r.Header.Set("Content-Type", "application/json")
	if req.userID != "" {
		r.Header.Set("X-Sharer-User-Id", req.userID)
	}
	e.ServeHTTP(w, r)
	return w
}

func TestHandler_CreateBooking(t *testing.T) {
	t.Parallel()
	body := `{"itemId":7,"start":"2030-03-11T12:00:00","end":"2030-03-12T12:00:00"}`
	in := model.CreateBooking{ItemID: 7, Start: datetime.New(start), End: datetime.New(end)}

	tests := []struct {
		name         string
		mockBehavior func(r *service_mocks.MockShareitService)
		request      request
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockShareitService) {
				r.EXPECT().CreateBooking(gomock.Any(), int64(2), in).Return(waitingBooking(), nil)
			},
			request:  request{method: http.MethodPost, target: "/bookings", userID: "2", body: body},
			response: response{expectedCode: http.StatusOK, expectedBody: waitingBookingJSON},
		},
		{
			name:         "missing user header",
			mockBehavior: func(r *service_mocks.MockShareitService) {},
			request:      request{method: http.MethodPost, target: "/bookings", body: body},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"X-Sharer-User-Id header is required"}`,
			},
		},
		{
			name: "item not available",
			mockBehavior: func(r *service_mocks.MockShareitService) {
				r.EXPECT().CreateBooking(gomock.Any(), int64(2), in).
					Return(model.BookingView{}, errors.Wrap(errs.ErrInvalidRequest, "item 7 is not available"))
			},
			request: request{method: http.MethodPost, target: "/bookings", userID: "2", body: body},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"item 7 is not available: invalid request"}`,
			},
		},
		{
			name: "unknown item",
			mockBehavior: func(r *service_mocks.MockShareitService) {
				r.EXPECT().CreateBooking(gomock.Any(), int64(2), in).
					Return(model.BookingView{}, errors.Wrap(errs.ErrNotFound, "item 7"))
			},
			request: request{method: http.MethodPost, target: "/bookings", userID: "2", body: body},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"item 7: not found"}`,
			},
		},
		{
			name: "storage failure",
			mockBehavior: func(r *service_mocks.MockShareitService) {
				r.EXPECT().CreateBooking(gomock.Any(), int64(2), in).
					Return(model.BookingView{}, errors.New("connection reset"))
			},
			request: request{method: http.MethodPost, target: "/bookings", userID: "2", body: body},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"internal server error"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := serve(t, tt.mockBehavior, tt.request)
			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ApproveBooking(t *testing.T) {
	t.Parallel()
	approved := waitingBooking()
	approved.Status = model.StatusApproved

	tests := []struct {
		name         string
		mockBehavior func(r *service_mocks.MockShareitService)
		request      request
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockShareitService) {
				r.EXPECT().ApproveBooking(gomock.Any(), int64(1), int64(3), true).Return(approved, nil)
			},
			request: request{method: http.MethodPatch, target: "/bookings/3?approved=true", userID: "1"},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: strings.Replace(waitingBookingJSON, "WAITING", "APPROVED", 1),
			},
		},
		{
			name: "not the owner",
			mockBehavior: func(r *service_mocks.MockShareitService) {
				r.EXPECT().ApproveBooking(gomock.Any(), int64(2), int64(3), false).
					Return(model.BookingView{}, errors.Wrap(errs.ErrForbidden, "user 2 does not own item 7"))
			},
			request: request{method: http.MethodPatch, target: "/bookings/3?approved=false", userID: "2"},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"user 2 does not own item 7: forbidden"}`,
			},
		},
		{
			name: "already decided",
			mockBehavior: func(r *service_mocks.MockShareitService) {
				r.EXPECT().ApproveBooking(gomock.Any(), int64(1), int64(3), true).
					Return(model.BookingView{}, errors.Wrap(errs.ErrConflict, "booking 3 is already APPROVED"))
			},
			request: request{method: http.MethodPatch, target: "/bookings/3?approved=true", userID: "1"},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"booking 3 is already APPROVED: conflict"}`,
			},
		},
		{
			name:         "approved is not a bool",
			mockBehavior: func(r *service_mocks.MockShareitService) {},
			request:      request{method: http.MethodPatch, target: "/bookings/3?approved=maybe", userID: "1"},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"approved must be true or false"}`,
			},
		},
		{
			name:         "bad booking id",
			mockBehavior: func(r *service_mocks.MockShareitService) {},
			request:      request{method: http.MethodPatch, target: "/bookings/abc?approved=true", userID: "1"},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"bookingId must be a positive integer"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := serve(t, tt.mockBehavior, tt.request)
			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ListBookings(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		mockBehavior func(r *service_mocks.MockShareitService)
		request      request
		response     response
	}{
		{
			name: "booker defaults",
			mockBehavior: func(r *service_mocks.MockShareitService) {
				r.EXPECT().ListBookerBookings(gomock.Any(), int64(2), model.StateAll, model.Page{}).
					Return([]model.BookingView{waitingBooking()}, nil)
			},
			request:  request{method: http.MethodGet, target: "/bookings", userID: "2"},
			response: response{expectedCode: http.StatusOK, expectedBody: "[" + waitingBookingJSON + "]"},
		},
		{
			name: "owner with state and page",
			mockBehavior: func(r *service_mocks.MockShareitService) {
				r.EXPECT().ListOwnerBookings(gomock.Any(), int64(1), model.StateWaiting, model.Page{From: 20, Size: 10}).
					Return([]model.BookingView{}, nil)
			},
			request:  request{method: http.MethodGet, target: "/bookings/owner?state=WAITING&from=20&size=10", userID: "1"},
			response: response{expectedCode: http.StatusOK, expectedBody: "[]"},
		},
		{
			name:         "unknown state",
			mockBehavior: func(r *service_mocks.MockShareitService) {},
			request:      request{method: http.MethodGet, target: "/bookings?state=UNSUPPORTED_STATUS", userID: "2"},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Unknown state: UNSUPPORTED_STATUS"}`,
			},
		},
		{
			name:         "negative from",
			mockBehavior: func(r *service_mocks.MockShareitService) {},
			request:      request{method: http.MethodGet, target: "/bookings?from=-1", userID: "2"},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"from must be a non-negative integer"}`,
			},
		},
		{
			name:         "zero size",
			mockBehavior: func(r *service_mocks.MockShareitService) {},
			request:      request{method: http.MethodGet, target: "/bookings/owner?size=0", userID: "1"},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"size must be a positive integer"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := serve(t, tt.mockBehavior, tt.request)
			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetItem(t *testing.T) {
	t.Parallel()
	view := model.ItemView{
		Item:     model.Item{ID: 7, Name: "drill", Description: "bosch", Available: true, OwnerID: 1},
		Comments: []model.CommentView{},
	}
	w := serve(t, func(r *service_mocks.MockShareitService) {
		r.EXPECT().GetItem(gomock.Any(), int64(2), int64(7)).Return(view, nil)
	}, request{method: http.MethodGet, target: "/items/7", userID: "2"})

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`{"id":7,"name":"drill","description":"bosch","available":true,"lastBooking":null,"nextBooking":null,"comments":[]}`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_SearchItems(t *testing.T) {
	t.Parallel()
	w := serve(t, func(r *service_mocks.MockShareitService) {
		r.EXPECT().SearchItems(gomock.Any(), "DrIlL").Return([]model.Item{
			{ID: 7, Name: "Drill", Description: "bosch", Available: true, OwnerID: 1},
		}, nil)
	}, request{method: http.MethodGet, target: "/items/search?text=DrIlL"})

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `[{"id":7,"name":"Drill","description":"bosch","available":true}]`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_Users(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		mockBehavior func(r *service_mocks.MockShareitService)
		request      request
		response     response
	}{
		{
			name: "create",
			mockBehavior: func(r *service_mocks.MockShareitService) {
				r.EXPECT().CreateUser(gomock.Any(), model.CreateUser{Name: "Ann", Email: "ann@mail.io"}).
					Return(model.User{ID: 1, Name: "Ann", Email: "ann@mail.io"}, nil)
			},
			request:  request{method: http.MethodPost, target: "/users", body: `{"name":"Ann","email":"ann@mail.io"}`},
			response: response{expectedCode: http.StatusOK, expectedBody: `{"id":1,"name":"Ann","email":"ann@mail.io"}`},
		},
		{
			name: "duplicate email",
			mockBehavior: func(r *service_mocks.MockShareitService) {
				r.EXPECT().CreateUser(gomock.Any(), model.CreateUser{Name: "Ann", Email: "ann@mail.io"}).
					Return(model.User{}, errors.Wrap(errs.ErrConflict, "email ann@mail.io is already registered"))
			},
			request: request{method: http.MethodPost, target: "/users", body: `{"name":"Ann","email":"ann@mail.io"}`},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"email ann@mail.io is already registered: conflict"}`,
			},
		},
		{
			name:         "invalid email",
			mockBehavior: func(r *service_mocks.MockShareitService) {},
			request:      request{method: http.MethodPost, target: "/users", body: `{"name":"Ann","email":"ann"}`},
			response:     response{expectedCode: http.StatusBadRequest},
		},
		{
			name: "delete",
			mockBehavior: func(r *service_mocks.MockShareitService) {
				r.EXPECT().DeleteUser(gomock.Any(), int64(4)).Return(nil)
			},
			request:  request{method: http.MethodDelete, target: "/users/4"},
			response: response{expectedCode: http.StatusOK},
		},
		{
			name: "delete unknown",
			mockBehavior: func(r *service_mocks.MockShareitService) {
				r.EXPECT().DeleteUser(gomock.Any(), int64(4)).Return(errors.Wrap(errs.ErrNotFound, "user 4"))
			},
			request: request{method: http.MethodDelete, target: "/users/4"},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"user 4: not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := serve(t, tt.mockBehavior, tt.request)
			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_Requests(t *testing.T) {
	t.Parallel()
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	w := serve(t, func(r *service_mocks.MockShareitService) {
		r.EXPECT().ListOtherRequests(gomock.Any(), int64(1), model.Page{From: 0, Size: 2}).Return([]model.ItemRequestView{
			{ID: 5, Description: "need a drill", Created: datetime.New(created), Items: []model.RequestItem{
				{ID: 7, Name: "drill", OwnerID: 3, RequestID: 5},
			}},
		}, nil)
	}, request{method: http.MethodGet, target: "/requests/all?from=0&size=2", userID: "1"})

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`[{"id":5,"description":"need a drill","created":"2024-03-01T09:30:00","items":[{"id":7,"name":"drill","ownerId":3}]}]`,
		strings.Trim(w.Body.String(), "\n"))
}
