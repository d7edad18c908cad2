package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mock_handler "github.com/Astemirdum/shareit/stats/internal/handler/mocks"
	"github.com/Astemirdum/shareit/stats/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandler_GetStats(t *testing.T) {
	t.Parallel()
	ownerID := int64(4)
	last := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name         string
		target       string
		mockBehav    func(s *mock_handler.MockStatsService)
		wantStatus   int
		wantResponse string
	}{
		{
			name:   "all items",
			target: "/stats",
			mockBehav: func(s *mock_handler.MockStatsService) {
				s.EXPECT().GetStats(gomock.Any(), model.StatsFilter{}).Return(model.StatsInfo{
					Data: []model.ItemStats{{ItemID: 2, OwnerID: 4, Created: 3, Approved: 1, Rejected: 1, LastUpdated: last}},
				}, nil)
			},
			wantStatus:   http.StatusOK,
			wantResponse: `{"data":[{"itemId":2,"ownerId":4,"created":3,"approved":1,"rejected":1,"lastUpdated":"2024-03-01T10:00:00Z"}]}`,
		},
		{
			name:   "by owner",
			target: "/stats?ownerId=4",
			mockBehav: func(s *mock_handler.MockStatsService) {
				s.EXPECT().GetStats(gomock.Any(), model.StatsFilter{OwnerID: &ownerID}).
					Return(model.StatsInfo{Data: []model.ItemStats{}}, nil)
			},
			wantStatus:   http.StatusOK,
			wantResponse: `{"data":[]}`,
		},
		{
			name:         "bad owner",
			target:       "/stats?ownerId=-1",
			mockBehav:    func(s *mock_handler.MockStatsService) {},
			wantStatus:   http.StatusBadRequest,
			wantResponse: `{"message":"ownerId must be a positive integer"}`,
		},
		{
			name:   "store failure",
			target: "/stats",
			mockBehav: func(s *mock_handler.MockStatsService) {
				s.EXPECT().GetStats(gomock.Any(), model.StatsFilter{}).Return(model.StatsInfo{}, errors.New("db down"))
			},
			wantStatus:   http.StatusInternalServerError,
			wantResponse: `{"message":"db down"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			svc := mock_handler.NewMockStatsService(c)
			tt.mockBehav(svc)

			e := New(svc, zap.NewNop()).NewRouter()
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			require.JSONEq(t, tt.wantResponse, rec.Body.String())
		})
	}
}
