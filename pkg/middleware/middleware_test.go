package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/Astemirdum/shareit/pkg/auth"
	"github.com/Astemirdum/shareit/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSharerUserID(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "ok",
			header:       "12",
			expectedCode: http.StatusOK,
			expectedBody: "12",
		},
		{
			name:         "missing",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"X-Sharer-User-Id header is required"}`,
		},
		{
			name:         "not a number",
			header:       "twelve",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"X-Sharer-User-Id header must be a positive integer"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.GET("/me", func(c echo.Context) error {
				userID, err := auth.GetUserID(c.Request().Context())
				if err != nil {
					return err
				}
				return c.String(http.StatusOK, strconv.FormatInt(userID, 10))
			}, middleware.SharerUserID)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				r.Header.Set(auth.XSharerUserIDHeader, tt.header)
			}
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
