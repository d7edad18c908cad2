package shareit

import (
	"bytes"
	"io"
	"net"
	"net/http"

	"github.com/Astemirdum/shareit/gateway/config"
	"github.com/Astemirdum/shareit/pkg/auth"
	"github.com/Astemirdum/shareit/pkg/circuit_breaker"
	"github.com/Astemirdum/shareit/pkg/tracing"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Service struct {
	log    *zap.Logger
	client *http.Client
	cfg    config.ShareitHTTPServer
	cb     circuit_breaker.CircuitBreaker
}

func NewService(log *zap.Logger, cfg config.Config) *Service {
	return &Service{
		log:    log.Named("shareit"),
		client: &http.Client{Timeout: cfg.ShareitHTTPServer.Timeout},
		cfg:    cfg.ShareitHTTPServer,
		cb: circuit_breaker.New(
			cfg.CircuitBreaker.RecordLength,
			cfg.CircuitBreaker.Timeout,
			cfg.CircuitBreaker.Percentile,
			cfg.CircuitBreaker.RecoveryRequests,
		),
	}
}

func (s *Service) CB() circuit_breaker.CircuitBreaker {
	return s.cb
}

// Proxy replays the request on the backend with the same method, path and query
// and returns the backend's raw body and status code.
// A transport failure is reported as 503.
func (s *Service) Proxy(c echo.Context, body []byte) (data []byte, statusCode int, err error) {
	in := c.Request()
	ur := *in.URL
	ur.Scheme = "http"
	ur.Host = net.JoinHostPort(s.cfg.Host, s.cfg.Port)

	var reader io.Reader = http.NoBody
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(in.Context(), in.Method, ur.String(), reader)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if len(body) > 0 {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if userID := in.Header.Get(auth.XSharerUserIDHeader); userID != "" {
		req.Header.Set(auth.XSharerUserIDHeader, userID)
	}
	if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
		req.Header.Set(echo.HeaderXRequestID, requestID)
	}
	tracing.Inject(req.Context(), req.Header)

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warn("backend call", zap.String("url", ur.String()), zap.Error(err))
		return nil, http.StatusServiceUnavailable, errors.Wrap(err, "shareit service is unavailable")
	}
	defer resp.Body.Close()

	data, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, http.StatusBadGateway, errors.Wrap(err, "read backend response")
	}
	return data, resp.StatusCode, nil
}
