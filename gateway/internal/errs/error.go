package errs

import "github.com/pkg/errors"

var (
	ErrUnavailable    = errors.New("shareit service is unavailable")
	ErrEndBeforeStart = errors.New("end must be after start")
)
