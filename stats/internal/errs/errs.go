package errs

import "github.com/pkg/errors"

var ErrUnknownEvent = errors.New("unknown event type")
