// Package datetime holds the local date-time wire format shared by the gateway and the backend.
package datetime

import (
	"bytes"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Layout is ISO-8601 without an offset. Values are interpreted as UTC.
const Layout = "2006-01-02T15:04:05"

type DateTime struct {
	time.Time
}

func New(t time.Time) DateTime {
	return DateTime{Time: t.UTC()}
}

func Parse(s string) (DateTime, error) {
	t, err := time.Parse(Layout, s)
	if err == nil {
		return DateTime{Time: t}, nil
	}
	t, rfcErr := time.Parse(time.RFC3339Nano, s)
	if rfcErr != nil {
		return DateTime{}, errors.Wrapf(err, "invalid date-time %q", s)
	}
	return New(t), nil
}

func (d DateTime) String() string {
	return d.UTC().Format(Layout)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = DateTime{}
		return nil
	}
	s := strings.Trim(string(b), `"`)
	if s == "" {
		*d = DateTime{}
		return nil
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
