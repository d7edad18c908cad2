// Package auth carries the acting user identity taken from the X-Sharer-User-Id header.
package auth

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const XSharerUserIDHeader = "X-Sharer-User-Id"

var (
	ErrNoUserID      = errors.New(XSharerUserIDHeader + " header is required")
	ErrInvalidUserID = errors.New(XSharerUserIDHeader + " header must be a positive integer")
)

type ctxKey int

const userIDKey ctxKey = iota + 1

func SetUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func GetUserID(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(userIDKey).(int64)
	if !ok {
		return 0, ErrNoUserID
	}
	return userID, nil
}

func ParseUserID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrNoUserID
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrInvalidUserID
	}
	return userID, nil
}
