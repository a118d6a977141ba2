// Package utils provides small helpers shared by the server and the client:
// typed context keys, JSON response writing, the resty client constructor,
// JWT issuing and validation, identifier and OTP generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the authenticated user id is stored.
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, "0192f0c4-...")
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the user id stored under UserIDCtxKey.
// ok is false when the value is missing, has another type or is empty.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
