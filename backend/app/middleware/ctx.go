package middleware

import "context"

type ctxKey int

const (
	userIDKey ctxKey = iota + 1
	tokenKey
	requestIDKey
)

// UserID returns the id of the logged in caller set by Session.Require.
func UserID(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(userIDKey).(uint)
	return id, ok
}

func SessionToken(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
