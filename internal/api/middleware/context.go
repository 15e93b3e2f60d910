package middleware

import "context"

type ctxKey int

const userIDKey ctxKey = iota

// WithUserID кладет UID аутентифицированного пациента в контекст
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID возвращает UID пациента из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}
