package utils

import "context"

type contextKey string

const (
	UsernameKey contextKey = "username"
	EmailKey    contextKey = "email"
)

func SetUserContext(ctx context.Context, username, email string) context.Context {
	ctx = context.WithValue(ctx, UsernameKey, username)
	ctx = context.WithValue(ctx, EmailKey, email)
	return ctx
}

func GetUsernameFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(UsernameKey)
	if val == nil {
		return "", false
	}

	username, ok := val.(string)
	return username, ok && username != ""
}

func GetEmailFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(EmailKey)
	if val == nil {
		return "", false
	}

	email, ok := val.(string)
	return email, ok
}
