// Package utils provides small helpers shared between the provider adapter
// and the development identity server: type-safe context keys and bearer
// token handling.
package utils

import "context"

// contextKey is a private type for context keys. Using a dedicated type
// instead of a plain string prevents key collisions with other packages
// that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// AccountIDCtxKey is the key under which an authenticated account id is
// stored in the request context.
var AccountIDCtxKey = contextKey("accountID")

// GetAccountIDFromContext retrieves the authenticated account id from the
// context. ok is false when the value is missing or not a string.
func GetAccountIDFromContext(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(string)
	return accountID, ok
}
