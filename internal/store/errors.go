package store

import "errors"

// ErrUnknownCurrency indicates that a currency code passed to SaveCurrency
// is not a known ISO-4217 code.
var ErrUnknownCurrency = errors.New("unknown currency code")
