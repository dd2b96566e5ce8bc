// Package app contains shared application-layer constants used across the
// cashbook identity client and the development identity server.
//
// The Msg* constants are the wire-level message strings written into HTTP
// response bodies. The provider adapter matches on some of them when mapping
// responses to sentinel errors, so keeping them in one place keeps both
// sides of the protocol in agreement.
package app

const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidEmail is returned when a supplied email fails basic
	// validation.
	MsgInvalidEmail = "invalid email"

	// MsgWeakPassword is returned when a password does not meet the
	// minimum strength requirements. The adapter maps responses carrying
	// this message to its weak-password sentinel.
	MsgWeakPassword = "weak password"

	// MsgEmailAlreadyRegistered is returned when a registration or email
	// change targets an address already bound to another account. The
	// adapter maps responses carrying this message to its duplicate-email
	// sentinel.
	MsgEmailAlreadyRegistered = "email already registered"

	// MsgInvalidEmailPassword is returned when an email/password pair does
	// not match any account.
	MsgInvalidEmailPassword = "invalid email/password"
)
