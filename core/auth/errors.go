package auth

import "errors"

var (
	// ErrEmailTaken is returned by UserStore.Create when the email violates
	// the store's uniqueness constraint.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound is returned by UserStore lookups when no user matches.
	ErrUserNotFound = errors.New("user not found")
)

// Validation messages surfaced to end users. Login failures use one generic
// message for both unknown email and wrong password so the response never
// reveals which of the two was wrong (enumeration resistance).
const (
	MsgInvalidEmail     = "Please enter a valid email address"
	MsgPasswordTooShort = "Password must be at least 8 characters long"
	MsgEmailExists      = "This email already exists."
	MsgBadCredentials   = "Please check your email or password"
)
