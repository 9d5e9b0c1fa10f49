// Package service implements the application use cases on top of the store.
package service

import "errors"

// Sentinel errors. Handlers map these onto the flat error taxonomy the
// mobile client expects; anything else is reported as a generic 400.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotFound      = errors.New("no account with this email")
	ErrPhoneNotFound      = errors.New("no account with this phone number")
	ErrInvalidOTP         = errors.New("invalid or expired otp")
	ErrPasswordsDiffer    = errors.New("passwords do not match")
	ErrInvalidToken       = errors.New("invalid token")
	ErrFarmNotFound       = errors.New("farm not found")
	ErrFarmerNotFound     = errors.New("farmer not found")
	ErrRecordNotFound     = errors.New("record not found")
	ErrAccountExists      = errors.New("account already exists")
	ErrEmailTaken         = errors.New("email already registered")
)
