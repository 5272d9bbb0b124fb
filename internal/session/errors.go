package session

import "errors"

// ErrLoginFailed is the generic failure returned when login breaks for any
// reason other than a typed transport failure.
var ErrLoginFailed = errors.New("login failed")

// ErrRegistrationFailed is the generic failure returned when registration
// breaks for any reason other than a typed transport failure.
var ErrRegistrationFailed = errors.New("registration failed")

// ErrNotInitialized is returned when a consumer asks for the session machine
// outside the scope in which the application root installed it. That is a
// wiring bug and must surface immediately rather than degrade into defaults.
var ErrNotInitialized = errors.New("session machine not initialized in this scope")
