package domain

import "errors"

var (
	// ErrValidation marks a submission with a missing required field.
	ErrValidation = errors.New("validation failed")
	// ErrAuthFailure marks a login the backend reported as unsuccessful.
	ErrAuthFailure = errors.New("authentication failed")
	// ErrNetwork marks a backend call that produced no usable response.
	ErrNetwork = errors.New("network error")
	// ErrDataLoad marks a user listing the backend did not report as successful.
	ErrDataLoad = errors.New("failed to load data")
	// ErrLoginInFlight is returned while another login for the same session is pending.
	ErrLoginInFlight = errors.New("login already in progress")
	// ErrSessionStore marks an accepted login whose session could not be saved.
	ErrSessionStore = errors.New("session store unavailable")
	// ErrNotAuthenticated guards protected data behind a login.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// MessageError pairs a sentinel with the message shown to the user.
type MessageError struct {
	Kind    error
	Message string
}

func (e *MessageError) Error() string { return e.Message }

func (e *MessageError) Unwrap() error { return e.Kind }

// UserMessage extracts the user-facing text of err, falling back to err.Error().
func UserMessage(err error) string {
	var me *MessageError
	if errors.As(err, &me) {
		return me.Message
	}
	var lf LoginFailure
	if errors.As(err, &lf) {
		return lf.Message
	}
	return err.Error()
}
