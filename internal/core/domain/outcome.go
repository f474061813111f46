package domain

// LoginOutcome is the result of one login exchange: LoginSuccess or LoginFailure.
type LoginOutcome interface {
	loginOutcome()
}

// LoginSuccess carries the user the session was populated from.
type LoginSuccess struct {
	User User
}

// FailureReason classifies a LoginFailure.
type FailureReason string

const (
	ReasonAuth       FailureReason = "auth"
	ReasonNetwork    FailureReason = "network"
	ReasonValidation FailureReason = "validation"
	ReasonInFlight   FailureReason = "in_flight"
	ReasonSession    FailureReason = "session"
)

// LoginFailure carries the message shown inline on the sign-in form.
type LoginFailure struct {
	Reason  FailureReason
	Message string
}

const (
	MsgLoginFailed     = "Login failed"
	MsgNetworkError    = "Network error"
	MsgLoginInFlight   = "A sign-in request is already in progress"
	MsgMissingField    = "Username and password are required"
	MsgSessionStore    = "Signed in, but your session could not be saved. Please try again."
	MsgUsersLoadFailed = "Failed to load users"
	MsgUsersNetwork    = "Network error. Please try again."
)

func (LoginSuccess) loginOutcome() {}
func (LoginFailure) loginOutcome() {}

func (f LoginFailure) Error() string { return f.Message }

// Unwrap maps the failure reason onto the domain sentinels so callers can use errors.Is.
func (f LoginFailure) Unwrap() error {
	switch f.Reason {
	case ReasonNetwork:
		return ErrNetwork
	case ReasonValidation:
		return ErrValidation
	case ReasonInFlight:
		return ErrLoginInFlight
	case ReasonSession:
		return ErrSessionStore
	default:
		return ErrAuthFailure
	}
}

// AuthFailure builds the failure for an unsuccessful backend report, falling
// back to the generic message when the backend sent none.
func AuthFailure(message string) LoginFailure {
	if message == "" {
		message = MsgLoginFailed
	}
	return LoginFailure{Reason: ReasonAuth, Message: message}
}

// NetworkFailure builds the failure for a login that produced no usable response.
func NetworkFailure() LoginFailure {
	return LoginFailure{Reason: ReasonNetwork, Message: MsgNetworkError}
}
