package entity

// Error is a domain failure carrying a stable machine-checkable code next to
// the human-readable message. Services wrap these with %w; transport maps
// them to HTTP statuses with errors.Is.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// OTP ledger failures
var (
	ErrAlreadyRegistered = &Error{Code: "ALREADY_REGISTERED", Message: "user already exists, please login instead"}
	ErrNotRegistered     = &Error{Code: "NOT_REGISTERED", Message: "user not found, please register first"}
	ErrNoPendingCode     = &Error{Code: "NO_PENDING_CODE", Message: "no pending code for this email"}
	ErrCodeMismatch      = &Error{Code: "CODE_MISMATCH", Message: "code does not match"}
	ErrCodeExpired       = &Error{Code: "CODE_EXPIRED", Message: "code has expired, please request a new one"}
	ErrRateLimited       = &Error{Code: "RATE_LIMITED", Message: "too many code requests, please try again later"}
)

// Vote ledger failures
var (
	ErrElectionNotFound  = &Error{Code: "ELECTION_NOT_FOUND", Message: "election not found"}
	ErrElectionClosed    = &Error{Code: "ELECTION_CLOSED", Message: "election is not open for voting"}
	ErrCandidateNotFound = &Error{Code: "CANDIDATE_NOT_FOUND", Message: "candidate not found"}
	ErrDuplicateVote     = &Error{Code: "DUPLICATE_VOTE", Message: "a vote has already been cast in this election"}
)

// Everything else
var (
	ErrUserNotFound           = &Error{Code: "USER_NOT_FOUND", Message: "user not found"}
	ErrContactRequestNotFound = &Error{Code: "CONTACT_REQUEST_NOT_FOUND", Message: "contact request not found"}
	ErrPaymentFailed          = &Error{Code: "PAYMENT_FAILED", Message: "payment could not be completed"}
	ErrForbidden              = &Error{Code: "FORBIDDEN", Message: "forbidden access"}
	ErrUnavailable            = &Error{Code: "UNAVAILABLE", Message: "storage is unavailable"}
)
