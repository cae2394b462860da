package gateway

// ValidationError is returned for missing, malformed or out-of-range input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError is returned when the referenced event id has no row.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string { return "event not found" }

// MalformedRequestError is returned when the request body isn't valid JSON.
type MalformedRequestError struct {
	Err error
}

func (e *MalformedRequestError) Error() string { return "invalid JSON body" }

func (e *MalformedRequestError) Unwrap() error { return e.Err }

const (
	ErrMsgTitleRequired     = "title required"
	ErrMsgInvalidTimestamps = "invalid timestamps"
	ErrMsgEndBeforeStart    = "end before start"
	ErrMsgMonthRequired     = "month=YYYY-MM required"
	ErrMsgInvalidID         = "invalid id"
)
