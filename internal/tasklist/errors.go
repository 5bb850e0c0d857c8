package tasklist

import "errors"

// Validation errors.
var (
	ErrMissingFields     = errors.New("title and description are required")
	ErrPastOrInvalidDate = errors.New("due date must be in the future")
)

// ValidationKind identifies why a new task was rejected.
type ValidationKind int

const (
	MissingFields ValidationKind = iota + 1
	PastOrInvalidDate
)

func (k ValidationKind) String() string {
	switch k {
	case MissingFields:
		return "MissingFields"
	case PastOrInvalidDate:
		return "PastOrInvalidDate"
	default:
		return "Unknown"
	}
}

// ValidationError is returned when adding a task fails validation.
// It unwraps to ErrMissingFields or ErrPastOrInvalidDate.
type ValidationError struct {
	Kind ValidationKind
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Unwrap().Error()
}

func (e *ValidationError) Unwrap() error {
	if e.Kind == MissingFields {
		return ErrMissingFields
	}
	return ErrPastOrInvalidDate
}

// Message is the text shown to the user.
func (e *ValidationError) Message() string {
	if e.Kind == MissingFields {
		return "Please complete all fields."
	}
	return "The due date must be a future date."
}
