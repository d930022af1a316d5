package log

import "errors"

// ErrCreation matches every [*CreationError] with [errors.Is].
var ErrCreation = errors.New("logger creation failed")

// ErrInvalidArgument is returned by [NewNop] when the name is absent.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrUnknownLevel is returned when a level name or value is not defined.
var ErrUnknownLevel = errors.New("unknown log level")

// Name validation failures.
// Compare with [errors.Is]; the returned errors may carry a cause.
var (
	ErrNameAbsent  = NewCreationError("Logger name must not be null", nil)
	ErrNameEmpty   = NewCreationError("Logger name must not be empty", nil)
	ErrNameIllegal = NewCreationError("Illegal character in Logger name", nil)
)

// CreationError reports that a [Logger] could not be created.
type CreationError struct {
	Cause   error
	Message string
}

// NewCreationError returns a [*CreationError] with the given message and
// optional underlying cause.
func NewCreationError(msg string, cause error) *CreationError {
	return &CreationError{Cause: cause, Message: msg}
}

// Error returns the message, without the cause.
func (e *CreationError) Error() string { return e.Message }

// Unwrap returns the underlying cause, if any.
func (e *CreationError) Unwrap() error { return e.Cause }

// Is reports whether target is [ErrCreation] or a [*CreationError] with the
// same message.
func (e *CreationError) Is(target error) bool {
	if target == ErrCreation {
		return true
	}

	var other *CreationError
	if !errors.As(target, &other) {
		return false
	}

	return other.Message == e.Message
}
