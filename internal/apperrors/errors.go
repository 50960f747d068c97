package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates that the caller could not be identified.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal indicates an unexpected failure in the application or its store.
var ErrInternal = errors.New("internal error")

// Investment decision errors. Services wrap these with a descriptive message,
// callers match them with errors.Is.
var (
	ErrInvalidStateTransition  = errors.New("invalid investment state transition")
	ErrInvalidUserReference    = errors.New("investment has no user reference")
	ErrInvalidProjectReference = errors.New("investment has no project reference")
	ErrInvalidAmount           = errors.New("investment amount must be a positive number")
	ErrCorruptProjectState     = errors.New("project invested capital is not a valid number")
	ErrCorruptWalletState      = errors.New("wallet balance is not a valid number")
	ErrProjectGoalReached      = errors.New("project funding goal already reached")
	ErrExceedsProjectCapacity  = errors.New("investment exceeds remaining project capacity")
	ErrWalletNotFound          = errors.New("wallet not found")
	ErrInsufficientBalance     = errors.New("insufficient wallet balance")
)

// ErrTransactionConflict is returned by a store when a unit of work observed data
// that changed before commit. Services retry on it and surface it once the retry
// budget is exhausted.
var ErrTransactionConflict = errors.New("transaction conflict: data changed concurrently")

// ErrReadAfterWrite is returned by a store when a unit of work reads after it has
// started writing.
var ErrReadAfterWrite = errors.New("transaction reads must be performed before writes")

// AppError carries an HTTP status code alongside an infrastructure failure.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps an error to the HTTP status a handler should answer with.
func StatusCode(err error) int {
	var appErr *AppError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrWalletNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalidStateTransition), errors.Is(err, ErrTransactionConflict):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidUserReference),
		errors.Is(err, ErrInvalidProjectReference),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrCorruptProjectState),
		errors.Is(err, ErrCorruptWalletState),
		errors.Is(err, ErrProjectGoalReached),
		errors.Is(err, ErrExceedsProjectCapacity),
		errors.Is(err, ErrInsufficientBalance):
		return http.StatusUnprocessableEntity
	case errors.As(err, &appErr) && appErr.Code != 0:
		return appErr.Code
	default:
		return http.StatusInternalServerError
	}
}
