package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("operation not permitted")

// ErrAuthentication indicates the presented credentials did not match.
var ErrAuthentication = errors.New("authentication failed")

// ErrInsufficientShares indicates a seller's balance is lower than the transfer amount.
var ErrInsufficientShares = errors.New("insufficient shares")

// ErrInsufficientAvailable indicates the applicant's unreserved balance cannot
// cover a new transfer request.
var ErrInsufficientAvailable = errors.New("insufficient available shares")

// ErrAlreadyDecided indicates a transfer request has already reached a terminal state.
var ErrAlreadyDecided = errors.New("request already decided")

// ErrNotCancellable indicates a transfer request can no longer be deleted by its applicant.
var ErrNotCancellable = errors.New("request no longer cancellable")

// ErrTransient indicates a retryable store failure (rate limit, serialization
// conflict, dropped connection). Callers retry a bounded number of times
// before surfacing it.
var ErrTransient = errors.New("transient store failure")

// ErrInconsistent indicates a multi-step ledger write was interrupted and left
// partial state behind. It must be surfaced loudly, never swallowed.
var ErrInconsistent = errors.New("ledger state inconsistent")

// AppError carries an HTTP-ish status code alongside a message and wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates a 404 AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
