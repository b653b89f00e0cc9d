package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a Facet error code.
type ErrorCode string

const (
	ErrInvalidRequest   ErrorCode = "INVALID_REQUEST"   // 400
	ErrUnknownArchetype ErrorCode = "UNKNOWN_ARCHETYPE" // 400
	ErrNotFound         ErrorCode = "NOT_FOUND"         // 404
	ErrDuplicateSlug    ErrorCode = "DUPLICATE_SLUG"    // 409
	ErrSlugConflict     ErrorCode = "SLUG_CONFLICT"     // 409 (duplicate slug retries exhausted)
	ErrMissingVariable  ErrorCode = "MISSING_VARIABLE"  // 422
	ErrInternal         ErrorCode = "INTERNAL"          // 500
	ErrStoreUnavailable ErrorCode = "STORE_UNAVAILABLE" // 503
)

// FacetError represents a structured error with code, status, and details.
type FacetError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
	cause   error
}

// Error implements the error interface.
func (e *FacetError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *FacetError) Unwrap() error {
	return e.cause
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *FacetError {
	return &FacetError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewUnknownArchetype creates a 400 error for an archetype name outside the registry.
func NewUnknownArchetype(name string) *FacetError {
	return &FacetError{
		Code:    ErrUnknownArchetype,
		Status:  400,
		Message: fmt.Sprintf("unknown archetype: %q", name),
		Details: map[string]any{"archetype": name},
	}
}

// NewNotFound creates a 404 error for when a post or crystal cannot be found.
func NewNotFound(identifier string) *FacetError {
	return &FacetError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewDuplicateSlug creates a 409 error for a slug already taken in the post store.
func NewDuplicateSlug(slug string) *FacetError {
	return &FacetError{
		Code:    ErrDuplicateSlug,
		Status:  409,
		Message: fmt.Sprintf("post with slug %q already exists", slug),
		Details: map[string]any{"slug": slug},
	}
}

// NewSlugConflict creates a 409 error when every slug retry collided.
func NewSlugConflict(base string, attempts int) *FacetError {
	return &FacetError{
		Code:    ErrSlugConflict,
		Status:  409,
		Message: fmt.Sprintf("could not claim a unique slug for %q after %d attempts", base, attempts),
		Details: map[string]any{"base_slug": base, "attempts": attempts},
	}
}

// NewMissingVariable creates a 422 error listing placeholders the context did not bind.
func NewMissingVariable(archetype string, missing []string) *FacetError {
	return &FacetError{
		Code:    ErrMissingVariable,
		Status:  422,
		Message: fmt.Sprintf("%s is missing variables: %v", archetype, missing),
		Details: map[string]any{"archetype": archetype, "missing_variables": missing},
	}
}

// NewStoreUnavailable creates a 503 error for post store write/read failures.
func NewStoreUnavailable(err error) *FacetError {
	msg := "post store unavailable"
	if err != nil {
		msg = fmt.Sprintf("post store unavailable: %v", err)
	}
	return &FacetError{
		Code:    ErrStoreUnavailable,
		Status:  503,
		Message: msg,
		cause:   err,
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
// The message stays generic; the original error is kept in Details for logging.
func NewInternal(err error) *FacetError {
	details := map[string]any{}
	if err != nil {
		details["internal_error"] = err.Error()
	}
	return &FacetError{
		Code:    ErrInternal,
		Status:  500,
		Message: "an internal error occurred",
		Details: details,
		cause:   err,
	}
}

// Is checks if an error is (or wraps) a FacetError with the given code.
func Is(err error, code ErrorCode) bool {
	var fErr *FacetError
	if stderrors.As(err, &fErr) {
		return fErr.Code == code
	}
	return false
}

// As returns the FacetError in err's chain, if any.
func As(err error) (*FacetError, bool) {
	var fErr *FacetError
	if stderrors.As(err, &fErr) {
		return fErr, true
	}
	return nil, false
}
