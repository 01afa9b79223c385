package content

import (
	"errors"
	"fmt"
)

var (
	// Authorization
	ErrUnauthorized = errors.New("actor is not allowed to modify this content")
	ErrNoActor      = errors.New("authenticated actor required")

	// Not Found
	ErrContentNotFound = errors.New("content item not found")

	// Conflict
	ErrVersionMismatch = errors.New("content version mismatch - conflict detected")

	// Validation
	ErrInvalidStatus = errors.New("status is not a recognized workflow state")
	ErrInvalidKind   = errors.New("content kind is invalid")
)

// TransitionError is returned when the transition engine rejects a
// requested status move. It carries the attempted edge verbatim for
// diagnostics; the rejected request is never coerced to another status.
type TransitionError struct {
	Role           Role
	From           Status
	To             Status
	ContentChanged bool
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal status transition %s -> %s (role=%s, content_changed=%t)",
		e.From, e.To, e.Role, e.ContentChanged)
}

// IsTransitionError reports whether err is a transition rejection.
func IsTransitionError(err error) bool {
	var te *TransitionError
	return errors.As(err, &te)
}

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	var te *TransitionError
	if errors.As(err, &te) {
		return "ILLEGAL_TRANSITION"
	}
	switch {
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrNoActor):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrContentNotFound):
		return "CONTENT_NOT_FOUND"
	case errors.Is(err, ErrVersionMismatch):
		return "VERSION_CONFLICT"
	case errors.Is(err, ErrInvalidStatus):
		return "INVALID_STATUS"
	case errors.Is(err, ErrInvalidKind):
		return "INVALID_KIND"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	var te *TransitionError
	if errors.As(err, &te) {
		return 422
	}
	switch {
	case errors.Is(err, ErrNoActor):
		return 401
	case errors.Is(err, ErrUnauthorized):
		return 403
	case errors.Is(err, ErrContentNotFound):
		return 404
	case errors.Is(err, ErrVersionMismatch):
		return 409
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidKind):
		return 400
	default:
		return 500
	}
}
