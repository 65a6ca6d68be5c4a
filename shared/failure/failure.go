package failure

import (
	"errors"
	"net/http"
)

// Kind classifies a failure independently of its transport code.
type Kind string

const (
	KindInvalidInput       Kind = "InvalidInput"
	KindDuplicateEntry     Kind = "DuplicateEntry"
	KindInvalidCredentials Kind = "InvalidCredentials"
	KindAccountDeactivated Kind = "AccountDeactivated"
	KindInvalidDateRange   Kind = "InvalidDateRange"
	KindRoomUnavailable    Kind = "RoomUnavailable"
	KindInvalidState       Kind = "InvalidState"
	KindNotFound           Kind = "NotFound"
	KindUnauthorized       Kind = "Unauthorized"
	KindStorageError       Kind = "StorageError"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind,omitempty"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Kind: KindInvalidInput, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Kind: KindInvalidInput, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindInvalidInput,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidInput,
		Message: msg,
	}
}

// InvalidInput reports a missing or malformed required field.
func InvalidInput(msg string) error {
	return BadRequestFromString(msg)
}

// DuplicateEntry reports a unique key collision detected before insert.
func DuplicateEntry(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindDuplicateEntry,
		Message: msg,
	}
}

// InvalidCredentials is returned for any email/password or security answer mismatch.
func InvalidCredentials(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Kind:    KindInvalidCredentials,
		Message: msg,
	}
}

// AccountDeactivated is returned when the credentials match an inactive account.
func AccountDeactivated(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Kind:    KindAccountDeactivated,
		Message: msg,
	}
}

// InvalidDateRange is returned when check-out is not after check-in.
func InvalidDateRange(msg string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Kind:    KindInvalidDateRange,
		Message: msg,
	}
}

// RoomUnavailable is returned when a room is already held by an active booking.
func RoomUnavailable(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindRoomUnavailable,
		Message: msg,
	}
}

// InvalidState is returned for a transition the booking state machine does not allow.
func InvalidState(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindInvalidState,
		Message: msg,
	}
}

// StorageError wraps a driver or connection failure.
func StorageError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindStorageError,
			Message: err.Error(),
		}
	}

	return nil
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Kind:    KindUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the kind of an error interface, StorageError for anything that is not a Failure.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindStorageError
}

// IsKind reports whether err is a Failure of the given kind.
func IsKind(err error, kind Kind) bool {
	if err == nil {
		return false
	}

	return GetKind(err) == kind
}
