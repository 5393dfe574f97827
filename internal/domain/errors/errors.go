// Package errors defines the error taxonomy returned by use cases and rendered
// by the HTTP layer.
package errors

import (
	"net/http"

	"mapic/internal/errors"
)

// Kind is the failure category. Each kind maps to one HTTP status.
type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindDuplicate    Kind = "DUPLICATE"
	KindRateLimited  Kind = "RATE_LIMITED"
	KindInvalidCode  Kind = "INVALID_CODE"
	KindTooFar       Kind = "TOO_FAR"
	KindValidation   Kind = "VALIDATION"
	KindInternal     Kind = "INTERNAL"

	// KindUnauthenticated is an identity failure, as opposed to a missing relationship.
	KindUnauthenticated Kind = "UNAUTHENTICATED"
)

var kindStatus = map[Kind]int{
	KindNotFound:        http.StatusNotFound,
	KindUnauthorized:    http.StatusForbidden,
	KindUnauthenticated: http.StatusUnauthorized,
	KindDuplicate:       http.StatusConflict,
	KindRateLimited:     http.StatusTooManyRequests,
	KindInvalidCode:     http.StatusBadRequest,
	KindTooFar:          http.StatusUnprocessableEntity,
	KindValidation:      http.StatusBadRequest,
	KindInternal:        http.StatusInternalServerError,
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates an error whose HTTP status follows its kind.
func NewBaseError(kind Kind, errorCode, message string) *BaseError {
	code, ok := kindStatus[kind]
	if !ok {
		code = http.StatusInternalServerError
	}

	return &BaseError{
		kind:      kind,
		httpCode:  code,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on error code so WithDetails copies still satisfy errors.Is
// against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) Kind() Kind { return e.kind }

func (e *BaseError) HTTPCode() int { return e.httpCode }

func (e *BaseError) ErrorCode() string { return e.errorCode }

func (e *BaseError) Message() string { return e.message }

func (e *BaseError) Details() string { return e.details }

// WithDetails returns a copy carrying details. Details are logged, not rendered.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// KindOf returns the kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// Predefined error types
var (
	// Not found
	ErrUserNotFound       = NewBaseError(KindNotFound, "USER_NOT_FOUND", "User not found")
	ErrPlaceNotFound      = NewBaseError(KindNotFound, "PLACE_NOT_FOUND", "Place not found")
	ErrLocationNotFound   = NewBaseError(KindNotFound, "LOCATION_NOT_FOUND", "No location reported yet")
	ErrFriendshipNotFound = NewBaseError(KindNotFound, "FRIENDSHIP_NOT_FOUND", "Friendship not found")
	ErrDeviceNotFound     = NewBaseError(KindNotFound, "DEVICE_NOT_FOUND", "Device not found")

	// Relationship / permission
	ErrNotFriends          = NewBaseError(KindUnauthorized, "NOT_FRIENDS", "You are not friends with this user")
	ErrNotRequestRecipient = NewBaseError(KindUnauthorized, "NOT_REQUEST_RECIPIENT", "Only the recipient can accept this request")
	ErrDeviceNotOwned      = NewBaseError(KindUnauthorized, "DEVICE_NOT_OWNED", "You do not own this device")
	ErrAccountNotActivated = NewBaseError(KindUnauthenticated, "ACCOUNT_NOT_ACTIVATED", "Account is not activated")
	ErrInvalidToken        = NewBaseError(KindUnauthenticated, "INVALID_TOKEN", "Token is invalid or expired")

	// Duplicates
	ErrEmailInUse           = NewBaseError(KindDuplicate, "EMAIL_IN_USE", "Email is already in use")
	ErrPhoneInUse           = NewBaseError(KindDuplicate, "PHONE_IN_USE", "Phone number is already in use")
	ErrFriendshipExists     = NewBaseError(KindDuplicate, "FRIENDSHIP_EXISTS", "A friendship or request already exists")
	ErrDuplicateCheckIn     = NewBaseError(KindDuplicate, "DUPLICATE_CHECKIN", "Already checked in here today")
	ErrAlreadyActivated     = NewBaseError(KindDuplicate, "ALREADY_ACTIVATED", "Account is already activated")
	ErrFriendRequestHandled = NewBaseError(KindDuplicate, "FRIEND_REQUEST_HANDLED", "Friend request is no longer pending")

	// OTP
	ErrOtpRateLimited = NewBaseError(KindRateLimited, "OTP_RATE_LIMITED", "Too many codes requested, try again later")
	ErrInvalidOtp     = NewBaseError(KindInvalidCode, "INVALID_OTP", "Invalid or expired code")

	// Proximity
	ErrTooFar = NewBaseError(KindTooFar, "TOO_FAR", "You are too far from this place to check in")

	// Validation
	ErrValidationFailed   = NewBaseError(KindValidation, "VALIDATION_FAILED", "Input validation failed")
	ErrInvalidCredentials = NewBaseError(KindUnauthenticated, "INVALID_CREDENTIALS", "Email or password is incorrect")
	ErrPasswordTooShort   = NewBaseError(KindValidation, "PASSWORD_TOO_SHORT", "Password is too short")
	ErrWrongPassword      = NewBaseError(KindValidation, "WRONG_PASSWORD", "Current password is incorrect")
	ErrSelfFriendship     = NewBaseError(KindValidation, "SELF_FRIENDSHIP", "You cannot add yourself")
	ErrInvalidCoordinates = NewBaseError(KindValidation, "INVALID_COORDINATES", "Latitude or longitude is out of range")

	// Internal
	ErrTransactionFailed = NewBaseError(KindInternal, "TRANSACTION_FAILED", "Database transaction failed")
	ErrInternalError     = NewBaseError(KindInternal, "INTERNAL_ERROR", "Internal server error")
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error { return e.err }

func (e *DatabaseExecuteError) Kind() Kind { return KindInternal }

func (e *DatabaseExecuteError) HTTPCode() int { return http.StatusInternalServerError }

func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }

func (e *DatabaseExecuteError) Message() string { return "Database execution failed" }

func (e *DatabaseExecuteError) Details() string { return e.details }
