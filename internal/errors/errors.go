package errors

import (
	"errors"
	"net/http"
)

// Not-found errors. By convention every failed read-path store call maps to
// the sentinel of the resource being read.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrTripNotFound is returned when a trip is not found.
	ErrTripNotFound = errors.New("trip not found")
	// ErrMemberNotFound is returned when no member matches (member_id, trip_id).
	ErrMemberNotFound = errors.New("trip member not found")
	// ErrActivityNotFound is returned when an activity is not found.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrLocationNotFound is returned when a location is not found.
	ErrLocationNotFound = errors.New("location not found")
	// ErrRequirementsNotFound is returned when a trip has no travel requirements row.
	ErrRequirementsNotFound = errors.New("travel requirements not found")
)

// Forbidden errors. The caller is authenticated but lacks the required
// ownership, membership or platform-role relationship.
var (
	// ErrTripAccessDenied is returned when the caller is neither owner nor member.
	ErrTripAccessDenied = errors.New("you do not have access to this trip")
	// ErrNotTripOwner is returned when an owner-only operation is attempted by someone else.
	ErrNotTripOwner = errors.New("only the trip owner can perform this action")
	// ErrNotLocationCreator is returned when a location is edited by a non-creator.
	ErrNotLocationCreator = errors.New("only the location creator can perform this action")
	// ErrAdminOnly is returned when an endpoint requires the admin platform role.
	ErrAdminOnly = errors.New("access restricted to admins")
)

// Conflict errors. A uniqueness invariant would be violated.
var (
	// ErrEmailTaken is returned when registering or updating to an email already in use.
	ErrEmailTaken = errors.New("email already in use")
	// ErrAlreadyMember is returned when adding a user who is already on the roster.
	ErrAlreadyMember = errors.New("user is already a member of this trip")
	// ErrRequirementsExist is returned when a trip already has a travel requirements row.
	ErrRequirementsExist = errors.New("travel requirements already exist for this trip")
)

// ErrInvalidCredentials is returned when email or password is incorrect.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrInvalidRefreshToken is returned when a refresh token is invalid or expired.
var ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrTripNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TRIP_NOT_FOUND")
	case errors.Is(err, ErrMemberNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "MEMBER_NOT_FOUND")
	case errors.Is(err, ErrActivityNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ACTIVITY_NOT_FOUND")
	case errors.Is(err, ErrLocationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "LOCATION_NOT_FOUND")
	case errors.Is(err, ErrRequirementsNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "REQUIREMENTS_NOT_FOUND")
	case errors.Is(err, ErrTripAccessDenied):
		return NewHTTPError(http.StatusForbidden, err.Error(), "TRIP_ACCESS_DENIED")
	case errors.Is(err, ErrNotTripOwner):
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_TRIP_OWNER")
	case errors.Is(err, ErrNotLocationCreator):
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_LOCATION_CREATOR")
	case errors.Is(err, ErrAdminOnly):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ADMIN_ONLY")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrAlreadyMember):
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_MEMBER")
	case errors.Is(err, ErrRequirementsExist):
		return NewHTTPError(http.StatusConflict, err.Error(), "REQUIREMENTS_EXIST")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidRefreshToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_REFRESH_TOKEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
