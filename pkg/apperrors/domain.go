package apperrors

import (
	"net/http"
)

// Factories and predefined errors for the placement domain.
// The four business error kinds the services surface are:
// not-found (404), forbidden (403), conflict (409) and invalid-status (400).

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound etc.)
// into a 404.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409.
func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

// ErrConflict reports an already-resolved-state violation (409).
func ErrConflict(domain, message string) *AppError {
	return New(CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidStatus reports an operation that is not valid for the
// entity's current state (400).
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrUnavailable reports a failed collaborator (notifier, document store).
func ErrUnavailable(err error, domain, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, message, http.StatusServiceUnavailable)
}

// Static errors shared across services.

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Operation is not available for this user role",
	http.StatusForbidden,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"An account with this email already exists",
	http.StatusConflict,
)

var ErrEmailNotVerified = New(
	CodeForbidden,
	"auth",
	"Email address is not verified",
	http.StatusForbidden,
)

var ErrVerificationExpired = New(
	CodeTokenExpired,
	"auth",
	"Verification code has expired",
	http.StatusBadRequest,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password must be at least 8 characters long",
	http.StatusBadRequest,
)

var ErrCompanyNotApproved = New(
	CodeForbidden,
	"company",
	"Company profile is not approved for posting jobs",
	http.StatusForbidden,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions for this operation",
	http.StatusForbidden,
)
