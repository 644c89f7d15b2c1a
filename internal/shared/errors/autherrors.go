package errors

import (
	stderrors "errors"
	"net/http"
)

// Authentication-specific error types
const (
	ErrorTypeInvalidCredentials   ErrorType = "invalid_credentials"
	ErrorTypeTokenExpired         ErrorType = "token_expired"
	ErrorTypeInvalidSignature     ErrorType = "invalid_signature"
	ErrorTypeEmailConflict        ErrorType = "email_conflict"
	ErrorTypeLinkageConflict      ErrorType = "linkage_conflict"
	ErrorTypeConfigurationMissing ErrorType = "configuration_missing"
	ErrorTypeOAuthError           ErrorType = "oauth_error"
)

// Sentinel errors for token verification and identity resolution. Callers
// branch on these with errors.Is; the HTTP layer maps them through AuthError.
var (
	ErrInvalidCredentials = stderrors.New("invalid email or password")
	ErrTokenExpired       = stderrors.New("token expired")
	ErrInvalidSignature   = stderrors.New("token signature invalid")
	ErrEmailConflict      = stderrors.New("email already registered")
	ErrLinkageConflict    = stderrors.New("provider identity already linked")
)

// AuthError represents authentication-specific errors with security context.
type AuthError struct {
	*AppError
	// ShouldLog is false for expected failures (bad password, expired token)
	// so they do not clutter error-level logs.
	ShouldLog bool
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to work correctly
func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError creates an error for failed password logins.
// The message never reveals whether the email exists or the password was wrong.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidCredentials,
			Message: "Invalid email or password",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog: false,
	}
}

// NewTokenExpiredError creates an error for lapsed bearer tokens.
func NewTokenExpiredError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenExpired,
			Message: "Token has expired",
			Code:    http.StatusUnauthorized,
			Details: "Please login again",
		},
		ShouldLog: false,
	}
}

// NewInvalidSignatureError creates an error for tampered or garbage tokens.
func NewInvalidSignatureError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidSignature,
			Message: "Invalid token",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog: true,
	}
}

// NewEmailConflictError creates an error for a uniqueness race on email.
func NewEmailConflictError(email string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeEmailConflict,
			Message: "An account with this email already exists",
			Code:    http.StatusConflict,
			Details: email,
		},
		ShouldLog: false,
	}
}

// NewConfigurationMissingError creates a fatal startup error for a missing
// required configuration key.
func NewConfigurationMissingError(key string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeConfigurationMissing,
			Message: "Required configuration is missing",
			Code:    http.StatusInternalServerError,
			Details: key,
		},
		ShouldLog: true,
	}
}

// NewOAuthError creates an error for OAuth provider failures.
func NewOAuthError(provider string, details ...string) *AuthError {
	detail := "OAuth authentication failed"
	if len(details) > 0 {
		detail = details[0]
	}
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeOAuthError,
			Message: "OAuth authentication failed with " + provider,
			Code:    http.StatusBadGateway,
			Details: detail,
		},
		ShouldLog: true,
	}
}

// GetAuthError extracts AuthError from the error chain, or nil.
func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// ShouldLogAuthError reports whether an authentication failure is worth
// logging at error level.
func ShouldLogAuthError(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.ShouldLog
	}
	return true
}
