package domain

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// AppError represents an application error
type AppError struct {
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	HTTPStatus int       `json:"-"`
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"request_id,omitempty"`
	PlayerID   string    `json:"player_id,omitempty"`
	Path       string    `json:"path,omitempty"`
	Method     string    `json:"method,omitempty"`
	Err        error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error
func NewAppError(code, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Timestamp:  time.Now(),
		Err:        err,
	}
}

// NewInvalidInputError creates a rejected-input error
func NewInvalidInputError(field, message string) *AppError {
	return NewAppError(
		ErrCodeInvalidInput,
		fmt.Sprintf("Invalid value for '%s': %s", field, message),
		http.StatusBadRequest,
		nil,
	)
}

// NewInsufficientFundsError creates the balance-check rejection. Balance and
// required amount ride along so the caller can render them.
func NewInsufficientFundsError(balance, required float64) *AppError {
	err := NewAppError(
		ErrCodeInsufficientFunds,
		"Insufficient funds for wager",
		http.StatusPaymentRequired,
		nil,
	)
	err.Details = fmt.Sprintf("balance=%.2f required=%.2f", balance, required)
	return err
}

// NewPolicyForbiddenError creates the feature-flag rejection
func NewPolicyForbiddenError(betType string) *AppError {
	return NewAppError(
		ErrCodePolicyForbidden,
		fmt.Sprintf("Bet type '%s' is disabled by policy", betType),
		http.StatusForbidden,
		nil,
	)
}

// NewEngineUnavailableError wraps a transport failure to a game engine
func NewEngineUnavailableError(game string, err error) *AppError {
	return NewAppError(
		ErrCodeEngineUnavailable,
		fmt.Sprintf("Game engine '%s' is unreachable", game),
		http.StatusBadGateway,
		err,
	)
}

// NewEngineTimeoutError wraps an exceeded engine deadline
func NewEngineTimeoutError(game string, err error) *AppError {
	return NewAppError(
		ErrCodeEngineTimeout,
		fmt.Sprintf("Game engine '%s' did not answer in time", game),
		http.StatusGatewayTimeout,
		err,
	)
}

// NewInvalidStateError creates the blackjack transition rejection
func NewInvalidStateError(action, state string) *AppError {
	return NewAppError(
		ErrCodeInvalidState,
		fmt.Sprintf("Action '%s' is not allowed in state '%s'", action, state),
		http.StatusConflict,
		nil,
	)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return NewAppError(
		ErrCodeNotFound,
		fmt.Sprintf("%s not found", resource),
		http.StatusNotFound,
		nil,
	)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = "Unauthorized access"
	}
	return NewAppError(
		ErrCodeUnauthorized,
		message,
		http.StatusUnauthorized,
		nil,
	)
}

// NewInternalError creates an internal server error
func NewInternalError(message string, err error) *AppError {
	if message == "" {
		message = "Internal server error"
	}
	return NewAppError(
		ErrCodeInternal,
		message,
		http.StatusInternalServerError,
		err,
	)
}

// NewDatabaseError creates a database error
func NewDatabaseError(operation string, err error) *AppError {
	return NewAppError(
		ErrCodeDatabaseQuery,
		fmt.Sprintf("Database operation failed: %s", operation),
		http.StatusInternalServerError,
		err,
	)
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Error   *AppError `json:"error"`
	Success bool      `json:"success"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(err *AppError) ErrorResponse {
	return ErrorResponse{
		Error:   err,
		Success: false,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Settlement rejection codes. No balance mutation has happened when one of
// these is returned to the caller.
const (
	ErrCodeInvalidInput      = "INVALID_INPUT"
	ErrCodeInsufficientFunds = "INSUFFICIENT_FUNDS"
	ErrCodePolicyForbidden   = "POLICY_FORBIDDEN"
	ErrCodeEngineUnavailable = "ENGINE_UNAVAILABLE"
	ErrCodeEngineTimeout     = "ENGINE_TIMEOUT"
	ErrCodeInvalidState      = "INVALID_STATE"
)

// Degraded-path codes. Logged, never returned to a player: LEDGER_DEGRADED
// means balance operations fell back to the in-process provider,
// RECORDING_FAILED means a game result never reached the scoring store.
const (
	ErrCodeLedgerDegraded  = "LEDGER_DEGRADED"
	ErrCodeRecordingFailed = "RECORDING_FAILED"
)

const (
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeTokenMissing = "TOKEN_MISSING"
	ErrCodeTokenInvalid = "TOKEN_INVALID"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeInternal     = "INTERNAL_ERROR"

	ErrCodeDatabaseConnection = "DATABASE_CONNECTION_ERROR"
	ErrCodeDatabaseQuery      = "DATABASE_QUERY_ERROR"
	ErrCodeScoringService     = "SCORING_SERVICE_ERROR"
)
