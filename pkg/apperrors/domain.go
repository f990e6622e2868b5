package apperrors

import "net/http"

// Domain error factories shared by services and handlers.

// --- auth ---

var (
	ErrEmailAlreadyExists = New(CodeAlreadyExists, "auth", "Email is already registered", http.StatusConflict)
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
	ErrWeakPassword       = New(CodeValidationFailed, "auth", "Password must be at least 8 characters", http.StatusBadRequest)
	ErrInvalidUserRole    = New(CodeValidationFailed, "auth", "Invalid user role", http.StatusBadRequest)
	ErrTokenExpired       = New(CodeTokenExpired, "auth", "Token has expired", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "auth", "Invalid token", http.StatusUnauthorized)
)

// --- orders ---

func OrderNotFound(orderNumber string) *AppError {
	return New(CodeNotFound, "order", "Order not found: "+orderNumber, http.StatusNotFound)
}

func OrderInvalidTransition(message string) *AppError {
	return New(CodeInvalidStatus, "order", message, http.StatusConflict)
}

func OrderNotApprovable(message string) *AppError {
	return New(CodeInvalidOperation, "order", message, http.StatusConflict)
}

// --- tips ---

func TipNotAllowed(message string) *AppError {
	return New(CodeInvalidOperation, "tip", message, http.StatusConflict)
}

// --- celebrities ---

func CelebrityNotFound(ref string) *AppError {
	return New(CodeNotFound, "celebrity", "Celebrity not found: "+ref, http.StatusNotFound)
}

// --- applications ---

func ApplicationNotFound(id string) *AppError {
	return New(CodeNotFound, "application", "Application not found: "+id, http.StatusNotFound)
}

func ApplicationAlreadyReviewed(id string) *AppError {
	return New(CodeInvalidStatus, "application", "Application already reviewed: "+id, http.StatusConflict)
}
