package middleware

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"fieldtrack/pkg/errors"
	"fieldtrack/pkg/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestIDMiddleware assigns a request ID, honoring one sent by the client
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), requestID)))
	})
}

// TimeoutMiddleware adds request timeout
func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggingMiddleware logs HTTP requests with request ID
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		logger.Debugf(r.Context(), "Started %s %s from %s", r.Method, r.URL.Path, getClientIP(r))

		next.ServeHTTP(ww, r)

		logger.Infof(r.Context(), "Completed %s %s %d in %v", r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}

// HandleError writes an error response using the ApiResponse format
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if stderrors.Is(err, context.DeadlineExceeded) {
		err = errors.NewRequestTimeoutError("Request timeout")
	}
	if appErr, ok := errors.As(err); ok {
		logger.Warnf(r.Context(), "Error %d: %s (Code: %s) for %s %s",
			appErr.Status, appErr.Message, appErr.Code, r.Method, r.URL.Path)

		sendApiErrorResponse(w, GetRequestID(r.Context()), appErr.Status, appErr.Code, appErr.Message, appErr.Details)
		return
	}

	logger.Errorf(r.Context(), "Unexpected error 500: %s for %s %s", err.Error(), r.Method, r.URL.Path)
	sendApiErrorResponse(w, GetRequestID(r.Context()), http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}

// sendApiErrorResponse sends a standardized API error response
func sendApiErrorResponse(w http.ResponseWriter, requestID string, statusCode int, code, message string, details interface{}) {
	apiErr := map[string]interface{}{
		"code":    code,
		"message": message,
	}
	if details != nil {
		apiErr["details"] = details
	}

	response := map[string]interface{}{
		"success":    false,
		"error":      apiErr,
		"request_id": requestID,
		"timestamp":  time.Now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

// GetRequestID extracts request ID from context
func GetRequestID(ctx context.Context) string {
	return logger.RequestID(ctx)
}

// getClientIP extracts the client IP address from the request
func getClientIP(r *http.Request) string {
	if xForwardedFor := r.Header.Get("X-Forwarded-For"); xForwardedFor != "" {
		parts := strings.Split(xForwardedFor, ",")
		return strings.TrimSpace(parts[0])
	}

	if xRealIP := r.Header.Get("X-Real-IP"); xRealIP != "" {
		return xRealIP
	}

	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		return ip[:idx]
	}
	return ip
}

// RecoveryMiddleware provides panic recovery with a stack trace
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.Errorf(r.Context(), "PANIC: %v\nStack Trace:\n%s", err, debug.Stack())

				// Check if response has already been written
				if w.Header().Get("Content-Type") == "" {
					HandleError(w, r, errors.NewInternalError("Internal server error"))
				}
			}
		}()
		next.ServeHTTP(w, r)
	})
}
