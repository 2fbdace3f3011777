package response

import (
	"encoding/json"
	"net/http"
	"time"

	"fieldtrack/pkg/middleware"
)

// ApiResponse represents a standardized API response structure
type ApiResponse struct {
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Error     *ApiError   `json:"error,omitempty"`
	Meta      *Meta       `json:"meta,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// ApiError represents error details in the API response
type ApiError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Meta contains metadata about list responses
type Meta struct {
	Limit int `json:"limit,omitempty"`
	Total int `json:"total"`
}

// SendSuccess sends a successful API response
func SendSuccess(w http.ResponseWriter, r *http.Request, data interface{}) {
	SendSuccessWithStatus(w, r, http.StatusOK, data)
}

// SendSuccessWithStatus sends a successful API response with custom status code
func SendSuccessWithStatus(w http.ResponseWriter, r *http.Request, statusCode int, data interface{}) {
	write(w, statusCode, ApiResponse{
		RequestID: middleware.GetRequestID(r.Context()),
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

// SendList sends a list with its size in the meta block
func SendList(w http.ResponseWriter, r *http.Request, data interface{}, total, limit int) {
	write(w, http.StatusOK, ApiResponse{
		RequestID: middleware.GetRequestID(r.Context()),
		Success:   true,
		Meta:      &Meta{Limit: limit, Total: total},
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

// SendCreated sends a 201 Created response
func SendCreated(w http.ResponseWriter, r *http.Request, data interface{}) {
	SendSuccessWithStatus(w, r, http.StatusCreated, data)
}

// SendNoContent sends a 204 No Content response
func SendNoContent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Request-ID", middleware.GetRequestID(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}

// SendError sends an error API response
func SendError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	write(w, statusCode, ApiResponse{
		RequestID: middleware.GetRequestID(r.Context()),
		Success:   false,
		Error: &ApiError{
			Code:    code,
			Message: message,
		},
		Timestamp: time.Now().UTC(),
	})
}

// SendBadRequest sends a 400 Bad Request response
func SendBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	SendError(w, r, http.StatusBadRequest, "BAD_REQUEST", message)
}

// SendUnauthorized sends a 401 Unauthorized response
func SendUnauthorized(w http.ResponseWriter, r *http.Request, message string) {
	SendError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func write(w http.ResponseWriter, statusCode int, body ApiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}
