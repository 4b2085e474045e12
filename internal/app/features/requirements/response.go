// internal/app/features/requirements/response.go
package requirements

import (
	"encoding/json"
	"net/http"

	"github.com/campuserp/recruitreq/internal/app/lifecycle"
)

// envelope is the JSON success/error wrapper every endpoint returns.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// WriteData writes a 200 success envelope.
func WriteData(w http.ResponseWriter, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Message: message, Data: data})
}

// WriteFailure writes a rejection envelope with an HTTP status derived
// from the failure code: missing things are 404, a closed recruitment
// window is 403, everything else is a 400 the caller must correct.
func WriteFailure(w http.ResponseWriter, f *lifecycle.Failure) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(failureStatus(f.Code))
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Message: f.Message, Code: string(f.Code)})
}

// WriteServerError writes a 500 envelope without leaking internals.
func WriteServerError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Message: "A database error occurred."})
}

// WriteBadRequest writes a 400 envelope for malformed request bodies.
func WriteBadRequest(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Message: message})
}

func failureStatus(code lifecycle.Code) int {
	switch code {
	case lifecycle.CodeNoActiveSession:
		return http.StatusForbidden
	case lifecycle.CodeNoRequirementFound,
		lifecycle.CodeNoHistoricalRequirements,
		lifecycle.CodeNoClosedSessions:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
