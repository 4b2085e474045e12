// internal/app/features/requirements/handler.go
package requirements

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/campuserp/recruitreq/internal/app/lifecycle"
	"github.com/campuserp/recruitreq/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the requirements
// feature. The engine owns all decision logic; handlers only decode
// payloads, enforce the server-side remark date stamping (by never
// reading client dates), and render envelopes.
type Handler struct {
	Engine *lifecycle.Engine
	Log    *zap.Logger
}

// NewHandler constructs a requirements Handler. Typically called from
// bootstrap.BuildHandler with the engine already wired.
func NewHandler(engine *lifecycle.Engine, logger *zap.Logger) *Handler {
	return &Handler{Engine: engine, Log: logger}
}

// deptRequest is the body of the read endpoints.
type deptRequest struct {
	DeptShortCode string `json:"dept_short_code"`
}

// HandleCurrent serves POST /requirements/current.
func (h *Handler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	var req deptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Malformed request body.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	current, err := h.Engine.FetchCurrent(ctx, strings.TrimSpace(req.DeptShortCode))
	if err != nil {
		h.writeEngineError(w, "fetch current requirement", err)
		return
	}
	WriteData(w, "Research requirements fetched successfully.", current)
}

// HandleHistory serves POST /requirements/history.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	var req deptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Malformed request body.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	history, err := h.Engine.FetchHistory(ctx, strings.TrimSpace(req.DeptShortCode))
	if err != nil {
		h.writeEngineError(w, "fetch requirement history", err)
		return
	}
	WriteData(w, "Historical research requirements fetched successfully.", history)
}

// HandleSave serves POST /requirement/save.
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	saved, err := h.Engine.Save(ctx, payload)
	if err != nil {
		h.writeEngineError(w, "save requirement", err)
		return
	}
	WriteData(w, "Research vacancies saved successfully.", saved)
}

// HandleSubmit serves POST /requirement/submit.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	submitted, err := h.Engine.Submit(ctx, payload)
	if err != nil {
		h.writeEngineError(w, "submit requirement", err)
		return
	}
	WriteData(w, "Research vacancies submitted successfully.", submitted)
}

func (h *Handler) decodePayload(w http.ResponseWriter, r *http.Request) (lifecycle.Payload, bool) {
	var payload lifecycle.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteBadRequest(w, "Malformed request body.")
		return lifecycle.Payload{}, false
	}
	payload.DeptShortCode = strings.TrimSpace(payload.DeptShortCode)
	return payload, true
}

func (h *Handler) writeEngineError(w http.ResponseWriter, op string, err error) {
	if f := lifecycle.AsFailure(err); f != nil {
		WriteFailure(w, f)
		return
	}
	h.Log.Error(op+" failed", zap.Error(err))
	WriteServerError(w)
}
