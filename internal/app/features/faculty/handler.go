// internal/app/features/faculty/handler.go
package faculty

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	reqfeature "github.com/campuserp/recruitreq/internal/app/features/requirements"
	"github.com/campuserp/recruitreq/internal/app/lifecycle"
	departmentstore "github.com/campuserp/recruitreq/internal/app/store/departments"
	facultystore "github.com/campuserp/recruitreq/internal/app/store/faculty"
	"github.com/campuserp/recruitreq/internal/app/system/timeouts"
	"github.com/campuserp/recruitreq/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the faculty listing used when departments pick
// candidate guides for research fields.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler constructs a faculty Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

type facultyRequest struct {
	DeptShortCode string `json:"dept_short_code"`
}

// HandleList serves POST /faculty. The wildcard code "*" lists faculty
// of every department; any other code must name a real department.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	var req facultyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		reqfeature.WriteBadRequest(w, "Malformed request body.")
		return
	}
	code := strings.TrimSpace(req.DeptShortCode)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if code != facultystore.Wildcard {
		if _, err := departmentstore.New(h.DB).ByShortCode(ctx, code); err != nil {
			if err == mongo.ErrNoDocuments {
				reqfeature.WriteFailure(w, &lifecycle.Failure{
					Code:    lifecycle.CodeInvalidDepartment,
					Message: "Invalid department short code: " + code,
				})
				return
			}
			h.Log.Error("department lookup failed", zap.Error(err))
			reqfeature.WriteServerError(w)
			return
		}
	}

	users, err := facultystore.New(h.DB).FacultyInDepartment(ctx, code)
	if err != nil {
		h.Log.Error("faculty lookup failed", zap.Error(err))
		reqfeature.WriteServerError(w)
		return
	}

	views := make([]models.FacultyView, 0, len(users))
	for _, u := range users {
		views = append(views, u.ToFacultyView())
	}
	reqfeature.WriteData(w, "Faculty fetched successfully.", views)
}
