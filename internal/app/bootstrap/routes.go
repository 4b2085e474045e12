// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	facultyfeature "github.com/campuserp/recruitreq/internal/app/features/faculty"
	healthfeature "github.com/campuserp/recruitreq/internal/app/features/health"
	requirementsfeature "github.com/campuserp/recruitreq/internal/app/features/requirements"
	"github.com/campuserp/recruitreq/internal/app/lifecycle"
	auditstore "github.com/campuserp/recruitreq/internal/app/store/audit"
	departmentstore "github.com/campuserp/recruitreq/internal/app/store/departments"
	facultystore "github.com/campuserp/recruitreq/internal/app/store/faculty"
	requirementstore "github.com/campuserp/recruitreq/internal/app/store/requirements"
	sessionstore "github.com/campuserp/recruitreq/internal/app/store/sessions"
	"github.com/campuserp/recruitreq/internal/app/system/auditlog"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, and schema
// setup have completed. The lifecycle engine is assembled here with
// its four directory/store collaborators and mounted behind the thin
// JSON API.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MongoDatabase

	auditLog := auditlog.New(
		auditstore.New(db),
		logger,
		auditlog.Config{Lifecycle: appCfg.AuditLogLifecycle},
	)

	engine := lifecycle.New(
		sessionstore.New(db),
		departmentstore.New(db),
		facultystore.New(db),
		requirementstore.New(db, logger),
		auditLog,
		logger,
	)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Requirement lifecycle API
	reqHandler := requirementsfeature.NewHandler(engine, logger)
	r.Mount("/api/research", requirementsfeature.Routes(reqHandler))

	// Faculty listing for guide selection
	facultyHandler := facultyfeature.NewHandler(db, logger)
	r.Mount("/api/research/faculty", facultyfeature.Routes(facultyHandler))

	return r, nil
}
