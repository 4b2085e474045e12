// internal/app/lifecycle/ports.go
package lifecycle

import (
	"context"

	"github.com/campuserp/recruitreq/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collaborator contracts the engine reads and writes through. The
// Mongo stores under internal/app/store implement them; tests supply
// in-memory fakes. Lookup methods report a missing document with
// mongo.ErrNoDocuments, matching the driver's FindOne behavior, so
// implementations need no translation layer.

// SessionDirectory reads recruitment sessions. Sessions are
// administered externally; the engine never writes them.
type SessionDirectory interface {
	// LatestOpen returns the OPEN session with the latest end date.
	LatestOpen(ctx context.Context) (models.RecruitmentSession, error)
	AllClosed(ctx context.Context) ([]models.RecruitmentSession, error)
}

// DepartmentDirectory validates department short codes.
type DepartmentDirectory interface {
	ByShortCode(ctx context.Context, code string) (models.Department, error)
}

// IdentityDirectory reads the ERP user view. The wildcard code "*"
// returns all faculty regardless of department.
type IdentityDirectory interface {
	FacultyInDepartment(ctx context.Context, code string) ([]models.User, error)
}

// RequirementStore persists requirement versions.
type RequirementStore interface {
	ByID(ctx context.Context, id primitive.ObjectID) (models.Requirement, error)
	// ActiveFor returns the non-archived versions for one
	// (session, department) pair. The active-lineage invariant makes
	// this at most one document, but the contract returns a slice so
	// the engine can archive strays left by historical races.
	ActiveFor(ctx context.Context, sessionID primitive.ObjectID, dept string) ([]models.Requirement, error)
	// ForSessions returns every version (archived or not) for the
	// department whose session is in sessionIDs.
	ForSessions(ctx context.Context, dept string, sessionIDs []primitive.ObjectID) ([]models.Requirement, error)
	// Replace archives the superseded versions and inserts next as one
	// atomic step.
	Replace(ctx context.Context, archive []models.Requirement, next models.Requirement) (models.Requirement, error)
}
