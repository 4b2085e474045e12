// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/campuserp/recruitreq/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateDepartment creates a test department with the given short code.
func (f *Fixtures) CreateDepartment(ctx context.Context, shortCode, name string) models.Department {
	f.t.Helper()

	dept := models.Department{
		ID:        primitive.NewObjectID(),
		ShortCode: shortCode,
		Name:      name,
	}
	if _, err := f.db.Collection("departments").InsertOne(ctx, dept); err != nil {
		f.t.Fatalf("failed to create test department: %v", err)
	}
	return dept
}

// CreateSession creates a recruitment session with the given status
// and end date.
func (f *Fixtures) CreateSession(ctx context.Context, name, status string, endDate time.Time) models.RecruitmentSession {
	f.t.Helper()

	now := time.Now().UTC()
	session := models.RecruitmentSession{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Status:      status,
		Description: "test recruitment session",
		EndDate:     endDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := f.db.Collection("recruitment_sessions").InsertOne(ctx, session); err != nil {
		f.t.Fatalf("failed to create test session: %v", err)
	}
	return session
}

// CreateFaculty creates a FACULTY user belonging to the given
// departments.
func (f *Fixtures) CreateFaculty(ctx context.Context, fullName, email string, deptCodes ...string) models.User {
	f.t.Helper()
	return f.createUser(ctx, fullName, email, models.UserTypeFaculty, deptCodes)
}

// CreateStaff creates a STAFF user belonging to the given departments.
func (f *Fixtures) CreateStaff(ctx context.Context, fullName, email string, deptCodes ...string) models.User {
	f.t.Helper()
	return f.createUser(ctx, fullName, email, models.UserTypeStaff, deptCodes)
}

func (f *Fixtures) createUser(ctx context.Context, fullName, email, userType string, deptCodes []string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:             primitive.NewObjectID(),
		FullName:       fullName,
		Email:          email,
		UserType:       userType,
		DeptShortCodes: deptCodes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateRequirement inserts a requirement version directly, bypassing
// the engine. Useful for seeding lineage state.
func (f *Fixtures) CreateRequirement(ctx context.Context, r models.Requirement) models.Requirement {
	f.t.Helper()

	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	if r.Version == 0 {
		r.Version = 1
	}
	if r.VacancyStatus == "" {
		r.VacancyStatus = models.StatusSaved
	}
	if r.RequirementStatus == "" {
		r.RequirementStatus = models.StatusSaved
	}
	now := time.Now().UTC()
	if r.SubmittedOn.IsZero() {
		r.SubmittedOn = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}
	if _, err := f.db.Collection("research_requirements").InsertOne(ctx, r); err != nil {
		f.t.Fatalf("failed to create test requirement: %v", err)
	}
	return r
}
