package requirements_test

import (
	"testing"
	"time"

	requirementstore "github.com/campuserp/recruitreq/internal/app/store/requirements"
	"github.com/campuserp/recruitreq/internal/app/system/indexes"
	"github.com/campuserp/recruitreq/internal/domain/models"
	"github.com/campuserp/recruitreq/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func seedRequirement(sessionID primitive.ObjectID, dept string, version int, archived bool) models.Requirement {
	return models.Requirement{
		ID:            primitive.NewObjectID(),
		SessionID:     sessionID,
		DeptShortCode: dept,
		RequestedVacancy: []models.SubArea{
			{Name: "Systems", Fields: []models.ResearchField{{Name: "Networks", Vacancy: 2}}},
		},
		ApprovedVacancy:   []models.SeatMatrix{},
		VacancyStatus:     models.StatusSaved,
		RequirementStatus: models.StatusSaved,
		Version:           version,
		IsArchived:        archived,
		SubmittedOn:       time.Now().UTC(),
		UpdatedAt:         time.Now().UTC(),
	}
}

func TestStore_ByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := requirementstore.New(db, zap.NewNop())
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	want := fx.CreateRequirement(ctx, seedRequirement(primitive.NewObjectID(), "CSE", 1, false))

	got, err := store.ByID(ctx, want.ID)
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	if got.DeptShortCode != "CSE" || got.Version != 1 {
		t.Errorf("ByID returned the wrong document: %+v", got)
	}

	_, err = store.ByID(ctx, primitive.NewObjectID())
	if err != mongo.ErrNoDocuments {
		t.Errorf("unknown id: expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestStore_ActiveFor(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := requirementstore.New(db, zap.NewNop())
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sessionID := primitive.NewObjectID()
	fx.CreateRequirement(ctx, seedRequirement(sessionID, "CSE", 1, true))
	active := fx.CreateRequirement(ctx, seedRequirement(sessionID, "CSE", 2, false))
	fx.CreateRequirement(ctx, seedRequirement(sessionID, "EE", 1, false))
	fx.CreateRequirement(ctx, seedRequirement(primitive.NewObjectID(), "CSE", 1, false))

	got, err := store.ActiveFor(ctx, sessionID, "CSE")
	if err != nil {
		t.Fatalf("ActiveFor failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ActiveFor: got %d documents, want 1", len(got))
	}
	if got[0].ID != active.ID {
		t.Errorf("ActiveFor returned version %d, want the non-archived version 2", got[0].Version)
	}
}

func TestStore_ForSessions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := requirementstore.New(db, zap.NewNop())
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s1 := primitive.NewObjectID()
	s2 := primitive.NewObjectID()
	other := primitive.NewObjectID()

	fx.CreateRequirement(ctx, seedRequirement(s1, "CSE", 1, true))
	fx.CreateRequirement(ctx, seedRequirement(s1, "CSE", 2, false))
	fx.CreateRequirement(ctx, seedRequirement(s2, "CSE", 1, false))
	fx.CreateRequirement(ctx, seedRequirement(other, "CSE", 1, false))
	fx.CreateRequirement(ctx, seedRequirement(s1, "EE", 1, false))

	got, err := store.ForSessions(ctx, "CSE", []primitive.ObjectID{s1, s2})
	if err != nil {
		t.Fatalf("ForSessions failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("ForSessions: got %d documents, want 3 (archived versions included)", len(got))
	}
}

func TestStore_ForSessions_NoSessionIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := requirementstore.New(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := store.ForSessions(ctx, "CSE", nil)
	if err != nil {
		t.Fatalf("ForSessions failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ForSessions with no ids: got %d documents", len(got))
	}
}

func TestStore_Replace(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := requirementstore.New(db, zap.NewNop())
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sessionID := primitive.NewObjectID()
	v1 := fx.CreateRequirement(ctx, seedRequirement(sessionID, "CSE", 1, false))

	next := seedRequirement(sessionID, "CSE", 2, false)
	saved, err := store.Replace(ctx, []models.Requirement{v1}, next)
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if saved.ID.IsZero() {
		t.Error("Replace did not assign an id")
	}

	// the superseded version is archived, nothing else changes
	old, err := store.ByID(ctx, v1.ID)
	if err != nil {
		t.Fatalf("ByID(v1) failed: %v", err)
	}
	if !old.IsArchived {
		t.Error("superseded version not archived")
	}
	if old.Version != 1 {
		t.Errorf("archived version mutated: Version %d", old.Version)
	}

	active, err := store.ActiveFor(ctx, sessionID, "CSE")
	if err != nil {
		t.Fatalf("ActiveFor failed: %v", err)
	}
	if len(active) != 1 || active[0].ID != saved.ID {
		t.Errorf("active set after Replace: %+v", active)
	}
}

func TestStore_Replace_AssignsIDAndTimestamp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := requirementstore.New(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	next := seedRequirement(primitive.NewObjectID(), "CSE", 1, false)
	next.ID = primitive.ObjectID{}
	next.UpdatedAt = time.Time{}

	saved, err := store.Replace(ctx, nil, next)
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if saved.ID.IsZero() {
		t.Error("id not assigned")
	}
	if saved.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not stamped")
	}
}

func TestStore_Replace_SecondActiveVersionRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := requirementstore.New(db, zap.NewNop())
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	sessionID := primitive.NewObjectID()
	fx.CreateRequirement(ctx, seedRequirement(sessionID, "CSE", 1, false))

	// inserting without archiving the active version hits the partial
	// unique index, as a lost-update race would
	_, err := store.Replace(ctx, nil, seedRequirement(sessionID, "CSE", 2, false))
	if err != requirementstore.ErrActiveVersionExists {
		t.Errorf("expected ErrActiveVersionExists, got %v", err)
	}

	// the index keys on the (session, department) pair
	_, err = store.Replace(ctx, nil, seedRequirement(sessionID, "EE", 1, false))
	if err != nil {
		t.Errorf("different department rejected: %v", err)
	}
}
