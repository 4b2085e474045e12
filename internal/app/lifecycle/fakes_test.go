package lifecycle

import (
	"context"

	"github.com/campuserp/recruitreq/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory fakes of the engine's collaborator ports. They mimic the
// Mongo stores' contracts, including mongo.ErrNoDocuments for misses.

type fakeSessions struct {
	sessions []models.RecruitmentSession
}

func (f *fakeSessions) LatestOpen(ctx context.Context) (models.RecruitmentSession, error) {
	var best models.RecruitmentSession
	found := false
	for _, s := range f.sessions {
		if s.Status != models.SessionOpen {
			continue
		}
		if !found || s.EndDate.After(best.EndDate) {
			best = s
			found = true
		}
	}
	if !found {
		return models.RecruitmentSession{}, mongo.ErrNoDocuments
	}
	return best, nil
}

func (f *fakeSessions) AllClosed(ctx context.Context) ([]models.RecruitmentSession, error) {
	var closed []models.RecruitmentSession
	for _, s := range f.sessions {
		if s.Status == models.SessionClosed {
			closed = append(closed, s)
		}
	}
	return closed, nil
}

type fakeDepartments struct {
	depts map[string]models.Department
}

func (f *fakeDepartments) ByShortCode(ctx context.Context, code string) (models.Department, error) {
	d, ok := f.depts[code]
	if !ok {
		return models.Department{}, mongo.ErrNoDocuments
	}
	return d, nil
}

type fakeIdentity struct {
	users []models.User
}

func (f *fakeIdentity) FacultyInDepartment(ctx context.Context, code string) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.UserType != models.UserTypeFaculty {
			continue
		}
		if code == "*" {
			out = append(out, u)
			continue
		}
		for _, dc := range u.DeptShortCodes {
			if dc == code {
				out = append(out, u)
				break
			}
		}
	}
	return out, nil
}

type fakeRequirements struct {
	docs   map[primitive.ObjectID]models.Requirement
	writes int
}

func newFakeRequirements() *fakeRequirements {
	return &fakeRequirements{docs: make(map[primitive.ObjectID]models.Requirement)}
}

func (f *fakeRequirements) ByID(ctx context.Context, id primitive.ObjectID) (models.Requirement, error) {
	r, ok := f.docs[id]
	if !ok {
		return models.Requirement{}, mongo.ErrNoDocuments
	}
	return r, nil
}

func (f *fakeRequirements) ActiveFor(ctx context.Context, sessionID primitive.ObjectID, dept string) ([]models.Requirement, error) {
	var out []models.Requirement
	for _, r := range f.docs {
		if r.SessionID == sessionID && r.DeptShortCode == dept && !r.IsArchived {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequirements) ForSessions(ctx context.Context, dept string, sessionIDs []primitive.ObjectID) ([]models.Requirement, error) {
	in := make(map[primitive.ObjectID]bool, len(sessionIDs))
	for _, id := range sessionIDs {
		in[id] = true
	}
	var out []models.Requirement
	for _, r := range f.docs {
		if r.DeptShortCode == dept && in[r.SessionID] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequirements) Replace(ctx context.Context, archive []models.Requirement, next models.Requirement) (models.Requirement, error) {
	f.writes++
	for _, r := range archive {
		doc := f.docs[r.ID]
		doc.IsArchived = true
		f.docs[r.ID] = doc
	}
	if next.ID.IsZero() {
		next.ID = primitive.NewObjectID()
	}
	f.docs[next.ID] = next
	return next, nil
}

// all returns every stored version for one (session, dept) pair.
func (f *fakeRequirements) all(sessionID primitive.ObjectID, dept string) []models.Requirement {
	var out []models.Requirement
	for _, r := range f.docs {
		if r.SessionID == sessionID && r.DeptShortCode == dept {
			out = append(out, r)
		}
	}
	return out
}
