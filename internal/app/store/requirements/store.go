// internal/app/store/requirements/store.go
package requirements

import (
	"context"
	"errors"
	"time"

	"github.com/campuserp/recruitreq/internal/app/system/txn"
	"github.com/campuserp/recruitreq/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrActiveVersionExists means another writer inserted an active
// version for the same (session, department) between this call's read
// and write. The partial unique index rejects the second insert; the
// caller should re-read and retry with the fresh current version.
var ErrActiveVersionExists = errors.New("an active requirement version already exists for this session and department")

// Store persists requirement versions as an append-only history:
// updates archive the superseded version and insert a new document.
type Store struct {
	db  *mongo.Database
	c   *mongo.Collection
	log *zap.Logger
}

// New creates a requirements Store.
func New(db *mongo.Database, logger *zap.Logger) *Store {
	return &Store{
		db:  db,
		c:   db.Collection("research_requirements"),
		log: logger,
	}
}

// ByID loads one requirement version.
func (s *Store) ByID(ctx context.Context, id primitive.ObjectID) (models.Requirement, error) {
	var r models.Requirement
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&r); err != nil {
		return models.Requirement{}, err
	}
	return r, nil
}

// ActiveFor returns the non-archived versions for one (session,
// department) pair, highest version first.
func (s *Store) ActiveFor(ctx context.Context, sessionID primitive.ObjectID, dept string) ([]models.Requirement, error) {
	cur, err := s.c.Find(ctx, bson.M{
		"session_id":      sessionID,
		"dept_short_code": dept,
		"is_archived":     false,
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reqs []models.Requirement
	if err := cur.All(ctx, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// ForSessions returns every version (archived or not) the department
// produced in the given sessions, newest update first.
func (s *Store) ForSessions(ctx context.Context, dept string, sessionIDs []primitive.ObjectID) ([]models.Requirement, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}

	cur, err := s.c.Find(ctx, bson.M{
		"dept_short_code": dept,
		"session_id":      bson.M{"$in": sessionIDs},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reqs []models.Requirement
	if err := cur.All(ctx, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// Replace archives the superseded versions and inserts next as one
// transaction. The archived documents change only their is_archived
// flag; version history stays immutable otherwise. On servers without
// transaction support the two writes run sequentially, in which case
// the partial unique index on active versions still prevents two
// writers from both inserting.
func (s *Store) Replace(ctx context.Context, archive []models.Requirement, next models.Requirement) (models.Requirement, error) {
	if next.ID.IsZero() {
		next.ID = primitive.NewObjectID()
	}
	if next.UpdatedAt.IsZero() {
		next.UpdatedAt = time.Now().UTC()
	}

	err := txn.Run(ctx, s.db, s.log, func(ctx context.Context) error {
		if len(archive) > 0 {
			ids := make([]primitive.ObjectID, 0, len(archive))
			for _, r := range archive {
				ids = append(ids, r.ID)
			}
			if _, err := s.c.UpdateMany(ctx,
				bson.M{"_id": bson.M{"$in": ids}},
				bson.M{"$set": bson.M{"is_archived": true}},
			); err != nil {
				return err
			}
		}
		_, err := s.c.InsertOne(ctx, next)
		return err
	})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Requirement{}, ErrActiveVersionExists
		}
		return models.Requirement{}, err
	}
	return next, nil
}
