// internal/app/store/sessions/store.go
package sessions

import (
	"context"

	"github.com/campuserp/recruitreq/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store reads recruitment sessions. Sessions are created and advanced
// by the recruitment office's admin tooling; this service never writes
// them.
type Store struct {
	c *mongo.Collection
}

// New creates a sessions Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("recruitment_sessions")}
}

// LatestOpen returns the OPEN session with the latest end date.
// Returns mongo.ErrNoDocuments when no session is OPEN.
func (s *Store) LatestOpen(ctx context.Context) (models.RecruitmentSession, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "end_date", Value: -1}})
	var session models.RecruitmentSession
	if err := s.c.FindOne(ctx, bson.M{"status": models.SessionOpen}, opts).Decode(&session); err != nil {
		return models.RecruitmentSession{}, err
	}
	return session, nil
}

// AllClosed returns every CLOSED session, newest first.
func (s *Store) AllClosed(ctx context.Context) ([]models.RecruitmentSession, error) {
	opts := options.Find().SetSort(bson.D{{Key: "end_date", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"status": models.SessionClosed}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var sessions []models.RecruitmentSession
	if err := cur.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
