// internal/app/store/audit/store.go
package audit

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Event categories
const (
	CategoryLifecycle = "lifecycle"
)

// Lifecycle event types
const (
	EventRequirementSaved     = "requirement_saved"
	EventRequirementSubmitted = "requirement_submitted"
	EventRequirementRejected  = "requirement_rejected"
)

// Event records one lifecycle decision: an accepted save/submit or a
// rejection with its reason.
type Event struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Timestamp time.Time          `bson:"timestamp"`

	Category  string `bson:"category"`
	EventType string `bson:"event_type"`

	DeptShortCode string              `bson:"dept_short_code,omitempty"`
	SessionID     *primitive.ObjectID `bson:"session_id,omitempty"`
	RequirementID *primitive.ObjectID `bson:"requirement_id,omitempty"`

	Success       bool   `bson:"success"`
	FailureReason string `bson:"failure_reason,omitempty"`

	// Additional details (varies by event type)
	Details map[string]string `bson:"details,omitempty"`
}

// Store persists audit events.
type Store struct {
	c *mongo.Collection
}

// New creates a new audit Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("audit_events")}
}

// Insert records an event. Timestamp is stamped here if unset.
func (s *Store) Insert(ctx context.Context, e Event) error {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	_, err := s.c.InsertOne(ctx, e)
	return err
}

// RecentForDept returns the newest events for a department, newest
// first, capped at limit.
func (s *Store) RecentForDept(ctx context.Context, dept string, limit int64) ([]Event, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{"dept_short_code": dept}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var events []Event
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
