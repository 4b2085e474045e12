// internal/app/store/faculty/store.go
package faculty

import (
	"context"

	"github.com/campuserp/recruitreq/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Wildcard matches faculty of every department.
const Wildcard = "*"

// Store reads the ERP user view. Users are synchronized from the
// campus ERP; this service never writes them.
type Store struct {
	c *mongo.Collection
}

// New creates a faculty Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// FacultyInDepartment returns all FACULTY users belonging to the
// department, sorted by name. The Wildcard code returns faculty of
// every department.
func (s *Store) FacultyInDepartment(ctx context.Context, code string) ([]models.User, error) {
	filter := bson.M{"user_type": models.UserTypeFaculty}
	if code != Wildcard {
		filter["dept_short_codes"] = code
	}

	opts := options.Find().SetSort(bson.D{{Key: "full_name", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
