// internal/app/store/departments/store.go
package departments

import (
	"context"
	"errors"

	"github.com/campuserp/recruitreq/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrDuplicateShortCode = errors.New("a department with this short code already exists")

// Store validates and manages department records. Departments change
// rarely; this service mostly reads them by short code.
type Store struct {
	c *mongo.Collection
}

// New creates a departments Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("departments")}
}

// ByShortCode looks up a department by its short code. Returns
// mongo.ErrNoDocuments if the code is unknown.
func (s *Store) ByShortCode(ctx context.Context, code string) (models.Department, error) {
	var d models.Department
	if err := s.c.FindOne(ctx, bson.M{"short_code": code}).Decode(&d); err != nil {
		return models.Department{}, err
	}
	return d, nil
}

// Create inserts a department, assigning its id.
func (s *Store) Create(ctx context.Context, d models.Department) (models.Department, error) {
	d.ID = primitive.NewObjectID()
	if _, err := s.c.InsertOne(ctx, d); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Department{}, ErrDuplicateShortCode
		}
		return models.Department{}, err
	}
	return d, nil
}
