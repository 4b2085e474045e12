// internal/domain/models/department.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Department is an academic department identified by its short code
// (e.g. "CSE"). Short codes are unique across the collection.
type Department struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	ShortCode string             `bson:"short_code" json:"short_code"`
	Name      string             `bson:"name" json:"name"`
}
