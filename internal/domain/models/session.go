// internal/domain/models/session.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session status values.
//
// A session gates requirement modification: departments may save or
// submit only while a session is OPEN. CLOSED sessions are visible via
// history; APPROVED sessions are fully settled and read the same way.
const (
	SessionOpen     = "OPEN"
	SessionClosed   = "CLOSED"
	SessionApproved = "APPROVED"
)

// RecruitmentSession is one time-boxed research recruitment cycle.
//
// Sessions are administered out-of-band; this service only reads them.
// When several sessions are OPEN at once, the one with the latest
// end_date is treated as current.
type RecruitmentSession struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Status      string             `bson:"status" json:"status"`
	Description string             `bson:"description" json:"description"`
	EndDate     time.Time          `bson:"end_date" json:"end_date"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
