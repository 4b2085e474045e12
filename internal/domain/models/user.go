// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User types mirrored from the campus ERP user directory.
const (
	UserTypeFaculty = "FACULTY"
	UserTypeStaff   = "STAFF"
	UserTypeAdmin   = "ADMIN"
)

// User is a read-only view of an ERP user. A user may belong to more
// than one department (joint appointments), hence DeptShortCodes is a
// list.
type User struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	FullName       string             `bson:"full_name" json:"full_name"`
	Email          string             `bson:"email" json:"email"`
	UserType       string             `bson:"user_type" json:"user_type"`
	DeptShortCodes []string           `bson:"dept_short_codes" json:"dept_short_codes"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// FacultyView is the minimal faculty projection returned by the
// faculty listing endpoint.
type FacultyView struct {
	ID             primitive.ObjectID `json:"id"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	DeptShortCodes []string           `json:"dept_short_codes"`
}

// ToFacultyView projects a user down to the fields the requirement UI
// needs when picking guides.
func (u User) ToFacultyView() FacultyView {
	return FacultyView{
		ID:             u.ID,
		Name:           u.FullName,
		Email:          u.Email,
		DeptShortCodes: u.DeptShortCodes,
	}
}
