// internal/domain/models/requirement.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vacancy status values. The status of a requirement's numbers only
// ever moves forward along SAVED -> SUBMITTED -> APPROVED.
const (
	StatusSaved     = "SAVED"
	StatusSubmitted = "SUBMITTED"
	StatusApproved  = "APPROVED"
)

// ResearchField is one research field inside a sub-area, with the
// number of open positions and the faculty who could guide them.
type ResearchField struct {
	Name           string               `bson:"name" json:"name"`
	Vacancy        int                  `bson:"vacancy" json:"vacancy"`
	PossibleGuides []primitive.ObjectID `bson:"possible_guides" json:"possible_guides"`
}

// SubArea groups research fields under a named sub-area of the
// department (e.g. "Systems", "Theory").
type SubArea struct {
	Name   string          `bson:"name" json:"name"`
	Fields []ResearchField `bson:"fields" json:"fields"`
}

// SeatMatrix is one approved category -> count entry. It is written by
// the approval authority out-of-band; this service only copies it
// forward between versions.
type SeatMatrix struct {
	CategoryID string `bson:"category_id" json:"category_id"`
	Vacancy    int    `bson:"vacancy" json:"vacancy"`
}

// Remark is a free-text note attached to a requirement version. Date
// is always stamped by the server at acceptance; client-supplied dates
// are discarded.
type Remark struct {
	Who  string    `bson:"who" json:"who"`
	What string    `bson:"what" json:"what"`
	Date time.Time `bson:"date" json:"date"`
}

// Requirement is one version in a department's vacancy-requirement
// lineage for a recruitment session.
//
// Versions are append-only: every accepted save or submit archives the
// prior version and inserts a new document with Version+1. "Current"
// is always the latest non-archived document for (session, dept).
type Requirement struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	SessionID     primitive.ObjectID `bson:"session_id" json:"session_id"`
	DeptShortCode string             `bson:"dept_short_code" json:"dept_short_code"`

	RequestedVacancy []SubArea    `bson:"requested_vacancy" json:"requested_vacancy"`
	ApprovedVacancy  []SeatMatrix `bson:"approved_vacancy" json:"approved_vacancy"`

	VacancyStatus     string `bson:"vacancy_status" json:"vacancy_status"`
	RequirementStatus string `bson:"requirement_status" json:"requirement_status"`

	Remarks    []Remark `bson:"remarks" json:"remarks"`
	Version    int      `bson:"version" json:"version"`
	IsArchived bool     `bson:"is_archived" json:"is_archived"`

	SubmittedOn time.Time `bson:"submitted_on" json:"submitted_on"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// RequestedTotal sums the requested vacancy counts across every field
// of every sub-area.
func (r Requirement) RequestedTotal() int {
	total := 0
	for _, sa := range r.RequestedVacancy {
		for _, f := range sa.Fields {
			total += f.Vacancy
		}
	}
	return total
}

// ApprovedTotal sums the approved seat counts across all categories.
func (r Requirement) ApprovedTotal() int {
	total := 0
	for _, s := range r.ApprovedVacancy {
		total += s.Vacancy
	}
	return total
}
