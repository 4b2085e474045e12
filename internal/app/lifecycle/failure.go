// internal/app/lifecycle/failure.go
package lifecycle

import (
	"errors"
	"fmt"
)

// Code identifies a rejection reason. Every code is an expected,
// recoverable-by-the-caller condition: the caller must correct the
// payload (or wait for session/store state to change) and resubmit.
// Retrying an identical call cannot succeed.
type Code string

const (
	CodeInvalidDepartment        Code = "INVALID_DEPARTMENT"
	CodeNoActiveSession          Code = "NO_ACTIVE_SESSION"
	CodeNoClosedSessions         Code = "NO_CLOSED_SESSIONS"
	CodeNoRequirementFound       Code = "NO_REQUIREMENT_FOUND"
	CodeNoHistoricalRequirements Code = "NO_HISTORICAL_REQUIREMENTS"
	CodeInvalidRemarkCount       Code = "INVALID_REMARK_COUNT"
	CodeOwnershipMismatch        Code = "OWNERSHIP_MISMATCH"
	CodeArchivedRequirement      Code = "ARCHIVED_REQUIREMENT"
	CodeInvalidGuide             Code = "INVALID_GUIDE"
	CodeCapacityExceeded         Code = "CAPACITY_EXCEEDED"
)

// Failure is a structured rejection from the lifecycle engine. It is
// returned through the error path so collaborator outages (which pass
// through verbatim) and rejections share one channel; use AsFailure or
// FailureCode to tell them apart.
type Failure struct {
	Code    Code
	Message string

	// Field is set for CodeInvalidGuide: the research field naming the
	// offending guide.
	Field string

	// Requested and Approved are set for CodeCapacityExceeded.
	Requested int
	Approved  int
}

func (f *Failure) Error() string { return f.Message }

// AsFailure unwraps err into a *Failure, or returns nil if err is not
// an engine rejection.
func AsFailure(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return nil
}

// FailureCode returns the rejection code carried by err, or "" when
// err is not an engine rejection.
func FailureCode(err error) Code {
	if f := AsFailure(err); f != nil {
		return f.Code
	}
	return ""
}

func failInvalidDepartment(code string) error {
	return &Failure{
		Code:    CodeInvalidDepartment,
		Message: fmt.Sprintf("Invalid department short code: %s", code),
	}
}

func failNoActiveSession() error {
	return &Failure{
		Code:    CodeNoActiveSession,
		Message: "No active research recruitment session. Submission/update allowed only in OPEN session.",
	}
}

func failNoClosedSessions() error {
	return &Failure{
		Code:    CodeNoClosedSessions,
		Message: "No closed recruitment sessions exist yet.",
	}
}

func failNoRequirementFound(dept string) error {
	return &Failure{
		Code:    CodeNoRequirementFound,
		Message: fmt.Sprintf("No research requirements found for department %s.", dept),
	}
}

func failNoHistoricalRequirements(dept string) error {
	return &Failure{
		Code:    CodeNoHistoricalRequirements,
		Message: fmt.Sprintf("No historical research requirements found for department %s.", dept),
	}
}

func failRemarkCount(got int, required bool) error {
	msg := fmt.Sprintf("At most one remark may accompany a save; got %d.", got)
	if required {
		msg = fmt.Sprintf("Exactly one remark must accompany a submission; got %d.", got)
	}
	return &Failure{Code: CodeInvalidRemarkCount, Message: msg}
}

func failOwnershipMismatch() error {
	return &Failure{
		Code:    CodeOwnershipMismatch,
		Message: "Requirement belongs to a different department or session.",
	}
}

func failArchivedRequirement() error {
	return &Failure{
		Code:    CodeArchivedRequirement,
		Message: "Requirement version is archived and can no longer be modified.",
	}
}

func failInvalidGuide(field string) error {
	return &Failure{
		Code:    CodeInvalidGuide,
		Message: fmt.Sprintf("One or more possible guides in field %q are invalid or not faculty of this department.", field),
		Field:   field,
	}
}

func failCapacityExceeded(requested, approved int) error {
	return &Failure{
		Code:      CodeCapacityExceeded,
		Message:   fmt.Sprintf("Requested vacancies (%d) exceed the approved total (%d).", requested, approved),
		Requested: requested,
		Approved:  approved,
	}
}
