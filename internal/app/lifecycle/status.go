// internal/app/lifecycle/status.go
package lifecycle

import "github.com/campuserp/recruitreq/internal/domain/models"

// rank orders vacancy statuses along SAVED < SUBMITTED < APPROVED.
// Unknown statuses rank below SAVED so a corrupt document can still be
// advanced.
func rank(status string) int {
	switch status {
	case models.StatusSaved:
		return 1
	case models.StatusSubmitted:
		return 2
	case models.StatusApproved:
		return 3
	default:
		return 0
	}
}

// Forward applies the forward-only status rule: a requirement's
// vacancy status never moves backward.
//
//   - SAVED accepts whatever is requested.
//   - SUBMITTED advances to APPROVED but rejects a requested SAVED.
//   - APPROVED is absorbing.
//
// Forward is pure; callers persist the result.
func Forward(current, requested string) string {
	if rank(requested) > rank(current) {
		return requested
	}
	if rank(current) == 0 {
		return requested
	}
	return current
}
