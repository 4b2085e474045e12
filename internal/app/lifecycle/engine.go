// internal/app/lifecycle/engine.go
package lifecycle

import (
	"context"
	"strconv"
	"time"

	"github.com/campuserp/recruitreq/internal/app/store/audit"
	"github.com/campuserp/recruitreq/internal/app/system/auditlog"
	"github.com/campuserp/recruitreq/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// RemarkInput is a client-supplied remark. Any client-supplied date is
// discarded; the engine stamps remarks at acceptance time.
type RemarkInput struct {
	Who  string `json:"who"`
	What string `json:"what"`
}

// Payload is a proposed requirement for Save or Submit.
//
// RequirementID optionally names the version being superseded; the
// zero ObjectID (or an id that no longer resolves) means a fresh
// lineage. ApprovedVacancy deliberately has no field here: approved
// numbers are only ever carried forward from the prior version.
type Payload struct {
	RequirementID    primitive.ObjectID `json:"requirement_id,omitempty"`
	DeptShortCode    string             `json:"dept_short_code"`
	RequestedVacancy []models.SubArea   `json:"requested_vacancy"`
	Remarks          []RemarkInput      `json:"remarks,omitempty"`
}

// Engine is the requirement lifecycle engine. It decides whether a
// proposed requirement may be accepted, computes the new persisted
// state (versioning and archiving included), and returns either the
// saved version or a *Failure.
//
// The engine holds no mutable state of its own; it is safe for
// concurrent use. Atomicity of the archive-then-insert step is the
// RequirementStore's responsibility (see Replace).
type Engine struct {
	sessions     SessionDirectory
	departments  DepartmentDirectory
	identity     IdentityDirectory
	requirements RequirementStore
	audit        *auditlog.Logger
	log          *zap.Logger
}

// New constructs an Engine. audit may be nil to disable decision
// auditing (tests do this).
func New(
	sessions SessionDirectory,
	departments DepartmentDirectory,
	identity IdentityDirectory,
	requirements RequirementStore,
	auditLog *auditlog.Logger,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		sessions:     sessions,
		departments:  departments,
		identity:     identity,
		requirements: requirements,
		audit:        auditLog,
		log:          logger,
	}
}

// scope is the resolved (department, open session) pair every
// operation works inside.
type scope struct {
	dept    models.Department
	session models.RecruitmentSession
}

func (e *Engine) resolveScope(ctx context.Context, deptCode string) (scope, error) {
	dept, err := e.departments.ByShortCode(ctx, deptCode)
	if err == mongo.ErrNoDocuments {
		return scope{}, failInvalidDepartment(deptCode)
	}
	if err != nil {
		return scope{}, err
	}

	session, err := e.sessions.LatestOpen(ctx)
	if err == mongo.ErrNoDocuments {
		return scope{}, failNoActiveSession()
	}
	if err != nil {
		return scope{}, err
	}

	return scope{dept: dept, session: session}, nil
}

// FetchCurrent returns the active (highest-version, non-archived)
// requirement for the department in the current OPEN session.
// Read-only.
func (e *Engine) FetchCurrent(ctx context.Context, deptCode string) (models.Requirement, error) {
	sc, err := e.resolveScope(ctx, deptCode)
	if err != nil {
		return models.Requirement{}, err
	}

	active, err := e.requirements.ActiveFor(ctx, sc.session.ID, sc.dept.ShortCode)
	if err != nil {
		return models.Requirement{}, err
	}
	if len(active) == 0 {
		return models.Requirement{}, failNoRequirementFound(sc.dept.ShortCode)
	}

	current := active[0]
	for _, r := range active[1:] {
		if r.Version > current.Version {
			current = r
		}
	}
	return current, nil
}

// FetchHistory returns every requirement version (archived or not)
// the department produced in CLOSED sessions. Read-only.
func (e *Engine) FetchHistory(ctx context.Context, deptCode string) ([]models.Requirement, error) {
	dept, err := e.departments.ByShortCode(ctx, deptCode)
	if err == mongo.ErrNoDocuments {
		return nil, failInvalidDepartment(deptCode)
	}
	if err != nil {
		return nil, err
	}

	closed, err := e.sessions.AllClosed(ctx)
	if err != nil {
		return nil, err
	}
	if len(closed) == 0 {
		return nil, failNoClosedSessions()
	}

	ids := make([]primitive.ObjectID, 0, len(closed))
	for _, s := range closed {
		ids = append(ids, s.ID)
	}

	history, err := e.requirements.ForSessions(ctx, dept.ShortCode, ids)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, failNoHistoricalRequirements(dept.ShortCode)
	}
	return history, nil
}

// Save accepts a draft. Guides are not validated here; save is the
// low-friction path. Zero or one remark is allowed.
func (e *Engine) Save(ctx context.Context, p Payload) (models.Requirement, error) {
	if len(p.Remarks) > 1 {
		return e.reject(ctx, p, failRemarkCount(len(p.Remarks), false))
	}

	sc, err := e.resolveScope(ctx, p.DeptShortCode)
	if err != nil {
		return e.reject(ctx, p, err)
	}

	prior, supersede, err := e.resolvePrior(ctx, p, sc)
	if err != nil {
		return e.reject(ctx, p, err)
	}

	next := e.nextVersion(p, sc, prior, models.StatusSaved)
	next.RequirementStatus = models.StatusSaved

	saved, err := e.requirements.Replace(ctx, supersede, next)
	if err != nil {
		return models.Requirement{}, err
	}
	e.logDecision(ctx, audit.EventRequirementSaved, sc, saved)
	return saved, nil
}

// Submit accepts a final submission: exactly one remark, all guides
// valid FACULTY members of the department, and once an approved cap
// exists, a requested total within it.
func (e *Engine) Submit(ctx context.Context, p Payload) (models.Requirement, error) {
	if len(p.Remarks) != 1 {
		return e.reject(ctx, p, failRemarkCount(len(p.Remarks), true))
	}

	sc, err := e.resolveScope(ctx, p.DeptShortCode)
	if err != nil {
		return e.reject(ctx, p, err)
	}

	if err := e.validateGuides(ctx, p, sc); err != nil {
		return e.reject(ctx, p, err)
	}

	prior, supersede, err := e.resolvePrior(ctx, p, sc)
	if err != nil {
		return e.reject(ctx, p, err)
	}

	// The cap applies once the approval authority has set numbers on
	// the lineage. Save deliberately skips this check.
	if prior != nil && prior.VacancyStatus == models.StatusApproved && len(prior.ApprovedVacancy) > 0 {
		requested := requestedTotal(p.RequestedVacancy)
		approved := prior.ApprovedTotal()
		if requested > approved {
			return e.reject(ctx, p, failCapacityExceeded(requested, approved))
		}
	}

	next := e.nextVersion(p, sc, prior, models.StatusSubmitted)
	next.RequirementStatus = models.StatusSubmitted

	saved, err := e.requirements.Replace(ctx, supersede, next)
	if err != nil {
		return models.Requirement{}, err
	}
	e.logDecision(ctx, audit.EventRequirementSubmitted, sc, saved)
	return saved, nil
}

// resolvePrior locates the version being superseded (if any) and the
// set of active versions to archive. A supplied id that does not
// resolve is treated as a fresh lineage; a supplied id that resolves
// must belong to this scope and must not be archived.
func (e *Engine) resolvePrior(ctx context.Context, p Payload, sc scope) (*models.Requirement, []models.Requirement, error) {
	active, err := e.requirements.ActiveFor(ctx, sc.session.ID, sc.dept.ShortCode)
	if err != nil {
		return nil, nil, err
	}

	if p.RequirementID.IsZero() {
		return nil, active, nil
	}

	existing, err := e.requirements.ByID(ctx, p.RequirementID)
	if err == mongo.ErrNoDocuments {
		return nil, active, nil
	}
	if err != nil {
		return nil, nil, err
	}
	if existing.SessionID != sc.session.ID || existing.DeptShortCode != sc.dept.ShortCode {
		return nil, nil, failOwnershipMismatch()
	}
	if existing.IsArchived {
		return nil, nil, failArchivedRequirement()
	}
	return &existing, active, nil
}

// nextVersion computes the new persisted state. The prior version is
// never mutated beyond its archived flag; approved numbers and the
// remark trail are carried forward.
func (e *Engine) nextVersion(p Payload, sc scope, prior *models.Requirement, requested string) models.Requirement {
	now := time.Now().UTC()

	next := models.Requirement{
		ID:               primitive.NewObjectID(),
		SessionID:        sc.session.ID,
		DeptShortCode:    sc.dept.ShortCode,
		RequestedVacancy: p.RequestedVacancy,
		ApprovedVacancy:  []models.SeatMatrix{},
		Version:          1,
		VacancyStatus:    Forward(models.StatusSaved, requested),
		SubmittedOn:      now,
		UpdatedAt:        now,
	}

	if prior != nil {
		next.Version = prior.Version + 1
		next.ApprovedVacancy = prior.ApprovedVacancy
		next.VacancyStatus = Forward(prior.VacancyStatus, requested)
		next.Remarks = append(next.Remarks, prior.Remarks...)
		next.SubmittedOn = prior.SubmittedOn
	}

	for _, rm := range p.Remarks {
		next.Remarks = append(next.Remarks, models.Remark{Who: rm.Who, What: rm.What, Date: now})
	}

	return next
}

func (e *Engine) validateGuides(ctx context.Context, p Payload, sc scope) error {
	faculty, err := e.identity.FacultyInDepartment(ctx, sc.dept.ShortCode)
	if err != nil {
		return err
	}

	eligible := make(map[primitive.ObjectID]struct{}, len(faculty))
	for _, f := range faculty {
		eligible[f.ID] = struct{}{}
	}

	for _, sa := range p.RequestedVacancy {
		for _, field := range sa.Fields {
			for _, guide := range field.PossibleGuides {
				if _, ok := eligible[guide]; !ok {
					return failInvalidGuide(field.Name)
				}
			}
		}
	}
	return nil
}

func requestedTotal(vacancy []models.SubArea) int {
	total := 0
	for _, sa := range vacancy {
		for _, f := range sa.Fields {
			total += f.Vacancy
		}
	}
	return total
}

// reject audits a rejected decision and passes the failure through.
// Collaborator outages are audited as rejections only when they carry
// a failure code; raw store errors pass through silently.
func (e *Engine) reject(ctx context.Context, p Payload, err error) (models.Requirement, error) {
	if f := AsFailure(err); f != nil {
		e.audit.Log(ctx, audit.Event{
			Category:      audit.CategoryLifecycle,
			EventType:     audit.EventRequirementRejected,
			DeptShortCode: p.DeptShortCode,
			Success:       false,
			FailureReason: string(f.Code),
			Details:       map[string]string{"message": f.Message},
		})
	}
	return models.Requirement{}, err
}

func (e *Engine) logDecision(ctx context.Context, eventType string, sc scope, saved models.Requirement) {
	sessionID := sc.session.ID
	requirementID := saved.ID
	e.audit.Log(ctx, audit.Event{
		Category:      audit.CategoryLifecycle,
		EventType:     eventType,
		DeptShortCode: sc.dept.ShortCode,
		SessionID:     &sessionID,
		RequirementID: &requirementID,
		Success:       true,
		Details: map[string]string{
			"version":        strconv.Itoa(saved.Version),
			"vacancy_status": saved.VacancyStatus,
		},
	})
	if e.log != nil {
		e.log.Info("requirement version accepted",
			zap.String("dept", sc.dept.ShortCode),
			zap.String("session", sc.session.Name),
			zap.Int("version", saved.Version),
			zap.String("vacancy_status", saved.VacancyStatus))
	}
}
