package faculty_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/campuserp/recruitreq/internal/app/features/faculty"
	"github.com/campuserp/recruitreq/internal/app/lifecycle"
	"github.com/campuserp/recruitreq/internal/domain/models"
	"github.com/campuserp/recruitreq/internal/testutil"
	"go.uber.org/zap"
)

func listFaculty(t *testing.T, h *faculty.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/faculty", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)
	return rec
}

type facultyEnvelope struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Code    string               `json:"code"`
	Data    []models.FacultyView `json:"data"`
}

func TestHandleList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := faculty.NewHandler(db, zap.NewNop())
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateDepartment(ctx, "CSE", "Computer Science and Engineering")
	fx.CreateFaculty(ctx, "Alice Kumar", "alice@test.edu", "CSE")
	fx.CreateFaculty(ctx, "Carol Mehta", "carol@test.edu", "ME")
	fx.CreateStaff(ctx, "Dave Clerk", "dave@test.edu", "CSE")

	rec := listFaculty(t, handler, `{"dept_short_code":"CSE"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d; body %s", rec.Code, rec.Body.String())
	}

	var env facultyEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !env.Success {
		t.Errorf("Success: got false, message %q", env.Message)
	}
	if len(env.Data) != 1 {
		t.Fatalf("got %d faculty, want 1", len(env.Data))
	}
	if env.Data[0].Name != "Alice Kumar" {
		t.Errorf("Name: got %q", env.Data[0].Name)
	}
}

func TestHandleList_Wildcard(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := faculty.NewHandler(db, zap.NewNop())
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// no department record needed for the wildcard
	fx.CreateFaculty(ctx, "Alice Kumar", "alice@test.edu", "CSE")
	fx.CreateFaculty(ctx, "Carol Mehta", "carol@test.edu", "ME")

	rec := listFaculty(t, handler, `{"dept_short_code":"*"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d; body %s", rec.Code, rec.Body.String())
	}

	var env facultyEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(env.Data) != 2 {
		t.Errorf("wildcard: got %d faculty, want 2", len(env.Data))
	}
}

func TestHandleList_UnknownDepartment(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := faculty.NewHandler(db, zap.NewNop())

	rec := listFaculty(t, handler, `{"dept_short_code":"NOPE"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}

	var env facultyEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if env.Code != string(lifecycle.CodeInvalidDepartment) {
		t.Errorf("code: got %q", env.Code)
	}
}

func TestHandleList_MalformedBody(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := faculty.NewHandler(db, zap.NewNop())

	rec := listFaculty(t, handler, `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}
