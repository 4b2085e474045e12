// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
Errors are aggregated so every problem is visible and startup can fail
fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	var problems []string

	if err := ensureSessions(ctx, db); err != nil {
		problems = append(problems, "recruitment_sessions: "+err.Error())
	}
	if err := ensureDepartments(ctx, db); err != nil {
		problems = append(problems, "departments: "+err.Error())
	}
	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureRequirements(ctx, db); err != nil {
		problems = append(problems, "research_requirements: "+err.Error())
	}
	if err := ensureAuditEvents(ctx, db); err != nil {
		problems = append(problems, "audit_events: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	logger.Info("indexes reconciled")
	return nil
}

func ensureSessions(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("recruitment_sessions").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("uniq_session_name").SetUnique(true),
		},
		// open-session resolution sorts by end_date descending
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "end_date", Value: -1}},
			Options: options.Index().SetName("idx_session_status_end"),
		},
	})
	return ignoreConflict(err)
}

func ensureDepartments(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("departments").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "short_code", Value: 1}},
			Options: options.Index().SetName("uniq_dept_short_code").SetUnique(true),
		},
	})
	return ignoreConflict(err)
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_type", Value: 1}, {Key: "dept_short_codes", Value: 1}},
			Options: options.Index().SetName("idx_user_type_depts"),
		},
	})
	return ignoreConflict(err)
}

func ensureRequirements(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("research_requirements").Indexes().CreateMany(ctx, []mongo.IndexModel{
		// Store-level backstop for the one-active-version invariant:
		// unique over (session, dept) among non-archived documents.
		{
			Keys: bson.D{{Key: "session_id", Value: 1}, {Key: "dept_short_code", Value: 1}},
			Options: options.Index().
				SetName("uniq_active_requirement").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"is_archived": false}),
		},
		// history and lineage reads
		{
			Keys:    bson.D{{Key: "dept_short_code", Value: 1}, {Key: "session_id", Value: 1}, {Key: "version", Value: -1}},
			Options: options.Index().SetName("idx_requirement_lineage"),
		},
	})
	return ignoreConflict(err)
}

func ensureAuditEvents(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("audit_events").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "dept_short_code", Value: 1}, {Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("idx_audit_dept_time"),
		},
	})
	return ignoreConflict(err)
}

// Mongo/DocDB sometimes returns IndexOptionsConflict when an index
// with the same keys already exists under a different name. Treat that
// as already-reconciled rather than a startup failure.
func ignoreConflict(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "IndexOptionsConflict") {
		return nil
	}
	return err
}
