// internal/app/system/txn/txn.go

// Package txn runs a function inside a Mongo multi-document
// transaction when the server supports it, and falls back to plain
// sequential execution when it does not (standalone servers without a
// replica set). Callers must use the context passed to fn for every
// operation that should join the transaction.
package txn

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Run executes fn transactionally against db. On servers without
// transaction support fn runs directly; partial writes are then
// possible, matching the behavior of a plain sequence of writes.
func Run(ctx context.Context, db *mongo.Database, logger *zap.Logger, fn func(ctx context.Context) error) error {
	session, err := db.Client().StartSession()
	if err != nil {
		if IsNotSupported(err) {
			logger.Warn("mongo sessions unavailable; running without transaction", zap.Error(err))
			return fn(ctx)
		}
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	})
	if err != nil && IsNotSupported(err) {
		logger.Warn("mongo transactions unsupported; running without transaction", zap.Error(err))
		return fn(ctx)
	}
	return err
}

// Server error codes that indicate transactions are unavailable.
//   - 20  IllegalOperation (transaction numbers need a replica set)
//   - 51  the legacy form of the same
//   - 263 OperationNotSupportedInTransaction
var notSupportedCodes = map[int32]bool{20: true, 51: true, 263: true}

// IsNotSupported reports whether err means the server cannot run
// multi-document transactions (as opposed to the transaction failing).
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}

	var ce mongo.CommandError
	if errors.As(err, &ce) {
		return notSupportedCodes[ce.Code]
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "transaction") && strings.Contains(s, "replica set") {
		return true
	}
	if strings.Contains(s, "transaction") && strings.Contains(s, "session") {
		return true
	}
	if strings.Contains(s, "session") && strings.Contains(s, "not supported") {
		return true
	}
	if strings.Contains(s, "illegal operation") {
		return true
	}
	return false
}
