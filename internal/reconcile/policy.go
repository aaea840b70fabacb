// Package reconcile carries the shared error policy of the
// find-create-update repositories: integrity warnings and commit failures
// never crash a production build, while debug builds fail fast.
package reconcile

import (
	"context"

	"github.com/smallbiznis/photohub/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Policy applies the dual-mode (production vs debug) handling of
// reconciliation faults.
type Policy struct {
	Log   *zap.Logger
	Debug bool
}

// Duplicates reports a multi-match on an identity tuple. The caller proceeds
// with the first match in store order; debug builds panic instead.
func (p Policy) Duplicates(kind string, count int, fields ...zap.Field) {
	if count <= 1 {
		return
	}
	fields = append(fields, zap.Int("matches", count))
	if p.Debug {
		p.Log.Panic("query returned multiple "+kind+" records for one identity", fields...)
	}
	p.Log.Warn("duplicate "+kind+" records for one identity, using first match", fields...)
}

// Commit persists value and applies the commit-failure policy: the failure is
// logged and swallowed in production (the in-memory change stays applied,
// only durability is at risk), and panics in debug builds.
func (p Policy) Commit(ctx context.Context, conn *gorm.DB, value any, kind string, fields ...zap.Field) {
	if err := conn.WithContext(ctx).Omit(clause.Associations).Save(value).Error; err != nil {
		fields = append(fields, zap.Error(err))
		if db.IsDuplicateKeyErr(err) {
			// Lost a creation race on the identity's unique index. The
			// winner's record is already in the store; the next load picks
			// it up.
			p.Log.Warn("commit hit an existing "+kind+" for the same identity", fields...)
			return
		}
		if p.Debug {
			p.Log.Panic("commit failed for "+kind, fields...)
		}
		p.Log.Error("commit failed for "+kind+", continuing with unsynced in-memory state", fields...)
	}
}
