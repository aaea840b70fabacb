// Package registry seeds the persisted organization type records and caches
// their IDs. The registry is built exactly once at startup, before any
// background loader runs, and is passed explicitly to every loader.
package registry

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/photohub/internal/organization/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module provides the type registry; fx constructs it on the main goroutine
// before anything that depends on it.
var Module = fx.Module("organization.registry",
	fx.Provide(Init),
)

var initialized atomic.Bool

// TypeRegistry maps type names to their persisted record IDs.
type TypeRegistry struct {
	ids map[domain.TypeName]snowflake.ID
}

// Init seeds one record per organization type and returns the registry.
// Calling Init twice is a programming error and panics by contract.
func Init(db *gorm.DB, repo domain.Repository, log *zap.Logger) (*TypeRegistry, error) {
	if !initialized.CompareAndSwap(false, true) {
		panic("organization type registry initialized twice")
	}

	ctx := context.Background()
	ids := make(map[domain.TypeName]snowflake.ID, len(domain.AllTypes()))
	for _, t := range domain.AllTypes() {
		typ, _, err := repo.FindCreateUpdateType(ctx, db, t)
		if err != nil {
			return nil, fmt.Errorf("seed organization type %q: %w", t, err)
		}
		ids[t] = typ.ID
	}

	log.Named("organization.registry").Info("organization types ready", zap.Int("types", len(ids)))
	return &TypeRegistry{ids: ids}, nil
}

// ID returns the record ID for a type name. Asking for a type that was not
// seeded is a programming error and panics.
func (r *TypeRegistry) ID(t domain.TypeName) snowflake.ID {
	id, ok := r.ids[t]
	if !ok {
		panic(fmt.Sprintf("unknown organization type %q", t))
	}
	return id
}

// reset is only for tests, which share one process-wide initialized flag.
func reset() { initialized.Store(false) }
