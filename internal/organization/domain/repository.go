package domain

import (
	"context"

	"gorm.io/gorm"
)

// Repository reconciles externally sourced organization data with the store.
type Repository interface {
	// FindCreateUpdate locates the organization matching id's natural key,
	// creating it when absent, and applies attrs. It reports whether any
	// stored field changed.
	FindCreateUpdate(ctx context.Context, db *gorm.DB, id Identity, attrs Attributes) (*Organization, bool, error)

	// FindCreateUpdateType does the same for a type record.
	FindCreateUpdateType(ctx context.Context, db *gorm.DB, name TypeName) (*OrganizationType, bool, error)
}
