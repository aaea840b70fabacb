package domain

import (
	"context"

	"github.com/smallbiznis/photohub/internal/personname"
	"gorm.io/gorm"
)

// Repository reconciles externally sourced photographer data with the store.
type Repository interface {
	// FindCreateUpdate locates the photographer with name's exact
	// given/family tuple, creating the record when absent, and applies
	// attrs. It reports whether any stored field changed.
	FindCreateUpdate(ctx context.Context, db *gorm.DB, name personname.Name, attrs Attributes) (*Photographer, bool, error)
}
