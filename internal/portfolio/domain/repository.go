package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	orgdomain "github.com/smallbiznis/photohub/internal/organization/domain"
	phdomain "github.com/smallbiznis/photohub/internal/photographer/domain"
	"gorm.io/gorm"
)

// Repository reconciles membership records with the store.
type Repository interface {
	// FindCreateUpdate locates the portfolio for the (organization,
	// photographer) pair, creating it when the photographer is first linked
	// to the organization, and applies attrs. It reports whether any stored
	// field changed.
	FindCreateUpdate(ctx context.Context, db *gorm.DB, org *orgdomain.Organization,
		ph *phdomain.Photographer, attrs Attributes) (*MemberPortfolio, bool, error)

	// ListByOrganization returns every portfolio of one organization with
	// its photographer loaded, in store order.
	ListByOrganization(ctx context.Context, db *gorm.DB, orgID snowflake.ID) ([]*MemberPortfolio, error)

	// Save persists a portfolio mutated outside FindCreateUpdate (the
	// first-image refresh pass).
	Save(ctx context.Context, db *gorm.DB, p *MemberPortfolio) error
}
