package migration

import (
	"errors"
	"fmt"

	orgdomain "github.com/smallbiznis/photohub/internal/organization/domain"
	phdomain "github.com/smallbiznis/photohub/internal/photographer/domain"
	pfdomain "github.com/smallbiznis/photohub/internal/portfolio/domain"
	"gorm.io/gorm"
)

// This migration package ensures the hub is fully usable out of the box
// for local and self-hosted deployments. All core tables are created
// automatically on startup.
func RunMigrations(db *gorm.DB) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}

	err := db.AutoMigrate(
		&orgdomain.OrganizationType{},
		&orgdomain.Organization{},
		&phdomain.Photographer{},
		&pfdomain.MemberPortfolio{},
	)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
