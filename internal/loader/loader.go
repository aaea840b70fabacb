// Package loader composes the photographer and portfolio reconciliation
// calls every data source (seed tables, roster scraper) routes through.
package loader

import (
	"context"
	"time"

	orgdomain "github.com/smallbiznis/photohub/internal/organization/domain"
	"github.com/smallbiznis/photohub/internal/personname"
	phdomain "github.com/smallbiznis/photohub/internal/photographer/domain"
	pfdomain "github.com/smallbiznis/photohub/internal/portfolio/domain"
	"github.com/smallbiznis/photohub/internal/rolestatus"
	"github.com/smallbiznis/photohub/pkg/patch"
	"gorm.io/gorm"
)

// Member bundles one member's attributes as supplied by a data source.
type Member struct {
	Name           personname.Name
	RolesAndStatus rolestatus.RolesAndStatus

	Website patch.Field[string]
	BornAt  patch.Field[time.Time]
	Phone   patch.Field[string]
	Email   patch.Field[string]

	SiteURL         patch.Field[string]
	LatestImage     patch.Field[string]
	LatestThumbnail patch.Field[string]

	MembershipStart patch.Field[time.Time]
	MembershipEnd   patch.Field[time.Time]
}

// AddMember upserts the photographer and then the membership linking it to
// org. When only one of image/thumbnail is known, the other falls back to
// it.
func AddMember(ctx context.Context, db *gorm.DB,
	photographers phdomain.Repository, portfolios pfdomain.Repository,
	org *orgdomain.Organization, m Member) error {

	ph, _, err := photographers.FindCreateUpdate(ctx, db, m.Name, phdomain.Attributes{
		RolesAndStatus: m.RolesAndStatus,
		Phone:          m.Phone,
		Email:          m.Email,
		Website:        m.Website,
		BornAt:         m.BornAt,
	})
	if err != nil {
		return err
	}

	image := m.LatestImage
	thumb := m.LatestThumbnail
	if !image.IsSet() {
		image = thumb
	}
	if !thumb.IsSet() {
		thumb = m.LatestImage
	}

	_, _, err = portfolios.FindCreateUpdate(ctx, db, org, ph, pfdomain.Attributes{
		RolesAndStatus:  m.RolesAndStatus,
		MembershipStart: m.MembershipStart,
		MembershipEnd:   m.MembershipEnd,
		SiteURL:         m.SiteURL,
		LatestImage:     image,
		LatestThumbnail: thumb,
	})
	return err
}
