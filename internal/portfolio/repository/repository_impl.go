package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/photohub/internal/config"
	orgdomain "github.com/smallbiznis/photohub/internal/organization/domain"
	phdomain "github.com/smallbiznis/photohub/internal/photographer/domain"
	"github.com/smallbiznis/photohub/internal/portfolio/domain"
	"github.com/smallbiznis/photohub/internal/reconcile"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct {
	log    *zap.Logger
	genID  *snowflake.Node
	policy reconcile.Policy
}

// Provide builds the member portfolio repository.
func Provide(log *zap.Logger, cfg config.Config, genID *snowflake.Node) domain.Repository {
	named := log.Named("portfolio.repo")
	return &repo{
		log:    named,
		genID:  genID,
		policy: reconcile.Policy{Log: named, Debug: cfg.Debug},
	}
}

func (r *repo) FindCreateUpdate(ctx context.Context, db *gorm.DB, org *orgdomain.Organization,
	ph *phdomain.Photographer, attrs domain.Attributes) (*domain.MemberPortfolio, bool, error) {

	var matches []*domain.MemberPortfolio
	err := db.WithContext(ctx).
		Where("organization_id = ? AND photographer_id = ?", org.ID, ph.ID).
		Order("id").
		Find(&matches).Error
	if err != nil {
		return nil, false, err
	}

	r.policy.Duplicates("member portfolio", len(matches),
		zap.String("organization", org.FullNameTown()),
		zap.String("photographer", ph.FullName()))

	if len(matches) > 0 {
		pf := matches[0]
		pf.Organization = *org
		pf.Photographer = *ph
		if changed := r.update(pf, attrs); changed {
			r.policy.Commit(ctx, db, pf, "member portfolio",
				zap.String("organization", org.FullNameTown()),
				zap.String("photographer", ph.FullName()))
			r.log.Info("updated info for member",
				zap.String("organization", org.FullName),
				zap.String("photographer", ph.FullName()))
			return pf, true, nil
		}
		r.log.Debug("no changes for member",
			zap.String("organization", org.FullName),
			zap.String("photographer", ph.FullName()))
		return pf, false, nil
	}

	now := time.Now().UTC()
	pf := &domain.MemberPortfolio{
		ID:             r.genID.Generate(),
		OrganizationID: org.ID,
		PhotographerID: ph.ID,
		Organization:   *org,
		Photographer:   *ph,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	_ = r.update(pf, attrs)
	r.policy.Commit(ctx, db, pf, "member portfolio",
		zap.String("organization", org.FullNameTown()),
		zap.String("photographer", ph.FullName()))
	r.log.Info("created new membership",
		zap.String("organization", org.FullNameTown()),
		zap.String("photographer", ph.FullName()))
	return pf, true, nil
}

// update applies the non-identifying attributes. Absent values never erase.
func (r *repo) update(pf *domain.MemberPortfolio, attrs domain.Attributes) bool {
	changed := pf.MergeRolesAndStatus(attrs.RolesAndStatus)

	changed = attrs.MembershipStart.ApplyPtr(&pf.MembershipStart) || changed
	changed = attrs.MembershipEnd.ApplyPtr(&pf.MembershipEnd) || changed
	changed = attrs.SiteURL.Apply(&pf.SiteURL) || changed
	changed = attrs.LatestImage.Apply(&pf.LatestImage) || changed
	changed = attrs.LatestThumbnail.Apply(&pf.LatestThumbnail) || changed

	if changed {
		pf.UpdatedAt = time.Now().UTC()
	}
	return changed
}

func (r *repo) ListByOrganization(ctx context.Context, db *gorm.DB,
	orgID snowflake.ID) ([]*domain.MemberPortfolio, error) {

	var portfolios []*domain.MemberPortfolio
	err := db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Preload("Photographer").
		Order("id").
		Find(&portfolios).Error
	if err != nil {
		return nil, err
	}
	return portfolios, nil
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, p *domain.MemberPortfolio) error {
	p.UpdatedAt = time.Now().UTC()
	return db.WithContext(ctx).Omit(clause.Associations).Save(p).Error
}
