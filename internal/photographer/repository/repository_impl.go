package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/photohub/internal/config"
	"github.com/smallbiznis/photohub/internal/personname"
	"github.com/smallbiznis/photohub/internal/photographer/domain"
	"github.com/smallbiznis/photohub/internal/reconcile"
	"github.com/smallbiznis/photohub/internal/rolestatus"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type repo struct {
	log    *zap.Logger
	genID  *snowflake.Node
	policy reconcile.Policy
}

// Provide builds the photographer repository.
func Provide(log *zap.Logger, cfg config.Config, genID *snowflake.Node) domain.Repository {
	named := log.Named("photographer.repo")
	return &repo{
		log:    named,
		genID:  genID,
		policy: reconcile.Policy{Log: named, Debug: cfg.Debug},
	}
}

func (r *repo) FindCreateUpdate(ctx context.Context, db *gorm.DB, name personname.Name,
	attrs domain.Attributes) (*domain.Photographer, bool, error) {

	var matches []*domain.Photographer
	err := db.WithContext(ctx).
		Where("given_name = ? AND family_name = ?", name.Given, name.Family).
		Order("id").
		Find(&matches).Error
	if err != nil {
		return nil, false, err
	}

	r.policy.Duplicates("photographer", len(matches), zap.String("photographer", name.Full()))

	if len(matches) > 0 {
		ph := matches[0]
		if changed := r.update(ph, attrs); changed {
			r.policy.Commit(ctx, db, ph, "photographer", zap.String("photographer", ph.FullName()))
			r.log.Info("updated info for photographer", zap.String("photographer", ph.FullName()))
			return ph, true, nil
		}
		r.log.Debug("no changes for photographer", zap.String("photographer", ph.FullName()))
		return ph, false, nil
	}

	now := time.Now().UTC()
	ph := &domain.Photographer{
		ID:         r.genID.Generate(),
		GivenName:  name.Given,
		FamilyName: name.Family,
		InfixName:  name.Infix,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	_ = r.update(ph, attrs)
	r.policy.Commit(ctx, db, ph, "photographer", zap.String("photographer", ph.FullName()))
	r.log.Info("created new photographer", zap.String("photographer", ph.FullName()))
	return ph, true, nil
}

// update applies the non-identifying attributes. Absent values never erase.
func (r *repo) update(ph *domain.Photographer, attrs domain.Attributes) bool {
	changed := false

	if deceased, ok := attrs.RolesAndStatus.Status[rolestatus.StatusDeceased]; ok && ph.IsDeceased != deceased {
		ph.IsDeceased = deceased
		changed = true
	}

	changed = attrs.BornAt.ApplyPtr(&ph.BornAt) || changed
	changed = attrs.Phone.Apply(&ph.Phone) || changed
	changed = attrs.Email.Apply(&ph.Email) || changed
	changed = attrs.Website.Apply(&ph.Website) || changed

	if changed {
		ph.UpdatedAt = time.Now().UTC()
	}
	return changed
}
