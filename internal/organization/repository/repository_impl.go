package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/smallbiznis/photohub/internal/config"
	"github.com/smallbiznis/photohub/internal/organization/domain"
	"github.com/smallbiznis/photohub/internal/reconcile"
	"github.com/smallbiznis/photohub/pkg/patch"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type repo struct {
	log    *zap.Logger
	genID  *snowflake.Node
	policy reconcile.Policy
}

// Provide builds the organization repository.
func Provide(log *zap.Logger, cfg config.Config, genID *snowflake.Node) domain.Repository {
	named := log.Named("organization.repo")
	return &repo{
		log:    named,
		genID:  genID,
		policy: reconcile.Policy{Log: named, Debug: cfg.Debug},
	}
}

func (r *repo) FindCreateUpdate(ctx context.Context, db *gorm.DB, id domain.Identity,
	attrs domain.Attributes) (*domain.Organization, bool, error) {

	var matches []*domain.Organization
	err := db.WithContext(ctx).
		Where("full_name = ? AND town = ?", id.FullName, id.Town).
		Order("id").
		Find(&matches).Error
	if err != nil {
		return nil, false, err
	}

	r.policy.Duplicates("organization", len(matches),
		zap.String("fullName", id.FullName), zap.String("town", id.Town))

	if id.Nickname != "" {
		attrs.Nickname = patch.Set(id.Nickname)
	}

	if len(matches) > 0 {
		org := matches[0]
		if changed := r.update(org, attrs); changed {
			r.policy.Commit(ctx, db, org, "organization", zap.String("organization", org.FullNameTown()))
			r.log.Info("updated info for organization", zap.String("organization", org.FullNameTown()))
			return org, true, nil
		}
		r.log.Debug("no changes for organization", zap.String("organization", org.FullNameTown()))
		return org, false, nil
	}

	now := time.Now().UTC()
	org := &domain.Organization{
		ID:        r.genID.Generate(),
		FullName:  id.FullName,
		Town:      id.Town,
		Slug:      slug.Make(id.FullName + " " + id.Town),
		CreatedAt: now,
		UpdatedAt: now,
	}
	_ = r.update(org, attrs)
	r.policy.Commit(ctx, db, org, "organization", zap.String("organization", org.FullNameTown()))
	r.log.Info("created new organization", zap.String("organization", org.FullNameTown()))
	return org, true, nil
}

// update applies the non-identifying attributes and reports whether anything
// changed. Unset patch fields never erase stored values.
func (r *repo) update(org *domain.Organization, attrs domain.Attributes) bool {
	changed := attrs.TypeID.Apply(&org.TypeID)
	changed = attrs.Nickname.Apply(&org.Nickname) || changed
	changed = attrs.Website.Apply(&org.Website) || changed
	changed = attrs.Wikipedia.Apply(&org.Wikipedia) || changed
	changed = attrs.MembersURL.Apply(&org.MembersURL) || changed
	changed = attrs.FotobondNumber.Apply(&org.FotobondNumber) || changed
	changed = attrs.KvkNumber.Apply(&org.KvkNumber) || changed
	changed = attrs.HasSeedData.Apply(&org.HasSeedData) || changed

	if coords, ok := attrs.Coordinates.Get(); ok {
		if org.Latitude != coords.Latitude || org.Longitude != coords.Longitude {
			org.Latitude = coords.Latitude
			org.Longitude = coords.Longitude
			changed = true
		}
	}

	if len(attrs.Descriptions) > 0 {
		raw, err := json.Marshal(attrs.Descriptions)
		if err == nil && string(raw) != string(org.Descriptions) {
			org.Descriptions = raw
			changed = true
		}
	}

	if changed {
		org.UpdatedAt = time.Now().UTC()
	}
	return changed
}

func (r *repo) FindCreateUpdateType(ctx context.Context, db *gorm.DB,
	name domain.TypeName) (*domain.OrganizationType, bool, error) {

	var matches []*domain.OrganizationType
	err := db.WithContext(ctx).
		Where("name = ?", string(name)).
		Order("id").
		Find(&matches).Error
	if err != nil {
		return nil, false, err
	}

	r.policy.Duplicates("organization type", len(matches), zap.String("name", string(name)))

	if len(matches) > 0 {
		// type records have no mutable attributes beyond the name
		return matches[0], false, nil
	}

	now := time.Now().UTC()
	typ := &domain.OrganizationType{
		ID:        r.genID.Generate(),
		Name:      string(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.policy.Commit(ctx, db, typ, "organization type", zap.String("name", string(name)))
	r.log.Info("created new organization type", zap.String("name", string(name)))
	return typ, true, nil
}
