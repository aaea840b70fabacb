// Package feed ingests the remote JSON organization list that seeds clubs
// and museums. The feed is seed configuration, not a runtime fallback: a
// document that cannot be fetched or decoded fails the whole ingestion.
package feed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/smallbiznis/photohub/internal/config"
	orgdomain "github.com/smallbiznis/photohub/internal/organization/domain"
	"github.com/smallbiznis/photohub/internal/organization/registry"
	"github.com/smallbiznis/photohub/pkg/patch"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module provides the feed ingester.
var Module = fx.Module("feed",
	fx.Provide(NewIngester),
)

type entry struct {
	IDPlus struct {
		FullName string `json:"fullName"`
		Town     string `json:"town"`
		NickName string `json:"nickName"`
	} `json:"idPlus"`
	Coordinates *struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"coordinates"`
	Website     *string                 `json:"website"`
	Wikipedia   *string                 `json:"wikipedia"`
	Description []orgdomain.Description `json:"description"`
	NLSpecific  *struct {
		FotobondNumber *int16 `json:"fotobondNumber"`
		KvkNumber      *int32 `json:"kvkNumber"`
	} `json:"nlSpecific"`
}

type document struct {
	Clubs   []entry `json:"clubs"`
	Museums []entry `json:"museums"`
}

// Ingester fetches the organization feed and reconciles every entry.
type Ingester struct {
	db            *gorm.DB
	log           *zap.Logger
	cfg           config.Config
	client        *resty.Client
	organizations orgdomain.Repository
	registry      *registry.TypeRegistry
}

// NewIngester builds the feed ingester.
func NewIngester(db *gorm.DB, log *zap.Logger, cfg config.Config,
	organizations orgdomain.Repository, reg *registry.TypeRegistry) *Ingester {
	return &Ingester{
		db:            db,
		log:           log.Named("feed"),
		cfg:           cfg,
		client:        resty.New().SetTimeout(cfg.HTTPTimeout),
		organizations: organizations,
		registry:      reg,
	}
}

// Load fetches and ingests the configured organization feed.
func (i *Ingester) Load(ctx context.Context) error {
	return i.LoadURL(ctx, i.cfg.OrganizationFeedURL)
}

// LoadURL ingests the feed at url: both categories are walked in order and
// each category is committed as one transaction after all of its items.
func (i *Ingester) LoadURL(ctx context.Context, url string) error {
	resp, err := i.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return fmt.Errorf("fetch organization feed %s: %w", url, err)
	}
	if resp.IsError() {
		return fmt.Errorf("fetch organization feed %s: status %s", url, resp.Status())
	}

	var doc document
	if err := json.Unmarshal(resp.Body(), &doc); err != nil {
		return fmt.Errorf("decode organization feed %s: %w", url, err)
	}

	for _, category := range []struct {
		typeName orgdomain.TypeName
		entries  []entry
	}{
		{orgdomain.TypeClub, doc.Clubs},
		{orgdomain.TypeMuseum, doc.Museums},
	} {
		i.log.Info("ingesting organizations",
			zap.String("category", category.typeName.Plural()),
			zap.Int("count", len(category.entries)))

		err := i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, e := range category.entries {
				if err := i.apply(ctx, tx, category.typeName, e); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("ingest %s: %w", category.typeName.Plural(), err)
		}
	}
	return nil
}

// apply reconciles one feed entry. Keys missing from the entry stay absent
// in the patch and never erase stored values.
func (i *Ingester) apply(ctx context.Context, tx *gorm.DB, typeName orgdomain.TypeName, e entry) error {
	identity := orgdomain.Identity{
		FullName: e.IDPlus.FullName,
		Town:     e.IDPlus.Town,
		Nickname: e.IDPlus.NickName,
	}

	attrs := orgdomain.Attributes{
		TypeID:       patch.Set(i.registry.ID(typeName)),
		Descriptions: e.Description,
	}
	if e.Coordinates != nil {
		attrs.Coordinates = patch.Set(orgdomain.Coordinates{
			Latitude:  e.Coordinates.Latitude,
			Longitude: e.Coordinates.Longitude,
		})
	}
	if e.Website != nil {
		attrs.Website = patch.Set(*e.Website)
	}
	if e.Wikipedia != nil {
		attrs.Wikipedia = patch.Set(*e.Wikipedia)
	}
	if e.NLSpecific != nil {
		if e.NLSpecific.FotobondNumber != nil {
			attrs.FotobondNumber = patch.Set(*e.NLSpecific.FotobondNumber)
		}
		if e.NLSpecific.KvkNumber != nil {
			attrs.KvkNumber = patch.Set(*e.NLSpecific.KvkNumber)
		}
	}

	_, _, err := i.organizations.FindCreateUpdate(ctx, tx, identity, attrs)
	return err
}
