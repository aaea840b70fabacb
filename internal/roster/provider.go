package roster

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/smallbiznis/photohub/internal/config"
	orgdomain "github.com/smallbiznis/photohub/internal/organization/domain"
	"github.com/smallbiznis/photohub/internal/organization/registry"
	"github.com/smallbiznis/photohub/internal/personname"
	phdomain "github.com/smallbiznis/photohub/internal/photographer/domain"
	pfdomain "github.com/smallbiznis/photohub/internal/portfolio/domain"
	"github.com/smallbiznis/photohub/internal/rolestatus"
	"github.com/smallbiznis/photohub/pkg/patch"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Params collects the provider's dependencies.
type Params struct {
	fx.In

	DB            *gorm.DB
	Log           *zap.Logger
	Cfg           config.Config
	Organizations orgdomain.Repository
	Photographers phdomain.Repository
	Portfolios    pfdomain.Repository
	Registry      *registry.TypeRegistry
	Lists         *Memberlists
}

// Provider scrapes a club's online member table and reconciles the result
// into the store.
type Provider struct {
	db            *gorm.DB
	log           *zap.Logger
	cfg           config.Config
	client        *resty.Client
	organizations orgdomain.Repository
	photographers phdomain.Repository
	portfolios    pfdomain.Repository
	registry      *registry.TypeRegistry
	lists         *Memberlists
}

// NewProvider builds the roster provider.
func NewProvider(p Params) *Provider {
	return &Provider{
		db:            p.DB,
		log:           p.Log.Named("roster"),
		cfg:           p.Cfg,
		client:        resty.New().SetTimeout(p.Cfg.HTTPTimeout),
		organizations: p.Organizations,
		photographers: p.Photographers,
		portfolios:    p.Portfolios,
		registry:      p.Registry,
		lists:         p.Lists,
	}
}

// WaalreIdentity is the organization the built-in roster URL belongs to.
// Loads for it must share a partition with its seed loader.
func WaalreIdentity() orgdomain.Identity {
	return orgdomain.Identity{FullName: "Fotogroep Waalre", Town: "Waalre", Nickname: "FG Waalre"}
}

// LoadWaalre loads the Fotogroep Waalre online member data.
func (p *Provider) LoadWaalre(ctx context.Context) error {
	return p.Load(ctx, WaalreIdentity(), p.cfg.WaalreRosterURL, p.cfg.RosterBaseURL)
}

// Load fetches the member table at rosterURL and upserts one photographer
// and one portfolio per parsed record. A fetch failure aborts the whole
// load for this organization; nothing beyond the organization row itself is
// written.
func (p *Provider) Load(ctx context.Context, identity orgdomain.Identity, rosterURL, baseURL string) error {
	org, _, err := p.organizations.FindCreateUpdate(ctx, p.db, identity, orgdomain.Attributes{
		TypeID:     patch.Set(p.registry.ID(orgdomain.TypeClub)),
		MembersURL: patch.Set(rosterURL),
	})
	if err != nil {
		return err
	}

	p.log.Info("loading online member data", zap.String("organization", org.FullNameTown()))

	resp, err := p.client.R().SetContext(ctx).Get(rosterURL)
	if err != nil {
		p.log.Error("loading member table failed",
			zap.String("organization", org.FullNameTown()),
			zap.String("url", rosterURL), zap.Error(err))
		return err
	}
	if resp.IsError() {
		err := fmt.Errorf("roster fetch for %s: status %s", org.FullNameTown(), resp.Status())
		p.log.Error("loading member table failed",
			zap.String("organization", org.FullNameTown()),
			zap.String("url", rosterURL), zap.String("status", resp.Status()))
		return err
	}

	for _, rec := range Parse(resp.String()) {
		if err := p.applyRecord(ctx, org, baseURL, rec); err != nil {
			return err
		}
	}

	p.refreshFirstImages(ctx, org)
	return nil
}

// applyRecord runs the two reconciliation calls for one parsed row.
func (p *Provider) applyRecord(ctx context.Context, org *orgdomain.Organization, baseURL string, rec Record) error {
	// no phone number on the page means the member is no longer alive
	phAttrs := phdomain.Attributes{
		RolesAndStatus: rolestatus.New().WithStatus(rolestatus.StatusDeceased, rec.Phone == ""),
	}
	if rec.Phone != "" {
		phAttrs.Phone = patch.Set(rec.Phone)
	}
	if rec.Email != "" {
		phAttrs.Email = patch.Set(rec.Email)
	}
	if rec.Website != "" {
		phAttrs.Website = patch.Set(rec.Website)
	}
	if rec.HasBornAt {
		phAttrs.BornAt = patch.Set(rec.BornAt)
	}

	ph, _, err := p.photographers.FindCreateUpdate(ctx, p.db, rec.Name, phAttrs)
	if err != nil {
		return err
	}

	rs := rolestatus.New().
		WithStatus(rolestatus.StatusFormer, !p.lists.IsCurrent(rec.DisplayName, true)).
		WithStatus(rolestatus.StatusCoach, p.lists.IsCoach(rec.DisplayName)).
		WithStatus(rolestatus.StatusProspective, p.lists.IsProspective(rec.DisplayName))

	_, _, err = p.portfolios.FindCreateUpdate(ctx, p.db, org, ph, pfdomain.Attributes{
		RolesAndStatus: rs,
		SiteURL:        patch.Set(MemberPageURL(baseURL, personname.StripRole(rec.DisplayName), p.log)),
	})
	return err
}

var imgSrcRE = regexp.MustCompile(`<img[^>]+src="([^"]+)"`)

// refreshFirstImages is the best-effort secondary pass after a completed
// parse: it probes each member's profile page for its first image and
// stores it as the portfolio's latest image. Individual fetch failures are
// skipped; one final commit persists whatever was found.
func (p *Provider) refreshFirstImages(ctx context.Context, org *orgdomain.Organization) {
	portfolios, err := p.portfolios.ListByOrganization(ctx, p.db, org.ID)
	if err != nil {
		p.log.Error("listing portfolios for image refresh failed",
			zap.String("organization", org.FullNameTown()), zap.Error(err))
		return
	}

	for _, pf := range portfolios {
		if pf.SiteURL == "" {
			continue
		}
		resp, err := p.client.R().SetContext(ctx).Get(pf.SiteURL)
		if err != nil || resp.IsError() {
			continue
		}
		m := imgSrcRE.FindStringSubmatch(resp.String())
		if m == nil {
			continue
		}
		image := resolveAgainst(pf.SiteURL, m[1])
		if image == pf.LatestImage {
			continue
		}

		pf.LatestImage = image
		if pf.LatestThumbnail == "" {
			pf.LatestThumbnail = image
		}
		if err := p.portfolios.Save(ctx, p.db, pf); err != nil {
			p.log.Error("saving refreshed image failed",
				zap.String("organization", org.FullNameTown()),
				zap.String("photographer", pf.Photographer.FullName()), zap.Error(err))
		}
	}
}

func resolveAgainst(base, ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(ref, "/")
}
