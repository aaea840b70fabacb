// Package seed inserts the hardcoded per-club member data. The literal
// tables below bootstrap each club before (or without) its live data
// sources; every row routes through the shared loader.AddMember helper.
package seed

import (
	"context"
	"time"

	"github.com/smallbiznis/photohub/internal/loader"
	orgdomain "github.com/smallbiznis/photohub/internal/organization/domain"
	"github.com/smallbiznis/photohub/internal/organization/registry"
	"github.com/smallbiznis/photohub/internal/personname"
	phdomain "github.com/smallbiznis/photohub/internal/photographer/domain"
	pfdomain "github.com/smallbiznis/photohub/internal/portfolio/domain"
	"github.com/smallbiznis/photohub/internal/rolestatus"
	"github.com/smallbiznis/photohub/pkg/patch"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Club is one hardcoded seed table.
type Club struct {
	Identity orgdomain.Identity
	Website  string
	Members  []loader.Member
}

// Waalre returns the Fotogroep Waalre seed table.
func Waalre() Club {
	return Club{
		Identity: orgdomain.Identity{FullName: "Fotogroep Waalre", Town: "Waalre", Nickname: "FG Waalre"},
		Website:  "https://www.fotogroepwaalre.nl",
		Members: []loader.Member{
			member("Carel", "", "Bullens", roles(rolestatus.RoleViceChairman)),
			member("Erik", "van", "Geest", roles(rolestatus.RoleAdmin)),
			member("Henriëtte", "van", "Ekert", roles(rolestatus.RoleAdmin)),
			member("Jos", "", "Jansen", roles(rolestatus.RoleTreasurer)),
			member("Kees", "van", "Gemert", roles(rolestatus.RoleSecretary)),
			member("Marijke", "", "Gallas", statuses(rolestatus.StatusHonorary)),
			member("Miek", "", "Kerkhoven", roles(rolestatus.RoleChairman)),
		},
	}
}

// BellusImago returns the Fotoclub Bellus Imago seed table.
func BellusImago() Club {
	return Club{
		Identity: orgdomain.Identity{FullName: "Fotoclub Bellus Imago", Town: "Veldhoven", Nickname: "FC BellusImago"},
		Website:  "https://www.fotoClubBellusImago.nl",
		Members: []loader.Member{
			{
				Name:           personname.Name{Given: "Rico", Family: "Coolen"},
				RolesAndStatus: rolestatus.New(),
				Website:        patch.Set("https://www.ricoco.nl"),
				Email:          patch.Set("info@ricoco.nl"),
				SiteURL:        patch.Set("https://www.fotoclubbellusimago.nl/rico.html"),
				LatestImage:    patch.Set("https://www.fotoclubbellusimago.nl/uploads/5/5/1/2/55129719/vrijwerk-rico-3_orig.jpg"),
			},
			{
				Name:           personname.Name{Given: "Loek", Family: "Dirkx"},
				RolesAndStatus: roles(rolestatus.RoleChairman),
				SiteURL:        patch.Set("https://www.fotoclubbellusimago.nl/loek.html"),
				LatestImage:    patch.Set("https://www.fotoclubbellusimago.nl/uploads/5/5/1/2/55129719/vrijwerk-loek-1_2_orig.jpg"),
			},
		},
	}
}

// DeGender returns the Fotogroep de Gender seed table.
func DeGender() Club {
	born := time.Date(1954, time.October, 9, 0, 12, 0, 0, time.UTC)
	return Club{
		Identity: orgdomain.Identity{FullName: "Fotogroep de Gender", Town: "Eindhoven", Nickname: "FG deGender"},
		Website:  "https://www.fcdegender.nl",
		Members: []loader.Member{
			{
				Name:           personname.Name{Given: "Mariet", Family: "Wielders"},
				RolesAndStatus: rolestatus.New().WithRole(rolestatus.RoleChairman, false),
				Website:        patch.Set("https://www.m3w.nl"),
				BornAt:         patch.Set(born),
				SiteURL:        patch.Set("https://www.fcdegender.nl/wp-content/uploads/Expositie%202023/Mariet/"),
				LatestImage:    patch.Set("https://www.fcdegender.nl/wp-content/uploads/Expositie%202023/Mariet/slides/Mariet%203.jpg"),
			},
			{
				Name:           personname.Name{Given: "Peter", Infix: "van den", Family: "Hamer"},
				RolesAndStatus: rolestatus.New().WithStatus(rolestatus.StatusProspective, false),
				SiteURL:        patch.Set("http://www.vdHamer.com/fgWaalre/Empty_Website/"),
				LatestImage:    patch.Set("http://www.vdhamer.com/wp-content/uploads/2024/04/2023_Cornwall_R5_581-Pano.jpg"),
			},
			{
				Name:           personname.Name{Given: "Bettina", Infix: "de", Family: "Graaf"},
				RolesAndStatus: rolestatus.New().WithStatus(rolestatus.StatusProspective, false),
				SiteURL:        patch.Set("http://www.vdHamer.com/fgWaalre/Empty_Website/"),
				LatestImage:    patch.Set("http://www.vdhamer.com/wp-content/uploads/2023/11/BettinaDeGraaf.jpeg"),
			},
		},
	}
}

// Anders returns the Fotogroep Anders seed table.
func Anders() Club {
	return Club{
		Identity: orgdomain.Identity{FullName: "Fotogroep Anders", Town: "Eindhoven", Nickname: "FG Anders"},
		Website:  "https://nl.qrcodechimp.com/page/a6d3r7?v=chk1697032881",
		Members: []loader.Member{
			{
				Name:           personname.Name{Given: "Helga", Family: "Nuchelmans"},
				RolesAndStatus: roles(rolestatus.RoleAdmin),
				SiteURL:        patch.Set("https://helganuchelmans.nl"),
				LatestImage:    patch.Set("https://cdn.myportfolio.com/d8801b208f49ae95bc80b15c07cde6f2/902cb616-6aaf-4f1f-9d40-3487d0e1254a_rw_1200.jpg"),
			},
			{
				Name:           personname.Name{Given: "Mirjam", Family: "Evers"},
				RolesAndStatus: roles(rolestatus.RoleAdmin),
				SiteURL:        patch.Set("https://me4photo.jimdosite.com/portfolio/"),
				LatestImage:    patch.Set("https://jimdo-storage.freetls.fastly.net/image/bf4d707f-ff72-4e16-8f2f-63680e7a8f91.jpg"),
			},
			{
				Name:            personname.Name{Given: "Lotte", Family: "Vrij"},
				RolesAndStatus:  roles(rolestatus.RoleAdmin),
				SiteURL:         patch.Set("http://www.vdHamer.com/fgWaalre/Empty_Website/"),
				LatestImage:     patch.Set("https://image.jimcdn.com/app/cms/image/transf/none/path/sb2e92183adfb60fb/image/ie69f110f416b6822/version/1678882175/image.jpg"),
				LatestThumbnail: patch.Set("https://image.jimcdn.com/app/cms/image/transf/dimension=150x150:mode=crop:format=jpg/path/sb2e92183adfb60fb/image/ie69f110f416b6822/version/1678882175/image.jpg"),
			},
			{
				Name:           personname.Name{Given: "Dennis", Family: "Verbruggen"},
				RolesAndStatus: roles(rolestatus.RoleAdmin),
				SiteURL:        patch.Set("http://www.vdHamer.com/fgWaalre/Empty_Website/"),
				LatestImage:    patch.Set("http://www.vdhamer.com/wp-content/uploads/2023/11/DennisVerbruggen.jpeg"),
			},
		},
	}
}

// AllClubs lists every hardcoded seed table.
func AllClubs() []Club {
	return []Club{Waalre(), BellusImago(), DeGender(), Anders()}
}

// Loader inserts seed tables through the reconciliation repositories.
type Loader struct {
	log           *zap.Logger
	organizations orgdomain.Repository
	photographers phdomain.Repository
	portfolios    pfdomain.Repository
	registry      *registry.TypeRegistry
}

// NewLoader builds a seed loader.
func NewLoader(log *zap.Logger, organizations orgdomain.Repository,
	photographers phdomain.Repository, portfolios pfdomain.Repository,
	reg *registry.TypeRegistry) *Loader {
	return &Loader{
		log:           log.Named("seed"),
		organizations: organizations,
		photographers: photographers,
		portfolios:    portfolios,
		registry:      reg,
	}
}

// EnsureClub upserts one club and its hardcoded members inside a single
// transaction, marking the club so the UI knows seed data was applied.
func (l *Loader) EnsureClub(ctx context.Context, db *gorm.DB, club Club) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attrs := orgdomain.Attributes{
			TypeID:      patch.Set(l.registry.ID(orgdomain.TypeClub)),
			HasSeedData: patch.Set(true),
		}
		if club.Website != "" {
			attrs.Website = patch.Set(club.Website)
		}

		org, _, err := l.organizations.FindCreateUpdate(ctx, tx, club.Identity, attrs)
		if err != nil {
			return err
		}

		l.log.Debug("inserting hardcoded member data",
			zap.String("organization", org.FullNameTown()),
			zap.Int("members", len(club.Members)))

		for _, m := range club.Members {
			if err := loader.AddMember(ctx, tx, l.photographers, l.portfolios, org, m); err != nil {
				return err
			}
		}
		return nil
	})
}

// EnsureAll seeds every hardcoded club.
func (l *Loader) EnsureAll(ctx context.Context, db *gorm.DB) error {
	for _, club := range AllClubs() {
		if err := l.EnsureClub(ctx, db, club); err != nil {
			return err
		}
	}
	return nil
}

func member(given, infix, family string, rs rolestatus.RolesAndStatus) loader.Member {
	return loader.Member{
		Name:           personname.Name{Given: given, Infix: infix, Family: family},
		RolesAndStatus: rs,
	}
}

func roles(rr ...rolestatus.Role) rolestatus.RolesAndStatus {
	rs := rolestatus.New()
	for _, r := range rr {
		rs.Role[r] = true
	}
	return rs
}

func statuses(ss ...rolestatus.Status) rolestatus.RolesAndStatus {
	rs := rolestatus.New()
	for _, s := range ss {
		rs.Status[s] = true
	}
	return rs
}
