package roster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/photohub/internal/config"
	orgdomain "github.com/smallbiznis/photohub/internal/organization/domain"
	"github.com/smallbiznis/photohub/internal/organization/registry"
	orgrepo "github.com/smallbiznis/photohub/internal/organization/repository"
	phdomain "github.com/smallbiznis/photohub/internal/photographer/domain"
	phrepo "github.com/smallbiznis/photohub/internal/photographer/repository"
	pfdomain "github.com/smallbiznis/photohub/internal/portfolio/domain"
	pfrepo "github.com/smallbiznis/photohub/internal/portfolio/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// The type registry may only be built once per process, so the provider
// tests share one database.
var (
	setupOnce sync.Once
	sharedDB  *gorm.DB
	sharedP   *Provider
)

func setupProvider(t *testing.T) (*Provider, *gorm.DB) {
	t.Helper()
	setupOnce.Do(func() {
		conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
		if err != nil {
			t.Fatalf("open db: %v", err)
		}
		err = conn.AutoMigrate(
			&orgdomain.OrganizationType{}, &orgdomain.Organization{},
			&phdomain.Photographer{}, &pfdomain.MemberPortfolio{})
		if err != nil {
			t.Fatalf("migrate: %v", err)
		}

		node, err := snowflake.NewNode(1)
		if err != nil {
			t.Fatalf("snowflake: %v", err)
		}

		cfg := config.Config{Debug: true, HTTPTimeout: time.Second}
		log := zap.NewNop()
		organizations := orgrepo.Provide(log, cfg, node)
		reg, err := registry.Init(conn, organizations, log)
		if err != nil {
			t.Fatalf("registry: %v", err)
		}
		lists, err := NewMemberlists(config.Config{MemberlistsPath: t.TempDir()}, log)
		if err != nil {
			t.Fatalf("memberlists: %v", err)
		}

		sharedDB = conn
		sharedP = NewProvider(Params{
			DB:            conn,
			Log:           log,
			Cfg:           cfg,
			Organizations: organizations,
			Photographers: phrepo.Provide(log, cfg, node),
			Portfolios:    pfrepo.Provide(log, cfg, node),
			Registry:      reg,
			Lists:         lists,
		})
	})
	return sharedP, sharedDB
}

const memberPage = `<html><body>
<img class="thumb" src="2023/Spring_Exhibition.jpg">
</body></html>`

func TestLoadReconcilesScrapedRoster(t *testing.T) {
	p, conn := setupProvider(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/leden.html" {
			_, _ = w.Write([]byte(rosterPage))
			return
		}
		if strings.HasSuffix(r.URL.Path, "/") {
			_, _ = w.Write([]byte(memberPage))
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	identity := orgdomain.Identity{FullName: "Fotogroep Testdorp", Town: "Testdorp"}
	require.NoError(t, p.Load(ctx, identity, srv.URL+"/leden.html", srv.URL))

	var org orgdomain.Organization
	require.NoError(t, conn.Where("full_name = ?", "Fotogroep Testdorp").First(&org).Error)
	assert.Equal(t, srv.URL+"/leden.html", org.MembersURL)

	// First row: full details, alive.
	var peter phdomain.Photographer
	require.NoError(t, conn.Where("given_name = ? AND family_name = ?", "Peter", "Hamer").
		First(&peter).Error)
	assert.False(t, peter.IsDeceased)
	assert.Equal(t, "040-1234567", peter.Phone)
	assert.Equal(t, "peter@example.com", peter.Email)
	require.NotNil(t, peter.BornAt)
	assert.Equal(t, 1957, peter.BornAt.Year())

	// Second row: the phone cell is empty, so the member is deceased.
	var henriette phdomain.Photographer
	require.NoError(t, conn.Where("given_name = ? AND family_name = ?", "Henriëtte", "Ekert").
		First(&henriette).Error)
	assert.True(t, henriette.IsDeceased)

	// Portfolio URLs come from the display name with the role stripped.
	var pf pfdomain.MemberPortfolio
	require.NoError(t, conn.Where("organization_id = ? AND photographer_id = ?", org.ID, peter.ID).
		First(&pf).Error)
	assert.Equal(t, srv.URL+"/Peter_van_den_Hamer/", pf.SiteURL)

	// The image refresh pass found the first image on the member page.
	assert.Equal(t, srv.URL+"/Peter_van_den_Hamer/2023/Spring_Exhibition.jpg", pf.LatestImage)
	assert.Equal(t, pf.LatestImage, pf.LatestThumbnail)
}

func TestLoadFetchFailureAbortsWithoutMemberWrites(t *testing.T) {
	p, conn := setupProvider(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	identity := orgdomain.Identity{FullName: "Fotogroep Offline", Town: "Nergens"}
	require.Error(t, p.Load(ctx, identity, srv.URL+"/leden.html", srv.URL))

	// The organization row itself is written before the fetch, the members
	// are not.
	var org orgdomain.Organization
	require.NoError(t, conn.Where("full_name = ?", "Fotogroep Offline").First(&org).Error)

	var members int64
	require.NoError(t, conn.Model(&pfdomain.MemberPortfolio{}).
		Where("organization_id = ?", org.ID).Count(&members).Error)
	assert.Zero(t, members)
}

func TestLoadIsIdempotent(t *testing.T) {
	p, conn := setupProvider(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/leden.html" {
			_, _ = w.Write([]byte(rosterPage))
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	identity := orgdomain.Identity{FullName: "Fotogroep Tweemaal", Town: "Testdorp"}
	require.NoError(t, p.Load(ctx, identity, srv.URL+"/leden.html", srv.URL))
	require.NoError(t, p.Load(ctx, identity, srv.URL+"/leden.html", srv.URL))

	var org orgdomain.Organization
	require.NoError(t, conn.Where("full_name = ?", "Fotogroep Tweemaal").First(&org).Error)

	var members int64
	require.NoError(t, conn.Model(&pfdomain.MemberPortfolio{}).
		Where("organization_id = ?", org.ID).Count(&members).Error)
	assert.EqualValues(t, 2, members)
}
