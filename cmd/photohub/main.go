package main

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/photohub/internal/config"
	"github.com/smallbiznis/photohub/internal/feed"
	"github.com/smallbiznis/photohub/internal/migration"
	"github.com/smallbiznis/photohub/internal/organization"
	"github.com/smallbiznis/photohub/internal/organization/registry"
	"github.com/smallbiznis/photohub/internal/photographer"
	"github.com/smallbiznis/photohub/internal/portfolio"
	"github.com/smallbiznis/photohub/internal/roster"
	"github.com/smallbiznis/photohub/internal/seed"
	"github.com/smallbiznis/photohub/internal/syncqueue"
	"github.com/smallbiznis/photohub/internal/vote"
	"github.com/smallbiznis/photohub/pkg/db"
	"github.com/smallbiznis/photohub/pkg/log"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	app := fx.New(
		config.Module,
		log.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,

		organization.Module,
		photographer.Module,
		portfolio.Module,

		// Schema and type records must exist before any loader runs.
		migration.Module,
		registry.Module,

		seed.Module,
		roster.Module,
		feed.Module,
		syncqueue.Module,
		vote.Module,

		fx.Invoke(StartLoaders),
	)
	app.Run()
}

// roadmapItems are the feature keys users can vote on.
var roadmapItems = []string{"map_view", "expositions", "photo_uploads"}

// logRoadmapVotes reports the current standings. Best effort: the counter
// service being unreachable never fails a sync run.
func logRoadmapVotes(ctx context.Context, logger *zap.Logger, votes *vote.Client) {
	for _, item := range roadmapItems {
		n, err := votes.Count(ctx, item)
		if err != nil {
			logger.Warn("roadmap vote count unavailable", zap.String("item", item), zap.Error(err))
			return
		}
		logger.Info("roadmap votes", zap.String("item", item), zap.Int("votes", n))
	}
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

// StartLoaders ingests the organization feed on the main goroutine, then
// hands the per-club loaders to the sync queue. Each club gets its own
// partition, so loads for one club are serialized while different clubs
// proceed in parallel.
func StartLoaders(lc fx.Lifecycle, shutdowner fx.Shutdowner, logger *zap.Logger,
	conn *gorm.DB, q *syncqueue.Queue, ingester *feed.Ingester,
	loader *seed.Loader, rosters *roster.Provider, votes *vote.Client) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := ingester.Load(ctx); err != nil {
				// Organizations are the root of the graph; without them
				// there is nothing for the member loaders to attach to.
				return err
			}

			for _, club := range seed.AllClubs() {
				club := club
				q.Submit(club.Identity.FullNameTown(), func(ctx context.Context) error {
					return loader.EnsureClub(ctx, conn, club)
				})
			}
			// Shares the Waalre seed partition, so the roster refresh runs
			// after the hardcoded members are in place.
			q.Submit(roster.WaalreIdentity().FullNameTown(), func(ctx context.Context) error {
				return rosters.LoadWaalre(ctx)
			})

			go func() {
				if err := q.Shutdown(context.Background()); err != nil {
					logger.Error("drain loaders", zap.Error(err))
				}
				logRoadmapVotes(context.Background(), logger, votes)
				_ = shutdowner.Shutdown()
			}()
			return nil
		},
	})
}
