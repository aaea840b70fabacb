package portfolio

import (
	"github.com/smallbiznis/photohub/internal/portfolio/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("portfolio",
	fx.Provide(repository.Provide),
)
