package photographer

import (
	"github.com/smallbiznis/photohub/internal/photographer/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("photographer",
	fx.Provide(repository.Provide),
)
