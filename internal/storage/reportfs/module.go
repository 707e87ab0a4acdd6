package reportfs

import (
	"go.uber.org/fx"

	"github.com/akalomiris/reportly/internal/config"
)

// Module wires the filesystem report store.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Config *config.Config
}

func newStore(p storeParams) (*Store, error) {
	return New(p.Config.ReportsDir)
}
