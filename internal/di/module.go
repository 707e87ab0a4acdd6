package di

import (
	"go.uber.org/fx"

	"github.com/akalomiris/reportly/internal/app"
	"github.com/akalomiris/reportly/internal/config"
	"github.com/akalomiris/reportly/internal/logger"
	"github.com/akalomiris/reportly/internal/render"
	"github.com/akalomiris/reportly/internal/server/http/handlers"
	"github.com/akalomiris/reportly/internal/server/http/router"
	"github.com/akalomiris/reportly/internal/storage/postgres"
	"github.com/akalomiris/reportly/internal/storage/reportfs"
	"github.com/akalomiris/reportly/internal/usecase"
	"github.com/akalomiris/reportly/internal/worker"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		reportfs.Module,
		render.Module,
		usecase.Module,
		fx.Provide(
			func(s *reportfs.Store) usecase.ReportStore { return s },
			func(r *render.Renderer) usecase.Renderer { return r },
			func(g *worker.ReportGenerator) app.RenderScheduler { return g },
			func(f *app.ReportFacade) handlers.ReportFacade { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
