package di

import (
	"go.uber.org/fx"

	"github.com/6631501193-blip/tracking-server/internal/app"
	"github.com/6631501193-blip/tracking-server/internal/config"
	"github.com/6631501193-blip/tracking-server/internal/logger"
	"github.com/6631501193-blip/tracking-server/internal/pkg/auth"
	"github.com/6631501193-blip/tracking-server/internal/server/http/handlers"
	"github.com/6631501193-blip/tracking-server/internal/server/http/router"
	"github.com/6631501193-blip/tracking-server/internal/storage/postgres"
	"github.com/6631501193-blip/tracking-server/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.TrackerFacade) handlers.TrackerFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
