// Copyright (C) 2023 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/alaw989/vp-eng-nuxt-sub002/analytics"
	"github.com/alaw989/vp-eng-nuxt-sub002/cmd/vpeng/api"
	"github.com/alaw989/vp-eng-nuxt-sub002/config"
	"github.com/alaw989/vp-eng-nuxt-sub002/controllers"
	"github.com/alaw989/vp-eng-nuxt-sub002/integrations"
	"github.com/alaw989/vp-eng-nuxt-sub002/router"
	"github.com/alaw989/vp-eng-nuxt-sub002/services"
	"github.com/alaw989/vp-eng-nuxt-sub002/shared"
	"github.com/alaw989/vp-eng-nuxt-sub002/transition"
	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func main() {
	shared.LoadDotEnv() // nolint: errcheck

	cfg, err := shared.LoadAppConfig(os.Getenv("VPENG_CONFIG_FILE"))
	if err != nil {
		// the logger is not configured yet
		shared.InitLogger(slog.LevelInfo)
		slog.Error("could not load configuration", "err", err)
		os.Exit(1)
	}
	shared.InitLogger(shared.ParseLogLevel(cfg.LogLevel))

	if cfg.ErrorTrackingDSN != "" {
		initSentry(cfg)

		// Catch panics
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	shutdownTracer, err := shared.InitTracer(context.Background(), cfg)
	if err != nil {
		slog.Error("could not initialize tracing, continuing without", "err", err)
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracer(ctx); err != nil {
				slog.Warn("could not flush traces", "err", err)
			}
		}()
	}

	fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: slog.Default()}
		}),
		fx.Supply(cfg),
		fx.Provide(api.NewServer),
		integrations.Module,
		services.ServiceModule,
		transition.Module,
		analytics.Module,
		controllers.ControllerModule,
		router.RouterModule,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(ContentRouter router.ContentRouter) {}),
		fx.Invoke(func(FeedRouter router.FeedRouter) {}),
		fx.Invoke(func(PageExperienceRouter router.PageExperienceRouter) {}),
	).Run()
}

func initSentry(cfg shared.Config) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.ErrorTrackingDSN,
		Environment: cfg.Environment,
		Release:     config.Version,

		// In debug mode, the debug information is printed to stdout to help you
		// understand what Sentry is doing.
		Debug: cfg.IsDev(),

		// Configures whether SDK should generate and attach stack traces to pure
		// capture message calls.
		AttachStacktrace: true,

		SendDefaultPII: false,
	})
	if err != nil {
		slog.Error("Failed to init sentry", "err", err)
	}
}
