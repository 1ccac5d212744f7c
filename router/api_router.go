// Copyright (C) 2025 l3montree GmbH
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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package router

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/alaw989/vp-eng-nuxt-sub002/cmd/vpeng/api"
	"github.com/alaw989/vp-eng-nuxt-sub002/config"
	"github.com/alaw989/vp-eng-nuxt-sub002/middlewares"
	"github.com/alaw989/vp-eng-nuxt-sub002/shared"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIRouter struct {
	*echo.Group
}

func NewAPIRouter(srv api.Server, cfg shared.Config) APIRouter {
	apiRouter := srv.Echo.Group("/api")

	apiRouter.GET("/info", func(c echo.Context) error {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		resp := InfoResponse{
			Build: BuildInfo{
				Version:   config.Version,
				Commit:    config.Commit,
				Branch:    config.Branch,
				BuildDate: config.BuildDate,
			},
			Runtime: RuntimeInfo{
				GoVersion:     runtime.Version(),
				NumGoroutines: runtime.NumGoroutine(),
				Mem: MemStats{
					Alloc:      mem.Alloc,
					TotalAlloc: mem.TotalAlloc,
					Sys:        mem.Sys,
					HeapAlloc:  mem.HeapAlloc,
				},
			},
			Process: ProcessInfo{
				PID:           os.Getpid(),
				UptimeSeconds: int(time.Since(api.StartedAt).Seconds()),
				Environment:   cfg.Environment,
			},
			Upstream: UpstreamInfo{
				WordPressAPIURL: cfg.WordPressAPIURL,
				CacheTTL:        cfg.UpstreamCacheTTL.String(),
				CacheSize:       cfg.UpstreamCacheSize,
			},
		}

		host, _ := os.Hostname()
		if host != "" {
			resp.Process.Hostname = host
		}

		return c.JSON(http.StatusOK, resp)
	})

	apiRouter.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	if cfg.IsDev() {
		middlewares.AddProfileEndpoints(apiRouter)
	}
	apiRouter.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})

	return APIRouter{Group: apiRouter}
}
