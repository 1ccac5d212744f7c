package middlewares

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/alaw989/vp-eng-nuxt-sub002/shared"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

func registerMiddlewares(e *echo.Echo, cfg shared.Config) {
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     cfg.CORSOrigins,
			AllowHeaders:     middleware.DefaultCORSConfig.AllowHeaders,
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: true,
		},
	))

	if cfg.OTelEndpoint != "" {
		e.Use(otelecho.Middleware(shared.ServiceName))
	}

	e.Use(logger())

	e.Use(recovermiddleware())

	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		// do the logging straight inside the error handler
		// this keeps controller methods clean
		slog.Log(ctx.Request().Context(), errorLogLevel(err), err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)

		if ctx.Response().Committed {
			return
		}

		if he, ok := err.(*echo.HTTPError); ok {
			if err := ctx.JSON(he.Code, echo.Map{"message": he.Message}); err != nil {
				slog.Error("could not send error response", "error", err)
			}
			return
		}

		var message any = echo.Map{"message": http.StatusText(http.StatusInternalServerError)}
		if e.Debug {
			message = echo.Map{"message": http.StatusText(http.StatusInternalServerError), "error": err.Error()}
		}
		if m, ok := err.(json.Marshaler); ok {
			message = m
		}

		if ctx.Request().Method == http.MethodHead {
			if err := ctx.NoContent(http.StatusInternalServerError); err != nil {
				slog.Error("could not send error response", "error", err)
			}
		} else {
			if err := ctx.JSON(http.StatusInternalServerError, message); err != nil {
				slog.Error("could not send error response", "error", err)
			}
		}
	}
}

// crawlers probe the old wordpress paths all day, unknown routes are not worth an error
func errorLogLevel(err error) slog.Level {
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code >= http.StatusInternalServerError {
		return slog.LevelError
	}
	if he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// Server creates the echo instance with the shared middleware stack. Routes register
// themselves on it through the router module.
func Server(cfg shared.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.IsDev()
	e.Logger.SetLevel(99)
	registerMiddlewares(e, cfg)
	return e
}
