package middlewares

import (
	"net/http"
	"net/url"

	"github.com/alaw989/vp-eng-nuxt-sub002/monitoring"
	"github.com/alaw989/vp-eng-nuxt-sub002/shared"
	"github.com/labstack/echo/v4"
)

const (
	TransitionHeader    = "X-Page-Transition"
	ReducedMotionHeader = "Sec-CH-Prefers-Reduced-Motion"
)

// PageTransition tells the client which animation to play for the navigation that
// led to this request. Navigations from other hosts start without a from path.
func PageTransition(selector shared.TransitionSelector) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			if req.Method != http.MethodGet {
				return next(ctx)
			}

			reducedMotion := req.Header.Get(ReducedMotionHeader) == "reduce"
			name := selector.Select(refererPath(req), req.URL.Path, reducedMotion)
			ctx.Response().Header().Set(TransitionHeader, name)
			ctx.Response().Header().Add("Vary", ReducedMotionHeader)
			monitoring.PageTransitions.WithLabelValues(name).Inc()

			return next(ctx)
		}
	}
}

func refererPath(req *http.Request) string {
	ref := req.Referer()
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil || u.Host != req.Host {
		return ""
	}
	return u.Path
}
