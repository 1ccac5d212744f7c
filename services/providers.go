package services

import (
	"github.com/alaw989/vp-eng-nuxt-sub002/shared"
	"go.uber.org/fx"
)

// ServiceModule provides all service-layer constructors
var ServiceModule = fx.Options(
	fx.Provide(fx.Annotate(NewContentService, fx.As(new(shared.ContentService)))),
	fx.Provide(fx.Annotate(NewSitemapService, fx.As(new(shared.SitemapService)))),
	fx.Provide(fx.Annotate(NewRSSService, fx.As(new(shared.RSSService)))),
)
