package router

import "go.uber.org/fx"

var RouterModule = fx.Options(
	fx.Provide(NewAPIRouter),
	fx.Provide(NewContentRouter),
	fx.Provide(NewFeedRouter),
	fx.Provide(NewPageExperienceRouter),
)
