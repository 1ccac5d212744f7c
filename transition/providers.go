package transition

import (
	"github.com/alaw989/vp-eng-nuxt-sub002/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(fx.Annotate(NewSelector, fx.As(new(shared.TransitionSelector)))),
)
