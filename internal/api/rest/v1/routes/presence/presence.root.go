package presence

import (
	"github.com/delciak/biolink/internal/api/rest/middleware"
	"github.com/delciak/biolink/internal/api/rest/rest"
	"github.com/delciak/biolink/internal/global"
)

type Route struct {
	Ctx global.Context
}

func New(gctx global.Context) rest.Route {
	return &Route{gctx}
}

func (r *Route) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:    "/presence",
		Method: rest.GET,
		Children: []rest.Route{
			newLive(r.Ctx),
			newCycle(r.Ctx),
		},
		Middleware: []rest.Middleware{
			middleware.SetCacheControl(r.Ctx, 5, nil),
			middleware.RateLimit(r.Ctx, "presence", r.Ctx.Config().Limits.Buckets.API),
		},
	}
}

// @Summary Presence Snapshot
// @Description The aggregated presence state: carousel entries, cursor, custom status and progress
// @Produce json
// @Success 200 {object} presence.Snapshot
// @Router /v1/presence [get]
func (r *Route) Handler(ctx *rest.Ctx) rest.APIError {
	return ctx.JSON(rest.OK, r.Ctx.Inst().Presence.Snapshot())
}
