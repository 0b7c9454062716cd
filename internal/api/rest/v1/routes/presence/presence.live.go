package presence

import (
	"github.com/delciak/biolink/internal/api/rest/middleware"
	"github.com/delciak/biolink/internal/api/rest/rest"
	"github.com/delciak/biolink/internal/errors"
	"github.com/delciak/biolink/internal/externalapis"
	"github.com/delciak/biolink/internal/global"
)

type live struct {
	Ctx global.Context
}

func newLive(gctx global.Context) rest.Route {
	return &live{gctx}
}

func (r *live) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:    "/live",
		Method: rest.GET,
		Middleware: []rest.Middleware{
			middleware.NoStore(r.Ctx),
			middleware.RateLimit(r.Ctx, "presence-live", r.Ctx.Config().Limits.Buckets.API),
		},
	}
}

// @Summary Live Presence
// @Description Fetch the raw presence record from upstream, bypassing the poller
// @Produce json
// @Success 200 {object} presence.Record
// @Failure 502 {object} rest.APIErrorResponse
// @Router /v1/presence/live [get]
func (r *live) Handler(ctx *rest.Ctx) rest.APIError {
	rec, err := externalapis.Lanyard.UserPresence(r.Ctx, r.Ctx.Config().Discord.UserID)
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, rec)
}
