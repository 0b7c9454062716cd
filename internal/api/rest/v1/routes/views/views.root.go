package views

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
		URI:    "/views",
		Method: rest.GET,
		Middleware: []rest.Middleware{
			middleware.SetCacheControl(r.Ctx, 10, nil),
			middleware.RateLimit(r.Ctx, "views", r.Ctx.Config().Limits.Buckets.API),
		},
	}
}

// @Summary View Count
// @Description The current page view count
// @Produce json
// @Success 200 {object} CountResponse
// @Router /v1/views [get]
func (r *Route) Handler(ctx *rest.Ctx) rest.APIError {
	return ctx.JSON(rest.OK, CountResponse{
		Count: r.Ctx.Inst().Views.Read(),
	})
}

type CountResponse struct {
	Count int64 `json:"count"`
}
