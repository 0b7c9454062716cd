package routes

import (
	"strconv"
	"time"

	"github.com/delciak/biolink/internal/api/rest/middleware"
	"github.com/delciak/biolink/internal/api/rest/rest"
	"github.com/delciak/biolink/internal/api/rest/v1/routes/presence"
	"github.com/delciak/biolink/internal/api/rest/v1/routes/views"
	"github.com/delciak/biolink/internal/global"
)

var uptime = time.Now()

type Route struct {
	Ctx global.Context
}

func New(gctx global.Context) rest.Route {
	return &Route{gctx}
}

func (r *Route) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:    "/v1" + r.Ctx.Config().Http.VersionSuffix,
		Method: rest.GET,
		Children: []rest.Route{
			presence.New(r.Ctx),
			views.New(r.Ctx),
			views.NewIncrement(r.Ctx),
		},
		Middleware: []rest.Middleware{
			middleware.SetCacheControl(r.Ctx, 30, nil),
			middleware.RateLimit(r.Ctx, "api", r.Ctx.Config().Limits.Buckets.API),
		},
	}
}

// @Summary API Root
// @Description Liveness and uptime of the API
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /v1 [get]
func (r *Route) Handler(ctx *rest.Ctx) rest.APIError {
	return ctx.JSON(rest.OK, HealthResponse{
		Online: true,
		Uptime: strconv.Itoa(int(uptime.UnixMilli())),
	})
}

type HealthResponse struct {
	Online bool   `json:"online"`
	Uptime string `json:"uptime"`
}
