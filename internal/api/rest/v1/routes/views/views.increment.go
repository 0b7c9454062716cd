package views

import (
	"time"

	"github.com/delciak/biolink/internal/api/rest/middleware"
	"github.com/delciak/biolink/internal/api/rest/rest"
	"github.com/delciak/biolink/internal/global"
	"github.com/seventv/common/utils"
	"github.com/valyala/fasthttp"
)

type increment struct {
	Ctx global.Context
}

func NewIncrement(gctx global.Context) rest.Route {
	return &increment{gctx}
}

func (r *increment) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:    "/views",
		Method: rest.POST,
		Middleware: []rest.Middleware{
			middleware.NoStore(r.Ctx),
			middleware.RateLimit(r.Ctx, "views-increment", r.Ctx.Config().Limits.Buckets.API),
		},
	}
}

// @Summary Record Visit
// @Description Count a page view, deduplicated by visit cookie and requester address
// @Produce json
// @Success 200 {object} VisitResponse
// @Router /v1/views [post]
func (r *increment) Handler(ctx *rest.Ctx) rest.APIError {
	cfg := r.Ctx.Config()

	token := utils.B2S(ctx.Request.Header.Cookie(cfg.Views.CookieName))

	count, fresh, counted := r.Ctx.Inst().Views.Increment(token, ctx.ClientIP())

	if fresh != "" {
		cookie := fasthttp.AcquireCookie()
		defer fasthttp.ReleaseCookie(cookie)

		cookie.SetKey(cfg.Views.CookieName)
		cookie.SetValue(fresh)
		cookie.SetDomain(cfg.Http.Cookie.Domain)
		cookie.SetSecure(cfg.Http.Cookie.Secure)
		cookie.SetHTTPOnly(true)
		cookie.SetExpire(time.Now().AddDate(0, 0, cfg.Views.CookieRetentionDays))

		ctx.Response.Header.SetCookie(cookie)
	}

	return ctx.JSON(rest.OK, VisitResponse{
		Count:   count,
		Counted: counted,
	})
}

type VisitResponse struct {
	Count   int64 `json:"count"`
	Counted bool  `json:"counted"`
}
