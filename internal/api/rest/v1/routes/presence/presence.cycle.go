package presence

import (
	"github.com/delciak/biolink/internal/api/rest/middleware"
	"github.com/delciak/biolink/internal/api/rest/rest"
	"github.com/delciak/biolink/internal/errors"
	"github.com/delciak/biolink/internal/global"
	"github.com/delciak/biolink/internal/instance"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type cycle struct {
	Ctx global.Context
}

func newCycle(gctx global.Context) rest.Route {
	return &cycle{gctx}
}

func (r *cycle) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:    "/cycle",
		Method: rest.POST,
		Middleware: []rest.Middleware{
			middleware.NoStore(r.Ctx),
			middleware.RateLimit(r.Ctx, "presence-cycle", r.Ctx.Config().Limits.Buckets.API),
		},
	}
}

type cycleRequest struct {
	Direction instance.CycleDirection `json:"direction"`
}

// @Summary Cycle Presence
// @Description Move the activity carousel cursor and return the resulting state
// @Accept json
// @Produce json
// @Param body body cycleRequest true "cycle direction"
// @Success 200 {object} presence.Snapshot
// @Failure 400 {object} rest.APIErrorResponse
// @Router /v1/presence/cycle [post]
func (r *cycle) Handler(ctx *rest.Ctx) rest.APIError {
	req := cycleRequest{}
	if err := json.Unmarshal(ctx.Request.Body(), &req); err != nil {
		return errors.ErrInvalidRequest().SetDetail("Invalid Request Body")
	}

	switch req.Direction {
	case instance.CycleNext, instance.CyclePrevious:
	default:
		return errors.ErrInvalidRequest().
			SetDetail("Unknown Direction").
			SetFields(errors.Fields{"direction": string(req.Direction)})
	}

	return ctx.JSON(rest.OK, r.Ctx.Inst().Presence.Cycle(req.Direction))
}
