package middleware

import (
	"strconv"
	"time"

	"github.com/delciak/biolink/internal/api/rest/rest"
	"github.com/delciak/biolink/internal/errors"
	"github.com/delciak/biolink/internal/global"
)

func RateLimit(gctx global.Context, bucket string, rate [2]int64) rest.Middleware {
	return func(ctx *rest.Ctx) rest.APIError {
		identifier := ctx.ClientIP()
		if identifier == "" {
			return nil
		}

		remaining, reset, allowed := gctx.Inst().Limiter.Allow(
			bucket,
			identifier,
			rate[0],
			time.Second*time.Duration(rate[1]),
		)

		// Apply headers
		ctx.Response.Header.Set("X-RateLimit-Limit", strconv.Itoa(int(rate[0])))
		ctx.Response.Header.Set("X-RateLimit-Remaining", strconv.Itoa(int(remaining)))
		ctx.Response.Header.Set("X-RateLimit-Reset", strconv.Itoa(int(reset/time.Second)))

		if !allowed {
			return errors.ErrRateLimited()
		}

		return nil
	}
}
