package middleware

import (
	"fmt"
	"strings"

	"github.com/delciak/biolink/internal/api/rest/rest"
	"github.com/delciak/biolink/internal/global"
	"github.com/seventv/common/utils"
)

func SetCacheControl(gctx global.Context, maxAge int, args []string) rest.Middleware {
	return func(ctx *rest.Ctx) rest.APIError {
		ctx.Response.Header.Set("Cache-Control", fmt.Sprintf(
			"max-age=%d%s %s",
			maxAge,
			utils.Ternary(len(args) > 0, ",", ""),
			strings.Join(args, ", "),
		))

		return nil
	}
}

// NoStore marks a response as uncacheable at any layer.
func NoStore(gctx global.Context) rest.Middleware {
	return func(ctx *rest.Ctx) rest.APIError {
		ctx.Response.Header.Set("Cache-Control", "no-store")

		return nil
	}
}
