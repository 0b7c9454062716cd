package v1

import (
	"github.com/delciak/biolink/internal/api/rest/rest"
	"github.com/delciak/biolink/internal/api/rest/v1/routes"
	"github.com/delciak/biolink/internal/global"
)

func API(gctx global.Context, router *rest.Router) rest.Route {
	return routes.New(gctx)
}
