package middleware

import (
	"github.com/delciak/biolink/internal/errors"
	"github.com/valyala/fasthttp"
)

type Middleware = func(ctx *fasthttp.RequestCtx) errors.APIError
