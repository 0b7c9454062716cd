package health

import (
	"github.com/delciak/biolink/internal/global"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

func New(gctx global.Context) <-chan struct{} {
	done := make(chan struct{})

	srv := fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) {
			defer func() {
				if err := recover(); err != nil {
					zap.S().Errorw("panic in health",
						"panic", err,
					)
				}
			}()

			// The service stays up through upstream outages; a snapshot that
			// has gone stale degrades the health report rather than the API.
			if gctx.Inst().Presence != nil {
				snap := gctx.Inst().Presence.Snapshot()

				if snap.Record == nil && snap.Error != "" {
					zap.S().Warnw("presence upstream is not responding",
						"error", snap.Error,
					)

					ctx.SetStatusCode(500)
				}
			}
		},
	}

	go func() {
		defer close(done)
		zap.S().Infow("Health enabled",
			"bind", gctx.Config().Health.Bind,
		)
		if err := srv.ListenAndServe(gctx.Config().Health.Bind); err != nil {
			zap.S().Fatalw("failed to bind health",
				"error", err,
			)
		}
	}()

	go func() {
		<-gctx.Done()
		_ = srv.Shutdown()
	}()

	return done
}
