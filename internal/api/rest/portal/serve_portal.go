package portal

import (
	"os"
	"path"
	"strings"

	"github.com/delciak/biolink/internal/global"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasttemplate"
	"go.uber.org/zap"
)

// Serve hosts the static bio page, injecting the API location and tracked
// user into index.html at startup.
func Serve(gctx global.Context) {
	root := gctx.Config().Portal.Root
	if root == "" {
		wd, _ := os.Getwd()
		root = path.Join(wd, "portal", "dist")
	}

	// Setup FS handler
	fs := &fasthttp.FS{
		Root: root,
	}

	index, err := os.ReadFile(path.Join(root, "index.html"))
	if err != nil {
		zap.S().Warnw("couldn't begin serving the portal", "error", err)

		return
	}

	template := fasttemplate.New(string(index), "<!-- {{", "}} -->")

	body := template.ExecuteString(map[string]interface{}{
		"API_BASE": gctx.Config().WebsiteURL,
		"USER_ID":  gctx.Config().Discord.UserID,
	})

	addr := gctx.Config().Portal.Bind
	if addr == "" {
		addr = "0.0.0.0:3200"
	}

	zap.S().Infow("starting portal frontend", "addr", addr)

	handler := fs.NewRequestHandler()

	srv := &fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) {
			pth := string(ctx.Path())
			if strings.HasPrefix(pth, "/assets/") {
				handler(ctx)

				return
			}

			ctx.Response.Header.Set("Content-Type", "text/html; charset=utf-8")
			ctx.Response.Header.Set("Cache-Control", "no-cache")
			ctx.SetBodyString(body)
		},
	}

	go func() {
		<-gctx.Done()

		_ = srv.Shutdown()
	}()

	if err := srv.ListenAndServe(addr); err != nil {
		zap.S().Errorw("portal server closed", "error", err)
	}
}
