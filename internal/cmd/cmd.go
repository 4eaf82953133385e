package cmd

import (
	"context"

	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/ghttp"
	"github.com/gogf/gf/v2/os/gcmd"

	"github.com/carevault/docgate/core/config"
)

var (
	Main = gcmd.Command{
		Name:  "main",
		Usage: "main",
		Brief: "start document gateway http server",
		Func: func(ctx context.Context, parser *gcmd.Parser) (err error) {
			g.Log().Info(ctx, "Validating application configuration...")
			if err = config.ValidateConfiguration(ctx); err != nil {
				g.Log().Fatalf(ctx, "Configuration validation failed:\n%v", err)
			}

			controller, err := bootstrap(ctx)
			if err != nil {
				g.Log().Fatalf(ctx, "Component initialization failed: %v", err)
			}

			s := g.Server()
			s.Group("/", func(group *ghttp.RouterGroup) {
				// CORS must run first so OPTIONS preflights short-circuit
				// before any handler.
				group.Middleware(ghttp.MiddlewareCORS, MiddlewareHandlerResponse)
				group.Bind(
					controller,
				)
			})
			s.Run()
			return nil
		},
	}
)
