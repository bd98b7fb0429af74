package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"aquarium-catalog/internal/domain/pages"
	"aquarium-catalog/internal/render"
	"aquarium-catalog/internal/router"
	"aquarium-catalog/internal/server"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog pages over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.newApp(os.Stdout)
			if err != nil {
				return err
			}
			defer a.sync()

			env := pages.NewEnv(a.catalog, render.MustNew(nil), a.log)
			if a.cfg.Server.StaticDir != "" {
				env.AssetBase = "/static/"
			}

			h := router.NewRouter(router.Options{
				Env:         env,
				CORSOrigins: a.cfg.Server.CORSOrigins,
				StaticDir:   a.cfg.Server.StaticDir,
				Log:         a.log,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.log.Info("catalog api", map[string]any{"base_url": a.cfg.API.BaseURL})
			return server.New(server.Options{
				Addr:         a.cfg.Server.Addr,
				Handler:      h,
				ReadTimeout:  a.cfg.Server.ReadTimeout,
				WriteTimeout: a.cfg.Server.WriteTimeout,
				Log:          a.log,
			}).Run(ctx)
		},
	}
}
