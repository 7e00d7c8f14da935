package root

import (
	"context"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/i2bric/TaskHero/internal/config"
	"github.com/i2bric/TaskHero/internal/engine"
	"github.com/i2bric/TaskHero/internal/server"
	"github.com/i2bric/TaskHero/internal/storage"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the task API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			path := cfg.DBPath
			if path == "" {
				path, err = storage.ResolveDBPath()
				if err != nil {
					return err
				}
			}
			db, err := storage.Open(ctx, path)
			if err != nil {
				return err
			}
			defer db.Close()

			logger := log.Default()
			srv := server.New(engine.NewService(db), logger)

			logger.Printf("listening on http://localhost%s (db %s)", addr, path)
			return http.ListenAndServe(addr, srv.Routes())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from TASKHERO_ADDR, else :8090)")

	return cmd
}
