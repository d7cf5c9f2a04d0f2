package cli

import (
	"github.com/spf13/cobra"

	"github.com/lostfound-tw/lostfound/internal/server"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve items and filter options over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context(), root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if addr == "" {
				addr = a.cfg.Addr
			}

			srv := server.New(a.store, a.loader(), a.categories,
				server.WithMetrics(a.metrics),
				server.WithLogger(a.log),
				server.WithLocation(a.cfg.Location()),
			)
			return srv.Run(cmd.Context(), addr, a.cfg.RefreshInterval)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, :8080)")

	return cmd
}
