package app

import (
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/wisdomwellbeing/resourcectl/internal/loader"
	"github.com/wisdomwellbeing/resourcectl/internal/server"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog as a web page and JSON API",
		Long: `Start an HTTP server with the catalog page and a JSON API.

Routes:
  GET  /                     catalog page (?q=, ?category=, ?sort=)
  GET  /resources/{id}       detail page
  GET  /api/resources        composed view as JSON
  GET  /api/resources/{id}   one resource
  GET  /api/categories       counts per category
  GET  /api/state            loader state
  POST /api/refetch          reload the catalog
  GET  /healthz              health check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("host") {
				host = cfg.Serve.Host
			}
			if !cmd.Flags().Changed("port") {
				port = cfg.Serve.Port
			}
			addr := net.JoinHostPort(host, strconv.Itoa(port))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log := logger.Named("server")
			ld := loader.New(newSource(true), loader.WithLogger(log.Named("loader")))
			ld.Start(ctx)

			h := server.NewHandler(ld, cfg.DefaultView(), log)
			ok("Serving on http://%s", addr)
			if err := h.Serve(ctx, addr); err != nil {
				return err
			}
			log.Info("stopped", zap.String("addr", addr))
			_ = log.Sync()
			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Listen host (default from config)")
	cmd.Flags().IntVar(&port, "port", 0, "Listen port (default from config)")
	return cmd
}
