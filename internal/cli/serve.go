package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/missionfuel/internal/clock"
	"github.com/danieljhkim/missionfuel/internal/server"
	"github.com/danieljhkim/missionfuel/internal/supervisor"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve fuel calculations over HTTP",
		Long: `Serve fuel calculations as a JSON HTTP API.

Endpoints:
  POST /v1/fuel               {"mass": 28801, "action": "land", "body": "earth"}
  POST /v1/missions           {"mass": 28801, "steps": ["launch:earth", "land:moon"]}
  POST /v1/missions/validate  {"steps": ["launch:earth", "land:moon"]}
  GET  /v1/planets
  GET  /healthz
  GET  /metrics

The server is restarted if it crashes, up to the configured restart budget.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			if addr != "" {
				a.cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(a.context(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(a.engine, a.cfg.Server.Addr, a.logger)
			sup := supervisor.New(supervisor.Policy{
				MaxRestarts:    a.cfg.Supervisor.MaxRestarts,
				Window:         a.cfg.Supervisor.Window,
				InitialBackoff: a.cfg.Supervisor.InitialBackoff,
				MaxBackoff:     a.cfg.Supervisor.MaxBackoff,
			}, &clock.RealClock{})

			return sup.Run(ctx, "http", srv.Run)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, :8080)")
	return cmd
}
