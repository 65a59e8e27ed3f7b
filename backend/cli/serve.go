package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"recipe-book/backend/global"
	"recipe-book/backend/initialize"
	"recipe-book/backend/server"

	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "serve",
		Short:         "Run the HTTP API",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), rootOpts.ConfigPath)
		},
	}
}

func serve(parent context.Context, configPath string) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := initialize.Build(configPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			global.Logger.Error().Err(err).Msg("shutdown")
		}
	}()

	cfg := app.Cfg.HTTP
	return server.RunHTTPServer(ctx, cfg.Host, cfg.Port, cfg.ReadHeaderTimeout, app.Router)
}
