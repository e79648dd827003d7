package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/veridex/veridex/internal/agent"
	"github.com/veridex/veridex/internal/server"
)

var servePort int

// serveCmd starts the HTTP API with background model training
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the verdict HTTP API",
	Long: `Serve starts the JSON API. The classifier trains in the background at
startup; requests arriving before training completes receive a
"still loading" response instead of blocking.

Example:
  veridex serve
  veridex serve --port 8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := agent.New(cfg)
	svc.Start(ctx)

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "training in background, serving on port %d\n", cfg.Server.Port)
	}

	srv := server.New(svc, cfg.Server)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
