package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/boltgroup/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP analysis API",
	Long: `Serve exposes the engine over HTTP: POST /api/v1/pattern and
POST /api/v1/loads, plus GET /healthz. Configuration comes from
BOLTGROUP_* environment variables (a .env file is honored); --addr
overrides the listen address.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides BOLTGROUP_ADDR)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := server.LoadConfig()
	if err != nil {
		return err
	}
	if addr, err := cmd.Flags().GetString("addr"); err == nil && addr != "" {
		cfg.Addr = addr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("listening on %s", cfg.Addr)
	return server.New(cfg).Run(ctx)
}
