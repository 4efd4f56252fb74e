package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-exml/internal/server"
)

// Version is reported by the HTTP service's health check.
var Version = "dev"

func serveCmd() *cobra.Command {
	cfg := server.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Long: "Run the HTTP service. EXML_ADDR, EXML_BODY_LIMIT, EXML_MAX_DOCUMENTS " +
			"and EXML_STRICT override the defaults; flags override the environment.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cfg
			cfg = server.DefaultConfig()
			cfg.ApplyEnv()
			if cmd.Flags().Changed("addr") {
				cfg.Addr = flags.Addr
			}
			if cmd.Flags().Changed("max-documents") {
				cfg.MaxDocuments = flags.MaxDocuments
			}
			if strict {
				cfg.Strict = true
			}
			cfg.Version = Version

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(cfg, logger).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	cmd.Flags().IntVar(&cfg.MaxDocuments, "max-documents", cfg.MaxDocuments, "documents held in memory")
	return cmd
}
