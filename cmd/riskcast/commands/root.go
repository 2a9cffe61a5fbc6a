package commands

import (
	"context"

	"riskcast/internal/config"
	"riskcast/internal/logging"
	"riskcast/internal/mcp"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "riskcast",
	Short: "Riskcast is a project schedule and risk forecasting MCP server",
	Long: `A specialized MCP Server that provides probabilistic schedule forecasting
(Monte-Carlo simulation, critical path analysis) and risk impact scoring
over project plan snapshots.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		// Load configuration
		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("Riskcast starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		server := mcp.NewServer(cfg, Version)
		if err := server.Run(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("MCP server terminated")
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
