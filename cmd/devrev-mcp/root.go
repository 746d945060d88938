package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KalshuCodes/devrev-mcp-server/internal/config"
	"github.com/KalshuCodes/devrev-mcp-server/internal/devrev"
	"github.com/KalshuCodes/devrev-mcp-server/internal/logging"
	"github.com/KalshuCodes/devrev-mcp-server/internal/server"
)

var (
	flagTransport string
	flagHost      string
	flagPort      int
	flagLogLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "devrev-mcp",
	Short: "DevRev MCP server",
	Long: "devrev-mcp — a Model Context Protocol server exposing DevRev " +
		"work-tracking tools over stdio or SSE.",
	// SilenceUsage prevents printing usage on every runtime error
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagTransport, "transport", "stdio", "MCP transport: stdio or sse")
	rootCmd.Flags().StringVar(&flagHost, "host", "", "Listen host for the SSE transport (overrides DEVREV_MCP_HOST)")
	rootCmd.Flags().IntVar(&flagPort, "port", 0, "Listen port for the SSE transport (overrides DEVREV_MCP_PORT)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides DEVREV_MCP_LOG_LEVEL)")

	rootCmd.Version = server.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("devrev-mcp version %s\n", server.Version))
}

func run(cmd *cobra.Command, args []string) error {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg := config.Load()
	if flagHost != "" {
		cfg.Host = flagHost
	}
	if flagPort != 0 {
		cfg.Port = flagPort
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	log := logging.Setup(cfg.LogLevel, cfg.Debug)

	if cfg.APIKey == "" {
		log.Error().Msg("DEVREV_API_KEY environment variable not set")
		return fmt.Errorf("DEVREV_API_KEY environment variable not set")
	}

	clientOpts := []devrev.Option{
		devrev.WithBaseURL(cfg.BaseURL),
		devrev.WithTimeout(cfg.Timeout),
		devrev.WithRetries(cfg.Retries),
		devrev.WithLogger(log),
	}

	identity, err := devrev.ValidateToken(cmd.Context(), cfg.APIKey, clientOpts...)
	if err != nil {
		log.Error().Err(err).Msg("invalid DevRev API key")
		return fmt.Errorf("validate DevRev API key: %w", err)
	}
	log.Info().Str("display_name", identity.DisplayName).Msg("authenticated")

	client, err := devrev.New(cfg.APIKey, append(clientOpts, devrev.WithIdentity(identity))...)
	if err != nil {
		return err
	}

	s := server.New(client, log)

	switch flagTransport {
	case "stdio":
		log.Info().Msg("starting DevRev MCP server on stdio")
		return server.RunStdio(s)
	case "sse":
		log.Info().
			Str("host", cfg.Host).
			Int("port", cfg.Port).
			Msgf("starting DevRev MCP server, SSE endpoint at http://%s:%d/sse", cfg.Host, cfg.Port)
		return server.RunSSE(s, cfg.Host, cfg.Port)
	default:
		return fmt.Errorf("unknown transport %q: must be stdio or sse", flagTransport)
	}
}
