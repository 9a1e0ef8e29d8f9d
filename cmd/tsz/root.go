package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/zero-day-ai/tsz/internal/config"
	"github.com/zero-day-ai/tsz/pkg/tszclient"
	"github.com/zero-day-ai/tsz/pkg/version"
)

var (
	flagURL     string
	flagKey     string
	flagTimeout int
	flagConfig  string

	client *tszclient.Client
)

var rootCmd = &cobra.Command{
	Use:   "tsz",
	Short: "tsz - TSZ text-safety gateway CLI",
	Long: `tsz talks to a TSZ text-safety gateway: scan text for PII and
guardrail violations, proxy chat completions through the safety layer,
and manage detection patterns, allowlists, blocklists, validators, and
guardrail templates.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command with signal handling.
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

// buildClient resolves configuration (defaults < config file < env <
// flags) and constructs the shared gateway client before any command
// runs.
func buildClient(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" || cmd.Name() == "help" {
		return nil
	}

	path := flagConfig
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg.ApplyEnvironmentOverrides()

	flags := rootCmd.PersistentFlags()
	if flags.Changed("url") {
		cfg.ServerURL = flagURL
	}
	if flags.Changed("key") {
		cfg.APIKey = flagKey
	}
	if flags.Changed("timeout") {
		cfg.TimeoutSeconds = flagTimeout
	}

	client, err = tszclient.New(tszclient.Config{
		BaseURL: cfg.ServerURL,
		APIKey:  cfg.APIKey,
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	})
	return err
}

// printJSON writes a value as indented JSON, the output contract for
// every data-bearing subcommand so results stay scriptable.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.String())
	},
}

func init() {
	rootCmd.PersistentPreRunE = buildClient
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "TSZ gateway URL (default from config or http://localhost:8080)")
	rootCmd.PersistentFlags().StringVar(&flagKey, "key", "", "Admin API key (required for management commands)")
	rootCmd.PersistentFlags().IntVar(&flagTimeout, "timeout", 0, "Request timeout in seconds")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (default: ~/.tsz/config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(allowlistCmd)
	rootCmd.AddCommand(blocklistCmd)
	rootCmd.AddCommand(validatorsCmd)
	rootCmd.AddCommand(templatesCmd)
}
