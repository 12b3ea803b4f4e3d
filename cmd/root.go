package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/killallgit/readwise-api/pkg/config"
	"github.com/killallgit/readwise-api/pkg/logging"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "readwise-api",
	Short: "Readwise Highlights API server",
	Long: `Readwise Highlights API - highlight and annotate reading texts

Load a text by pasting it, uploading a .txt file or picking the built-in
sample, select passages to highlight, attach notes and colors, and render
the text with its highlights as JSON, HTML or terminal output.

Features:
  • Selection capture with whitespace trimming
  • Highlights positioned by code point offsets
  • Overlapping highlights, newest on top
  • Rendered output cached until highlights change
  • Idle reading sessions expire automatically`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// setupLogging installs the global logger. Flags win over configuration.
func setupLogging(cmd *cobra.Command, args []string) error {
	level, _ := cmd.Flags().GetString("log-level")
	jsonLogs, _ := cmd.Flags().GetBool("json-logs")

	if level == "" {
		level = config.GetString("logging.level")
	}
	if level == "" {
		level = "info"
	}
	if !cmd.Flags().Changed("json-logs") && config.GetString("logging.format") == "json" {
		jsonLogs = true
	}

	logger, err := logging.New(level, jsonLogs)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.Logger = logger
	return nil
}

// loadConfig initializes configuration for commands that need it
func loadConfig() (*config.Config, error) {
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("error initializing config: %w", err)
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
