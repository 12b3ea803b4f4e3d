package cmd

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/killallgit/readwise-api/internal/database"
	"github.com/killallgit/readwise-api/internal/models"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
	Long: `Manage the database schema for the Readwise Highlights API.

The schema is derived from the document and highlight models. Migrations
only matter for file backed sqlite or postgres; the default in-memory
database is migrated on every start.

Available subcommands:
  up      - Create or update the documents and highlights tables
  status  - List the tables present in the database`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Create or update tables",
	RunE:  runMigrateUp,
}

// migrateStatusCmd shows which tables exist
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show schema status",
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

func openConfiguredDatabase() (*database.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return database.Open(database.Options{
		Driver:  cfg.Database.Driver,
		Path:    cfg.Database.Path,
		DSN:     cfg.Database.DSN,
		Verbose: cfg.Database.Verbose,
	})
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	db, err := openConfiguredDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	log.Info().Int("models", len(models.All())).Msg("Schema is up to date")
	fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openConfiguredDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	return printSchemaStatus(cmd, db)
}

func printSchemaStatus(cmd *cobra.Command, db *database.DB) error {
	tables, err := db.Tables()
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}
	present := make(map[string]bool, len(tables))
	for _, t := range tables {
		present[t] = true
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Schema Status")
	fmt.Fprintln(out, strings.Repeat("=", 50))
	for _, name := range []string{models.Document{}.TableName(), models.Highlight{}.TableName()} {
		state := "missing"
		if present[name] {
			state = "present"
		}
		fmt.Fprintf(out, "  %-20s %s\n", name, state)
	}
	return nil
}
