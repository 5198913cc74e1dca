package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/cardiosim/internal/adapters/turso"
	"github.com/emiliopalmerini/cardiosim/internal/infrastructure/config"
	"github.com/emiliopalmerini/cardiosim/internal/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [version]",
	Short: "Run database migrations",
	Long: `Run database migrations.

Without arguments, runs all pending migrations (up). With a version argument,
migrates up or down to that version.

Examples:
  cardiosim migrate      # Run all pending migrations
  cardiosim migrate 0    # Rollback all migrations`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadDatabase()
	if err != nil {
		return fmt.Errorf("database not configured: %w", err)
	}
	db, err := turso.NewDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	if len(args) == 0 {
		if err := migrate.RunAll(ctx, db); err != nil {
			return err
		}
		version, _, err := migrate.CurrentVersion(ctx, db)
		if err != nil {
			return err
		}
		fmt.Printf("Migrated to version %d\n", version)
		return nil
	}

	target, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid version %q", args[0])
	}

	if err := migrate.EnsureMigrationsTable(ctx, db); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	current, dirty, err := migrate.CurrentVersion(ctx, db)
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("database is dirty at version %d, resolve manually", current)
	}

	all, err := migrate.Load()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	switch {
	case target > current:
		for _, m := range all {
			if m.Version <= current || m.Version > target {
				continue
			}
			if err := migrate.Up(ctx, db, []migrate.Migration{m}, current); err != nil {
				return err
			}
		}
	case target < current:
		if err := migrate.Down(ctx, db, all, current, target); err != nil {
			return err
		}
	}

	version, _, err := migrate.CurrentVersion(ctx, db)
	if err != nil {
		return err
	}
	fmt.Printf("Now at version %d\n", version)
	return nil
}
