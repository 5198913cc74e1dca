package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	adapterotel "github.com/emiliopalmerini/cardiosim/internal/adapters/otel"
	"github.com/emiliopalmerini/cardiosim/internal/adapters/turso"
	"github.com/emiliopalmerini/cardiosim/internal/infrastructure/config"
	"github.com/emiliopalmerini/cardiosim/internal/ports"
	"github.com/emiliopalmerini/cardiosim/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the JSON API server",
	Long: `Start the local API server the dashboard frontend talks to.

The engine endpoints are always available. Saved-scenario endpoints require
CARDIOSIM_DATABASE_URL to be set; without it they respond 503.

Examples:
  cardiosim serve              # Start on default port 8080
  cardiosim serve --port 3000  # Start on port 3000`,
	RunE: runServe,
}

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	srvCfg, err := config.LoadServer()
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}
	port := srvCfg.Port
	if servePort != 0 {
		port = servePort
	}

	// Persistence is optional for the API server.
	var repo ports.ScenarioRepository
	if dbCfg, err := config.LoadDatabase(); err == nil {
		db, err := turso.NewDB(dbCfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		repo = turso.NewScenarioRepository(db)
	} else {
		log.Println("no database configured, saved-scenario endpoints disabled")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var metrics ports.MetricsExporter = adapterotel.NewNoopExporter()
	if exp, err := adapterotel.NewExporter(ctx, adapterotel.LoadConfig()); err == nil {
		metrics = exp
		defer func() { _ = exp.Close(context.Background()) }()
	}

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	fmt.Printf("Listening on :%d\n", port)
	server := web.NewServer(port, repo, metrics)
	return server.Start(ctx)
}
