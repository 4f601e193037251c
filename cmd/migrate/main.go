package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"commerce-insights/internal/config"
	"commerce-insights/internal/database"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Applies the SQL migrations in db/migrations without starting the server.
// The server runs the same migrations at boot when AUTO_MIGRATE=true; this
// command exists for deploy pipelines that migrate as a separate step.
func main() {
	_ = godotenv.Load()

	flag.Parse()
	command := "up"
	if args := flag.Args(); len(args) > 0 {
		command = args[0]
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db)

	switch command {
	case "up":
		if err := runner.WaitForDatabase(); err != nil {
			logger.Error("database not reachable", "error", err)
			os.Exit(1)
		}
		if err := runner.RunMigrations(); err != nil {
			logger.Error("migration failed", "error", err)
			os.Exit(1)
		}
	case "version":
		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			logger.Error("failed to read migration status", "error", err)
			os.Exit(1)
		}
		fmt.Printf("version=%d dirty=%v\n", version, dirty)
	default:
		fmt.Fprintf(os.Stderr, "Usage: migrate [up|version]\n")
		os.Exit(2)
	}
}
