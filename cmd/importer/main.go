package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"commerce-insights/internal/config"
	"commerce-insights/internal/database"
	"commerce-insights/internal/models"
	"commerce-insights/internal/repositories"
	"commerce-insights/internal/services"

	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Loads an order ledger CSV straight into the database, bypassing the HTTP
// surface. Useful for seeding an environment with a full export that would
// be unpleasant to push through a multipart upload.
func main() {
	_ = godotenv.Load()

	filePath := flag.String("file", "", "Path to the CSV ledger export")
	sqlitePath := flag.String("sqlite", "", "Import into a local SQLite file instead of the configured Postgres database")
	quiet := flag.Bool("quiet", false, "Suppress the progress bar")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: importer -file ledger.csv [-sqlite insights.db] [-quiet]")
		os.Exit(2)
	}

	cfg := config.Load()

	db, err := openDatabase(cfg, *sqlitePath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	f, err := os.Open(*filePath)
	if err != nil {
		logger.Error("failed to open ledger file", "file", *filePath, "error", err)
		os.Exit(1)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		logger.Error("failed to stat ledger file", "file", *filePath, "error", err)
		os.Exit(1)
	}

	var reader io.Reader = f
	if !*quiet {
		bar := progressbar.DefaultBytes(fi.Size(), "importing")
		reader = io.TeeReader(f, bar)
	}

	// Ctrl-C aborts between row batches and leaves the previous dataset alone.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	orderRepo := repositories.NewOrderRepository(db)
	importService := services.NewImportService(orderRepo, &cfg.Import, services.NewPrometheusMetrics())

	summary, err := importService.ImportCSV(ctx, reader)
	if err != nil {
		logger.Error("import failed", "file", *filePath, "error", err)
		os.Exit(1)
	}

	fmt.Printf("imported %d of %d rows (%d skipped, replaced %d existing lines) in %dms\n",
		summary.RowsImported, summary.RowsRead, summary.RowsSkipped,
		summary.DeletedLines, summary.ElapsedMs)
	for _, rowErr := range summary.Errors {
		fmt.Println("  -", rowErr)
	}
}

// openDatabase picks the import target. The SQLite path is self-contained:
// the schema is migrated in place so the output file works standalone.
func openDatabase(cfg *config.Config, sqlitePath string) (*gorm.DB, error) {
	if sqlitePath != "" {
		db, err := gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		if err := db.AutoMigrate(&models.Order{}); err != nil {
			return nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
		}
		return db, nil
	}
	return database.Initialize(cfg)
}
