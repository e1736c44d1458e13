// Command migrate creates or updates the database schema for the sales
// portal. It is idempotent and safe to run on every deploy.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/NgariMwangi/abz-sales-portal/internal/infrastructure/config"
	"github.com/NgariMwangi/abz-sales-portal/internal/infrastructure/logger"
	"github.com/NgariMwangi/abz-sales-portal/internal/infrastructure/persistence"
	"github.com/NgariMwangi/abz-sales-portal/internal/infrastructure/persistence/models"
)

func main() {
	var logLevel string
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	log.Info("running schema migration",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.DBName))

	if err := db.DB.AutoMigrate(models.AllModels()...); err != nil {
		log.Fatal("schema migration failed", zap.Error(err))
	}

	log.Info("schema migration complete")
}
