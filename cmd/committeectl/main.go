// Command committeectl administers the committee tracker database from the
// shell: schema migration, YAML seeding and ledger inspection.
package main

import (
	"fmt"
	"os"

	"committee-tracker-backend/internal/config"
	"committee-tracker-backend/internal/database"
	"committee-tracker-backend/internal/logger"
	"committee-tracker-backend/internal/repository"
	"committee-tracker-backend/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// env is opened lazily by each subcommand
type env struct {
	logLevel string
	cfg      *config.Config
	db       *gorm.DB
}

func rootCmd() *cobra.Command {
	e := &env{}

	cmd := &cobra.Command{
		Use:           "committeectl",
		Short:         "Administer the committee tracker database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&e.logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to LOG_LEVEL")

	cmd.AddCommand(migrateCmd(e), seedCmd(e), ledgerCmd(e))
	return cmd
}

// open loads configuration and connects without migrating
func (e *env) open() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	level := e.logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	logger.Setup(level)

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		MaxOpenConns:    cfg.DatabaseMaxOpenConns,
		MaxIdleConns:    cfg.DatabaseMaxIdleConns,
		ConnMaxLifetime: cfg.DatabaseConnLifetime,
		SkipMigrate:     true,
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	e.cfg = cfg
	e.db = db
	return nil
}

func (e *env) close() {
	if e.db != nil {
		_ = database.Close(e.db)
	}
}

func (e *env) services() *service.Services {
	return service.NewServices(e.db, repository.RetryPolicy{
		MaxRetries: e.cfg.TxMaxRetries,
		BaseDelay:  e.cfg.TxRetryBaseDelay,
	})
}
