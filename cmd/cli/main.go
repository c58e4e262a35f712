package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chapeltools/rota-admin/cmd/cli/commands"
	"github.com/chapeltools/rota-admin/internal/config"
	"github.com/chapeltools/rota-admin/pkg/postgres"
	"github.com/chapeltools/rota-admin/pkg/sqlite"
	"github.com/chapeltools/rota-admin/pkg/utils/logging"
)

var (
	env        string
	app        *commands.AppContext
	closeStore func()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rota-admin",
		Short: "Rota Admin CLI - Manage service schedules for your organization",
		Long:  `A CLI tool for generating service rotation schedules, reviewing previews, and committing assignment batches, with leave and budget reporting.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
			if closeStore != nil {
				closeStore()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.GenerateScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.ViewScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.ExportScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.ListMembersCmd(appRef()))
	rootCmd.AddCommand(commands.ListServiceTypesCmd(appRef()))
	rootCmd.AddCommand(commands.LeaveBalanceCmd(appRef()))
	rootCmd.AddCommand(commands.BudgetPaceCmd(appRef()))
	rootCmd.AddCommand(commands.MigrateCmd(appRef()))
	rootCmd.AddCommand(commands.InteractiveCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, allocating it before initApp has
// populated it so commands can capture the pointer at registration time
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, and the storage backend
func initApp() error {
	var err error
	appRef()
	app.Ctx = context.Background()

	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	switch app.Cfg.StorageBackend {
	case config.BackendPostgres:
		app.Logger.Info("Connecting to postgres")
		pg, err := postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
		app.Database = pg
		app.Postgres = pg
		closeStore = pg.Close
	case config.BackendSQLite:
		app.Logger.Info("Opening sqlite database", zap.String("path", app.Cfg.SQLitePath))
		sq, err := sqlite.NewDB(app.Ctx, app.Cfg.SQLitePath)
		if err != nil {
			return fmt.Errorf("failed to open sqlite database: %w", err)
		}
		app.Database = sq
		closeStore = func() { sq.Close() }
	default:
		return fmt.Errorf("unknown storage backend %q", app.Cfg.StorageBackend)
	}
	app.Logger.Debug("Storage backend ready", zap.String("backend", app.Cfg.StorageBackend))

	return nil
}
