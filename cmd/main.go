package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yungbote/commissioning-backend/internal/app"
)

var (
	version = "dev"
	commit  = "none"
)

// CLI flags; zero values leave the environment config untouched.
var (
	port   int
	dsn    string
	driver string
	atomic bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "commissioning",
		Short:         "Commissioning tracking backend",
		Long:          `Tracks systems, subsystems, protocols and the punch list of a plant commissioning project.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	rootCmd.PersistentFlags().IntVarP(&port, "port", "p", 0, "HTTP port (overrides PORT)")
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "database DSN (overrides DATABASE_DSN)")
	rootCmd.PersistentFlags().StringVar(&driver, "driver", "", "database driver: postgres or sqlite (overrides DB_DRIVER)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  runServe,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables and exit",
		RunE:  runMigrate,
	})
	importCmd := &cobra.Command{
		Use:   "import <file.xlsx>",
		Short: "Replace the punch list with the rows of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}
	importCmd.Flags().BoolVar(&atomic, "atomic", false, "roll back the delete when the import fails (overrides IMPORT_ATOMIC)")
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("commissioning %s (commit: %s)\n", version, commit)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (app.Config, error) {
	cfg, err := app.LoadConfig()
	if err != nil {
		return app.Config{}, err
	}
	if port != 0 {
		cfg.Port = strconv.Itoa(port)
	}
	if dsn != "" {
		cfg.DatabaseDSN = dsn
	}
	if driver != "" {
		cfg.DBDriver = driver
	}
	if f := cmd.Flags().Lookup("atomic"); f != nil && f.Changed {
		cfg.ImportAtomic = atomic
	}
	return cfg, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, stop := signalContext()
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return a.Serve(ctx)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	a, err := app.New(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	a.Log.Info("Migration finished")
	a.Close()
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, stop := signalContext()
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return a.ImportFile(ctx, args[0])
}
