package main

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"

	"stock-intel/internal/chat/config"
	pkgconfig "stock-intel/pkg/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
)

var (
	configPath     string
	migrationsPath string
)

func databaseURL(dbConfig pkgconfig.Database) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(dbConfig.User, dbConfig.Password),
		Host:     fmt.Sprintf("%s:%d", dbConfig.Host, dbConfig.Port),
		Path:     "/" + dbConfig.DBName,
		RawQuery: url.Values{"sslmode": []string{dbConfig.SSLMode}}.Encode(),
	}
	return u.String()
}

func runMigrations(direction string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	m, err := migrate.New("file://"+migrationsPath, databaseURL(cfg.Database))
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Printf("Migration source error on close: %v\n", srcErr)
		}
		if dbErr != nil {
			log.Printf("Migration database error on close: %v\n", dbErr)
		}
	}()

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		fmt.Println("No migrations to apply.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration %s failed: %w", direction, err)
	}

	fmt.Printf("Migration %s completed successfully.\n", direction)
	return nil
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all available database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrations("up")
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert the last database migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrations("down")
	},
}

func main() {
	rootCmd := &cobra.Command{Use: "migrate", SilenceUsage: true}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-chat.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&migrationsPath, "path", "migrations", "Directory containing the migration files")

	rootCmd.AddCommand(upCmd, downCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing migrate CLI: %s\n", err)
		os.Exit(1)
	}
}
