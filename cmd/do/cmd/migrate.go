package cmd

import (
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/templui/goalfund/internal/db"
)

type migrateOptions struct {
	driver     string
	connection string
}

func MigrateCmd() *cobra.Command {
	opts := &migrateOptions{}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	migrateCmd.PersistentFlags().StringVar(&opts.driver, "driver", envOr("DB_DRIVER", db.DriverSQLite), "Database driver (sqlite or pgx)")
	migrateCmd.PersistentFlags().StringVar(&opts.connection, "db", envOr("DB_CONNECTION", "./data/goalfund.db?_pragma=foreign_keys(1)"), "Database connection string")

	migrateCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.run(cmd, func(o *migrateOptions, database *sqlx.DB) error {
					return db.RunMigrations(database.DB, o.driver)
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.run(cmd, func(o *migrateOptions, database *sqlx.DB) error {
					return db.MigrateDown(database.DB, o.driver)
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the applied schema version",
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.run(cmd, func(o *migrateOptions, database *sqlx.DB) error {
					version, err := db.Version(database.DB, o.driver)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "schema version: %d\n", version)
					return nil
				})
			},
		},
	)

	return migrateCmd
}

func (o *migrateOptions) run(cmd *cobra.Command, fn func(o *migrateOptions, database *sqlx.DB) error) error {
	database, err := db.Init(o.driver, o.connection)
	if err != nil {
		return err
	}
	defer db.Close(database)

	err = fn(o, database)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "migrate:", err)
		return err
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
