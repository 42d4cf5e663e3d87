package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	server_config "github.com/carson-networks/fairshare-server/internal/config"
)

func main() {
	app := &cli.App{
		Name:  "db_migrations",
		Usage: "apply fairshare-server schema migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "source",
				Value:   "file://migrations",
				Usage:   "migration source URL",
				EnvVars: []string{"FAIRSHARE_MIGRATIONS_SOURCE"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: func(c *cli.Context) error {
					return run(c.String("source"), func(m *migrate.Migrate) error { return m.Up() })
				},
			},
			{
				Name:  "down",
				Usage: "roll back the given number of migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to roll back"},
				},
				Action: func(c *cli.Context) error {
					steps := c.Int("steps")
					if steps < 1 {
						return fmt.Errorf("steps must be positive, got %d", steps)
					}
					return run(c.String("source"), func(m *migrate.Migrate) error { return m.Steps(-steps) })
				},
			},
			{
				Name:  "version",
				Usage: "print the current schema version",
				Action: func(c *cli.Context) error {
					return run(c.String("source"), func(*migrate.Migrate) error { return nil })
				},
			},
		},
		DefaultCommand: "up",
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("db_migrations")
	}
}

func run(source string, step func(*migrate.Migrate) error) error {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		return fmt.Errorf("ProcessEnvironmentVariables: %w", err)
	}

	db, err := sql.Open("postgres", env.PostgresConnectionString())
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("postgres.WithInstance: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrate.NewWithDatabaseInstance: %w", err)
	}

	preMigrationVersion, err := currentVersion(m)
	if err != nil {
		return fmt.Errorf("m.Version.preMigrationVersion: %w", err)
	}

	if err := step(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	postMigrationVersion, err := currentVersion(m)
	if err != nil {
		return fmt.Errorf("m.Version.postMigrationVersion: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  preMigrationVersion,
		"postMigrationVersion": postMigrationVersion,
	}).Info("Migration status")
	return nil
}

func currentVersion(m *migrate.Migrate) (uint, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty", version)
	}
	return version, nil
}
