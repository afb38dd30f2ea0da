// Command cashctl runs administrative tasks against the GestorCash database.
//
//	cashctl migrate up
//	cashctl migrate down --steps 1
//	cashctl seed
package main

import (
	"os"
	"time"

	"gestorcash/internal/config"
	"gestorcash/internal/infra"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("cashctl failed")
	}
}

func newApp() *cli.App {
	dsnFlag := &cli.StringFlag{
		Name:    "database-url",
		Usage:   "Postgres DSN; defaults to the server configuration",
		EnvVars: []string{"DATABASE_URL"},
	}
	return &cli.App{
		Name:  "cashctl",
		Usage: "GestorCash administration",
		Flags: []cli.Flag{dsnFlag},
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "apply or roll back schema migrations",
				Subcommands: []*cli.Command{
					{
						Name:  "up",
						Usage: "apply all pending migrations",
						Action: func(c *cli.Context) error {
							dsn, err := resolveDSN(c)
							if err != nil {
								return err
							}
							return infra.RunMigrations(dsn)
						},
					},
					{
						Name:  "down",
						Usage: "roll back migrations",
						Flags: []cli.Flag{&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to undo"}},
						Action: func(c *cli.Context) error {
							dsn, err := resolveDSN(c)
							if err != nil {
								return err
							}
							return infra.RollbackMigrations(dsn, c.Int("steps"))
						},
					},
				},
			},
			{
				Name:  "seed",
				Usage: "create or refresh the demo store, register and district manager",
				Action: func(c *cli.Context) error {
					dsn, err := resolveDSN(c)
					if err != nil {
						return err
					}
					db, err := infra.NewDatabase(dsn)
					if err != nil {
						return err
					}
					if err := seed(c.Context, db); err != nil {
						return err
					}
					log.Info().Str("store", demoStoreID).Str("user", demoUserEmail).Msg("demo data seeded")
					return nil
				},
			},
		},
	}
}

// resolveDSN prefers the flag and falls back to the server configuration.
func resolveDSN(c *cli.Context) (string, error) {
	if dsn := c.String("database-url"); dsn != "" {
		return dsn, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.DatabaseURL, nil
}
