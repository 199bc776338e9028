package main

import (
	"context"

	"fireforce/internal/db"
	"fireforce/internal/seed"
	"fireforce/internal/store"

	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed sample incident cases into the database",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"c"},
			Usage:   "Number of cases to seed",
			Value:   seed.DefaultCaseCount,
		},
		&cli.BoolFlag{
			Name:  "reset",
			Usage: "Delete previously seeded cases first",
		},
	},
	Action: func(cCtx *cli.Context) error {
		ctx := context.Background()

		config, err := loadConfig()
		if err != nil {
			return err
		}

		pool, err := db.Connect(ctx, config)
		if err != nil {
			return err
		}
		defer pool.Close()

		repo := store.NewCaseRepository(pool)

		if cCtx.Bool("reset") {
			if err := seed.Reset(ctx, pool); err != nil {
				return err
			}
		}

		return seed.Cases(ctx, repo, cCtx.Int("count"))
	},
}
