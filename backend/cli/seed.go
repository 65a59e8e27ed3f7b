package cli

import (
	"errors"
	"fmt"

	"recipe-book/backend/app/repo"
	"recipe-book/backend/app/seed"
	"recipe-book/backend/config"
	"recipe-book/backend/initialize"

	"github.com/spf13/cobra"
)

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	*RootOptions
	File  string
	Force bool
}

var errNotEmpty = errors.New("the database already has users; use --force to seed anyway")

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load fixtures into the database",
		Long: `Load users, ingredients, keywords, recipes and comments from a YAML
fixtures file into the database. Without --file the path from the config
(seed.path) is used, and without either the built-in demo data.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.File, "file", "", "fixtures file")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "seed even when the database is not empty")

	return cmd
}

func runSeed(cmd *cobra.Command, opts *SeedOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	initialize.SetupLogger(cfg.Log)

	path := opts.File
	if path == "" {
		path = cfg.Seed.Path
	}
	fx, err := seed.Load(path)
	if err != nil {
		return err
	}

	store, err := initialize.OpenStore(cfg.DB)
	if err != nil {
		return err
	}
	defer closeStore(store)

	empty, err := seed.Empty(cmd.Context(), store)
	if err != nil {
		return err
	}
	if !empty && !opts.Force {
		return errNotEmpty
	}
	if err := seed.Apply(cmd.Context(), store, fx); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d users and %d recipes\n", len(fx.Users), len(fx.Recipes))
	return nil
}

func closeStore(store *repo.Store) {
	if sqlDB, err := store.DB().DB(); err == nil {
		_ = sqlDB.Close()
	}
}
