// cmd/cli/commands.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javajoker/atelier-backend/internal/config"
	"github.com/javajoker/atelier-backend/internal/database"
	"github.com/javajoker/atelier-backend/internal/services"
	"github.com/javajoker/atelier-backend/internal/store"
	"github.com/javajoker/atelier-backend/internal/utils"
)

// options are shared by every subcommand. An empty dataDir means DATA_DIR
// from the environment.
type options struct {
	dataDir string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "atelier",
		Short:         "Maintenance commands for the site's content store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "Data directory (default: DATA_DIR env)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newSeedCmd(opts))
	root.AddCommand(newHashPasswordCmd())
	root.AddCommand(newSetPasswordCmd(opts))
	return root
}

func newSeedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create default documents that do not exist yet",
		Long: `Write the default products, home and contact documents into the data
directory. Existing documents are left untouched. The admin document is
created from ADMIN_PASSWORD when that variable is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, docs, err := openStore(opts)
			if err != nil {
				return err
			}
			if err := database.SeedInitialData(docs, cfg.Admin.InitialPassword); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %s\n", docs.DataDir())
			return nil
		},
	}
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print the bcrypt hash of a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hashed, err := utils.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hashed)
			return nil
		},
	}
}

func newSetPasswordCmd(opts *options) *cobra.Command {
	var hash bool

	cmd := &cobra.Command{
		Use:   "set-password <password>",
		Short: "Replace the shared admin password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, docs, err := openStore(opts)
			if err != nil {
				return err
			}
			if err := services.NewAuthService(docs, cfg).SetPassword(args[0], hash); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "admin password updated")
			return nil
		},
	}
	cmd.Flags().BoolVar(&hash, "hash", false, "Store a bcrypt hash instead of plaintext")
	return cmd
}

func openStore(opts *options) (*config.Config, *store.DocumentStore, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.dataDir != "" {
		cfg.Storage.DataDir = opts.dataDir
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	utils.ConfigureLogger(cfg.Log)

	docs, err := database.Initialize(cfg.Storage)
	if err != nil {
		return nil, nil, err
	}
	return cfg, docs, nil
}
