package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/app/report"
	"github.com/yigit/unirecords/internal/bootstrap"
	"github.com/yigit/unirecords/internal/config"
	"github.com/yigit/unirecords/internal/seed"
)

type rootOptions struct {
	configPath string
	format     string
}

// newRootCmd creates the registrar command tree
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "registrar",
		Short:         "Registrar manages a department's people, courses, enrollments and grades.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "configs/config.yaml", "config file")
	cmd.PersistentFlags().StringVar(&opts.format, "format", "text", `report format ("text", "yaml")`)

	cmd.AddCommand(newDemoCmd(opts), newCatalogCmd(opts))
	return cmd
}

func newDemoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample Computer Science department and print its report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd, opts, func(*config.Config) (*seed.Catalog, error) {
				return seed.DemoCatalog(), nil
			})
		},
	}
}

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [file]",
		Short: "Apply a YAML catalog and print the resulting report",
		Long:  "Apply a YAML catalog and print the resulting report. Without an argument the configured seed.catalog_path is used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd, opts, func(cfg *config.Config) (*seed.Catalog, error) {
				path := cfg.Seed.CatalogPath
				if len(args) == 1 {
					path = args[0]
				}
				if path == "" {
					return nil, fmt.Errorf("no catalog file given and seed.catalog_path is not set")
				}
				return seed.LoadCatalog(path)
			})
		},
	}
}

func runCatalog(cmd *cobra.Command, opts *rootOptions, load func(*config.Config) (*seed.Catalog, error)) error {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(opts.configPath, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	catalog, err := load(cfg)
	if err != nil {
		return err
	}

	deps := bootstrap.BuildDependencies(cfg, catalog.Department, lgr)
	roster, err := seed.Apply(deps.DepartmentService, catalog, seed.Options{EnrollmentLimit: cfg.Records.EnrollmentLimit}, lgr)
	if err != nil {
		// a partially applied catalog still gets reported
		lgr.Warn().Err(err).Msg("Catalog applied with errors")
	}

	others := make([]models.Person, 0, len(roster.Staff))
	for _, s := range roster.Staff {
		others = append(others, s)
	}
	return report.Build(deps.DepartmentService, others...).Render(cmd.OutOrStdout(), format)
}
