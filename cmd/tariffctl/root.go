package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"tariffdash.digitalaccess.org/internal/logging"
	"tariffdash.digitalaccess.org/internal/tariffs"
)

// cliOptions holds the persistent flags shared by every subcommand.
type cliOptions struct {
	tariffs    string
	population string
	scores     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:           "tariffctl",
		Short:         "Inspect, render and export the tariff impact dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.tariffs, "tariffs", envOr("TARIFFS_CSV", "tariffs.csv"), "Path to the semicolon-delimited tariff file")
	root.PersistentFlags().StringVar(&opts.population, "population", envOr("POPULATION_CSV", "population.csv"), "Path to the semicolon-delimited population file")
	root.PersistentFlags().StringVar(&opts.scores, "scores", envOr("SCORES_CSV", ""), "Path to a Country;DigitalAccessScore file (random placeholder scores when empty)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log dataset statistics to stderr")

	root.AddCommand(newSummaryCmd(opts))
	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newExportCmd(opts))

	return root
}

// loadDataset runs the pipeline over the files named by the flags.
func (opts *cliOptions) loadDataset(cmd *cobra.Command) (*tariffs.Manager, error) {
	dataset, err := tariffs.InitManager(tariffs.Config{
		TariffsPath:    opts.tariffs,
		PopulationPath: opts.population,
		ScoresPath:     opts.scores,
	})
	if err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelInfo
	}
	dataset.LogStatistics(logging.NewStructuredLogger(cmd.ErrOrStderr(), level))

	return dataset, nil
}

func envOr(name, def string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return def
}
