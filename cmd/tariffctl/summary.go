package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"tariffdash.digitalaccess.org/internal/tariffs"
)

func newSummaryCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the merged dataset and its join statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, err := opts.loadDataset(cmd)
			if err != nil {
				return err
			}
			return writeSummary(cmd.OutOrStdout(), dataset)
		},
	}
}

func writeSummary(w io.Writer, dataset *tariffs.Manager) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Country\tDeficit\tAlleged %\tResponse %\tPopulation\tScore\tGDP impact\t")
	for _, r := range dataset.Records() {
		population := "-"
		if r.Population != nil {
			population = strconv.FormatFloat(*r.Population, 'f', 0, 64)
		}
		fmt.Fprintf(tw, "%s\t%.0f\t%.0f\t%.0f\t%s\t%s\t%s\t\n",
			r.Country, r.USDeficit2024, r.AllegedTariffRate, r.ResponseTariffRate,
			population, formatOptional(r.DigitalAccessScore, 0), formatOptional(r.GDPImpact, 6))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	stats := dataset.Statistics()
	_, err := fmt.Fprintf(w, "\n%d countries, %d with population (%d without), %d good / %d poor digital access, scores from %s\n",
		stats.Rows, stats.MatchedPopulation, stats.UnmatchedPopulation,
		stats.GoodDigitalAccess, stats.PoorDigitalAccess, stats.ScoreSource)
	return err
}

func formatOptional(v float64, precision int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
