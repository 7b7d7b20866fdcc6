package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
	"tariffdash.digitalaccess.org/internal/charts"
	"tariffdash.digitalaccess.org/internal/logging"
	"tariffdash.digitalaccess.org/internal/utils"
)

func newRenderCmd(opts *cliOptions) *cobra.Command {
	var (
		output string
		width  float64
		height float64
	)

	cmd := &cobra.Command{
		Use:   "render <chart-id>",
		Short: "Render one chart to a PNG file",
		Long:  "Render one chart to a PNG file. Chart ids: " + chartIDs() + ".",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			chart, ok := charts.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown chart %q (want one of %s)", args[0], chartIDs())
			}
			for name, inches := range map[string]float64{"width": width, "height": height} {
				if err := utils.ValidateImageDimension(inches); err != nil {
					return fmt.Errorf("--%s %w", name, err)
				}
			}

			dataset, err := opts.loadDataset(cmd)
			if err != nil {
				return err
			}

			if output == "" {
				output = chart.ID + ".png"
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer logging.HandleDeferredError(&err, f.Close, nil, "close "+output)

			spec := chart.Build(dataset.Records(), nil)
			if err := charts.Render(f, spec, vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default <chart-id>.png)")
	cmd.Flags().Float64Var(&width, "width", float64(charts.DefaultImageWidth/vg.Inch), "Image width in inches")
	cmd.Flags().Float64Var(&height, "height", float64(charts.DefaultImageHeight/vg.Inch), "Image height in inches")

	return cmd
}

func chartIDs() string {
	var ids []string
	for _, chart := range charts.Charts() {
		ids = append(ids, chart.ID)
	}
	return strings.Join(ids, ", ")
}
