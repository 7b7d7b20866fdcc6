package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"tariffdash.digitalaccess.org/internal/export"
	"tariffdash.digitalaccess.org/internal/logging"
)

func newExportCmd(opts *cliOptions) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the merged dataset as CSV or XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			dataset, err := opts.loadDataset(cmd)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return export.Write(cmd.OutOrStdout(), f, dataset.Records())
			}

			file, err := os.Create(output)
			if err != nil {
				return err
			}
			defer logging.HandleDeferredError(&err, file.Close, nil, "close "+output)

			if err := export.Write(file, f, dataset.Records()); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d rows to %s\n", dataset.Len(), output)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", string(export.FormatCSV), "Output format (csv|xlsx)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout when empty or -)")

	return cmd
}
