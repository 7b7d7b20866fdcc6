package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"tariffdash.digitalaccess.org/internal/tariffs"
)

// WriteCSV writes records as a semicolon-delimited table with a header row.
func WriteCSV(w io.Writer, records []tariffs.CountryRecord) error {
	writer := csv.NewWriter(w)
	writer.Comma = tariffs.Delimiter

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	line := make([]string, len(Header))
	for _, r := range records {
		for i, cell := range row(r) {
			line[i] = formatCell(cell)
		}
		if err := writer.Write(line); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
