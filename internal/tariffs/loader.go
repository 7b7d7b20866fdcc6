package tariffs

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// Delimiter separates the fields of every source file.
const Delimiter = ';'

var (
	tariffColumns     = []string{ColumnCountry, ColumnDeficit, ColumnAlleged, ColumnResponse}
	populationColumns = []string{ColumnCountry, ColumnPopulation}
	scoreColumns      = []string{ColumnCountry, ColumnScore}
)

// LoadTariffs reads the tariff table. Extra columns are ignored.
func LoadTariffs(r io.Reader, source string) ([]RawTariffRow, error) {
	df, lines, err := readTable(r, source, tariffColumns)
	if err != nil {
		return nil, err
	}

	countries := df.Col(ColumnCountry).Records()
	deficits := df.Col(ColumnDeficit).Records()
	alleged := df.Col(ColumnAlleged).Records()
	response := df.Col(ColumnResponse).Records()

	rows := make([]RawTariffRow, df.Nrow())
	for i := range rows {
		rows[i] = RawTariffRow{
			Line:     lines[i],
			Country:  countries[i],
			Deficit:  deficits[i],
			Alleged:  alleged[i],
			Response: response[i],
		}
	}
	return rows, nil
}

// LoadPopulation reads the population table. Extra columns are ignored.
func LoadPopulation(r io.Reader, source string) ([]RawPopulationRow, error) {
	df, lines, err := readTable(r, source, populationColumns)
	if err != nil {
		return nil, err
	}

	countries := df.Col(ColumnCountry).Records()
	population := df.Col(ColumnPopulation).Records()

	rows := make([]RawPopulationRow, df.Nrow())
	for i := range rows {
		rows[i] = RawPopulationRow{
			Line:       lines[i],
			Country:    countries[i],
			Population: population[i],
		}
	}
	return rows, nil
}

// LoadTariffsFile opens path and reads it with LoadTariffs.
func LoadTariffsFile(path string) ([]RawTariffRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FormatError{Source: path, Reason: "unreadable", Err: err}
	}
	defer f.Close() // nolint

	return LoadTariffs(f, path)
}

// LoadPopulationFile opens path and reads it with LoadPopulation.
func LoadPopulationFile(path string) ([]RawPopulationRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FormatError{Source: path, Reason: "unreadable", Err: err}
	}
	defer f.Close() // nolint

	return LoadPopulation(f, path)
}

// readTable parses a semicolon-delimited table with a header row and projects it onto
// the required columns. Every row must have as many fields as the header. The returned
// slice holds the file line of each data row; blank lines are skipped but still counted.
func readTable(r io.Reader, source string, required []string) (dataframe.DataFrame, []int, error) {
	reader := csv.NewReader(r)
	reader.Comma = Delimiter
	reader.FieldsPerRecord = 0

	var records [][]string
	var lines []int
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return dataframe.DataFrame{}, nil, &FormatError{Source: source, Line: parseErr.Line, Reason: "malformed row", Err: parseErr.Err}
			}
			return dataframe.DataFrame{}, nil, &FormatError{Source: source, Reason: "unreadable", Err: err}
		}
		line, _ := reader.FieldPos(0)
		records = append(records, record)
		lines = append(lines, line)
	}
	if len(records) == 0 {
		return dataframe.DataFrame{}, nil, &FormatError{Source: source, Reason: "missing header row"}
	}
	if len(records) < 2 {
		return dataframe.DataFrame{}, nil, &FormatError{Source: source, Reason: "no data rows"}
	}

	header := records[0]
	headerLine := lines[0]
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if seen[name] {
			return dataframe.DataFrame{}, nil, &FormatError{Source: source, Line: headerLine, Column: name, Reason: "duplicate column"}
		}
		seen[name] = true
		header[i] = name
	}
	for _, name := range required {
		if !seen[name] {
			return dataframe.DataFrame{}, nil, &FormatError{Source: source, Line: headerLine, Column: name, Reason: "missing required column"}
		}
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.NaNValues([]string{}),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, nil, &FormatError{Source: source, Reason: "invalid table", Err: df.Err}
	}

	df = df.Select(required)
	if df.Err != nil {
		return dataframe.DataFrame{}, nil, &FormatError{Source: source, Reason: "invalid table", Err: fmt.Errorf("select columns: %w", df.Err)}
	}
	return df, lines[1:], nil
}
