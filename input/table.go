package input

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/kalukad/MM-Kinetics-app/fit"
)

// Header column names the table adapter requires, matched
// case-insensitively.
const (
	SubstrateColumn = "Substrate_Concentration"
	VelocityColumn  = "Initial_Velocity"
)

// ReadTable builds a dataset from a delimited table with a header row
// naming the SubstrateColumn and VelocityColumn columns. The delimiter
// (comma, tab or semicolon) is sniffed from the header line; extra columns
// are ignored.
func ReadTable(r io.Reader) (*fit.Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input table: %w", err)
	}

	text := strings.TrimPrefix(string(data), "\ufeff")

	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = sniffDelimiter(text)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse input table: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("input table is empty")
	}

	sIdx, vIdx := -1, -1
	for i, name := range records[0] {
		switch {
		case strings.EqualFold(strings.TrimSpace(name), SubstrateColumn):
			sIdx = i
		case strings.EqualFold(strings.TrimSpace(name), VelocityColumn):
			vIdx = i
		}
	}
	if sIdx < 0 || vIdx < 0 {
		return nil, fmt.Errorf("input table must have %q and %q columns", SubstrateColumn, VelocityColumn)
	}

	rows := records[1:]
	sVals := make([]string, 0, len(rows))
	vVals := make([]string, 0, len(rows))
	for i, row := range rows {
		if len(row) <= sIdx || len(row) <= vIdx {
			return nil, fmt.Errorf("row %d has %d columns, expected at least %d", i+1, len(row), max(sIdx, vIdx)+1)
		}
		sVals = append(sVals, strings.TrimSpace(row[sIdx]))
		vVals = append(vVals, strings.TrimSpace(row[vIdx]))
	}

	return fit.ParseDataset(sVals, vVals)
}

// sniffDelimiter picks the delimiter from the header line: tab when present,
// semicolon when the line has semicolons but no commas, comma otherwise.
func sniffDelimiter(text string) rune {
	header, _, _ := strings.Cut(text, "\n")
	switch {
	case strings.ContainsRune(header, '\t'):
		return '\t'
	case strings.ContainsRune(header, ';') && !strings.ContainsRune(header, ','):
		return ';'
	default:
		return ','
	}
}
