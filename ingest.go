package vegalite

import (
	"encoding/csv"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
)

// InlineValues wraps rows as an inline data source without conversion. Rows
// should be JSON-compatible values (maps, slices, numbers, strings).
func InlineValues(rows ...any) *Data {
	return &Data{Values: &InlineDataset{Rows: rows}}
}

// RecordsOf converts a slice of records (structs, maps, or scalars) into an
// inline data source by round-tripping through JSON, so struct tags decide
// the row keys. Scalar elements become {"data": value} rows, matching how
// renderers expect bare series.
func RecordsOf(records any) (*Data, error) {
	raw, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}
	var rows []any
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, Issues{{Path: "", Code: CodeInvalidType, Message: "records must be a slice", Cause: err}}
	}
	for i, r := range rows {
		if _, ok := r.(map[string]any); !ok {
			rows[i] = map[string]any{"data": r}
		}
	}
	return &Data{Values: &InlineDataset{Rows: rows}}, nil
}

// FromCSV reads comma-separated rows with a header line into an inline data
// source. Cells that parse as numbers become numbers; everything else stays
// a string.
func FromCSV(r io.Reader) (*Data, error) {
	return fromDSV(r, ',')
}

// FromTSV is FromCSV with a tab delimiter.
func FromTSV(r io.Reader) (*Data, error) {
	return fromDSV(r, '\t')
}

func fromDSV(r io.Reader, delim rune) (*Data, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return nil, Issues{{Path: "", Code: CodeParseError, Message: "missing header row", Cause: err}}
	}
	var rows []any
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, Issues{{Path: "/" + strconv.Itoa(line-2), Code: CodeParseError, Message: "malformed row", Cause: err}}
		}
		row := make(map[string]any, len(header))
		for i, cell := range rec {
			if i >= len(header) {
				break
			}
			if f, err := strconv.ParseFloat(cell, 64); err == nil {
				row[header[i]] = f
			} else {
				row[header[i]] = cell
			}
		}
		rows = append(rows, row)
	}
	return &Data{Values: &InlineDataset{Rows: rows}}, nil
}
