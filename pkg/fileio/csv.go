package fileio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/aretw0/utilkit/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Table is a CSV document: a header row followed by records of the same width.
type Table struct {
	Header []string
	Rows   [][]string
}

// Records returns each row as a map keyed by header name.
func (t Table) Records() []map[string]string {
	records := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]string, len(t.Header))
		for i, col := range t.Header {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records
}

// TableFromRecords builds a Table whose header is the sorted union of all record
// keys. Keys missing from a record become empty cells.
func TableFromRecords(records []map[string]string) Table {
	seen := make(map[string]struct{})
	header := []string{}
	for _, rec := range records {
		for k := range rec {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				header = append(header, k)
			}
		}
	}
	slices.Sort(header)

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(header))
		for i, col := range header {
			row[i] = rec[col]
		}
		rows = append(rows, row)
	}
	return Table{Header: header, Rows: rows}
}

// SaveCSV writes t to path. The header is required and every row must match its width.
func SaveCSV(path string, t Table) error {
	if len(t.Header) == 0 {
		return fmt.Errorf("%w: csv table has no header", domain.ErrInvalidArgument)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return fmt.Errorf("%w: csv row %d has %d fields, header has %d",
				domain.ErrInvalidArgument, i+1, len(row), len(t.Header))
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Header); err != nil {
		return unencodable("csv", err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return unencodable("csv", err)
	}
	return writeFile(path, buf.Bytes())
}

// LoadCSV reads the CSV document at path. The first record is the header.
// A file without a header, or with rows of a different width, is malformed.
func LoadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, classify("open", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, fmt.Errorf("%w: csv %s has no header row", domain.ErrMalformedData, path)
		}
		return Table{}, csvReadError(path, err)
	}

	rows, err := r.ReadAll()
	if err != nil {
		return Table{}, csvReadError(path, err)
	}
	if rows == nil {
		rows = [][]string{}
	}
	return Table{Header: header, Rows: rows}, nil
}

func csvReadError(path string, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return malformed("csv", path, err)
	}
	return classify("read", path, err)
}

// DecodeRecords decodes every row of t into a T. Struct fields match header
// names through the `csv` tag or, without a tag, case-insensitively by name.
// Cells are converted weakly ("42" to int, "true" to bool, "" to zero).
func DecodeRecords[T any](t Table) ([]T, error) {
	out := make([]T, 0, len(t.Rows))
	for i, rec := range t.Records() {
		var v T
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &v,
			TagName:          "csv",
			WeaklyTypedInput: true,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: csv decoder: %w", domain.ErrInvalidArgument, err)
		}
		if err := dec.Decode(rec); err != nil {
			return nil, fmt.Errorf("%w: csv row %d: %w", domain.ErrMalformedData, i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// LoadRecords reads the CSV document at path and decodes its rows into T.
func LoadRecords[T any](path string) ([]T, error) {
	t, err := LoadCSV(path)
	if err != nil {
		return nil, err
	}
	return DecodeRecords[T](t)
}
