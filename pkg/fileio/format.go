package fileio

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aretw0/utilkit/pkg/domain"
)

// Format is a supported file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatCSV  Format = "csv"
)

// FormatOf picks the format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("%w: unknown file format for %q", domain.ErrInvalidArgument, path)
}

// Load reads path in the format given by its extension. CSV files load as a
// []any of map[string]any records so the result has the same shape as JSON.
func Load(path string) (any, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatYAML:
		return LoadYAML(path)
	case FormatTOML:
		return LoadTOML(path)
	case FormatCSV:
		t, err := LoadCSV(path)
		if err != nil {
			return nil, err
		}
		out := make([]any, 0, len(t.Rows))
		for _, rec := range t.Records() {
			m := make(map[string]any, len(rec))
			for k, v := range rec {
				m[k] = v
			}
			out = append(out, m)
		}
		return out, nil
	default:
		return LoadJSON(path)
	}
}

// Save writes v to path in the format given by its extension. CSV requires a
// list of flat records (maps from string to scalar).
func Save(path string, v any) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	switch format {
	case FormatYAML:
		return SaveYAML(path, v)
	case FormatTOML:
		return SaveTOML(path, v)
	case FormatCSV:
		records, err := flatRecords(v)
		if err != nil {
			return err
		}
		return SaveCSV(path, TableFromRecords(records))
	default:
		return SaveJSON(path, v)
	}
}

func flatRecords(v any) ([]map[string]string, error) {
	var items []any
	switch list := v.(type) {
	case []any:
		items = list
	case []map[string]any:
		for _, m := range list {
			items = append(items, m)
		}
	default:
		return nil, fmt.Errorf("%w: csv needs a list of records, got %T", domain.ErrInvalidArgument, v)
	}

	records := make([]map[string]string, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: csv record %d is %T, not an object", domain.ErrInvalidArgument, i+1, item)
		}
		rec := make(map[string]string, len(m))
		for k, val := range m {
			switch x := val.(type) {
			case nil:
				rec[k] = ""
			case float64:
				rec[k] = strconv.FormatFloat(x, 'f', -1, 64)
			case float32:
				rec[k] = strconv.FormatFloat(float64(x), 'f', -1, 32)
			case map[string]any, []any:
				return nil, fmt.Errorf("%w: csv record %d field %q is not a scalar", domain.ErrInvalidArgument, i+1, k)
			default:
				rec[k] = fmt.Sprint(val)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// Convert loads src and saves it to dst, each in the format of its extension.
func Convert(src, dst string) error {
	v, err := Load(src)
	if err != nil {
		return err
	}
	return Save(dst, v)
}
