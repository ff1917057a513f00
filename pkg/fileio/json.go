package fileio

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// SaveJSON writes v to path as indented JSON.
func SaveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return unencodable("json", err)
	}
	return writeFile(path, append(data, '\n'))
}

// LoadJSON reads the JSON document at path. Objects decode to map[string]any
// and arrays to []any. Integers decode to int64, or stay json.Number when
// they overflow it, so no digit is lost; other numbers decode to float64.
func LoadJSON(path string) (any, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, malformed("json", path, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, malformed("json", path, errors.New("trailing data after document"))
	}
	return numbers(v), nil
}

// LoadJSONInto decodes the JSON document at path into dst.
func LoadJSONInto(path string, dst any) error {
	data, err := readFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return malformed("json", path, err)
	}
	return nil
}

// numbers replaces the json.Number leaves of v in place.
func numbers(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if bytes.ContainsAny([]byte(x), ".eE") {
			if f, err := x.Float64(); err == nil {
				return f
			}
		}
		return x
	case map[string]any:
		for k, item := range x {
			x[k] = numbers(item)
		}
	case []any:
		for i, item := range x {
			x[i] = numbers(item)
		}
	}
	return v
}
