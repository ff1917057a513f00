package fileio

import (
	"github.com/pelletier/go-toml/v2"
)

// SaveTOML writes v to path as TOML. v must encode to a table (a struct or a map).
func SaveTOML(path string, v any) error {
	data, err := toml.Marshal(v)
	if err != nil {
		return unencodable("toml", err)
	}
	return writeFile(path, data)
}

// LoadTOML reads the TOML document at path. Integers decode to int64.
func LoadTOML(path string) (map[string]any, error) {
	v := make(map[string]any)
	if err := LoadTOMLInto(path, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// LoadTOMLInto decodes the TOML document at path into dst.
func LoadTOMLInto(path string, dst any) error {
	data, err := readFile(path)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(data, dst); err != nil {
		return malformed("toml", path, err)
	}
	return nil
}
