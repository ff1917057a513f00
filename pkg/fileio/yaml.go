package fileio

import (
	"gopkg.in/yaml.v3"
)

// SaveYAML writes v to path as YAML.
func SaveYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return unencodable("yaml", err)
	}
	return writeFile(path, data)
}

// LoadYAML reads the YAML document at path. Mappings decode to map[string]any.
// An empty document loads as nil.
func LoadYAML(path string) (any, error) {
	var v any
	if err := LoadYAMLInto(path, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// LoadYAMLInto decodes the YAML document at path into dst.
func LoadYAMLInto(path string, dst any) error {
	data, err := readFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return malformed("yaml", path, err)
	}
	return nil
}
