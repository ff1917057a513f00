package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/aretw0/utilkit/pkg/domain"
)

const filePerm = 0o644

// classify wraps a filesystem error with ErrNotFound or ErrIOFailure.
func classify(op, path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s %s: %w", domain.ErrNotFound, op, path, err)
	}
	return fmt.Errorf("%w: %s %s: %w", domain.ErrIOFailure, op, path, err)
}

func malformed(format, path string, err error) error {
	return fmt.Errorf("%w: parse %s %s: %w", domain.ErrMalformedData, format, path, err)
}

func unencodable(format string, err error) error {
	return fmt.Errorf("%w: encode %s: %w", domain.ErrInvalidArgument, format, err)
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, classify("read", path, err)
	}
	return data, nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("%w: write %s: %w", domain.ErrIOFailure, path, err)
	}
	return nil
}

// CreateDirectory creates path and any missing parents. An existing directory
// is not an error; an existing file at path is.
func CreateDirectory(path string) error {
	if path == "" {
		return fmt.Errorf("%w: directory path is empty", domain.ErrInvalidArgument)
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("%w: create directory %s: %w", domain.ErrIOFailure, path, err)
	}
	return nil
}
