// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source loads the homepage document that the pipelines read.
package source

import (
	"errors"
	"fmt"
	"os"
)

// ErrSourceNotFound is returned when the homepage file does not exist.
var ErrSourceNotFound = errors.New("source document not found")

// Load reads the whole file at path as one string. Documents are small
// enough that streaming buys nothing.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
