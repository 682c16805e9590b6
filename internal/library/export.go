// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/homepage/pkg/types"
)

// MarshalYAML encodes pubs in the layout of the Jekyll data file
// (_data/publications.yml): a list of title, authors, year, journal, link
// maps with numeric years written as integers.
func MarshalYAML(pubs []types.SyncedPublication) ([]byte, error) {
	if pubs == nil {
		pubs = []types.SyncedPublication{}
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(pubs); err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalJSON encodes pubs as an indented JSON array.
func MarshalJSON(pubs []types.SyncedPublication) ([]byte, error) {
	if pubs == nil {
		pubs = []types.SyncedPublication{}
	}
	data, err := json.MarshalIndent(pubs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}
