// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads the sync credentials from a directory of plain-text
// files. Each file is one secret: the filename is the key name and the
// trimmed contents are the value. Environment variables override files.
//
// Recognised keys: openalex-email, semantic-scholar-api-key.
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory is not an error; Load returns an empty map.
// Unreadable files produce a warning on warn but do not abort.
func Load(dir string, warn io.Writer) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(warn, "warning: could not read secret %s: %v\n", name, err)
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}
	return secrets, nil
}

// EnvName returns the environment variable that overrides key, e.g.
// HOMEPAGE_OPENALEX_EMAIL for prefix "HOMEPAGE" and key "openalex-email".
func EnvName(prefix, key string) string {
	name := strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
	if prefix == "" {
		return name
	}
	return strings.ToUpper(prefix) + "_" + name
}

// ApplyEnv sets each of keys from its environment variable when that
// variable is non-empty, overriding any value loaded from a file.
func ApplyEnv(secrets map[string]string, prefix string, keys ...string) {
	for _, key := range keys {
		if v := strings.TrimSpace(os.Getenv(EnvName(prefix, key))); v != "" {
			secrets[key] = v
		}
	}
}
