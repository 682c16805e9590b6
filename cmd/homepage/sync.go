// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/homepage/internal/library"
	"github.com/pdiddy/homepage/internal/scholar"
	"github.com/pdiddy/homepage/pkg/types"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Refresh the publication data file from an academic index",
	Long: `Sync reads the author identifier from the site configuration
(openalex_author_id or semantic_scholar_author_id in _config.yml), fetches
every work from OpenAlex or Semantic Scholar, and writes the site data file
sorted newest first. Records are also accumulated in the local library.

A missing identifier or any service failure aborts the sync before either
file is written. Rate-limited requests (HTTP 429) are retried with backoff.`,
	RunE: runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc := syncConfigFromFlags(cmd, cfg.Sync)

	backend, err := scholar.NewBackend(sc, loadedSecrets, os.Stderr)
	if err != nil {
		return err
	}

	var archive scholar.Archive
	if noLib, _ := cmd.Flags().GetBool("no-library"); !noLib {
		store, err := library.Open(sc.Database)
		if err != nil {
			return err
		}
		defer store.Close()
		archive = store
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, err = scholar.Sync(ctx, sc, backend, archive, time.Now(), os.Stdout)
	return err
}

func syncConfigFromFlags(cmd *cobra.Command, sc types.SyncConfig) types.SyncConfig {
	flags := cmd.Flags()
	if flags.Changed("backend") {
		sc.Backend, _ = flags.GetString("backend")
	}
	if flags.Changed("site-config") {
		sc.SiteConfig, _ = flags.GetString("site-config")
	}
	if flags.Changed("data-file") {
		sc.DataFile, _ = flags.GetString("data-file")
	}
	if flags.Changed("database") {
		sc.Database, _ = flags.GetString("database")
	}
	if flags.Changed("highlight") {
		sc.HighlightNames, _ = flags.GetStringSlice("highlight")
	}
	return sc
}

func init() {
	syncCmd.Flags().String("backend", "", "index to query: openalex or semantic_scholar")
	syncCmd.Flags().String("site-config", "", "site configuration holding the author id (default _config.yml)")
	syncCmd.Flags().String("data-file", "", "data file to write (default _data/publications.yml)")
	syncCmd.Flags().String("database", "", "publication library (default _data/publications.db)")
	syncCmd.Flags().StringSlice("highlight", nil, "author names to bold in the data file")
	syncCmd.Flags().Bool("no-library", false, "skip updating the publication library")

	rootCmd.AddCommand(syncCmd)
}
