// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/pdiddy/homepage/internal/library"
	"github.com/pdiddy/homepage/pkg/types"
)

var publicationsCmd = &cobra.Command{
	Use:   "publications [query]",
	Short: "List publications from the local library",
	Long: `Publications queries the library of synced records. Filter by year,
source backend, or a text query matched against title, authors, and
journal. Results are listed newest first.`,
	RunE: runPublications,
}

func runPublications(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	db := cfg.Sync.Database
	if cmd.Flags().Changed("database") {
		db, _ = cmd.Flags().GetString("database")
	}

	store, err := library.Open(db)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)
	pubs, err := store.List(context.Background(), opts)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		format = "json"
	}
	return formatPublications(os.Stdout, pubs, format)
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) library.QueryOptions {
	var opts library.QueryOptions
	opts.Year, _ = cmd.Flags().GetString("year")
	opts.Source, _ = cmd.Flags().GetString("source-backend")
	opts.Limit, _ = cmd.Flags().GetInt("limit")
	opts.Query, _ = cmd.Flags().GetString("query")
	if len(args) > 0 {
		opts.Query = strings.TrimSpace(opts.Query + " " + strings.Join(args, " "))
	}
	return opts
}

func formatPublications(w io.Writer, pubs []types.SyncedPublication, format string) error {
	switch format {
	case "json":
		data, err := library.MarshalJSON(pubs)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "yaml":
		data, err := library.MarshalYAML(pubs)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "table", "":
	default:
		return fmt.Errorf("unknown format %q: use table, json, or yaml", format)
	}

	if len(pubs) == 0 {
		fmt.Fprintln(w, "No publications found.")
		return nil
	}

	fmt.Fprintf(w, "%-7s  %s  %s\n", "Year", runewidth.FillRight("Title", titleWidth), "Journal")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, p := range pubs {
		title := runewidth.FillRight(truncate(p.Title, titleWidth), titleWidth)
		fmt.Fprintf(w, "%-7s  %s  %s\n", p.Year, title, truncate(p.Journal, journalWidth))
	}
	fmt.Fprintf(w, "\n%d publications\n", len(pubs))
	return nil
}

// Table column widths in terminal cells.
const (
	titleWidth   = 50
	journalWidth = 40
)

// truncate shortens s to n terminal cells, marking the cut with "...".
// Wide (CJK) characters count as two cells.
func truncate(s string, n int) string {
	return runewidth.Truncate(s, n, "...")
}

func init() {
	publicationsCmd.Flags().String("year", "", "only publications from this year")
	publicationsCmd.Flags().String("query", "", "text matched against title, authors, and journal")
	publicationsCmd.Flags().String("source-backend", "", "only records from this backend")
	publicationsCmd.Flags().Int("limit", 0, "maximum number of results (0 = all)")
	publicationsCmd.Flags().String("database", "", "publication library (default _data/publications.db)")
	publicationsCmd.Flags().String("format", "table", "output format: table, json, or yaml")
	publicationsCmd.Flags().Bool("json", false, "shorthand for --format json")

	rootCmd.AddCommand(publicationsCmd)
}
