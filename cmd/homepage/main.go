// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the homepage CLI. It regenerates the
// CV page and README from the homepage, runs both as an update, and syncs
// the publication data file from a public academic index.
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/homepage/internal/scholar"
	"github.com/pdiddy/homepage/internal/secrets"
	"github.com/pdiddy/homepage/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// envPrefix prefixes every environment override, e.g. HOMEPAGE_SOURCE.
const envPrefix = "HOMEPAGE"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the homepage CLI.
var rootCmd = &cobra.Command{
	Use:   "homepage",
	Short: "Regenerate the CV page and README from an academic homepage",
	Long: `homepage reads the site's index.html, extracts the contact details,
education, appointments, publications, and awards, and regenerates cv.html
and README.md from them.

The cv and readme subcommands each write one document; update runs readme
(and optionally cv) as child processes. sync refreshes the publication data
file from OpenAlex or Semantic Scholar, and publications queries the local
library of synced records.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("secrets-dir")
		s, err := secrets.Load(dir, os.Stderr)
		if err != nil {
			return err
		}
		secrets.ApplyEnv(s, envPrefix, scholar.SecretOpenAlexEmail, scholar.SecretSemanticAPIKey)
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./homepage.yaml or ~/.config/homepage/config.yaml)")
	pf.String("source", "", "homepage HTML to read (default index.html)")
	pf.String("strategy", "", "extraction strategy: dom or pattern")
	pf.String("stamp", "", "generation date YYYY-MM-DD (default today)")
	pf.String("secrets-dir", ".secrets/", "directory of credential files")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("homepage")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "homepage"))
		}
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig merges the config file and environment over the defaults,
// then applies the persistent flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (types.Config, error) {
	cfg := types.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source, _ = flags.GetString("source")
	}
	if flags.Changed("strategy") {
		s, _ := flags.GetString("strategy")
		cfg.Strategy = types.Strategy(s)
	}
	if flags.Changed("stamp") {
		cfg.Stamp, _ = flags.GetString("stamp")
	}
	return cfg, nil
}

// forwardedFlags returns the persistent flags the user set explicitly, in
// command-line form, so child processes see the same configuration.
func forwardedFlags(cmd *cobra.Command) []string {
	var args []string
	for _, name := range []string{"config", "source", "strategy", "stamp", "secrets-dir"} {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			args = append(args, "--"+name, f.Value.String())
		}
	}
	return args
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
