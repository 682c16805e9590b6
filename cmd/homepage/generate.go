// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/homepage/internal/pipeline"
)

var cvCmd = &cobra.Command{
	Use:   "cv",
	Short: "Regenerate the CV page from the homepage",
	Long: `CV reads the homepage, extracts the profile, and writes a standalone
HTML curriculum vitae with Education, Academic Appointments, Publications,
and Grants & Awards sections. Sections missing from the homepage are
reported as warnings and rendered empty.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("output") {
			cfg.CVOutput, _ = cmd.Flags().GetString("output")
		}
		_, err = pipeline.RunCV(cfg, os.Stdout)
		return err
	},
}

var readmeCmd = &cobra.Command{
	Use:   "readme",
	Short: "Regenerate README.md from the homepage",
	Long: `Readme reads the homepage, extracts the profile, and writes the
repository README: configured prose, education, current position and
experience, recent publications, awards, and contact links.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("output") {
			cfg.ReadmeOutput, _ = cmd.Flags().GetString("output")
		}
		_, err = pipeline.RunREADME(cfg, os.Stdout)
		return err
	},
}

func init() {
	cvCmd.Flags().String("output", "", "CV page to write (default cv.html)")
	readmeCmd.Flags().String("output", "", "README to write (default README.md)")

	rootCmd.AddCommand(cvCmd)
	rootCmd.AddCommand(readmeCmd)
}
