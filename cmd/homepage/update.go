// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/homepage/internal/runner"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Run the README (and optionally CV) generation as child processes",
	Long: `Update re-invokes this binary for the readme step, and for the cv step
when --with-cv is given. Each child's output is captured: on success it is
printed as a summary, on failure the child's stderr is reported and the
remaining steps are skipped.`,
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	withCV, _ := cmd.Flags().GetBool("with-cv")
	bin, _ := cmd.Flags().GetString("bin")

	r, err := runner.New(bin)
	if err != nil {
		return err
	}

	common := forwardedFlags(cmd)
	steps := []runner.Step{{Name: "README", Args: append([]string{"readme"}, common...)}}
	if withCV {
		steps = append(steps, runner.Step{Name: "CV", Args: append([]string{"cv"}, common...)})
	}

	if err := r.Run(os.Stdout, steps...); err != nil {
		fmt.Fprintln(os.Stderr, "Update failed; check the messages above.")
		return err
	}
	fmt.Println("Documents updated with the latest information from the homepage.")
	return nil
}

func init() {
	updateCmd.Flags().Bool("with-cv", false, "also regenerate the CV page")
	updateCmd.Flags().String("bin", "", "homepage binary to run (default: this executable)")

	rootCmd.AddCommand(updateCmd)
}
