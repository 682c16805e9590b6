// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package runner executes generation steps as child processes of the
// homepage binary, capturing their output so a failure in one step is
// reported with the child's stderr rather than interleaved with it.
//
// See docs/ARCHITECTURE § Update Runner.
package runner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Step is one child invocation, e.g. {Name: "README", Args: ["readme"]}.
type Step struct {
	Name string
	Args []string
}

// SubprocessError reports a step whose process exited unsuccessfully.
type SubprocessError struct {
	Step     string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *SubprocessError) Error() string {
	msg := fmt.Sprintf("%s step failed with exit status %d", e.Step, e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *SubprocessError) Unwrap() error { return e.Err }

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, args []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osExecutor) Run(name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// Runner runs steps with one binary.
type Runner struct {
	bin  string
	exec executor
}

// New returns a runner for bin. An empty bin means the running executable.
func New(bin string) (*Runner, error) {
	return newRunner(bin, osExecutor{})
}

func newRunner(bin string, ex executor) (*Runner, error) {
	if bin == "" {
		self, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("locating homepage binary: %w", err)
		}
		return &Runner{bin: self, exec: ex}, nil
	}
	path, err := ex.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("locating %s: %w", bin, err)
	}
	return &Runner{bin: path, exec: ex}, nil
}

// Binary returns the resolved path of the binary the steps run.
func (r *Runner) Binary() string { return r.bin }

// Run executes steps in order and stops at the first failure. Each
// successful step's stdout is copied to w as its summary. A failed step
// returns a *SubprocessError carrying the child's stderr.
func (r *Runner) Run(w io.Writer, steps ...Step) error {
	for _, s := range steps {
		fmt.Fprintf(w, "Updating %s...\n", s.Name)

		var stdout, stderr bytes.Buffer
		if err := r.exec.Run(r.bin, s.Args, &stdout, &stderr); err != nil {
			return &SubprocessError{
				Step:     s.Name,
				ExitCode: exitCode(err),
				Stderr:   stderr.String(),
				Err:      err,
			}
		}

		fmt.Fprintf(w, "%s updated successfully\n", s.Name)
		if out := strings.TrimSpace(stdout.String()); out != "" {
			fmt.Fprintf(w, "Summary:\n%s\n", out)
		}
	}
	return nil
}

// exitCode extracts the process exit status, or -1 when the process did
// not start or was killed by a signal.
func exitCode(err error) int {
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	return -1
}
