// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package runner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockExecutor records calls and answers with configured output.
type mockExecutor struct {
	bins   map[string]bool
	calls  [][]string
	stdout map[string]string
	stderr map[string]string
	fail   map[string]error
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.bins[file] {
		return "/usr/local/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) Run(name string, args []string, stdout, stderr io.Writer) error {
	m.calls = append(m.calls, append([]string{name}, args...))
	key := strings.Join(args, " ")
	io.WriteString(stdout, m.stdout[key])
	io.WriteString(stderr, m.stderr[key])
	return m.fail[key]
}

func newMock() *mockExecutor {
	return &mockExecutor{
		bins:   map[string]bool{"homepage": true},
		stdout: map[string]string{},
		stderr: map[string]string{},
		fail:   map[string]error{},
	}
}

func TestNewRunner(t *testing.T) {
	r, err := newRunner("homepage", newMock())
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/homepage", r.Binary())

	_, err = newRunner("missing", newMock())
	require.Error(t, err)

	r, err = newRunner("", newMock())
	require.NoError(t, err)
	assert.NotEmpty(t, r.Binary(), "empty name resolves to the running executable")
}

func TestRun_Success(t *testing.T) {
	m := newMock()
	m.stdout["readme"] = "Generating README.md from index.html...\nSuccessfully generated README.md\n"
	r, err := newRunner("homepage", m)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, r.Run(&out,
		Step{Name: "README", Args: []string{"readme"}},
		Step{Name: "CV", Args: []string{"cv", "--strategy", "dom"}},
	))

	assert.Equal(t, [][]string{
		{"/usr/local/bin/homepage", "readme"},
		{"/usr/local/bin/homepage", "cv", "--strategy", "dom"},
	}, m.calls)
	assert.Contains(t, out.String(), "README updated successfully")
	assert.Contains(t, out.String(), "Summary:\nGenerating README.md from index.html...")
	assert.Contains(t, out.String(), "CV updated successfully")
}

func TestRun_FailureStopsAndCarriesStderr(t *testing.T) {
	m := newMock()
	m.stderr["readme"] = "Error: source document not found: index.html\n"
	m.fail["readme"] = errors.New("exit status 1")
	r, err := newRunner("homepage", m)
	require.NoError(t, err)

	var out bytes.Buffer
	err = r.Run(&out,
		Step{Name: "README", Args: []string{"readme"}},
		Step{Name: "CV", Args: []string{"cv"}},
	)
	require.Error(t, err)

	var se *SubprocessError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "README", se.Step)
	assert.Equal(t, -1, se.ExitCode)
	assert.Contains(t, se.Stderr, "source document not found")
	assert.Contains(t, err.Error(), "README step failed")
	assert.Len(t, m.calls, 1, "later steps do not run")
	assert.NotContains(t, out.String(), "updated successfully")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, -1, exitCode(errors.New("boom")))
	assert.Equal(t, -1, exitCode(fmt.Errorf("wrapped: %w", exec.ErrNotFound)))
}

func TestSubprocessError(t *testing.T) {
	inner := errors.New("exit status 2")
	err := &SubprocessError{Step: "CV", ExitCode: 2, Stderr: "  bad strategy\n", Err: inner}
	assert.Equal(t, "CV step failed with exit status 2: bad strategy", err.Error())
	assert.ErrorIs(t, err, inner)

	err = &SubprocessError{Step: "CV", ExitCode: 1}
	assert.Equal(t, "CV step failed with exit status 1", err.Error())
}
