package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spboyer/taskpulse/internal/reporting"
)

// runCommand executes the root command with args inside a fresh working
// directory, so no .taskpulse.yaml from the surrounding tree is picked up.
func runCommand(t *testing.T, loader datasetLoader, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	return runCommandHere(loader, args...)
}

// runCommandHere executes the root command in the current working directory.
func runCommandHere(loader datasetLoader, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCommandWith(loader)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decodeReport(t *testing.T, out string) reporting.Report {
	t.Helper()
	var r reporting.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r), "output should be a JSON report:\n%s", out)
	return r
}

func TestCheckFailureError(t *testing.T) {
	err := &CheckFailureError{
		Message: "1 of 2 files failed validation",
	}

	assert.Equal(t, "1 of 2 files failed validation", err.Error())
}

func TestErrorTypeDetection(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCheck bool
	}{
		{
			name:      "CheckFailureError",
			err:       &CheckFailureError{Message: "check failure"},
			wantCheck: true,
		},
		{
			name:      "regular error",
			err:       errors.New("config error"),
			wantCheck: false,
		},
		{
			name:      "wrapped CheckFailureError",
			err:       errors.Join(&CheckFailureError{Message: "check failure"}, errors.New("additional context")),
			wantCheck: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var checkErr *CheckFailureError
			assert.Equal(t, tt.wantCheck, errors.As(tt.err, &checkErr))
		})
	}
}

func TestRootCommand_RejectsUnknownFormat(t *testing.T) {
	_, err := runCommand(t, nil, "demo", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
