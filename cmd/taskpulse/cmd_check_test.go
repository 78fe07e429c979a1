package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.json")
	samples := filepath.Join(dir, "samples.json")
	require.NoError(t, os.WriteFile(good, []byte("tasks:\n  - status: COMPLETED\n    hours: 5\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte(`[{"status": "COMPLETED", "hours": -1}, {"hours": 2}]`), 0o644))
	require.NoError(t, os.WriteFile(samples, []byte(`{"samples": [4, 8, 6.5]}`), 0o644))

	t.Run("valid files", func(t *testing.T) {
		out, err := runCommand(t, nil, "check", good)
		require.NoError(t, err)
		assert.Contains(t, out, "✅ "+good)
	})

	t.Run("invalid file", func(t *testing.T) {
		out, err := runCommand(t, nil, "check", good, bad)
		require.Error(t, err)

		var checkErr *CheckFailureError
		require.True(t, errors.As(err, &checkErr))
		assert.Equal(t, "1 of 2 files failed validation", checkErr.Message)
		assert.Contains(t, out, "✅ "+good)
		assert.Contains(t, out, "❌ "+bad)
		assert.Contains(t, out, "/0/hours")
	})

	t.Run("samples", func(t *testing.T) {
		_, err := runCommand(t, nil, "check", "--samples", samples)
		require.NoError(t, err)

		_, err = runCommand(t, nil, "check", "--samples", bad)
		var checkErr *CheckFailureError
		assert.True(t, errors.As(err, &checkErr))
	})

	t.Run("samples in a named csv column", func(t *testing.T) {
		durations := filepath.Join(dir, "durations.csv")
		require.NoError(t, os.WriteFile(durations, []byte("task,duration\na,1.5\nb,4\n"), 0o644))

		_, err := runCommand(t, nil, "check", "--samples", "--column", "duration", durations)
		require.NoError(t, err)

		out, err := runCommand(t, nil, "check", "--samples", durations)
		var checkErr *CheckFailureError
		require.True(t, errors.As(err, &checkErr))
		assert.Contains(t, out, `missing "hours" column`)
	})

	t.Run("sample column from config", func(t *testing.T) {
		durations := filepath.Join(dir, "sprint.csv")
		require.NoError(t, os.WriteFile(durations, []byte("duration\n2\n3\n"), 0o644))

		t.Chdir(t.TempDir())
		writeConfig(t, ".", "report:\n  sample_column: duration\n")
		_, err := runCommandHere(nil, "check", "--samples", durations)
		require.NoError(t, err)
	})

	t.Run("unsupported file type", func(t *testing.T) {
		_, err := runCommand(t, nil, "check", filepath.Join(dir, "tasks.xml"))
		require.Error(t, err)

		var checkErr *CheckFailureError
		assert.False(t, errors.As(err, &checkErr), "unreadable input is a runtime error, not a check failure")
	})
}
