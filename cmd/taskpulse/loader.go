package main

import (
	"os"
	"path/filepath"

	"github.com/spboyer/taskpulse/internal/tasks"
)

//go:generate go tool mockgen -destination=mock_loader_test.go -package=main . datasetLoader

// datasetLoader is the data source the analysis commands read from.
type datasetLoader interface {
	// LoadTasks maps to [dataset.LoadTasks]
	LoadTasks(path string) ([]tasks.Task, error)

	// LoadSamples maps to [dataset.LoadSamples]
	LoadSamples(path, column string) ([]any, error)
}

// resolveDataPath returns path as given when it exists, otherwise the same
// path under the configured data directory when that one exists.
func resolveDataPath(dataDir, path string) string {
	if filepath.IsAbs(path) || dataDir == "" {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	candidate := filepath.Join(dataDir, path)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return path
}
