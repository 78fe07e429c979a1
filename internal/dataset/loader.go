// Package dataset reads task records and duration samples from local files.
//
// Supported formats are chosen by file extension: .csv, .json, .yaml/.yml and
// .txt (samples only, whitespace separated). Parsing is strict about the file
// structure but lenient about values; normalizing individual values is left
// to the statistics and tasks packages.
package dataset

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/spboyer/taskpulse/internal/tasks"
)

// Format is an input file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// DefaultSampleColumn is the CSV column read by LoadSamples when none is given.
const DefaultSampleColumn = "hours"

// DetectFormat picks the format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported file type %q (want .csv, .json, .yaml, .yml or .txt)", filepath.Ext(path))
	}
}

// FileLoader loads datasets from the local filesystem.
type FileLoader struct{}

// LoadTasks calls the package-level LoadTasks.
func (FileLoader) LoadTasks(path string) ([]tasks.Task, error) {
	return LoadTasks(path)
}

// LoadSamples calls the package-level LoadSamples.
func (FileLoader) LoadSamples(path, column string) ([]any, error) {
	return LoadSamples(path, column)
}

// LoadTasks reads task records from path. JSON and YAML files hold either a
// list of records or an object with a "tasks" list; CSV files need "status"
// and/or "hours" columns.
func LoadTasks(path string) ([]tasks.Task, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	var records any
	switch format {
	case FormatCSV:
		rows, err := LoadCSV(path)
		if err != nil {
			return nil, err
		}
		records = rows
	case FormatJSON, FormatYAML:
		doc, err := readDocument(path, format)
		if err != nil {
			return nil, err
		}
		records, err = listOrKey(doc, "tasks")
		if err != nil {
			return nil, fmt.Errorf("reading tasks from %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("reading tasks from %s: %s files are not supported for tasks", path, format)
	}

	decoded := tasks.Decode(records)
	slog.Debug("Loaded tasks", "path", path, "count", len(decoded))
	return decoded, nil
}

// LoadSamples reads numeric samples from path. JSON and YAML files hold a list
// or an object with a "samples" list; CSV files are read from column; text
// files hold whitespace separated values. Text values that parse as numbers
// are converted to float64, everything else is passed through unchanged.
func LoadSamples(path, column string) ([]any, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	if column == "" {
		column = DefaultSampleColumn
	}

	var samples []any
	switch format {
	case FormatCSV:
		rows, err := LoadCSV(path)
		if err != nil {
			return nil, err
		}
		if len(rows) > 0 {
			if _, ok := rows[0][strings.ToLower(column)]; !ok {
				return nil, fmt.Errorf("csv: %s has no column %q", path, column)
			}
		}
		samples = make([]any, 0, len(rows))
		for _, row := range rows {
			samples = append(samples, parseNumber(row[strings.ToLower(column)]))
		}
	case FormatText:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading samples from %s: %w", path, err)
		}
		for _, field := range strings.Fields(string(data)) {
			samples = append(samples, parseNumber(field))
		}
	case FormatJSON, FormatYAML:
		doc, err := readDocument(path, format)
		if err != nil {
			return nil, err
		}
		list, err := listOrKey(doc, "samples")
		if err != nil {
			return nil, fmt.Errorf("reading samples from %s: %w", path, err)
		}
		samples = list
	}

	slog.Debug("Loaded samples file", "path", path, "format", format, "values", len(samples))
	return samples, nil
}

func readDocument(path string, format Format) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: open %s: %w", format, path, err)
	}

	var doc any
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("json: parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("yaml: parse %s: %w", path, err)
		}
	}
	return doc, nil
}

// listOrKey returns doc itself when it is a list, or doc[key] when doc is an
// object holding a list under key.
func listOrKey(doc any, key string) ([]any, error) {
	switch v := doc.(type) {
	case []any:
		return v, nil
	case map[string]any:
		list, ok := v[key].([]any)
		if !ok {
			return nil, fmt.Errorf("expected a list or an object with a %q list", key)
		}
		return list, nil
	case nil:
		return []any{}, nil
	default:
		return nil, fmt.Errorf("expected a list or an object with a %q list, got %T", key, doc)
	}
}

func parseNumber(s string) any {
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
