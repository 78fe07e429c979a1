package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spboyer/taskpulse/internal/tasks"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"tasks.csv", FormatCSV, false},
		{"tasks.JSON", FormatJSON, false},
		{"tasks.yaml", FormatYAML, false},
		{"tasks.yml", FormatYAML, false},
		{"durations.txt", FormatText, false},
		{"tasks.xml", "", true},
		{"tasks", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadTasks_Formats(t *testing.T) {
	want := []tasks.Task{
		{Status: "COMPLETED", Hours: 5},
		{Status: "IN_PROGRESS", Hours: 2},
		{Status: tasks.StatusUnknown, Hours: 1.5},
	}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"csv", "tasks.csv", "status,hours\nCOMPLETED,5\nIN_PROGRESS,2\n,1.5\n"},
		{"json list", "tasks.json", `[{"status":"COMPLETED","hours":5},{"status":"IN_PROGRESS","hours":2},{"hours":1.5}]`},
		{"json object", "tasks.json", `{"tasks":[{"status":"COMPLETED","hours":5},{"status":"IN_PROGRESS","hours":2},{"hours":"1.5"}]}`},
		{"yaml list", "tasks.yaml", "- status: COMPLETED\n  hours: 5\n- status: IN_PROGRESS\n  hours: 2\n- hours: 1.5\n"},
		{"yaml object", "tasks.yml", "tasks:\n  - status: COMPLETED\n    hours: 5\n  - status: IN_PROGRESS\n    hours: 2\n  - hours: 1.5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			got, err := LoadTasks(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadTasks_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"scalar document", "tasks.json", `42`, "expected a list"},
		{"object without tasks", "tasks.yaml", "items: []\n", `"tasks" list`},
		{"broken json", "tasks.json", `[{"status":`, "json: parse"},
		{"broken yaml", "tasks.yaml", "tasks: [\n", "yaml: parse"},
		{"text not supported", "tasks.txt", "COMPLETED 5\n", "not supported for tasks"},
		{"unknown extension", "tasks.xml", "<tasks/>", "unsupported file type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			_, err := LoadTasks(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadTasks_EmptyYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tasks.yaml", "")
	got, err := LoadTasks(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadSamples(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		column  string
		want    []any
	}{
		{"text", "d.txt", "4 8\n6\tn/a\n", "", []any{4.0, 8.0, 6.0, "n/a"}},
		{"csv default column", "d.csv", "id,hours\na,4\nb,x\nc,2.5\n", "", []any{4.0, "x", 2.5}},
		{"csv named column", "d.csv", "id,Duration\na,1\nb,2\n", "duration", []any{1.0, 2.0}},
		{"json list", "d.json", `[4, 8, "six", null]`, "", []any{4.0, 8.0, "six", nil}},
		{"json object", "d.json", `{"samples": [1.5, 2]}`, "", []any{1.5, 2.0}},
		{"yaml list", "d.yaml", "- 3\n- 4.5\n", "", []any{3, 4.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			got, err := LoadSamples(path, tt.column)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadSamples_MissingColumn(t *testing.T) {
	path := writeFile(t, t.TempDir(), "d.csv", "id,minutes\na,4\n")
	_, err := LoadSamples(path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no column "hours"`)
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	tasksPath := writeFile(t, dir, "tasks.csv", "status,hours\nCOMPLETED,2\n")
	samplesPath := writeFile(t, dir, "samples.txt", "1 2 3")

	var l FileLoader
	got, err := l.LoadTasks(tasksPath)
	require.NoError(t, err)
	assert.Equal(t, []tasks.Task{{Status: "COMPLETED", Hours: 2}}, got)

	samples, err := l.LoadSamples(samplesPath, "")
	require.NoError(t, err)
	assert.Len(t, samples, 3)
}
