// Package tasks aggregates task records into status distributions, velocity
// figures and team comparisons. All functions are pure.
package tasks

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"

	"github.com/spboyer/taskpulse/internal/metrics"
)

// Well-known status labels.
const (
	StatusCompleted = "COMPLETED"
	StatusUnknown   = "UNKNOWN"
)

// Task is one unit of tracked work.
type Task struct {
	Status string  `json:"status" yaml:"status" mapstructure:"status"`
	Hours  float64 `json:"hours" yaml:"hours" mapstructure:"hours"`
}

// status returns the task's status, defaulting to StatusUnknown.
func (t Task) status() string {
	if t.Status == "" {
		return StatusUnknown
	}
	return t.Status
}

// rawTask accepts any field types; Decode normalizes them afterwards.
type rawTask struct {
	Status any `mapstructure:"status"`
	Hours  any `mapstructure:"hours"`
}

// Decode turns loosely typed records (decoded JSON/YAML objects, CSV rows, or
// Task values) into Tasks. It never fails: a missing or unusable status
// becomes StatusUnknown, missing or unusable hours become 0, and elements that
// are not records at all are skipped. Input that is not a slice or array
// yields nil.
func Decode(records any) []Task {
	rv := reflect.ValueOf(records)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil
	}

	out := make([]Task, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		if t, ok := decodeRecord(rv.Index(i).Interface()); ok {
			out = append(out, t)
		}
	}
	return out
}

func decodeRecord(record any) (Task, bool) {
	switch r := record.(type) {
	case Task:
		return normalize(r), true
	case *Task:
		if r == nil {
			return Task{}, false
		}
		return normalize(*r), true
	case nil:
		return Task{}, false
	}

	var raw rawTask
	if err := mapstructure.Decode(record, &raw); err != nil {
		return Task{}, false
	}

	var t Task
	if raw.Status != nil {
		if err := mapstructure.WeakDecode(raw.Status, &t.Status); err != nil {
			t.Status = ""
		}
	}
	if raw.Hours != nil {
		if err := mapstructure.WeakDecode(raw.Hours, &t.Hours); err != nil {
			t.Hours = 0
		}
	}
	return normalize(t), true
}

func normalize(t Task) Task {
	if t.Status == "" {
		t.Status = StatusUnknown
	}
	if !metrics.IsFinite(t.Hours) {
		t.Hours = 0
	}
	return t
}
