// Package validation checks task and sample files against embedded JSON
// schemas. Analysis commands are lenient and never call it; the check command
// uses it to report records the analysis would silently normalize.
package validation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/spboyer/taskpulse/internal/dataset"
)

//go:embed tasks.schema.json
var tasksSchemaJSON string

//go:embed samples.schema.json
var samplesSchemaJSON string

// defaultPrinter is used to format schema validation error messages.
var defaultPrinter = message.NewPrinter(language.English)

var (
	tasksSchema   *jsonschema.Schema
	samplesSchema *jsonschema.Schema
)

func init() {
	tasksSchema = mustCompileSchema(tasksSchemaJSON, "tasks.schema.json")
	samplesSchema = mustCompileSchema(samplesSchemaJSON, "samples.schema.json")
}

func mustCompileSchema(raw string, name string) *jsonschema.Schema {
	var schemaDoc any
	if err := json.Unmarshal([]byte(raw), &schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to add %s resource: %v", name, err))
	}

	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s: %v", name, err))
	}
	return sch
}

// Kind selects the schema a file is checked against.
type Kind string

const (
	KindTasks   Kind = "tasks"
	KindSamples Kind = "samples"
)

// ValidateFile checks the file at path. column names the CSV column holding
// samples and defaults to dataset.DefaultSampleColumn; it is ignored for task
// files. The returned slice lists problems found in the content; err is only
// set when the file cannot be read or its type is not supported.
func ValidateFile(path string, kind Kind, column string) ([]string, error) {
	format, err := dataset.DetectFormat(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case dataset.FormatCSV:
		rows, err := dataset.LoadCSV(path)
		if err != nil {
			return []string{err.Error()}, nil
		}
		return validateRows(rows, kind, column), nil
	case dataset.FormatText:
		if kind == KindTasks {
			return nil, fmt.Errorf("%s: text files are not supported for tasks", path)
		}
		return nil, nil // every token is either a number or dropped
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if kind == KindSamples {
		return ValidateSampleBytes(data), nil
	}
	return ValidateTaskBytes(data), nil
}

// ValidateTaskBytes validates raw JSON or YAML bytes against the task schema.
func ValidateTaskBytes(data []byte) []string {
	return validateYAMLBytes(tasksSchema, data)
}

// ValidateSampleBytes validates raw JSON or YAML bytes against the samples schema.
func ValidateSampleBytes(data []byte) []string {
	return validateYAMLBytes(samplesSchema, data)
}

// validateRows checks CSV rows by turning them into the same generic shape a
// JSON task list would have. Task rows need a status column; sample rows need
// the sample column.
func validateRows(rows []dataset.Row, kind Kind, sampleColumn string) []string {
	required, numeric := "status", "hours"
	if kind == KindSamples {
		if sampleColumn == "" {
			sampleColumn = dataset.DefaultSampleColumn
		}
		// headers are lower-cased by dataset.LoadCSV
		required = strings.ToLower(sampleColumn)
		numeric = required
	}
	if len(rows) > 0 {
		if _, ok := rows[0][required]; !ok {
			return []string{fmt.Sprintf("/: missing %q column", required)}
		}
	}

	var errs []string
	for i, row := range rows {
		// CSV cells are strings; only check the values that must be numeric.
		if v, ok := row[numeric]; ok && strings.TrimSpace(v) != "" {
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil || f < 0 {
				errs = append(errs, fmt.Sprintf("/%d/%s: %q is not a non-negative number", i, numeric, v))
			}
		}
		if kind == KindTasks && strings.TrimSpace(row["status"]) == "" {
			errs = append(errs, defaultPrinter.Sprintf("/%d/status: empty status is reported as UNKNOWN", i))
		}
	}
	return errs
}

func validateYAMLBytes(schema *jsonschema.Schema, data []byte) []string {
	// JSON is valid YAML, so one parser covers both formats.
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return []string{fmt.Sprintf("parse error: %v", err)}
	}
	return validateAgainstSchema(schema, doc)
}

func validateAgainstSchema(schema *jsonschema.Schema, instance any) []string {
	err := schema.Validate(instance)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{fmt.Sprintf("schema: %v", err)}
	}
	var errs []string
	collectSchemaErrors(ve, &errs)
	slices.Sort(errs)
	return slices.Compact(errs)
}

func collectSchemaErrors(ve *jsonschema.ValidationError, errs *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/"
		if len(ve.InstanceLocation) > 0 {
			loc = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		*errs = append(*errs, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(defaultPrinter)))
		return
	}
	for _, c := range ve.Causes {
		collectSchemaErrors(c, errs)
	}
}
