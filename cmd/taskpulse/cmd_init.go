package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/spboyer/taskpulse/internal/projectconfig"
	"github.com/spboyer/taskpulse/internal/tasks"
	"github.com/spboyer/taskpulse/internal/wizard"
)

// exampleTasksFile is written into the data directory by init.
const exampleTasksFile = "example-tasks.yaml"

func newInitCommand() *cobra.Command {
	var (
		interactive bool
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a .taskpulse.yaml project configuration",
		Long: `Initialize a taskpulse project.

Writes .taskpulse.yaml with the default settings and creates the data
directory with an example task export.

Use --interactive to answer a short form instead of taking the defaults.
An existing .taskpulse.yaml is left alone unless --force is given.

If no directory is specified, the current directory is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return initCommandE(cmd, args, interactive, force)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Ask for each setting")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing .taskpulse.yaml")

	return cmd
}

func initCommandE(cmd *cobra.Command, args []string, interactive, force bool) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	out := cmd.OutOrStdout()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	configPath := filepath.Join(dir, projectconfig.FileName)
	if _, err := os.Stat(configPath); err == nil && !force {
		fmt.Fprintf(out, "%s already exists, use --force to replace it\n", configPath) //nolint:errcheck
		return nil
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", configPath, err)
	}

	cfg := projectconfig.New()
	if interactive {
		var err error
		cfg, err = wizard.RunConfigWizard(cmd.InOrStdin(), out, cfg)
		if err != nil {
			return err
		}
	}

	written, err := projectconfig.Save(dir, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "  %s\n", written) //nolint:errcheck

	dataDir := filepath.Join(dir, cfg.Paths.Data)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	examplePath := filepath.Join(dataDir, exampleTasksFile)
	if _, err := os.Stat(examplePath); errors.Is(err, os.ErrNotExist) {
		if err := writeExampleTasks(examplePath); err != nil {
			return err
		}
		fmt.Fprintf(out, "  %s\n", examplePath) //nolint:errcheck
	}

	fmt.Fprintf(out, "\nProject ready. Try: taskpulse tasks %s\n", exampleTasksFile) //nolint:errcheck
	return nil
}

func writeExampleTasks(path string) error {
	doc := struct {
		Tasks []tasks.Task `yaml:"tasks"`
	}{Tasks: demoTasks}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to marshal example tasks: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
