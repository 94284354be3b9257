package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/steuerpilot/steuerpilot/internal/config"
)

var setupFlags struct {
	project bool
	force   bool
	canton  string
	year    int
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create a steuerpilot configuration file",
	Long: `Create a steuerpilot configuration file with sensible defaults.

By default, creates a global config at ~/.config/steuerpilot/steuerpilot.yml.
Use --project to create a project-local config in the current directory.`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVarP(&setupFlags.project, "project", "p", false, "Create config in current directory instead of global location")
	setupCmd.Flags().BoolVarP(&setupFlags.force, "force", "f", false, "Overwrite existing config file")
	setupCmd.Flags().StringVar(&setupFlags.canton, "canton", "ZH", "Canton of residence")
	setupCmd.Flags().IntVar(&setupFlags.year, "year", 2025, "Tax year")
}

func runSetup(cmd *cobra.Command, args []string) error {
	targetPath := config.GlobalPath()
	if setupFlags.project {
		targetPath = config.ProjectPath()
	}

	if !setupFlags.force && fileExists(targetPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", targetPath)
	}

	cfg := &config.Config{
		Canton:   setupFlags.canton,
		Year:     setupFlags.year,
		DataDir:  config.DefaultDataDir(),
		LogLevel: "info",
		LogFile:  "",
		Locale:   "de",
		Theme:    "mocha",
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var err error
	if setupFlags.project {
		err = config.WriteProject(cfg)
	} else {
		err = config.WriteGlobal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Config written to: %s\n\n", targetPath)
	fmt.Println("Run 'steuerpilot fill' to start your return.")

	return nil
}

// fileExists checks if a file exists (helper for setup command).
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
