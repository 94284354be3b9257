package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/steuerpilot/steuerpilot/internal/state"
	"github.com/steuerpilot/steuerpilot/internal/store"
)

var exportFlags struct {
	name    string
	dataDir string
	output  string
	format  string
	list    bool
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a stored return as JSON",
	Long: `Export a stored return as JSON, either to stdout or to a file.

With --list, the names of all stored returns are printed instead.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlags.name, "name", "n", "", "Return name (default: last opened)")
	exportCmd.Flags().StringVar(&exportFlags.dataDir, "data-dir", "", "Data directory for the return store")
	exportCmd.Flags().StringVarP(&exportFlags.output, "output", "o", "", "Write to file instead of stdout")
	exportCmd.Flags().StringVar(&exportFlags.format, "format", "json", "Output format: json or yaml")
	exportCmd.Flags().BoolVar(&exportFlags.list, "list", false, "List stored returns")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dataDir := resolveDataDir(cfg, exportFlags.dataDir)

	st, err := store.Open(ctx, dataDir)
	if err != nil {
		return fmt.Errorf("opening return store: %w", err)
	}
	defer func() { _ = st.Close() }()

	if exportFlags.list {
		ids, err := st.List(ctx)
		if err != nil {
			return fmt.Errorf("listing returns: %w", err)
		}
		if len(ids) == 0 {
			fmt.Println("No stored returns.")
			return nil
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	}

	name := exportFlags.name
	if name == "" {
		name = state.Load(dataDir).LastReturn
	}
	if name == "" {
		name = fmt.Sprintf("steuern-%d", cfg.Year)
	}
	id := store.ReturnID(name)

	doc, err := st.Load(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("no stored return named %s", id)
	}
	if err != nil {
		return fmt.Errorf("loading return %s: %w", id, err)
	}

	var data []byte
	switch exportFlags.format {
	case "json":
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(doc)
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", exportFlags.format)
	}
	if err != nil {
		return fmt.Errorf("encoding return: %w", err)
	}

	if exportFlags.output != "" {
		if err := os.WriteFile(exportFlags.output, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", exportFlags.output, err)
		}
		fmt.Printf("Return written to %s\n", exportFlags.output)
		return nil
	}

	_, err = os.Stdout.Write(data)
	return err
}
