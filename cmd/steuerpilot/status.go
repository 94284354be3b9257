package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steuerpilot/steuerpilot/internal/registry"
	"github.com/steuerpilot/steuerpilot/internal/state"
	"github.com/steuerpilot/steuerpilot/internal/store"
	"github.com/steuerpilot/steuerpilot/internal/tax"
	"github.com/steuerpilot/steuerpilot/internal/wizard"
)

var statusFlags struct {
	name    string
	dataDir string
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show interview progress without opening the TUI",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().StringVarP(&statusFlags.name, "name", "n", "", "Return name (default: last opened)")
	statusCmd.Flags().StringVar(&statusFlags.dataDir, "data-dir", "", "Data directory for the return store")
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dataDir := resolveDataDir(cfg, statusFlags.dataDir)

	name := statusFlags.name
	if name == "" {
		name = state.Load(dataDir).LastReturn
	}
	if name == "" {
		name = fmt.Sprintf("steuern-%d", cfg.Year)
	}
	id := store.ReturnID(name)

	st, err := store.Open(ctx, dataDir)
	if err != nil {
		return fmt.Errorf("opening return store: %w", err)
	}
	defer func() { _ = st.Close() }()

	doc, err := st.Load(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("no stored return named %s", id)
	}
	if err != nil {
		return fmt.Errorf("loading return %s: %w", id, err)
	}

	engine := wizard.New(registry.Default(), doc)

	done, total := engine.Progress()
	fmt.Printf("Return:   %s\n", id)
	fmt.Printf("Progress: %d/%d screens\n\n", done, total)

	for _, cat := range engine.Registry().Categories() {
		catDone, catTotal := engine.CategoryProgress(cat.Name)
		marker := " "
		if catTotal > 0 && catDone == catTotal {
			marker = "✓"
		}
		fmt.Printf("  %s %-28s %d/%d\n", marker, cat.Title, catDone, catTotal)
	}

	result := tax.NewFlat().Calculate(doc)
	fmt.Printf("\nEstimated taxes: CHF %.2f\n", result.TotalTaxes)

	return nil
}
