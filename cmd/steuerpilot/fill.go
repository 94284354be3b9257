package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/steuerpilot/steuerpilot/internal/config"
	"github.com/steuerpilot/steuerpilot/internal/document"
	"github.com/steuerpilot/steuerpilot/internal/logger"
	"github.com/steuerpilot/steuerpilot/internal/mcpserver"
	"github.com/steuerpilot/steuerpilot/internal/registry"
	"github.com/steuerpilot/steuerpilot/internal/scan"
	"github.com/steuerpilot/steuerpilot/internal/state"
	"github.com/steuerpilot/steuerpilot/internal/store"
	"github.com/steuerpilot/steuerpilot/internal/tax"
	"github.com/steuerpilot/steuerpilot/internal/tui"
	"github.com/steuerpilot/steuerpilot/internal/wizard"
)

var fillFlags struct {
	name    string
	dataDir string
	screen  string
	noMCP   bool
	reset   bool
}

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Run the tax return interview",
	Long: `Run the screen-by-screen tax return interview.

The interview persists every answer to the embedded store, so it can be
interrupted and resumed at any time. Without --name, the last opened
return is resumed, falling back to "steuern-<year>".`,
	RunE: runFill,
}

func init() {
	fillCmd.Flags().StringVarP(&fillFlags.name, "name", "n", "", "Return name (default: resume last, else steuern-<year>)")
	fillCmd.Flags().StringVar(&fillFlags.dataDir, "data-dir", "", "Data directory for the return store")
	fillCmd.Flags().StringVar(&fillFlags.screen, "screen", "", "Open the interview on a specific screen")
	fillCmd.Flags().BoolVar(&fillFlags.noMCP, "no-mcp", false, "Do not start the assistant tool endpoint")
	fillCmd.Flags().BoolVar(&fillFlags.reset, "reset", false, "Discard the stored return and start over")
}

// loadConfig loads and validates configuration and wires the logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if level, err := logger.ParseLevel(cfg.LogLevel); err == nil {
		logger.Default.SetLevel(level)
	}
	if cfg.LogFile != "" {
		if f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			logger.Default.SetOutput(f)
		}
	}
	return cfg, nil
}

func resolveDataDir(cfg *config.Config, flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.DataDir
}

func runFill(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dataDir := resolveDataDir(cfg, fillFlags.dataDir)
	uiState := state.Load(dataDir)

	name := fillFlags.name
	if name == "" {
		name = uiState.LastReturn
	}
	if name == "" {
		name = fmt.Sprintf("steuern-%d", cfg.Year)
	}
	id := store.ReturnID(name)

	st, err := store.Open(ctx, dataDir)
	if err != nil {
		return fmt.Errorf("opening return store: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Warn("Closing store: %v", err)
		}
	}()

	if fillFlags.reset {
		if err := st.Delete(ctx, id); err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("resetting return %s: %w", id, err)
		}
	}

	doc, err := st.Load(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		doc = document.New()
	} else if err != nil {
		return fmt.Errorf("loading return %s: %w", id, err)
	}

	engine := wizard.New(registry.Default(), doc)
	engine.OnSave(func(d document.Document) error {
		return st.Save(ctx, id, d)
	})

	// Resume position: explicit flag wins over the remembered screen.
	resume := fillFlags.screen
	if resume == "" && uiState.LastReturn == id {
		resume = uiState.LastScreen
	}
	if resume != "" {
		if err := engine.SetScreen(resume); err != nil {
			logger.Warn("Cannot resume on screen %q: %v", resume, err)
		}
	}

	calc := tax.NewFlat()

	if !fillFlags.noMCP {
		srv := mcpserver.New(engine, calc)
		if _, err := srv.Start(ctx); err != nil {
			logger.Warn("Assistant endpoint not available: %v", err)
		} else {
			logger.Info("Assistant endpoint at %s", srv.URL())
			defer func() {
				if err := srv.Stop(); err != nil {
					logger.Warn("Stopping assistant endpoint: %v", err)
				}
			}()
		}
	}

	app := tui.NewApp(engine, scan.StubScanner{}, calc, uiState.Sidebar.Visible)
	if err := tui.Run(app); err != nil {
		return err
	}

	// Remember where the interview was left.
	uiState.LastReturn = id
	uiState.LastScreen = app.ScreenName()
	uiState.Sidebar.Visible = app.SidebarVisible()
	if err := state.Save(dataDir, uiState); err != nil {
		logger.Warn("Saving UI state: %v", err)
	}

	return nil
}
