package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/steuerpilot/steuerpilot/internal/logger"
)

const (
	logoText1 = "█▀ ▀█▀ █▀▀ █░█ █▀▀ █▀█ █▀█ █ █░░ █▀█ ▀█▀"
	logoText2 = "▄█ ░█░ ██▄ █▄█ ██▄ █▀▄ █▀▀ █ █▄▄ █▄█ ░█░"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "steuerpilot",
	Short: "Guided Swiss tax return interview with embedded persistence and TUI",
}

// renderLogo creates the logo with gradient colors.
func renderLogo() string {
	line1 := applyGradient(logoText1, "#cba6f7", "#b4befe")
	line2 := applyGradient(logoText2, "#cba6f7", "#b4befe")
	return strings.Join([]string{line1, line2}, "\n")
}

// applyGradient colors each rune by interpolating between two hex colors.
func applyGradient(text, from, to string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return text
	}
	r1, g1, b1 := parseHexColor(from)
	r2, g2, b2 := parseHexColor(to)

	var b strings.Builder
	for i, r := range runes {
		pos := 0.0
		if len(runes) > 1 {
			pos = float64(i) / float64(len(runes)-1)
		}
		color := fmt.Sprintf("#%02x%02x%02x",
			uint8(float64(r1)*(1-pos)+float64(r2)*pos),
			uint8(float64(g1)*(1-pos)+float64(g2)*pos),
			uint8(float64(b1)*(1-pos)+float64(b2)*pos),
		)
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(r)))
	}
	return b.String()
}

func parseHexColor(hex string) (uint8, uint8, uint8) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b uint8
	if len(hex) == 6 {
		_, _ = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	}
	return r, g, b
}

func init() {
	rootCmd.Long = renderLogo() + `

steuerpilot walks you through your Swiss tax return screen by screen.
Answers are stored locally in embedded NATS JetStream, scanned documents
pre-fill forms, and an MCP endpoint lets an assistant follow along.
The interview runs as a full-screen Bubbletea TUI and can be resumed
at any time.`

	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(setupCmd)
}
