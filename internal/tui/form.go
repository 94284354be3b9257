package tui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/steuerpilot/steuerpilot/internal/registry"
)

// form renders a screen's field list as a vertical stack of text inputs.
// Fields are string-backed; conversion happens in the registry field specs.
type form struct {
	fields []registry.Field
	inputs []textinput.Model
	focus  int
}

func inputStyles() textinput.Styles {
	return textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(colorText),
			Placeholder: lipgloss.NewStyle().Foreground(colorSubtext0),
			Prompt:      lipgloss.NewStyle().Foreground(colorSecondary),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(colorSubtext0),
			Placeholder: lipgloss.NewStyle().Foreground(colorSurface2),
			Prompt:      lipgloss.NewStyle().Foreground(colorSurface2),
		},
		Cursor: textinput.CursorStyle{
			Color: colorPrimary,
			Shape: tea.CursorBar,
			Blink: true,
		},
	}
}

// newForm builds inputs for the given fields, pre-filled from value.
func newForm(fields []registry.Field, value any, width int) *form {
	f := &form{fields: fields}
	for _, spec := range fields {
		in := textinput.New()
		in.Prompt = "> "
		in.Placeholder = spec.Placeholder
		in.SetStyles(inputStyles())
		in.SetWidth(inputWidth(width))
		in.SetValue(spec.Get(value))
		f.inputs = append(f.inputs, in)
	}
	return f
}

func inputWidth(width int) int {
	w := width - 6
	if w < 20 {
		w = 20
	}
	if w > 60 {
		w = 60
	}
	return w
}

// Focus focuses the current input and blurs the rest.
func (f *form) Focus() tea.Cmd {
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == f.focus {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return cmd
}

// Next advances focus, wrapping to the first field.
func (f *form) Next() tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	f.focus = (f.focus + 1) % len(f.inputs)
	return f.Focus()
}

// Prev moves focus back, wrapping to the last field.
func (f *form) Prev() tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	return f.Focus()
}

// AtLast reports whether the last field is focused.
func (f *form) AtLast() bool {
	return len(f.inputs) == 0 || f.focus == len(f.inputs)-1
}

// SetWidth resizes all inputs.
func (f *form) SetWidth(width int) {
	for i := range f.inputs {
		f.inputs[i].SetWidth(inputWidth(width))
	}
}

// SetValue overwrites a field's input text, used by tests and scan prefill.
func (f *form) SetValue(name, value string) {
	for i, spec := range f.fields {
		if spec.Name == name {
			f.inputs[i].SetValue(value)
			return
		}
	}
}

// Update forwards a message to the focused input.
func (f *form) Update(msg tea.Msg) tea.Cmd {
	if f.focus < 0 || f.focus >= len(f.inputs) {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// Apply writes every input's text back into value via the field setters.
func (f *form) Apply(value any) any {
	for i, spec := range f.fields {
		value = spec.Set(value, strings.TrimSpace(f.inputs[i].Value()))
	}
	return value
}

// View renders labels and inputs.
func (f *form) View() string {
	var rows []string
	for i, spec := range f.fields {
		label := styleLabel
		if i == f.focus {
			label = styleLabelFocused
		}
		rows = append(rows, label.Render(spec.Label))
		rows = append(rows, f.inputs[i].View())
		if i < len(f.fields)-1 {
			rows = append(rows, "")
		}
	}
	return strings.Join(rows, "\n")
}
