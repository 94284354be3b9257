// Package tui is the interview front end: one full-screen BubbleTea model
// that renders whichever screen the wizard engine is on and translates key
// presses into the engine's submit operations. All document state lives in
// the engine; this package only holds view state (focus, cursors, overlays).
package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/steuerpilot/steuerpilot/internal/logger"
	"github.com/steuerpilot/steuerpilot/internal/registry"
	"github.com/steuerpilot/steuerpilot/internal/scan"
	"github.com/steuerpilot/steuerpilot/internal/tax"
	"github.com/steuerpilot/steuerpilot/internal/wizard"
)

// scanDoneMsg reports the result of an asynchronous document scan.
type scanDoneMsg struct {
	err error
}

// App is the BubbleTea model for the interview.
type App struct {
	engine  *wizard.Engine
	scanner scan.Scanner
	calc    tax.Calculator

	width  int
	height int

	sidebarVisible bool
	helpVisible    bool
	previewVisible bool
	quitting       bool
	errMsg         string

	// Per-screen view state, rebuilt on every screen change.
	screenName string
	form       *form
	yes        bool
	listIndex  int
	scanInput  textinput.Model
	scanning   bool
}

// NewApp creates the interview model bound to a running engine.
func NewApp(engine *wizard.Engine, scanner scan.Scanner, calc tax.Calculator, sidebarVisible bool) *App {
	return &App{
		engine:         engine,
		scanner:        scanner,
		calc:           calc,
		sidebarVisible: sidebarVisible,
		width:          80,
		height:         24,
	}
}

// Run drives the interview to completion or until the user quits.
func Run(app *App) error {
	p := tea.NewProgram(app)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interview failed: %w", err)
	}
	return nil
}

// ScreenName returns the screen the view is currently showing, used to
// persist the resume position on exit.
func (a *App) ScreenName() string { return a.screenName }

// SidebarVisible returns the sidebar preference for persistence.
func (a *App) SidebarVisible() bool { return a.sidebarVisible }

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.syncScreen()
}

// syncScreen rebuilds per-screen view state from the engine's current
// position. Called after every engine operation that can move screens.
func (a *App) syncScreen() tea.Cmd {
	cur := a.engine.Current()
	if cur == nil {
		a.screenName = ""
		a.form = nil
		return nil
	}

	a.screenName = cur.Name
	a.errMsg = ""
	a.listIndex = 0
	a.form = nil
	a.scanning = false

	switch cur.Type {
	case registry.YesNo:
		a.yes = true
		if v := cur.Topic.Start(a.engine.Document()); v != nil {
			a.yes = *v
		}
	case registry.ObjForm:
		a.form = newForm(cur.Fields, cur.Topic.DataAny(a.engine.Document()), a.mainWidth())
		return a.form.Focus()
	case registry.ArrayForm:
		item, ok := a.engine.Item()
		if !ok {
			item = cur.Array.NewItem()
		}
		a.form = newForm(cur.Fields, item, a.mainWidth())
		return a.form.Focus()
	case registry.ScanOrUpload:
		in := textinput.New()
		in.Prompt = "> "
		in.Placeholder = "Pfad zur Datei..."
		in.SetStyles(inputStyles())
		in.SetWidth(inputWidth(a.mainWidth()))
		a.scanInput = in
		return a.scanInput.Focus()
	}
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form.SetWidth(a.mainWidth())
		}
		a.scanInput.SetWidth(inputWidth(a.mainWidth()))
		return a, nil

	case scanDoneMsg:
		a.scanning = false
		if msg.err != nil {
			logger.Warn("Scan failed: %v", msg.err)
			a.errMsg = fmt.Sprintf("Scan fehlgeschlagen: %v", msg.err)
			return a, nil
		}
		return a, a.syncScreen()

	case tea.KeyPressMsg:
		return a.handleKeyPress(msg)
	}
	return a, nil
}

func (a *App) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	// Global keys work on every screen.
	switch msg.String() {
	case "ctrl+c":
		a.quitting = true
		return a, tea.Quit
	case "ctrl+b":
		a.sidebarVisible = !a.sidebarVisible
		return a, nil
	case "ctrl+e":
		a.helpVisible = !a.helpVisible
		return a, nil
	case "ctrl+p":
		a.previewVisible = !a.previewVisible
		return a, nil
	}

	// The preview overlay swallows navigation keys until closed.
	if a.previewVisible {
		switch msg.String() {
		case "esc", "q":
			a.previewVisible = false
		}
		return a, nil
	}

	cur := a.engine.Current()
	if cur == nil {
		return a, nil
	}
	if cur.Name != a.screenName {
		// The engine moved underneath us; assistant tools share it.
		return a, a.syncScreen()
	}

	switch cur.Type {
	case registry.YesNo:
		return a.updateYesNo(msg)
	case registry.ObjForm:
		return a.updateObjForm(msg, cur)
	case registry.ArrayForm:
		return a.updateArrayForm(msg)
	case registry.ArrayOverview:
		return a.updateOverview(msg, cur)
	case registry.ScanOrUpload:
		return a.updateScan(msg)
	case registry.CategoryOverview:
		return a.updateCategoryOverview(msg)
	case registry.GeneratePdf:
		return a.updateGeneratePdf(msg)
	}
	return a, nil
}

func (a *App) updateYesNo(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "right", "tab", "h", "l":
		a.yes = !a.yes
		return a, nil
	case "j":
		return a.submit(a.engine.SubmitYesNo(true))
	case "n":
		return a.submit(a.engine.SubmitYesNo(false))
	case "enter":
		return a.submit(a.engine.SubmitYesNo(a.yes))
	case "esc":
		a.engine.GoBack()
		return a, a.syncScreen()
	}
	return a, nil
}

func (a *App) updateObjForm(msg tea.KeyPressMsg, cur *registry.Screen) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if !a.form.AtLast() {
			return a, a.form.Next()
		}
		v := a.form.Apply(cur.Topic.DataAny(a.engine.Document()))
		return a.submit(a.engine.SubmitForm(v))
	case "tab", "down":
		return a, a.form.Next()
	case "shift+tab", "up":
		return a, a.form.Prev()
	case "esc":
		a.engine.GoBack()
		return a, a.syncScreen()
	}
	return a, a.form.Update(msg)
}

func (a *App) updateArrayForm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if !a.form.AtLast() {
			return a, a.form.Next()
		}
		item, ok := a.engine.Item()
		if !ok {
			a.errMsg = "Kein Eintrag ausgewählt"
			return a, nil
		}
		return a.submit(a.engine.SubmitItem(a.form.Apply(item)))
	case "tab", "down":
		return a, a.form.Next()
	case "shift+tab", "up":
		return a, a.form.Prev()
	case "esc":
		return a.submit(a.engine.CancelItem())
	}
	return a, a.form.Update(msg)
}

func (a *App) updateOverview(msg tea.KeyPressMsg, cur *registry.Screen) (tea.Model, tea.Cmd) {
	count := cur.Array.Len(a.engine.Document())
	switch msg.String() {
	case "up", "k":
		if a.listIndex > 0 {
			a.listIndex--
		}
		return a, nil
	case "down", "j":
		if a.listIndex < count-1 {
			a.listIndex++
		}
		return a, nil
	case "a":
		return a.submit(a.engine.OverviewAdd())
	case "enter", "e":
		if count == 0 {
			return a.submit(a.engine.OverviewAdd())
		}
		return a.submit(a.engine.OverviewEdit(a.listIndex))
	case "d":
		if count == 0 {
			return a, nil
		}
		if err := a.engine.OverviewRemove(a.listIndex); err != nil {
			a.errMsg = err.Error()
			return a, nil
		}
		if a.listIndex > 0 {
			a.listIndex--
		}
		return a, nil
	case "w":
		return a.submit(a.engine.OverviewWeiter())
	case "esc":
		a.engine.GoBack()
		return a, a.syncScreen()
	}
	return a, nil
}

func (a *App) updateScan(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		file := strings.TrimSpace(a.scanInput.Value())
		if file == "" {
			a.errMsg = "Bitte einen Dateipfad angeben"
			return a, nil
		}
		a.errMsg = ""
		a.scanning = true
		return a, a.scanCmd(file)
	case "ctrl+s":
		// Skip the scan and fill the data in manually.
		return a.submit(a.engine.Next())
	case "esc":
		a.engine.GoBack()
		return a, a.syncScreen()
	}
	var cmd tea.Cmd
	a.scanInput, cmd = a.scanInput.Update(msg)
	return a, cmd
}

func (a *App) updateCategoryOverview(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return a.submit(a.engine.Next())
	case "esc":
		a.engine.GoBack()
		return a, a.syncScreen()
	}
	return a, nil
}

func (a *App) updateGeneratePdf(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "q":
		a.quitting = true
		return a, tea.Quit
	case "esc":
		a.engine.GoBack()
		return a, a.syncScreen()
	}
	return a, nil
}

// submit folds an engine submit result into the model: errors stay on the
// current screen, success re-syncs against wherever the engine moved.
func (a *App) submit(err error) (tea.Model, tea.Cmd) {
	if err != nil {
		a.errMsg = err.Error()
		return a, nil
	}
	return a, a.syncScreen()
}

// scanCmd runs the scanner off the update loop.
func (a *App) scanCmd(file string) tea.Cmd {
	engine, scanner := a.engine, a.scanner
	return func() tea.Msg {
		return scanDoneMsg{err: engine.ScanFile(context.Background(), scanner, file)}
	}
}

func (a *App) mainWidth() int {
	w := a.width
	if a.sidebarVisible {
		w -= SidebarWidth
	}
	w -= 4
	if w < 40 {
		w = 40
	}
	return w
}

// View implements tea.Model.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if a.quitting {
		view.AltScreen = false
		view.Content = lipgloss.NewLayer("")
		return view
	}

	content := a.render()

	canvas := uv.NewScreenBuffer(a.width, a.height)
	uv.NewStyledString(content).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: a.width, Y: a.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	view.BackgroundColor = colorBase
	return view
}

// render composes header, sidebar, screen body and hint bar into one string.
func (a *App) render() string {
	cur := a.engine.Current()
	if cur == nil {
		return styleBody.Render("Keine Bildschirme konfiguriert.")
	}

	done, total := a.engine.Progress()
	header := styleTitle.Render("Steuerpilot") + "  " +
		styleSubtitle.Render(fmt.Sprintf("Fortschritt %d/%d", done, total))

	var main string
	if a.previewVisible {
		main = a.renderPreview()
	} else {
		main = a.renderScreen(cur)
	}

	body := main
	if a.sidebarVisible && !a.previewVisible {
		sidebar := lipgloss.NewStyle().Width(SidebarWidth).Render(renderSidebar(a.engine, cur.Category))
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", main)
	}

	sections := []string{header, "", body}
	if a.errMsg != "" {
		sections = append(sections, "", styleError.Render(a.errMsg))
	}
	sections = append(sections, "", a.renderHints(cur))

	return strings.Join(sections, "\n")
}

func (a *App) renderScreen(cur *registry.Screen) string {
	var body string
	switch cur.Type {
	case registry.YesNo:
		body = a.renderYesNo(cur)
	case registry.ObjForm, registry.ArrayForm:
		body = styleTitle.Render(cur.Title)
		if a.form != nil {
			body += "\n\n" + a.form.View()
		}
	case registry.ArrayOverview:
		body = a.renderOverview(cur)
	case registry.ScanOrUpload:
		body = a.renderScan(cur)
	case registry.CategoryOverview:
		body = a.renderCategoryOverview(cur)
	case registry.GeneratePdf:
		body = a.renderGeneratePdf(cur)
	}

	if a.helpVisible && cur.Help != "" {
		body += "\n\n" + renderMarkdown(cur.Help, a.mainWidth())
	}
	return body
}

func (a *App) renderYesNo(cur *registry.Screen) string {
	yes, no := styleChoice, styleChoiceSelected
	if a.yes {
		yes, no = styleChoiceSelected, styleChoice
	}
	choices := lipgloss.JoinHorizontal(lipgloss.Top,
		yes.Render("Ja"), "  ", no.Render("Nein"))
	return styleTitle.Render(cur.Title) + "\n\n" + choices
}

func (a *App) renderOverview(cur *registry.Screen) string {
	doc := a.engine.Document()
	count := cur.Array.Len(doc)

	rows := []string{styleTitle.Render(cur.Title), ""}
	if count == 0 {
		rows = append(rows, styleSubtitle.Render("Noch keine Einträge."))
	}
	for i := 0; i < count; i++ {
		item, _ := cur.Array.At(doc, i)
		label := fmt.Sprintf("%d. %s", i+1, cur.Label(item))
		if i == a.listIndex {
			rows = append(rows, styleListRowSelected.Render("▸ "+label))
		} else {
			rows = append(rows, styleListRow.Render("  "+label))
		}
	}
	return strings.Join(rows, "\n")
}

func (a *App) renderScan(cur *registry.Screen) string {
	rows := []string{
		styleTitle.Render(cur.Title),
		"",
		styleBody.Render("Beleg einlesen und Felder automatisch übernehmen."),
		"",
		a.scanInput.View(),
	}
	if a.scanning {
		rows = append(rows, "", styleSubtitle.Render("Scanne..."))
	}
	return strings.Join(rows, "\n")
}

func (a *App) renderCategoryOverview(cur *registry.Screen) string {
	rows := []string{styleTitle.Render(cur.Title), ""}
	for _, seg := range a.engine.Segments(cur.Category) {
		count := fmt.Sprintf("%d/%d", seg.Done, seg.Total)
		style := styleOpen
		if seg.Total > 0 && seg.Done == seg.Total {
			style = styleDone
		}
		rows = append(rows, styleBody.Render(seg.Title)+" "+style.Render(count))
	}
	return strings.Join(rows, "\n")
}

func (a *App) renderGeneratePdf(cur *registry.Screen) string {
	result := a.calc.Calculate(a.engine.Document())
	rows := []string{
		styleTitle.Render(cur.Title),
		"",
		styleBody.Render(fmt.Sprintf("Einkommen brutto      CHF %12.2f", result.GrossIncome)),
		styleBody.Render(fmt.Sprintf("Abzüge                CHF %12.2f", result.DeductableAmount)),
		styleBody.Render(fmt.Sprintf("Steuerbares Einkommen CHF %12.2f", result.TaxableIncome)),
		styleBody.Render(fmt.Sprintf("Reinvermögen          CHF %12.2f", result.NetWealth)),
		"",
		styleTitle.Render(fmt.Sprintf("Geschätzte Steuern    CHF %12.2f", result.TotalTaxes)),
	}
	return strings.Join(rows, "\n")
}

func (a *App) renderPreview() string {
	data, err := json.MarshalIndent(a.engine.Document(), "", "  ")
	if err != nil {
		return styleError.Render(err.Error())
	}
	title := styleSubtitle.Render("Dokumentvorschau (esc schliesst)")
	return title + "\n" + styleModalContainer.Render(highlightJSON(string(data)))
}

func (a *App) renderHints(cur *registry.Screen) string {
	var pairs []string
	switch cur.Type {
	case registry.YesNo:
		pairs = []string{"←/→", "wählen", "enter", "bestätigen", "esc", "zurück"}
	case registry.ObjForm:
		pairs = []string{"tab", "nächstes Feld", "enter", "speichern", "esc", "zurück"}
	case registry.ArrayForm:
		pairs = []string{"tab", "nächstes Feld", "enter", "speichern", "esc", "abbrechen"}
	case registry.ArrayOverview:
		pairs = []string{"↑↓/jk", "wählen", "a", "neu", "enter", "bearbeiten", "d", "löschen", "w", "weiter"}
	case registry.ScanOrUpload:
		pairs = []string{"enter", "scannen", "ctrl+s", "überspringen", "esc", "zurück"}
	case registry.CategoryOverview:
		pairs = []string{"enter", "weiter", "esc", "zurück"}
	case registry.GeneratePdf:
		pairs = []string{"enter", "abschliessen", "esc", "zurück"}
	}
	pairs = append(pairs, "ctrl+e", "Hilfe", "ctrl+p", "Vorschau", "ctrl+c", "beenden")
	return renderHintBar(pairs...)
}
