// Package wizard implements the navigation engine that drives a tax return
// interview: the eligible screen list, the undo stack, the array item
// cursors, and the per-screen-type submit contracts. The engine owns the only
// mutable copy of the document; every write goes through Apply, which patches
// the document, fires a previously armed advance, and persists through the
// save hook.
package wizard

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aymanbagabas/go-udiff"

	"github.com/steuerpilot/steuerpilot/internal/document"
	"github.com/steuerpilot/steuerpilot/internal/logger"
	"github.com/steuerpilot/steuerpilot/internal/registry"
)

// SaveFunc persists the document after each patch. Errors are logged, not
// surfaced to the user; the in-memory document is always authoritative.
type SaveFunc func(document.Document) error

// Engine is the wizard state machine. Safe for concurrent use; the TUI and
// the tool server share one instance.
type Engine struct {
	mu      sync.Mutex
	reg     *registry.Registry
	doc     document.Document
	current *registry.Screen
	undo    []string
	cursors map[string]int

	// pending is the one-shot advance armed by AwaitNext. It fires on the
	// next document write and is resolved against the post-write eligible
	// list. nil means no advance armed.
	pending *string

	// provisioned marks the cursor item of the current array form as
	// auto-created, so cancelling the form can take it back out.
	provisioned bool

	save SaveFunc
}

// New builds an engine positioned on the first eligible screen.
func New(reg *registry.Registry, doc document.Document) *Engine {
	e := &Engine{
		reg:     reg,
		doc:     doc,
		cursors: make(map[string]int),
	}
	if s := e.firstEligible(doc); s != nil {
		e.current = s
		e.enterLocked(s)
	}
	return e
}

// OnSave registers the persistence hook.
func (e *Engine) OnSave(fn SaveFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.save = fn
}

// Document returns the current document value.
func (e *Engine) Document() document.Document {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc
}

// Current returns the screen the wizard is on.
func (e *Engine) Current() *registry.Screen {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// Eligible returns the screens visible for the current document.
func (e *Engine) Eligible() []*registry.Screen {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reg.Eligible(e.doc)
}

// SetScreen jumps to a screen by name, pushing the current one onto the undo
// stack.
func (e *Engine) SetScreen(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.reg.Get(name)
	if !ok {
		return fmt.Errorf("wizard: unknown screen %q", name)
	}
	e.moveLocked(s, true)
	return nil
}

// Next advances to the next eligible screen in registry order. At the end of
// the wizard it stays put and reports the boundary.
func (e *Engine) Next() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if s := e.eligibleFrom(e.currentIndex()+1, e.doc); s != nil {
		e.moveLocked(s, true)
		return nil
	}
	return fmt.Errorf("wizard: no eligible screen after %q", e.currentName())
}

// Previous steps to the preceding eligible screen. This is pure list
// navigation, unlike GoBack which replays the visit history. At the start of
// the wizard it stays put and reports the boundary.
func (e *Engine) Previous() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := e.currentIndex() - 1; i >= 0; i-- {
		s := e.reg.At(i)
		if s.Hide == nil || !s.Hide(e.doc) {
			e.moveLocked(s, true)
			return nil
		}
	}
	return fmt.Errorf("wizard: no eligible screen before %q", e.currentName())
}

// GoBack pops the undo stack. Screens that became hidden since the visit are
// skipped. Empty stack is a no-op.
func (e *Engine) GoBack() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for len(e.undo) > 0 {
		name := e.undo[len(e.undo)-1]
		e.undo = e.undo[:len(e.undo)-1]
		s, ok := e.reg.Get(name)
		if !ok {
			continue
		}
		if s.Hide != nil && s.Hide(e.doc) {
			continue
		}
		e.moveLocked(s, false)
		return
	}
}

// AwaitNext arms a one-shot advance that fires after the next document
// write. An empty target means "next eligible screen after the current one".
// Arming again before the write replaces the previous target.
func (e *Engine) AwaitNext(target string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending = &target
}

// Apply patches the document: the new value replaces the old wholesale,
// topics not touched by the caller carry over untouched because callers
// derive the new value from the old one through the topic lenses. Fires a
// pending advance and persists.
func (e *Engine) Apply(doc document.Document) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyLocked(doc)
}

func (e *Engine) applyLocked(doc document.Document) {
	e.logPatch(e.doc, doc)
	e.doc = doc
	e.persistLocked()
	if e.pending != nil {
		target := *e.pending
		e.pending = nil
		e.advanceLocked(target)
	}
}

// advanceLocked resolves an armed advance against the freshly patched
// document. A named target resolves to its registry position; if the target
// itself is hidden the advance lands on the next eligible screen after it.
func (e *Engine) advanceLocked(target string) {
	from := e.currentIndex() + 1
	if target != "" {
		if i := e.reg.IndexOf(target); i >= 0 {
			from = i
		}
	}
	if s := e.eligibleFrom(from, e.doc); s != nil {
		e.moveLocked(s, true)
	}
}

func (e *Engine) persistLocked() {
	if e.save == nil {
		return
	}
	if err := e.save(e.doc); err != nil {
		logger.Error("wizard: saving document: %v", err)
	}
}

// logPatch writes a unified diff of the document change at debug level.
func (e *Engine) logPatch(before, after document.Document) {
	if logger.Default == nil {
		return
	}
	b, err1 := json.MarshalIndent(before, "", "  ")
	a, err2 := json.MarshalIndent(after, "", "  ")
	if err1 != nil || err2 != nil {
		return
	}
	if string(b) == string(a) {
		return
	}
	logger.Debug("document patch:\n%s", udiff.Unified("before", "after", string(b)+"\n", string(a)+"\n"))
}

func (e *Engine) currentIndex() int {
	if e.current == nil {
		return -1
	}
	return e.reg.IndexOf(e.current.Name)
}

// eligibleFrom returns the first eligible screen at or after a registry
// position, nil when none remains.
func (e *Engine) eligibleFrom(pos int, doc document.Document) *registry.Screen {
	if pos < 0 {
		pos = 0
	}
	for i := pos; ; i++ {
		s := e.reg.At(i)
		if s == nil {
			return nil
		}
		if s.Hide == nil || !s.Hide(doc) {
			return s
		}
	}
}

func (e *Engine) firstEligible(doc document.Document) *registry.Screen {
	return e.eligibleFrom(0, doc)
}

// moveLocked changes the current screen and runs the arrival hook. Moving to
// the screen already shown is a no-op and leaves the undo stack alone, so a
// same-screen jump followed by GoBack returns to the screen before it, not to
// a duplicate stack entry.
func (e *Engine) moveLocked(s *registry.Screen, pushUndo bool) {
	if e.current != nil && e.current.Name == s.Name {
		return
	}
	if pushUndo && e.current != nil {
		e.undo = append(e.undo, e.current.Name)
	}
	logger.Debug("wizard: %s -> %s", e.currentName(), s.Name)
	e.current = s
	e.enterLocked(s)
}

func (e *Engine) currentName() string {
	if e.current == nil {
		return "<none>"
	}
	return e.current.Name
}

// enterLocked provisions a fresh item when an array form is entered with the
// cursor past the end of the array. Only array forms auto-provision; every
// other screen type reads the document as is.
func (e *Engine) enterLocked(s *registry.Screen) {
	e.provisioned = false
	if s.Type != registry.ArrayForm {
		return
	}
	arr := s.Array
	idx := e.cursors[arr.Key()]
	if idx < arr.Len(e.doc) {
		return
	}
	item := arr.NewItem()
	doc := arr.Append(e.doc, item)
	e.cursors[arr.Key()] = arr.Len(doc) - 1
	e.provisioned = true
	e.logPatch(e.doc, doc)
	e.doc = doc
	e.persistLocked()
}
