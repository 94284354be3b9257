package wizard

import (
	"fmt"

	"github.com/steuerpilot/steuerpilot/internal/registry"
)

// Segment is one progress row on a category overview: a subcategory with its
// completed and total eligible screen counts.
type Segment struct {
	Title string
	Done  int
	Total int
}

// Segments groups the eligible screens of a category by subcategory, in
// registry order. Screens without a subcategory (the category overview
// itself) are skipped.
func (e *Engine) Segments(category string) []Segment {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []Segment
	index := map[string]int{}
	for _, s := range e.reg.Eligible(e.doc) {
		if s.Category != category || s.Subcategory == "" {
			continue
		}
		i, ok := index[s.Subcategory]
		if !ok {
			i = len(out)
			index[s.Subcategory] = i
			out = append(out, Segment{Title: s.Subcategory})
		}
		out[i].Total++
		if s.IsDone != nil && s.IsDone(e.doc) {
			out[i].Done++
		}
	}
	return out
}

// Progress counts completed eligible screens across the whole wizard.
func (e *Engine) Progress() (done, total int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, s := range e.reg.Eligible(e.doc) {
		if s.IsDone == nil {
			continue
		}
		total++
		if s.IsDone(e.doc) {
			done++
		}
	}
	return done, total
}

// CategoryProgress counts completed eligible screens of one category.
func (e *Engine) CategoryProgress(category string) (done, total int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, s := range e.reg.Eligible(e.doc) {
		if s.Category != category || s.IsDone == nil {
			continue
		}
		total++
		if s.IsDone(e.doc) {
			done++
		}
	}
	return done, total
}

// OpenCategory jumps to a category's entry screen. The entry resolver reads
// the live document, so categories with existing data skip their gates.
func (e *Engine) OpenCategory(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	cat, ok := e.reg.CategoryByName(name)
	if !ok {
		return fmt.Errorf("wizard: unknown category %q", name)
	}
	target, ok := e.reg.Get(cat.Entry(e.doc))
	if !ok {
		return fmt.Errorf("wizard: category %q entry resolves to unknown screen", name)
	}
	e.moveLocked(target, true)
	return nil
}

// Registry exposes the screen registry for read-only consumers.
func (e *Engine) Registry() *registry.Registry { return e.reg }
