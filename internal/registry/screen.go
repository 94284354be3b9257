// Package registry holds the static screen registry: the ordered list of
// wizard screens, their topic bindings, completion and visibility predicates,
// and the category structure used for progress display. Descriptors are built
// once at process start and never mutated afterwards; only the document and
// the navigation cursors change at runtime.
package registry

import (
	"fmt"

	"github.com/steuerpilot/steuerpilot/internal/document"
	"github.com/steuerpilot/steuerpilot/internal/scan"
)

// Type is the closed set of screen shapes. Each shape defines its own submit
// contract, implemented by the wizard engine.
type Type int

const (
	YesNo Type = iota
	ObjForm
	ArrayForm
	ArrayOverview
	ScanOrUpload
	CategoryOverview
	GeneratePdf
)

// String returns the screen type name.
func (t Type) String() string {
	switch t {
	case YesNo:
		return "yesno"
	case ObjForm:
		return "objform"
	case ArrayForm:
		return "arrayform"
	case ArrayOverview:
		return "arrayoverview"
	case ScanOrUpload:
		return "scanorupload"
	case CategoryOverview:
		return "categoryoverview"
	case GeneratePdf:
		return "generatepdf"
	default:
		return "unknown"
	}
}

// Field is a string-backed form field spec. The TUI renders fields
// generically; Get/Set close over the concrete item or topic data type.
type Field struct {
	Name        string
	Label       string
	Placeholder string
	Get         func(v any) string
	Set         func(v any, s string) any
}

// Screen is one registry entry. Which fields are meaningful depends on Type:
// YesNo uses YesScreen/NoScreen/Update, ArrayForm uses Array/OverviewScreen,
// ArrayOverview uses Array/DetailScreen, ScanOrUpload uses ScanKind/ApplyScan
// (array-targeted when Array is non-nil, object-targeted otherwise).
type Screen struct {
	Name  string
	Title string
	Type  Type

	Topic document.Access      // topic binding, nil for category overviews
	Array document.ArrayAccess // non-nil for array-backed screens

	// IsDone reports completion against the live document. Cross-topic reads
	// are allowed and considered declared dependencies.
	IsDone func(doc document.Document) bool

	// Hide removes the screen from the eligible list. Nil means always
	// visible. Hiding a screen never clears previously entered data.
	Hide func(doc document.Document) bool

	// Update is the declarative cross-topic transform applied in the same
	// patch as a YesNo answer (for example: marriage gate answered with yes
	// also sets personData.zivilstand).
	Update func(doc document.Document) document.Document

	// YesNo branch targets. Empty means "linear next after the write".
	YesScreen string
	NoScreen  string

	// Paired screens for array topics.
	DetailScreen   string
	OverviewScreen string

	// Scan screens.
	ScanKind  scan.Kind
	ApplyScan func(v any, f scan.Fields) any

	// Label renders a list row for an array item.
	Label func(item any) string

	// Help is optional markdown shown alongside the screen.
	Help string

	Category    string
	Subcategory string

	Fields []Field
}

// Category groups screens for coarse progress display. Entry resolves the
// screen to jump to when the category is opened; for array-heavy categories
// this skips the yes/no gate when data already exists.
type Category struct {
	Name  string
	Title string
	Entry func(doc document.Document) string
}

// Registry is the immutable screen list plus category index.
type Registry struct {
	screens    []*Screen
	byName     map[string]*Screen
	categories []Category
}

// New builds a registry from an ordered screen list and validates the
// configuration. Invalid registries are programming errors and surface
// loudly here rather than during navigation.
func New(screens []*Screen, categories []Category) (*Registry, error) {
	r := &Registry{
		screens:    screens,
		byName:     make(map[string]*Screen, len(screens)),
		categories: categories,
	}
	for _, s := range screens {
		if s.Name == "" {
			return nil, fmt.Errorf("registry: screen with empty name (title %q)", s.Title)
		}
		if _, dup := r.byName[s.Name]; dup {
			return nil, fmt.Errorf("registry: duplicate screen name %q", s.Name)
		}
		r.byName[s.Name] = s
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// validate checks referential integrity of branch targets and pairings.
func (r *Registry) validate() error {
	for _, s := range r.screens {
		for _, ref := range []struct{ field, name string }{
			{"yesScreen", s.YesScreen},
			{"noScreen", s.NoScreen},
			{"detailScreen", s.DetailScreen},
			{"overviewScreen", s.OverviewScreen},
		} {
			if ref.name == "" {
				continue
			}
			if _, ok := r.byName[ref.name]; !ok {
				return fmt.Errorf("registry: screen %q references unknown %s %q", s.Name, ref.field, ref.name)
			}
		}
		switch s.Type {
		case ArrayForm:
			if s.Array == nil {
				return fmt.Errorf("registry: array form %q has no array binding", s.Name)
			}
			if s.OverviewScreen == "" {
				return fmt.Errorf("registry: array form %q has no overview screen", s.Name)
			}
		case ArrayOverview:
			if s.Array == nil {
				return fmt.Errorf("registry: array overview %q has no array binding", s.Name)
			}
			if s.DetailScreen == "" {
				return fmt.Errorf("registry: array overview %q has no detail screen", s.Name)
			}
		case ScanOrUpload:
			if s.ApplyScan == nil {
				return fmt.Errorf("registry: scan screen %q has no transform", s.Name)
			}
		}
	}
	for _, c := range r.categories {
		if c.Entry == nil {
			return fmt.Errorf("registry: category %q has no entry resolver", c.Name)
		}
	}
	return nil
}

// Screens returns the full ordered list.
func (r *Registry) Screens() []*Screen { return r.screens }

// Get looks a screen up by name.
func (r *Registry) Get(name string) (*Screen, bool) {
	s, ok := r.byName[name]
	return s, ok
}

// IndexOf returns the registry position of a screen, -1 if unknown.
func (r *Registry) IndexOf(name string) int {
	for i, s := range r.screens {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// At returns the screen at a registry position, nil when out of range.
func (r *Registry) At(i int) *Screen {
	if i < 0 || i >= len(r.screens) {
		return nil
	}
	return r.screens[i]
}

// First returns the first screen in registry order.
func (r *Registry) First() *Screen {
	if len(r.screens) == 0 {
		return nil
	}
	return r.screens[0]
}

// Eligible filters the registry against the live document: a screen is
// eligible iff it has no hide predicate or the predicate reports false.
// Recomputed on every call; the document is the only input.
func (r *Registry) Eligible(doc document.Document) []*Screen {
	out := make([]*Screen, 0, len(r.screens))
	for _, s := range r.screens {
		if s.Hide != nil && s.Hide(doc) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Categories returns the category list in display order.
func (r *Registry) Categories() []Category { return r.categories }

// CategoryByName looks a category up by name.
func (r *Registry) CategoryByName(name string) (Category, bool) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}
