package wizard

import (
	"context"
	"fmt"

	"github.com/steuerpilot/steuerpilot/internal/document"
	"github.com/steuerpilot/steuerpilot/internal/registry"
	"github.com/steuerpilot/steuerpilot/internal/scan"
)

// Submit contracts, one per screen type. Each submit builds the patched
// document through the topic lens, arms the advance, and applies — so the
// write and the navigation land together.

func (e *Engine) mustType(want registry.Type) (*registry.Screen, error) {
	if e.current == nil || e.current.Type != want {
		return nil, fmt.Errorf("wizard: screen %s is not a %s screen", e.currentName(), want)
	}
	return e.current, nil
}

// SubmitYesNo answers the current gate. The answer is stored as the topic's
// start flag; a declared cross-topic update runs inside the same patch. Yes
// follows YesScreen, no follows NoScreen, missing branch targets fall back to
// the next eligible screen after the write.
func (e *Engine) SubmitYesNo(answer bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, err := e.mustType(registry.YesNo)
	if err != nil {
		return err
	}
	doc := s.Topic.SetStart(e.doc, answer)
	if s.Update != nil {
		doc = s.Update(doc)
	}
	target := ""
	if answer && s.YesScreen != "" {
		target = s.YesScreen
	}
	if !answer && s.NoScreen != "" {
		target = s.NoScreen
	}
	e.pending = &target
	e.applyLocked(doc)
	return nil
}

// SubmitForm saves an object form: the edited data value replaces the
// topic's data, then the wizard moves on.
func (e *Engine) SubmitForm(v any) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, err := e.mustType(registry.ObjForm)
	if err != nil {
		return err
	}
	doc := s.Topic.SetDataAny(e.doc, v)
	target := ""
	e.pending = &target
	e.applyLocked(doc)
	return nil
}

// SubmitItem saves an array item form. The item is marked finished, written
// under the cursor (healing out-of-bounds cursors by appending), and the
// wizard lands on the paired overview.
func (e *Engine) SubmitItem(item any) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, err := e.mustType(registry.ArrayForm)
	if err != nil {
		return err
	}
	if it, ok := item.(document.Item); ok {
		item = it.WithFinished(true)
	}
	target := s.OverviewScreen
	e.pending = &target
	return e.updateItemLocked(item)
}

// CancelItem leaves an array item form without saving. An item that was
// auto-provisioned on entry is taken back out of the document.
func (e *Engine) CancelItem() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, err := e.mustType(registry.ArrayForm)
	if err != nil {
		return err
	}
	if e.provisioned {
		arr := s.Array
		idx := e.cursors[arr.Key()]
		doc := arr.Remove(e.doc, idx)
		if idx > 0 {
			e.cursors[arr.Key()] = idx - 1
		}
		e.provisioned = false
		e.logPatch(e.doc, doc)
		e.doc = doc
		e.persistLocked()
	}
	if ov, ok := e.reg.Get(s.OverviewScreen); ok {
		e.moveLocked(ov, false)
	}
	return nil
}

// OverviewAdd starts a fresh item: the cursor moves past the end of the
// array and the detail form provisions the item on entry.
func (e *Engine) OverviewAdd() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, err := e.mustType(registry.ArrayOverview)
	if err != nil {
		return err
	}
	e.cursors[s.Array.Key()] = s.Array.Len(e.doc)
	det, _ := e.reg.Get(s.DetailScreen)
	e.moveLocked(det, true)
	return nil
}

// OverviewEdit opens the detail form for an existing item.
func (e *Engine) OverviewEdit(i int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, err := e.mustType(registry.ArrayOverview)
	if err != nil {
		return err
	}
	if i < 0 || i >= s.Array.Len(e.doc) {
		return fmt.Errorf("wizard: no item %d on %s", i, s.Name)
	}
	e.cursors[s.Array.Key()] = i
	det, _ := e.reg.Get(s.DetailScreen)
	e.moveLocked(det, true)
	return nil
}

// OverviewRemove deletes an item and stays on the overview.
func (e *Engine) OverviewRemove(i int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, err := e.mustType(registry.ArrayOverview)
	if err != nil {
		return err
	}
	doc := s.Array.Remove(e.doc, i)
	if cur := e.cursors[s.Array.Key()]; cur > 0 && cur >= s.Array.Len(doc) {
		e.cursors[s.Array.Key()] = s.Array.Len(doc)
	}
	e.applyLocked(doc)
	return nil
}

// OverviewWeiter closes the topic: the finished flag is set and the wizard
// advances past the overview, two registry positions after the paired detail
// screen, skipping anything hidden there.
func (e *Engine) OverviewWeiter() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, err := e.mustType(registry.ArrayOverview)
	if err != nil {
		return err
	}
	doc := s.Topic.SetFinished(e.doc, true)
	target := ""
	if next := e.reg.At(e.reg.IndexOf(s.DetailScreen) + 2); next != nil {
		target = next.Name
	}
	e.pending = &target
	e.applyLocked(doc)
	return nil
}

// SubmitScan maps extracted fields into the screen's topic. Array-targeted
// scans append a new item (one scanned document, one entry) and open it for
// review; object-targeted scans patch the topic data directly.
func (e *Engine) SubmitScan(fields scan.Fields) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, err := e.mustType(registry.ScanOrUpload)
	if err != nil {
		return err
	}
	if s.Array != nil {
		item := s.Array.NewItem()
		item = s.ApplyScan(item, fields)
		doc := s.Array.Append(e.doc, item)
		// Scanned data exists, so the topic is live even when its gate was
		// never answered; otherwise the detail screen stays hidden and the
		// review jump below would skip past the scanned item.
		doc = s.Topic.SetStart(doc, true)
		e.cursors[s.Array.Key()] = s.Array.Len(doc) - 1
		target := s.DetailScreen
		e.pending = &target
		e.applyLocked(doc)
		return nil
	}
	v := s.ApplyScan(s.Topic.DataAny(e.doc), fields)
	doc := s.Topic.SetDataAny(e.doc, v)
	doc = s.Topic.SetStart(doc, true)
	target := ""
	e.pending = &target
	e.applyLocked(doc)
	return nil
}

// ScanFile runs the scanner on a file and submits the extracted fields.
func (e *Engine) ScanFile(ctx context.Context, sc scan.Scanner, file string) error {
	cur := e.Current()
	if cur == nil || cur.Type != registry.ScanOrUpload {
		return fmt.Errorf("wizard: current screen is not a scan screen")
	}
	fields, err := sc.Scan(ctx, file, cur.ScanKind)
	if err != nil {
		return err
	}
	return e.SubmitScan(fields)
}
