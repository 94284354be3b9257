package wizard

import (
	"fmt"

	"github.com/steuerpilot/steuerpilot/internal/document"
)

// Cursor operations. Each array topic keeps its own cursor; the operations
// below resolve the array binding from the current screen.

func (e *Engine) arrayLocked() (document.ArrayAccess, error) {
	if e.current == nil || e.current.Array == nil {
		return nil, fmt.Errorf("wizard: screen %s is not array-backed", e.currentName())
	}
	return e.current.Array, nil
}

// CursorIndex returns the cursor of the current screen's array topic.
func (e *Engine) CursorIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	arr, err := e.arrayLocked()
	if err != nil {
		return 0
	}
	return e.cursors[arr.Key()]
}

// SetCursor moves the cursor. The index is not validated against a specific
// item: anything past the end is clamped to the length, which means "next
// fresh item"; a stale index surviving a removal is healed on the next item
// write instead.
func (e *Engine) SetCursor(i int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	arr, err := e.arrayLocked()
	if err != nil {
		return
	}
	n := arr.Len(e.doc)
	if i < 0 {
		i = 0
	}
	if i > n {
		i = n
	}
	e.cursors[arr.Key()] = i
}

// Item returns the array item under the cursor.
func (e *Engine) Item() (any, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	arr, err := e.arrayLocked()
	if err != nil {
		return nil, false
	}
	return arr.At(e.doc, e.cursors[arr.Key()])
}

// UpdateItem writes the item under the cursor back into the document. A
// cursor past the end of the array heals by appending, so a stale cursor
// after concurrent removals never drops data.
func (e *Engine) UpdateItem(item any) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.updateItemLocked(item)
}

func (e *Engine) updateItemLocked(item any) error {
	arr, err := e.arrayLocked()
	if err != nil {
		return err
	}
	idx := e.cursors[arr.Key()]
	var doc document.Document
	if idx >= arr.Len(e.doc) {
		doc = arr.Append(e.doc, item)
		e.cursors[arr.Key()] = arr.Len(doc) - 1
	} else {
		doc = arr.SetAt(e.doc, idx, item)
	}
	e.provisioned = false
	e.applyLocked(doc)
	return nil
}

// RemoveItem drops the item at an index and clamps the cursor.
func (e *Engine) RemoveItem(i int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	arr, err := e.arrayLocked()
	if err != nil {
		return err
	}
	doc := arr.Remove(e.doc, i)
	if cur := e.cursors[arr.Key()]; cur >= arr.Len(doc) && cur > 0 {
		e.cursors[arr.Key()] = arr.Len(doc)
	}
	e.applyLocked(doc)
	return nil
}
