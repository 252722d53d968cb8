// Package history provides snapshot-based undo/redo for a text store.
// Each undo entry is a full store snapshot taken before an edit batch;
// restoring an entry rolls the store back to that point. Entries recorded
// within the coalesce window collapse into one, so a burst of typing undoes
// as a unit.
package history

import (
	"sync"
	"time"

	"github.com/dshills/editcore/internal/textstore"
)

// DefaultMaxEntries bounds the undo stack when no limit is configured.
const DefaultMaxEntries = 1000

// undoEntry wraps a snapshot with the time it was recorded.
type undoEntry struct {
	snap      *textstore.Snapshot
	timestamp time.Time
}

// History manages undo/redo state for one store.
type History struct {
	mu sync.Mutex

	undoStack []*undoEntry
	redoStack []*undoEntry

	maxEntries int
	window     time.Duration

	now func() time.Time
}

// New creates a history manager. A non-positive maxEntries falls back to
// DefaultMaxEntries; a zero window disables coalescing.
func New(maxEntries int, window time.Duration) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		maxEntries: maxEntries,
		window:     window,
		now:        time.Now,
	}
}

// Record captures the store's current state as an undo point. Call it before
// applying an edit. Recording clears the redo stack. A record that lands
// within the coalesce window of the previous one is folded into it: the
// earlier snapshot stays, so the whole burst undoes together.
func (h *History) Record(store *textstore.Store) {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	h.redoStack = nil

	if n := len(h.undoStack); n > 0 && h.window > 0 {
		last := h.undoStack[n-1]
		if now.Sub(last.timestamp) < h.window {
			// Sliding window: keep the burst open while edits keep coming.
			last.timestamp = now
			return
		}
	}

	h.undoStack = append(h.undoStack, &undoEntry{
		snap:      store.TakeSnapshot(),
		timestamp: now,
	})

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// Undo rolls the store back to the most recent undo point. The state being
// left is pushed onto the redo stack. Reports whether anything was undone.
func (h *History) Undo(store *textstore.Store) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return false
	}

	entry := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]

	h.redoStack = append(h.redoStack, &undoEntry{
		snap:      store.TakeSnapshot(),
		timestamp: h.now(),
	})
	store.Restore(entry.snap)
	return true
}

// Redo re-applies the most recently undone state. Reports whether anything
// was redone.
func (h *History) Redo(store *textstore.Store) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return false
	}

	entry := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]

	h.undoStack = append(h.undoStack, &undoEntry{
		snap:      store.TakeSnapshot(),
		timestamp: h.now(),
	})
	store.Restore(entry.snap)
	return true
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo points available.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// RedoCount returns the number of redo points available.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack)
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.undoStack = nil
	h.redoStack = nil
}

// SetMaxEntries changes the stack bound, trimming oldest entries if needed.
func (h *History) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.maxEntries = max
	if len(h.undoStack) > max {
		excess := len(h.undoStack) - max
		h.undoStack = h.undoStack[excess:]
	}
}

// MaxEntries returns the stack bound.
func (h *History) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}
