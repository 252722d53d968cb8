// Package document composes a text store, a tokenization engine and an undo
// history into a single per-document facade. Hosts create one Document per
// open file; there is no shared global state.
package document

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/editcore/internal/history"
	"github.com/dshills/editcore/internal/syntax"
	"github.com/dshills/editcore/internal/syntax/lang"
	"github.com/dshills/editcore/internal/textstore"
)

// Default limits applied when no option overrides them.
const (
	DefaultHistoryLimit   = 1000
	DefaultCoalesceWindow = 300 * time.Millisecond
)

// Document is the editing facade for one open file. All operations are
// synchronous and safe for concurrent use.
type Document struct {
	mu sync.RWMutex

	id   uuid.UUID
	path string

	store   *textstore.Store
	engine  *syntax.Engine
	history *history.History

	registry *syntax.Registry

	// Construction state collected by options.
	initContent  string
	initLanguage string
	historyLimit int
	coalesce     time.Duration
}

// Option configures a Document at construction time.
type Option func(*Document)

// WithContent sets the initial document text.
func WithContent(text string) Option {
	return func(d *Document) { d.initContent = text }
}

// WithPath records the file path and selects the language by its extension.
func WithPath(path string) Option {
	return func(d *Document) { d.path = path }
}

// WithLanguage selects the language explicitly, overriding the path
// extension.
func WithLanguage(id string) Option {
	return func(d *Document) { d.initLanguage = id }
}

// WithRegistry substitutes the tokenizer registry. The default registry
// carries every built-in language.
func WithRegistry(r *syntax.Registry) Option {
	return func(d *Document) { d.registry = r }
}

// WithHistoryLimit bounds the undo stack.
func WithHistoryLimit(n int) Option {
	return func(d *Document) { d.historyLimit = n }
}

// WithCoalesceWindow sets the undo coalescing window. Zero disables
// coalescing.
func WithCoalesceWindow(w time.Duration) Option {
	return func(d *Document) { d.coalesce = w }
}

// New creates a Document.
func New(opts ...Option) *Document {
	d := &Document{
		id:           uuid.New(),
		historyLimit: DefaultHistoryLimit,
		coalesce:     DefaultCoalesceWindow,
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.registry == nil {
		d.registry = syntax.NewRegistry()
		lang.Register(d.registry)
	}

	d.store = textstore.NewFromString(d.initContent)
	d.engine = syntax.NewEngine(d.registry)
	d.history = history.New(d.historyLimit, d.coalesce)

	switch {
	case d.initLanguage != "":
		d.setLanguageLocked(d.initLanguage)
	case d.path != "":
		d.setLanguageFromPathLocked(d.path)
	}
	d.initContent = ""

	return d
}

// ID returns the document's stable identity.
func (d *Document) ID() uuid.UUID {
	return d.id
}

// Path returns the file path the document was opened with, if any.
func (d *Document) Path() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.path
}

// Insert records an undo point, inserts text at the byte offset and
// incrementally re-tokenizes. The returned slice holds the lines whose tokens
// changed. The offset clamps to the document bounds.
func (d *Document) Insert(offset int, text string) []syntax.LineTokens {
	d.mu.Lock()
	defer d.mu.Unlock()

	from := d.store.OffsetToPosition(offset).Line
	d.history.Record(d.store)
	d.store.Insert(offset, text)
	return d.engine.Update(from, d.store.Text())
}

// Delete records an undo point, removes length bytes at the offset and
// incrementally re-tokenizes. Out-of-range arguments clamp; a degenerate
// range is a no-op edit that still records history.
func (d *Document) Delete(offset, length int) []syntax.LineTokens {
	d.mu.Lock()
	defer d.mu.Unlock()

	from := d.store.OffsetToPosition(offset).Line
	d.history.Record(d.store)
	d.store.Delete(offset, length)
	return d.engine.Update(from, d.store.Text())
}

// Undo rolls back to the previous undo point and fully re-tokenizes.
func (d *Document) Undo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.history.Undo(d.store) {
		return false
	}
	d.engine.Tokenize(d.store.Text())
	return true
}

// Redo re-applies the most recently undone edit and fully re-tokenizes.
func (d *Document) Redo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.history.Redo(d.store) {
		return false
	}
	d.engine.Tokenize(d.store.Text())
	return true
}

// CanUndo returns true if an undo point is available.
func (d *Document) CanUndo() bool {
	return d.history.CanUndo()
}

// CanRedo returns true if a redo point is available.
func (d *Document) CanRedo() bool {
	return d.history.CanRedo()
}

// SetLanguage switches the tokenizer and re-tokenizes the whole document.
// Reports whether the language is registered; an unknown id leaves the
// document unchanged.
func (d *Document) SetLanguage(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setLanguageLocked(id)
}

// SetLanguageFromPath selects the language from the path's extension.
func (d *Document) SetLanguageFromPath(path string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setLanguageFromPathLocked(path)
}

func (d *Document) setLanguageLocked(id string) bool {
	if !d.engine.SetLanguage(id) {
		return false
	}
	d.engine.Tokenize(d.store.Text())
	return true
}

func (d *Document) setLanguageFromPathLocked(path string) bool {
	tok, ok := d.registry.ByExtension(filepath.Ext(path))
	if !ok {
		return false
	}
	return d.setLanguageLocked(tok.LanguageID())
}

// Language returns the active language id, or "" if none is set.
func (d *Document) Language() string {
	return d.engine.Language()
}

// Text returns the full document text.
func (d *Document) Text() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.store.Text()
}

// Line returns the text of the 1-indexed line, without its newline.
func (d *Document) Line(n int) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.store.Line(n)
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.store.LineCount()
}

// Len returns the document length in bytes.
func (d *Document) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.store.Len()
}

// Revision returns the store's revision counter.
func (d *Document) Revision() textstore.Revision {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.store.Revision()
}

// LineTokens returns the cached tokens for the 1-indexed line.
func (d *Document) LineTokens(n int) []syntax.Token {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.engine.LineTokens(n)
}

// OffsetToPosition converts a byte offset to a 1-indexed position.
func (d *Document) OffsetToPosition(offset int) textstore.Position {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.store.OffsetToPosition(offset)
}

// PositionToOffset converts a 1-indexed position to a byte offset.
func (d *Document) PositionToOffset(pos textstore.Position) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.store.PositionToOffset(pos)
}

// WordBoundaries returns the word span around the offset.
func (d *Document) WordBoundaries(offset int) textstore.Span {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.store.WordBoundaries(offset)
}

// LineBoundaries returns the span of the 1-indexed line.
func (d *Document) LineBoundaries(line int) textstore.Span {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.store.LineBoundaries(line)
}

// TakeSnapshot captures the current text state, outside the undo history.
func (d *Document) TakeSnapshot() *textstore.Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.store.TakeSnapshot()
}

// Restore replaces the text state with a snapshot and fully re-tokenizes.
// The undo history is left as it stands.
func (d *Document) Restore(snap *textstore.Snapshot) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.store.Restore(snap)
	d.engine.Tokenize(d.store.Text())
}
