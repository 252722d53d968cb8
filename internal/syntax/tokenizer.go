package syntax

import "sync"

// LineTokenizer tokenizes one line at a time, threading a carry state from
// line to line. Implementations are constant descriptors: one value per
// supported language, stateless across calls.
type LineTokenizer interface {
	// LanguageID returns the stable identifier of the language ("css",
	// "json", ...).
	LanguageID() string

	// Extensions returns the file extensions (with leading dot) the language
	// claims.
	Extensions() []string

	// InitialState returns the state scanning starts from at line 1.
	InitialState() State

	// TokenizeLine classifies one line given the state carried out of the
	// previous line. The returned tokens are sorted, contiguous,
	// non-overlapping, and cover the whole line; the returned state is the
	// carry state for the next line. The function is total: any input
	// produces a valid classification, with unrecognized characters becoming
	// length-1 unknown tokens.
	TokenizeLine(line string, incoming State) ([]Token, State)
}

// Registry maps language identifiers and file extensions to tokenizers.
type Registry struct {
	mu          sync.RWMutex
	byLanguage  map[string]LineTokenizer
	byExtension map[string]LineTokenizer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byLanguage:  make(map[string]LineTokenizer),
		byExtension: make(map[string]LineTokenizer),
	}
}

// Register adds a tokenizer, claiming its language id and extensions.
// A later registration for the same id or extension wins.
func (r *Registry) Register(t LineTokenizer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byLanguage[t.LanguageID()] = t
	for _, ext := range t.Extensions() {
		r.byExtension[ext] = t
	}
}

// ByLanguage returns the tokenizer for the given language id.
func (r *Registry) ByLanguage(id string) (LineTokenizer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byLanguage[id]
	return t, ok
}

// ByExtension returns the tokenizer claiming the given file extension.
// The extension may be passed with or without its leading dot.
func (r *Registry) ByExtension(ext string) (LineTokenizer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if ext == "" {
		return nil, false
	}
	if ext[0] != '.' {
		ext = "." + ext
	}
	t, ok := r.byExtension[ext]
	return t, ok
}

// Languages returns all registered language ids.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.byLanguage))
	for id := range r.byLanguage {
		ids = append(ids, id)
	}
	return ids
}
