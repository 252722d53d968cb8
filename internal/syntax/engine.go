package syntax

import (
	"strings"
	"sync"
)

// lineEntry is one cached line: its text at tokenization time (for
// validation), its tokens, and the carry state at its end.
type lineEntry struct {
	text     string
	tokens   []Token
	endState State
}

// Engine is the per-document tokenization cache. One engine serves exactly
// one open document; it is never shared.
//
// The engine re-tokenizes only the lines whose lexical context an edit
// actually changed: starting at the first changed line it threads the carry
// state forward and stops as soon as the recomputed state re-converges with
// the previously cached one.
type Engine struct {
	mu        sync.RWMutex
	registry  *Registry
	tokenizer LineTokenizer
	cache     []lineEntry
}

// NewEngine creates an engine drawing tokenizers from the registry.
// No language is selected initially; Tokenize and Update are no-ops until
// SetLanguage succeeds.
func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// Language returns the id of the active language, or "" if none.
func (e *Engine) Language() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.tokenizer == nil {
		return ""
	}
	return e.tokenizer.LanguageID()
}

// SetLanguage swaps the active tokenizer and invalidates the entire cache:
// every line becomes stale and its carry state resets to the new language's
// initial state. Returns false (leaving the engine unchanged) if the
// language is not registered.
func (e *Engine) SetLanguage(id string) bool {
	t, ok := e.registry.ByLanguage(id)
	if !ok {
		return false
	}
	e.mu.Lock()
	e.tokenizer = t
	e.cache = nil
	e.mu.Unlock()
	return true
}

// Clear drops the cache without changing the selected language.
func (e *Engine) Clear() {
	e.mu.Lock()
	e.cache = nil
	e.mu.Unlock()
}

// LineCount returns the number of cached lines.
func (e *Engine) LineCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.cache)
}

// LineTokens returns the cached tokens for the 1-indexed line, or nil if the
// line is out of range or not yet tokenized.
func (e *Engine) LineTokens(n int) []Token {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if n < 1 || n > len(e.cache) {
		return nil
	}
	return e.cache[n-1].tokens
}

// LineEndState returns the cached carry state at the end of the 1-indexed
// line. Lines before the first return the initial state.
func (e *Engine) LineEndState(n int) State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.tokenizer == nil {
		return Normal
	}
	if n < 1 || len(e.cache) == 0 {
		return e.tokenizer.InitialState()
	}
	if n > len(e.cache) {
		n = len(e.cache)
	}
	return e.cache[n-1].endState
}

// Tokenize runs a full, non-incremental scan of the document: line 1 starts
// from the initial state and every line's end state feeds the next. The
// complete per-line result is cached and returned.
func (e *Engine) Tokenize(text string) []LineTokens {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tokenizeLocked(text)
}

func (e *Engine) tokenizeLocked(text string) []LineTokens {
	if e.tokenizer == nil {
		return nil
	}

	lines := splitLines(text)
	e.cache = make([]lineEntry, len(lines))
	result := make([]LineTokens, len(lines))

	state := e.tokenizer.InitialState()
	for i, line := range lines {
		tokens, end := e.tokenizer.TokenizeLine(line, state)
		e.cache[i] = lineEntry{text: line, tokens: tokens, endState: end}
		result[i] = LineTokens{Line: i + 1, Tokens: tokens}
		state = end
	}
	return result
}

// Update incrementally re-tokenizes after an edit known to have changed
// content starting at the 1-indexed changedFromLine. Lines above it keep
// their cache. Scanning resumes there with the carry state cached for the
// previous line and continues until the recomputed end state converges with
// the cached state for the same content, at which point the remaining cached
// suffix is provably still valid and is reused.
//
// Returns only the lines whose tokens actually changed. A changedFromLine
// below 1 or an empty cache forces a full scan.
func (e *Engine) Update(changedFromLine int, text string) []LineTokens {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tokenizer == nil {
		return nil
	}
	if changedFromLine < 1 || len(e.cache) == 0 {
		return e.tokenizeLocked(text)
	}

	lines := splitLines(text)
	old := e.cache
	// Lines shifted by the edit land at old index minus this delta.
	delta := len(lines) - len(old)

	from := changedFromLine
	if from > len(lines) {
		from = len(lines)
	}
	keep := from - 1
	if keep > len(old) {
		keep = len(old)
	}

	cache := make([]lineEntry, len(lines))
	copy(cache, old[:keep])

	state := e.tokenizer.InitialState()
	if keep > 0 {
		state = old[keep-1].endState
	}

	var changed []LineTokens
	i := keep
	for i < len(lines) {
		tokens, end := e.tokenizer.TokenizeLine(lines[i], state)
		cache[i] = lineEntry{text: lines[i], tokens: tokens, endState: end}
		if i >= len(old) || old[i].text != lines[i] || !TokensEqual(old[i].tokens, tokens) {
			changed = append(changed, LineTokens{Line: i + 1, Tokens: tokens})
		}
		state = end
		i++

		// Convergence check: the next line maps onto an old entry whose
		// incoming state matches the state just produced and whose text,
		// along with the entire remaining suffix, is unchanged. A single
		// matching line is not enough: the edit region can coincidentally
		// reproduce a shifted old line while later lines differ.
		j := i - delta
		if i < len(lines) && j >= 0 && j < len(old) {
			prev := e.tokenizer.InitialState()
			if j > 0 {
				prev = old[j-1].endState
			}
			if prev == state && suffixUnchanged(old, j, lines, i) {
				copy(cache[i:], old[j:])
				break
			}
		}
	}

	e.cache = cache
	return changed
}

// suffixUnchanged reports whether every line from index i on matches the
// cached entry text from index j on. Both suffixes have the same length when
// j is i minus the line-count delta.
func suffixUnchanged(old []lineEntry, j int, lines []string, i int) bool {
	for ; i < len(lines); i, j = i+1, j+1 {
		if old[j].text != lines[i] {
			return false
		}
	}
	return true
}

// splitLines splits a document into its lines. A document always has at
// least one line; a trailing newline produces a final empty line.
func splitLines(text string) []string {
	return strings.Split(text, "\n")
}
