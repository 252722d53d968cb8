// Package syntax provides incremental lexical analysis for documents under
// edit. A LineTokenizer classifies one line at a time as a pure function of
// (lineText, incoming State); the Engine caches per-line results for one
// document and, after an edit, re-tokenizes only the lines whose lexical
// context actually changed, stopping as soon as the recomputed carry state
// converges with the cached one.
//
// The engine produces flat, non-hierarchical token spans sufficient for
// highlighting. It builds no syntax tree and recovers from nothing: input a
// tokenizer does not recognize becomes unknown spans, so tokenization is
// total and the spans on every line always cover it exactly.
//
// Language tokenizers register in a Registry keyed by language id and file
// extension; the built-in languages live in the lang subpackage.
package syntax
