// Package legacy implements the line-oriented legacy text encoding of
// 4C input sections: a schema-driven line codec built on casting
// tables, plus the fixed multi-line codec for NURBS knot vector
// patches. All readers consume pre-split lines and perform no I/O.
package legacy

import "strings"

// DefaultCommentMarker starts a trailing comment; everything from the
// marker to the end of the line is ignored by the tokenizer.
const DefaultCommentMarker = "#"

// Tokens is a consumable queue of whitespace-split tokens from one
// line.
type Tokens struct {
	toks []string
}

// Tokenize strips any trailing comment and splits the line on
// whitespace runs.
func Tokenize(line string) *Tokens {
	return TokenizeWith(line, DefaultCommentMarker)
}

// TokenizeWith tokenizes with a custom comment marker. An empty
// marker disables comment stripping.
func TokenizeWith(line, commentMarker string) *Tokens {
	if commentMarker != "" {
		if idx := strings.Index(line, commentMarker); idx >= 0 {
			line = line[:idx]
		}
	}
	return &Tokens{toks: strings.Fields(line)}
}

func NewTokens(toks ...string) *Tokens {
	return &Tokens{toks: toks}
}

func (t *Tokens) Len() int {
	return len(t.toks)
}

// Pop removes and returns the leftmost token.
func (t *Tokens) Pop() (string, bool) {
	if len(t.toks) == 0 {
		return "", false
	}
	tok := t.toks[0]
	t.toks = t.toks[1:]
	return tok, true
}

// PopN removes and returns the n leftmost tokens.
func (t *Tokens) PopN(n int) ([]string, bool) {
	if len(t.toks) < n {
		return nil, false
	}
	toks := t.toks[:n]
	t.toks = t.toks[n:]
	return toks, true
}

// Rest removes and returns all remaining tokens.
func (t *Tokens) Rest() []string {
	toks := t.toks
	t.toks = nil
	return toks
}
