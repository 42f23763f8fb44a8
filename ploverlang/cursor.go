package ploverlang

import (
	"strings"

	"github.com/smasher164/xid"
)

// isMetaNameRune classifies characters allowed in a bare meta/command/macro
// name run, using a Unicode identifier classifier (xid.Start/xid.Continue).
// Directive names are opaque Unicode text, so this recognizes a name run
// beyond plain ASCII letters.
func isMetaNameRune(first bool) func(r rune) bool {
	return func(r rune) bool {
		if first {
			first = false
			return xid.Start(r)
		}
		return xid.Continue(r)
	}
}

// cursor is a read-only position in a Plover translation string. Unlike
// rtflang.Scanner, Plover has no fixed token alphabet to enumerate: braces,
// backslashes and bare runs of text are recognized by ordered alternatives
// directly against the remaining input, so cursor only needs to expose
// cheap lookahead and advance primitives.
type cursor struct {
	input string
	pos   int
}

func newCursor(input string) *cursor {
	return &cursor{input: input}
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.input)
}

func (c *cursor) rest() string {
	return c.input[c.pos:]
}

// clone returns an independent copy positioned identically, for
// speculative lookahead that can be discarded on mismatch.
func (c *cursor) clone() *cursor {
	cp := *c
	return &cp
}

func (c *cursor) hasPrefix(s string) bool {
	return strings.HasPrefix(c.rest(), s)
}

func (c *cursor) hasPrefixFold(s string) bool {
	return len(c.rest()) >= len(s) && strings.EqualFold(c.rest()[:len(s)], s)
}

// consume advances past s if present and reports success.
func (c *cursor) consume(s string) bool {
	if !c.hasPrefix(s) {
		return false
	}
	c.pos += len(s)
	return true
}

func (c *cursor) consumeFold(s string) bool {
	if !c.hasPrefixFold(s) {
		return false
	}
	c.pos += len(s)
	return true
}

// takeUntil scans up to (not including) the first occurrence of sep and
// advances past both the scanned text and sep. Reports false if sep never
// appears.
func (c *cursor) takeUntil(sep string) (string, bool) {
	idx := strings.Index(c.rest(), sep)
	if idx < 0 {
		return "", false
	}
	text := c.rest()[:idx]
	c.pos += idx + len(sep)
	return text, true
}

// takeWhile scans a run of runes satisfying pred and advances past it.
func (c *cursor) takeWhile(pred func(r rune) bool) string {
	start := c.pos
	for _, r := range c.rest() {
		if !pred(r) {
			break
		}
		c.pos += len(string(r))
	}
	return c.input[start:c.pos]
}

// takeWhileNot scans a run of bytes until one of the given stop bytes,
// or end of input.
func (c *cursor) takeWhileNot(stop string) string {
	idx := strings.IndexAny(c.rest(), stop)
	start := c.pos
	if idx < 0 {
		c.pos = len(c.input)
		return c.input[start:]
	}
	c.pos += idx
	return c.input[start:c.pos]
}
