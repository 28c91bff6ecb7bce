// Package scanner provides the lexical primitives used by the YAML parser:
// byte-level cursor movement, line/column tracking, newline normalisation,
// and comment/whitespace consumption. It has no notion of YAML grammar
// beyond the handful of bytes (space, tab, CR, LF, '#') that every YAML
// line needs classified before the parser's state machine can run.
package scanner

// Cursor is a read-only, forward-only view over an input buffer. It tracks
// enough position state for the parser to report accurate line/column
// information without ever backtracking further than the current line.
//
// Invariant: 0 <= Begin <= lineStart <= indentPos <= pos <= len(data).
type Cursor struct {
	data []byte

	pos   int // current read position
	begin int // first byte after any BOM

	line      int // zero-based line index of the current line
	lineStart int // offset of the first byte of the current line
	indent    int // count of leading spaces already consumed on this line
	indentPos int // offset of the first non-space byte on this line

	freshLine bool // true when positioned at the very start of a line
}

// NewCursor creates a cursor over data, skipping a leading UTF-8 BOM if
// present. The BOM, when skipped, is never visible again through the
// cursor's byte-oriented methods.
func NewCursor(data []byte) *Cursor {
	c := &Cursor{data: data}
	c.skipUTF8BOM()
	c.begin = c.pos
	c.lineStart = c.pos
	c.indentPos = c.pos
	c.freshLine = true
	return c
}

func (c *Cursor) skipUTF8BOM() {
	const (
		b0 = 0xEF
		b1 = 0xBB
		b2 = 0xBF
	)
	if len(c.data) >= 3 && c.data[0] == b0 && c.data[1] == b1 && c.data[2] == b2 {
		c.pos = 3
	}
}

// Pos returns the current byte offset into the original input.
func (c *Cursor) Pos() int { return c.pos }

// Line returns the zero-based index of the line the cursor is on.
func (c *Cursor) Line() int { return c.line }

// LineStart returns the byte offset of the start of the current line.
func (c *Cursor) LineStart() int { return c.lineStart }

// Indent returns the number of leading spaces already consumed on the
// current line.
func (c *Cursor) Indent() int { return c.indent }

// IndentPos returns the byte offset of the first non-space byte on the
// current line (or of EOF, if the line is all spaces so far).
func (c *Cursor) IndentPos() int { return c.indentPos }

// AtFreshLine reports whether the cursor sits at the very first byte of a
// line, i.e. indentation has not yet been read for it.
func (c *Cursor) AtFreshLine() bool { return c.freshLine }

// Data returns the full underlying buffer (including the BOM-skipped
// prefix, which callers should ignore via Begin).
func (c *Cursor) Data() []byte { return c.data }

// Begin returns the offset of the first byte after any BOM.
func (c *Cursor) Begin() int { return c.begin }

// Len returns the length of the underlying buffer.
func (c *Cursor) Len() int { return len(c.data) }

// Eof reports whether the cursor has consumed the entire buffer.
func (c *Cursor) Eof() bool { return c.pos >= len(c.data) }

// Byte returns the byte at the current position and true, or 0 and false
// at EOF.
func (c *Cursor) Byte() (byte, bool) {
	if c.pos >= len(c.data) {
		return 0, false
	}
	return c.data[c.pos], true
}

// Peek returns the byte `offset` bytes ahead of the current position, or
// 0 and false if that position is at or past EOF. A negative offset looks
// backwards into already-consumed input, returning false if it would fall
// before the start of the buffer.
func (c *Cursor) Peek(offset int) (byte, bool) {
	i := c.pos + offset
	if i < 0 || i >= len(c.data) {
		return 0, false
	}
	return c.data[i], true
}

// Advance consumes n bytes unconditionally. Callers are responsible for
// calling RegisterNewline when a line break is among the consumed bytes.
func (c *Cursor) Advance(n int) { c.pos += n }

// Rewind resets the read position to pos without touching line/indent
// bookkeeping. It exists solely for the document-marker lookahead, which
// must be able to undo a speculative read of "---"/"..." that turned out
// not to be a marker.
func (c *Cursor) Rewind(pos int) { c.pos = pos }

const (
	space     = ' '
	tab       = '\t'
	carriage  = '\r'
	newline   = '\n'
	commentCh = '#'
)

// IsSpaceOrTab reports whether b is the ASCII space or tab byte. YAML's
// notion of whitespace, per this implementation, is exactly these two
// bytes — no Unicode whitespace is recognised.
func IsSpaceOrTab(b byte) bool { return b == space || b == tab }

// IsLineBreak reports whether b starts a line break (CR or LF).
func IsLineBreak(b byte) bool { return b == carriage || b == newline }

// RegisterNewline must be called immediately after consuming a byte that
// IsLineBreak reported true for. It folds a following LF into a CR (DOS
// line ending), advances the line counter, and resets indentation
// tracking for the new line.
func (c *Cursor) RegisterNewline() {
	if c.pos > c.begin && c.data[c.pos-1] == carriage {
		if b, ok := c.Byte(); ok && b == newline {
			c.pos++
		}
	}
	c.line++
	c.lineStart = c.pos
	c.indent = 0
	c.indentPos = c.pos
	c.freshLine = true
}

// ReadLineIndentation consumes leading space bytes of a fresh line,
// updating Indent/IndentPos as it goes. It stops at the first non-space
// byte, at EOF, or at a tab — returning false in the tab case, per the
// forbidden_tab_indentation rule: tabs are never permitted in the
// indentation region of a line.
func (c *Cursor) ReadLineIndentation() bool {
	for {
		b, ok := c.Byte()
		if !ok {
			break
		}
		if b == tab {
			return false
		}
		if b != space {
			break
		}
		c.indent++
		c.indentPos++
		c.pos++
	}
	return true
}

// ClearFreshLine marks the cursor as no longer positioned at the start of
// a line. The parser calls this itself, from find_value, the moment it
// starts deciding what a line's content is — deliberately not bundled
// into ReadLineIndentation, since indentation can legitimately be read
// more than once against the same line (see the parser's dedent arbiter).
func (c *Cursor) ClearFreshLine() { c.freshLine = false }

// SkipInlineWhitespace consumes a run of space/tab bytes without touching
// indentation bookkeeping and without rejecting tabs; used only in
// contexts — trailing-whitespace-before-a-comment, mainly — where a tab is
// legal because it isn't part of a line's indentation region.
func (c *Cursor) SkipInlineWhitespace() {
	for {
		b, ok := c.Byte()
		if !ok || !IsSpaceOrTab(b) {
			return
		}
		c.pos++
	}
}

// ReadInlineGap consumes a run of space bytes between tokens on a line
// that is already past its indentation (e.g. the gap between "key:" and
// its value). Like ReadLineIndentation it rejects a tab outright — the
// parser only ever calls it immediately after the line's indentation was
// already validated, so by construction any tab it meets is still part of
// that same leading-whitespace convention, just encountered one token
// later.
func (c *Cursor) ReadInlineGap() bool {
	for {
		b, ok := c.Byte()
		if !ok {
			return true
		}
		if b == tab {
			return false
		}
		if b != space {
			return true
		}
		c.pos++
	}
}

// ReadCommentUntilNewline consumes a '#' comment body up to (and
// including) the terminating line break, and returns the comment text
// with any leading whitespace after '#' stripped. The caller is expected
// to have already consumed the leading '#' byte.
func (c *Cursor) ReadCommentUntilNewline() []byte {
	c.SkipInlineWhitespace()
	start := c.pos
	end := c.pos
	for {
		b, ok := c.Byte()
		if !ok {
			break
		}
		c.pos++
		if IsSpaceOrTab(b) {
			continue
		}
		if IsLineBreak(b) {
			c.RegisterNewline()
			break
		}
		end = c.pos
	}
	return c.data[start:end]
}

// ConsumeOnlyWhitespaceUntilNewlineOrComment scans forward from the
// current position, accepting only space/tab bytes. It succeeds (true) if
// it reaches EOF, a line break (consumed, with RegisterNewline called),
// or a comment (consumed in full via ReadCommentUntilNewline). It fails
// (false) — leaving the cursor positioned at the offending byte — the
// moment it meets anything else.
func (c *Cursor) ConsumeOnlyWhitespaceUntilNewlineOrComment() bool {
	for {
		b, ok := c.Byte()
		if !ok {
			return true
		}
		switch {
		case IsSpaceOrTab(b):
			c.pos++
		case IsLineBreak(b):
			c.pos++
			c.RegisterNewline()
			return true
		case b == commentCh:
			c.pos++
			c.ReadCommentUntilNewline()
			return true
		default:
			return false
		}
	}
}

// IsPrevWhitespace reports whether the byte `back` positions behind the
// current one is whitespace, a line break, or out of bounds (treated as
// whitespace, matching the permissive edge behaviour the parser relies on
// when peeking near the start of input).
func (c *Cursor) IsPrevWhitespace(back int) bool {
	i := c.pos - back
	if i < c.begin {
		return true
	}
	b := c.data[i]
	return IsSpaceOrTab(b) || IsLineBreak(b)
}

// IsNextWhitespace reports whether the byte `ahead` positions in front of
// the current one is whitespace, a line break, EOF, or out of bounds
// (again treated as whitespace so that lookahead near EOF never panics).
func (c *Cursor) IsNextWhitespace(ahead int) bool {
	b, ok := c.Peek(ahead)
	if !ok {
		return true
	}
	return IsSpaceOrTab(b) || IsLineBreak(b)
}

// MatchesAt reports whether the byte `ahead` positions in front of the
// current one equals want. Out-of-bounds lookahead is treated as a match,
// mirroring the origin parser's lenient end-of-buffer lookahead so that a
// marker truncated by EOF (e.g. a lone "--" at the very end of input)
// still matches.
func (c *Cursor) MatchesAt(ahead int, want byte) bool {
	b, ok := c.Peek(ahead)
	if !ok {
		return true
	}
	return b == want
}
