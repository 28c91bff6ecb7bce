package scanner

import "testing"

func TestNewCursorSkipsBOM(t *testing.T) {
	c := NewCursor([]byte("\xEF\xBB\xBFkey"))
	if c.Pos() != 3 {
		t.Fatalf("Pos() = %d, want 3", c.Pos())
	}
	b, ok := c.Byte()
	if !ok || b != 'k' {
		t.Fatalf("Byte() = %q, %v, want 'k', true", b, ok)
	}
}

func TestNewCursorNoBOM(t *testing.T) {
	c := NewCursor([]byte("key"))
	if c.Pos() != 0 {
		t.Fatalf("Pos() = %d, want 0", c.Pos())
	}
}

func TestReadLineIndentation(t *testing.T) {
	c := NewCursor([]byte("   key"))
	if !c.ReadLineIndentation() {
		t.Fatal("ReadLineIndentation() = false, want true")
	}
	if c.Indent() != 3 || c.Pos() != 3 {
		t.Fatalf("Indent()=%d Pos()=%d, want 3,3", c.Indent(), c.Pos())
	}
}

func TestReadLineIndentationRejectsTab(t *testing.T) {
	c := NewCursor([]byte("  \tkey"))
	if c.ReadLineIndentation() {
		t.Fatal("ReadLineIndentation() = true, want false on tab")
	}
}

func TestRegisterNewlineFoldsCRLF(t *testing.T) {
	c := NewCursor([]byte("a\r\nb"))
	c.Advance(1) // past 'a'
	c.Advance(1) // past '\r'
	c.RegisterNewline()
	if c.Pos() != 3 {
		t.Fatalf("Pos() = %d, want 3 (CRLF folded)", c.Pos())
	}
	if c.Line() != 1 {
		t.Fatalf("Line() = %d, want 1", c.Line())
	}
	if !c.AtFreshLine() {
		t.Fatal("AtFreshLine() = false, want true")
	}
}

func TestRegisterNewlineLoneLF(t *testing.T) {
	c := NewCursor([]byte("a\nb"))
	c.Advance(1)
	c.Advance(1)
	c.RegisterNewline()
	if c.Pos() != 2 {
		t.Fatalf("Pos() = %d, want 2", c.Pos())
	}
}

func TestReadCommentUntilNewlineStripsLeadingWhitespace(t *testing.T) {
	c := NewCursor([]byte("  hello\nrest"))
	got := c.ReadCommentUntilNewline()
	if string(got) != "hello" {
		t.Fatalf("ReadCommentUntilNewline() = %q, want %q", got, "hello")
	}
	if c.Line() != 1 {
		t.Fatalf("Line() = %d, want 1", c.Line())
	}
}

func TestMatchesAtOutOfBoundsIsLenient(t *testing.T) {
	c := NewCursor([]byte("--"))
	if !c.MatchesAt(2, '-') {
		t.Fatal("MatchesAt past EOF should be treated as a match")
	}
}

func TestIsPrevWhitespaceOutOfBoundsIsLenient(t *testing.T) {
	c := NewCursor([]byte("x"))
	if !c.IsPrevWhitespace(5) {
		t.Fatal("IsPrevWhitespace before start of buffer should be treated as whitespace")
	}
}
