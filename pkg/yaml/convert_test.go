package yaml

import (
	"testing"

	"github.com/shapestone/yamlsax/internal/parser"
)

func scalarOf(style parser.BlockStyle, chomp parser.Chomping, frags ...string) *Node {
	n := newScalarNode(style, chomp)
	for _, f := range frags {
		n.appendFragment([]byte(f))
	}
	return n
}

func TestStringPlainScalarJoinsWithSpaces(t *testing.T) {
	n := scalarOf(parser.StyleNone, parser.ChompStrip, "first", "second")
	if got := n.String(); got != "first second" {
		t.Fatalf("String() = %q, want %q", got, "first second")
	}
}

func TestStringPlainScalarBlankRunsBecomeNewlines(t *testing.T) {
	n := scalarOf(parser.StyleNone, parser.ChompStrip, "first", "second", "", "third", "", "", "fourth")
	want := "first second\nthird\n\nfourth"
	if got := n.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestStringLiteralBlockClip(t *testing.T) {
	n := scalarOf(parser.StyleLiteral, parser.ChompClip, "one", "two")
	if got := n.String(); got != "one\ntwo\n" {
		t.Fatalf("String() = %q, want %q", got, "one\ntwo\n")
	}
}

func TestStringLiteralBlockStrip(t *testing.T) {
	n := scalarOf(parser.StyleLiteral, parser.ChompStrip, "one", "two")
	if got := n.String(); got != "one\ntwo" {
		t.Fatalf("String() = %q, want %q", got, "one\ntwo")
	}
}

func TestStringLiteralBlockKeepTrailingBlanks(t *testing.T) {
	n := scalarOf(parser.StyleLiteral, parser.ChompKeep, "one", "two", "", "")
	if got := n.String(); got != "one\ntwo\n\n\n" {
		t.Fatalf("String() = %q, want %q", got, "one\ntwo\n\n\n")
	}
}

func TestStringFoldedBlockJoinsInternalLines(t *testing.T) {
	n := scalarOf(parser.StyleFolded, parser.ChompClip, "one", "two", "", "three")
	if got := n.String(); got != "one two\nthree\n" {
		t.Fatalf("String() = %q, want %q", got, "one two\nthree\n")
	}
}

func TestBoolConversion(t *testing.T) {
	cases := map[string]bool{"true": true, "Yes": true, "false": false, "NO": false}
	for in, want := range cases {
		n := scalarOf(parser.StyleNone, parser.ChompStrip, in)
		if got := n.Bool(!want); got != want {
			t.Fatalf("%q: Bool() = %v, want %v", in, got, want)
		}
	}
	empty := scalarOf(parser.StyleNone, parser.ChompStrip)
	if got := empty.Bool(true); got != true {
		t.Fatalf("empty scalar Bool(true) = %v, want true (default)", got)
	}
}

func TestIntConversionBases(t *testing.T) {
	cases := map[string]int64{"42": 42, "0x2a": 42, "052": 42, "-7": -7}
	for in, want := range cases {
		n := scalarOf(parser.StyleNone, parser.ChompStrip, in)
		if got := n.Int(-1); got != want {
			t.Fatalf("%q: Int() = %d, want %d", in, got, want)
		}
	}
}

func TestIntConversionFallsBackToDefault(t *testing.T) {
	n := scalarOf(parser.StyleNone, parser.ChompStrip, "not a number")
	if got := n.Int(99); got != 99 {
		t.Fatalf("Int() = %d, want 99 (default)", got)
	}
}

func TestUintConversionAcceptsNegativeTwosComplement(t *testing.T) {
	n := scalarOf(parser.StyleNone, parser.ChompStrip, "-1")
	if got := n.Uint(0); got != uint64(^uint64(0)) {
		t.Fatalf("Uint() = %d, want max uint64", got)
	}
}

func TestFloatConversion(t *testing.T) {
	n := scalarOf(parser.StyleNone, parser.ChompStrip, "3.5")
	if got := n.Float(0); got != 3.5 {
		t.Fatalf("Float() = %v, want 3.5", got)
	}
}

func TestStrConversionDefaultsOnBlank(t *testing.T) {
	n := scalarOf(parser.StyleNone, parser.ChompStrip, "   ")
	if got := n.Str("fallback"); got != "fallback" {
		t.Fatalf("Str() = %q, want %q", got, "fallback")
	}
}

func TestConversionsOnNonScalarNodeReturnDefault(t *testing.T) {
	n := newObjectNode()
	if got := n.Int(7); got != 7 {
		t.Fatalf("Int() on object = %d, want 7", got)
	}
	if got := n.Bool(true); got != true {
		t.Fatalf("Bool() on object = %v, want true", got)
	}
}
