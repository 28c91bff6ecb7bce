package yaml

import (
	"strconv"
	"strings"

	"github.com/shapestone/yamlsax/internal/parser"
)

// String materialises a scalar node's fragments into a single string per
// its block style and chomping mode. Non-scalar nodes (including null)
// yield "".
func (n *Node) String() string {
	if n == nil || n.kind != Scalar {
		return ""
	}
	switch n.style {
	case parser.StyleLiteral:
		return materializeBlock(n.fragments, n.chomp, false)
	case parser.StyleFolded:
		return materializeBlock(n.fragments, n.chomp, true)
	default:
		return joinRuns(trimBlankEdges(n.fragments))
	}
}

// trimBlankEdges drops leading and trailing empty fragments.
func trimBlankEdges(fragments [][]byte) [][]byte {
	start, end := 0, len(fragments)
	for start < end && len(fragments[start]) == 0 {
		start++
	}
	for end > start && len(fragments[end-1]) == 0 {
		end--
	}
	return fragments[start:end]
}

// joinRuns joins consecutive non-empty fragments with a space, and emits
// one "\n" per blank fragment that separates two runs — a run of N blank
// lines between content becomes N newlines in the materialised string.
func joinRuns(fragments [][]byte) string {
	var b strings.Builder
	n := len(fragments)
	i := 0
	leading := 0
	for i < n && len(fragments[i]) == 0 {
		leading++
		i++
	}
	b.WriteString(strings.Repeat("\n", leading))

	for i < n {
		runStart := i
		for i < n && len(fragments[i]) > 0 {
			i++
		}
		writeJoinedRun(&b, fragments[runStart:i])

		blanks := 0
		for i < n && len(fragments[i]) == 0 {
			blanks++
			i++
		}
		if i < n {
			b.WriteString(strings.Repeat("\n", blanks))
		}
	}
	return b.String()
}

func writeJoinedRun(b *strings.Builder, run [][]byte) {
	for i, frag := range run {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.Write(frag)
	}
}

// materializeBlock implements the literal/folded join: all lines joined by
// "\n" (or folded, where a run of non-blank lines collapses its internal
// newlines to spaces), then the trailing-newline count is rewritten per
// chomp.
func materializeBlock(fragments [][]byte, chomp parser.Chomping, folded bool) string {
	trailing := 0
	for trailing < len(fragments) && len(fragments[len(fragments)-1-trailing]) == 0 {
		trailing++
	}
	content := fragments[:len(fragments)-trailing]

	var body string
	if folded {
		body = joinRuns(content)
	} else {
		body = strings.Join(fragmentsToStrings(content), "\n")
	}

	switch chomp {
	case parser.ChompStrip:
		return body
	case parser.ChompKeep:
		if len(content) == 0 {
			return strings.Repeat("\n", trailing)
		}
		return body + strings.Repeat("\n", trailing+1)
	default: // ChompClip
		if len(content) == 0 {
			return ""
		}
		return body + "\n"
	}
}

func fragmentsToStrings(fragments [][]byte) []string {
	out := make([]string, len(fragments))
	for i, f := range fragments {
		out[i] = string(f)
	}
	return out
}

// nullTokens are the plain-scalar spellings the DOM builder recognises as
// YAML null, per the source's documented (if under-specified) test
// behaviour — see the Open Question on null-like tokens in DESIGN.md.
var nullTokens = map[string]bool{
	"null": true, "Null": true, "NULL": true, "~": true,
}

var trueTokens = map[string]bool{
	"true": true, "True": true, "TRUE": true,
	"yes": true, "Yes": true, "YES": true,
}

var falseTokens = map[string]bool{
	"false": true, "False": true, "FALSE": true,
	"no": true, "No": true, "NO": true,
}

// Bool converts a scalar to bool per the recognised true/false spellings,
// returning def for anything else (including non-scalar nodes).
func (n *Node) Bool(def bool) bool {
	s := strings.TrimSpace(n.String())
	if s == "" {
		return def
	}
	if trueTokens[s] {
		return true
	}
	if falseTokens[s] {
		return false
	}
	return def
}

// base returns the numeric base implied by s's prefix (0x → 16, leading 0
// on a longer literal → 8, otherwise 10), and the literal to parse in that
// base: a hex prefix is stripped (any sign is kept), while octal and
// decimal literals are returned unchanged.
func base(s string) (int, string) {
	sign := ""
	unsigned := s
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, unsigned = s[:1], s[1:]
	}
	switch {
	case strings.HasPrefix(unsigned, "0x") || strings.HasPrefix(unsigned, "0X"):
		digits := unsigned[2:]
		if digits == "" || digits[0] == '-' || digits[0] == '+' {
			return 16, s
		}
		return 16, sign + digits
	case len(unsigned) > 1 && unsigned[0] == '0':
		return 8, s
	default:
		return 10, s
	}
}

// Int converts a scalar to int64, accepting base-10 by default, 0x/0X for
// hex, and a leading 0 for octal, per §4.4. Returns def on empty input,
// overflow, or a non-scalar node.
func (n *Node) Int(def int64) int64 {
	s := strings.TrimSpace(n.String())
	if s == "" {
		return def
	}
	b, literal := base(s)
	v, err := strconv.ParseInt(literal, b, 64)
	if err != nil {
		return def
	}
	return v
}

// Uint converts a scalar to uint64. A negative literal that fits the
// two's-complement bit pattern for a signed read of the same width (e.g.
// "-1") is accepted, per §4.4's stated convention.
func (n *Node) Uint(def uint64) uint64 {
	s := strings.TrimSpace(n.String())
	if s == "" {
		return def
	}
	b, literal := base(s)
	if strings.HasPrefix(literal, "-") {
		iv, err := strconv.ParseInt(literal, b, 64)
		if err != nil {
			return def
		}
		return uint64(iv)
	}
	v, err := strconv.ParseUint(literal, b, 64)
	if err != nil {
		return def
	}
	return v
}

// Float converts a scalar to float64 using standard decimal/exponent
// notation. Returns def on empty input, out-of-range values, or a
// non-scalar node.
func (n *Node) Float(def float64) float64 {
	s := strings.TrimSpace(n.String())
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

// tryInt and tryFloat back scalarToInterface's type-guessing in
// unmarshal.go: unlike Int/Float they report success/failure rather than
// falling back to a caller-supplied default.
func tryInt(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	b, literal := base(s)
	v, err := strconv.ParseInt(literal, b, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func tryFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Str returns the scalar's materialised string, or def if the node is
// empty/whitespace-only or not a scalar.
func (n *Node) Str(def string) string {
	s := n.String()
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
