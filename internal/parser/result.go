package parser

// ResultCode classifies how a parse finished.
type ResultCode int

const (
	// Success means the parser drained its stack and reached the end of
	// input (or a document-end marker) without error.
	Success ResultCode = iota
	// ErrStackMaxDepth means the frame stack grew past the configured
	// MaxDepth.
	ErrStackMaxDepth
	// ErrNotImplemented is reserved for forward compatibility; nothing in
	// this parser emits it.
	ErrNotImplemented
	// ErrForbiddenTabIndentation means a tab byte appeared in the
	// indentation region of a line.
	ErrForbiddenTabIndentation
	// ErrBadIndentation means a line's indentation, after dedenting,
	// matched no open frame.
	ErrBadIndentation
	// ErrExpectedLineBreak means a scalar-block header ('|' or '>', plus
	// an optional chomping indicator) was followed by something other
	// than whitespace, a comment, or end of line.
	ErrExpectedLineBreak
	// ErrExpectedKey means an object frame expected `key:` but the line
	// contained neither a comment nor a valid key.
	ErrExpectedKey
	// ErrUnexpectedKey means a ':' mapping indicator appeared somewhere
	// it isn't legal — outside the line's indentation column, or inside
	// a plain scalar continuation.
	ErrUnexpectedKey
	// ErrUnexpectedToken means non-whitespace, non-comment input remained
	// after the frame stack was fully drained.
	ErrUnexpectedToken
)

func (r ResultCode) String() string {
	switch r {
	case Success:
		return "success"
	case ErrStackMaxDepth:
		return "reached_stack_max_depth"
	case ErrNotImplemented:
		return "not_implemented"
	case ErrForbiddenTabIndentation:
		return "forbidden_tab_indentation"
	case ErrBadIndentation:
		return "bad_indentation"
	case ErrExpectedLineBreak:
		return "expected_line_break"
	case ErrExpectedKey:
		return "expected_key"
	case ErrUnexpectedKey:
		return "unexpected_key"
	case ErrUnexpectedToken:
		return "unexpected_token"
	default:
		return "unknown_result_code"
	}
}

// Result is what a parse reports back to its caller.
type Result struct {
	Code ResultCode
	// Remaining is the unconsumed tail of the input; empty on a clean
	// success that reached EOF.
	Remaining []byte
	// Line is the zero-based line index at which parsing stopped.
	Line int
	// LineOffset is the byte offset of the start of Line within the
	// original input.
	LineOffset int
}
