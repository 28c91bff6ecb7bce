// Package parser implements the streaming (SAX-style) YAML reader: a
// single forward pass over a byte buffer that classifies content by
// column-accurate indentation, tracks a stack of open collections, and
// reports well-formed begin/end events to a caller-supplied Handler.
//
// The parser never backtracks, never materialises an intermediate line
// list, and allocates nothing beyond its frame stack — the DOM layer in
// package yaml is the only thing that turns events into owned memory.
package parser

import (
	"github.com/shapestone/yamlsax/internal/scanner"
)

type frameKind int

const (
	kindUnknown frameKind = iota
	kindScalar
	kindScalarBlock
	kindObject
	kindSequence
)

type frameState int

const (
	stateFindValue frameState = iota
	stateReadScalar
	stateReadScalarBlock
	stateReadKey
	stateReadItem
)

// frame is one entry of the parser's stack: one open container, or one
// scalar in progress.
type frame struct {
	state frameState
	kind  frameKind
	// indent is the dedent threshold for this frame: the column at which
	// it was opened (for object/sequence/scalar-block, once promoted) or
	// a provisional placeholder (parent.indent+1) while still unknown.
	indent int
	// processedLines anchors a scalar block's own indentation to its
	// first non-empty content line.
	processedLines int
	// blankRun counts blank lines seen since a plain scalar's last
	// non-blank line, held back until either more content arrives (they
	// are interior and get flushed as empty fragments) or the scalar
	// ends (they are trailing and are dropped).
	blankRun int
}

// Options configures a parse.
type Options struct {
	// MaxDepth bounds the frame stack. Zero means DefaultMaxDepth.
	MaxDepth int
}

// DefaultMaxDepth is used when Options.MaxDepth is zero.
const DefaultMaxDepth = 128

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// Parser drives one parse. It is not safe for concurrent or repeated use;
// construct a fresh Parser (or call Execute, which does so internally)
// per input.
type Parser struct {
	cur     *scanner.Cursor
	stack   []frame
	result  ResultCode
	handler interface{}
	opts    Options
}

// Execute runs a complete parse of data, reporting events to handler (see
// Handler and the individual sink interfaces in sink.go for what it may
// implement), and returns the outcome.
func Execute(data []byte, handler interface{}, opts Options) Result {
	p := &Parser{
		cur:     scanner.NewCursor(data),
		handler: handler,
		opts:    opts,
		result:  Success,
	}
	p.run()

	end := p.cur.Pos()
	if end > len(data) {
		end = len(data)
	}
	return Result{
		Code:       p.result,
		Remaining:  data[end:],
		Line:       p.cur.Line(),
		LineOffset: p.cur.LineStart(),
	}
}

func (p *Parser) fail(code ResultCode) { p.result = code }

func (p *Parser) run() {
	p.pushStack(stateFindValue)

	for p.result == Success && !p.cur.Eof() && len(p.stack) > 0 {
		if len(p.stack) > p.opts.maxDepth() {
			p.fail(ErrStackMaxDepth)
			return
		}

		if p.cur.AtFreshLine() {
			if !p.cur.ReadLineIndentation() {
				p.fail(ErrForbiddenTabIndentation)
				return
			}
			if !p.processNewlineIndentation() {
				if p.result == Success {
					p.popStackFrom(0)
				}
				return
			}
		} else {
			if !p.cur.ReadInlineGap() {
				p.fail(ErrForbiddenTabIndentation)
				return
			}
		}

		if len(p.stack) == 0 || p.result != Success || p.cur.Eof() {
			break
		}

		top := &p.stack[len(p.stack)-1]
		switch top.state {
		case stateFindValue:
			p.execFindValue()
		case stateReadScalar:
			p.execReadScalar()
		case stateReadScalarBlock:
			p.execReadScalarBlock()
		case stateReadKey:
			p.execReadKey()
		case stateReadItem:
			p.execReadItem()
		}
	}

	if p.result != Success {
		return
	}

	p.popStackFrom(0)
	p.readRemainingDocumentBuffer()
}

// currentIsNewlineOrComment reports whether the byte under the cursor
// starts a line break or a comment — i.e. this line, so far, has no
// content of its own.
func (p *Parser) currentIsNewlineOrComment() bool {
	b, ok := p.cur.Byte()
	return ok && (scanner.IsLineBreak(b) || b == '#')
}

// processZeroLineIndention recognises the `---` and `...` document
// markers at column 0. It returns false when the parse should stop (a
// valid `...`, or a valid `---` once the root has already been decided —
// both end the single document this parser reads), true otherwise.
func (p *Parser) processZeroLineIndention() bool {
	lineIndentPos := p.cur.IndentPos()
	b, ok := p.cur.Byte()
	if !ok {
		return true
	}

	switch b {
	case '-':
		if p.cur.MatchesAt(1, '-') && p.cur.MatchesAt(2, '-') {
			p.cur.Advance(3)
			if p.cur.ConsumeOnlyWhitespaceUntilNewlineOrComment() {
				if p.stack[0].kind == kindUnknown {
					return true
				}
				p.seekTo(lineIndentPos)
				return false
			}
			p.seekTo(lineIndentPos)
		}
	case '.':
		if p.cur.MatchesAt(1, '.') && p.cur.MatchesAt(2, '.') {
			p.cur.Advance(3)
			if p.cur.IsNextWhitespace(0) {
				p.seekTo(lineIndentPos)
				return false
			}
			p.seekTo(lineIndentPos)
		}
	}
	return true
}

// seekTo resets the cursor's read position without touching its line
// bookkeeping — used only to rewind a speculative document-marker lookahead
// back to the start of the line it was peeking from.
func (p *Parser) seekTo(pos int) { p.cur.Rewind(pos) }

// processNewlineIndentation runs the dedent arbiter: it pops every frame
// whose indent no longer accommodates the current line, and recognises
// document markers. It returns false when the driver loop should stop.
func (p *Parser) processNewlineIndentation() bool {
	if p.currentIsNewlineOrComment() {
		return true
	}
	if p.cur.Indent() == 0 && !p.cur.Eof() {
		if !p.processZeroLineIndention() {
			return false
		}
	}

	cut := -1
	for i := range p.stack {
		if p.stack[i].indent > p.cur.Indent() {
			cut = i
			break
		}
	}
	if cut < 0 {
		return true
	}

	p.popStackFrom(cut)

	if len(p.stack) > 0 {
		if back := p.stack[len(p.stack)-1].indent; p.cur.Indent() != back {
			p.fail(ErrBadIndentation)
			return false
		}
	}
	return true
}

func (p *Parser) readRemainingDocumentBuffer() {
	for {
		b, ok := p.cur.Byte()
		if !ok {
			return
		}
		p.cur.Advance(1)
		switch {
		case scanner.IsSpaceOrTab(b):
		case b == '#':
			p.signalComment(p.cur.ReadCommentUntilNewline())
		case scanner.IsLineBreak(b):
			p.cur.RegisterNewline()
			return
		default:
			p.fail(ErrUnexpectedToken)
			return
		}
	}
}

func (p *Parser) pushStack(state frameState) *frame {
	indent := 0
	if len(p.stack) > 0 {
		indent = p.stack[len(p.stack)-1].indent + 1
	}
	p.stack = append(p.stack, frame{state: state, indent: indent})
	return &p.stack[len(p.stack)-1]
}

func (p *Parser) popStack() {
	if len(p.stack) == 0 {
		return
	}
	p.signalStackItemPop(p.stack[len(p.stack)-1])
	p.stack = p.stack[:len(p.stack)-1]
}

func (p *Parser) popStackIfNotRoot() {
	if len(p.stack) < 2 {
		return
	}
	p.popStack()
}

// popStackFrom pops every frame at index i or above, signalling each
// frame's terminal event in LIFO (top-down) order.
func (p *Parser) popStackFrom(i int) {
	for j := len(p.stack) - 1; j >= i; j-- {
		p.signalStackItemPop(p.stack[j])
	}
	p.stack = p.stack[:i]
}

func (p *Parser) signalStackItemPop(f frame) {
	switch f.kind {
	case kindUnknown:
		p.signalNull()
	case kindScalar, kindScalarBlock:
		p.signalEndScalar()
	case kindObject:
		p.signalEndObject()
	case kindSequence:
		p.signalEndArray()
	}
}
