package parser

import "github.com/shapestone/yamlsax/internal/scanner"

// execFindValue enters the first non-whitespace token of a prospective
// value. By the time it returns, the current frame has been promoted to
// scalar, scalar_block, object, or sequence — or, on a blank line, left
// unknown (to be reported as null when it is eventually popped).
func (p *Parser) execFindValue() {
	p.cur.ClearFreshLine()
	data := p.cur.Data()
	tokenStart := p.cur.Pos()
	tokenEnd := p.cur.Pos()

	onFoundScalarEnd := func() {
		if tokenEnd == tokenStart {
			return
		}
		top := &p.stack[len(p.stack)-1]
		top.kind = kindScalar
		top.state = stateReadScalar
		p.signalStartScalar(StyleNone, ChompStrip)
		p.signalString(data[tokenStart:tokenEnd])
	}

	onScalarBlockToken := func(style BlockStyle) {
		chomp := ChompClip
		if b, ok := p.cur.Byte(); ok {
			switch b {
			case ' ', '\t', '\r', '\n':
			case '-', '+':
				p.cur.Advance(1)
				if vb, vok := p.cur.Byte(); vok && !scanner.IsSpaceOrTab(vb) && !scanner.IsLineBreak(vb) {
					p.fail(ErrExpectedLineBreak)
					return
				}
				if b == '-' {
					chomp = ChompStrip
				} else {
					chomp = ChompKeep
				}
			default:
				p.fail(ErrExpectedLineBreak)
				return
			}
		}

		if !p.cur.ConsumeOnlyWhitespaceUntilNewlineOrComment() {
			p.fail(ErrExpectedLineBreak)
			return
		}

		top := &p.stack[len(p.stack)-1]
		top.kind = kindScalarBlock
		top.state = stateReadScalarBlock
		p.signalStartScalar(style, chomp)
	}

	// onObjectToken handles a ':' found at tokenEnd (just consumed). It
	// reports whether the ':' was recognised as a mapping indicator; if
	// not, the caller keeps scanning with ':' as ordinary scalar text.
	onObjectToken := func() bool {
		processNewObject := func() {
			if tokenStart != p.cur.IndentPos() {
				p.fail(ErrUnexpectedKey)
				return
			}
			top := &p.stack[len(p.stack)-1]
			top.kind = kindObject
			top.indent = p.cur.Indent()
			top.state = stateReadKey
			p.signalStartObject()
			p.signalKey(data[tokenStart:tokenEnd])
			p.pushStack(stateFindValue)
		}

		b, ok := p.cur.Byte()
		if !ok || scanner.IsSpaceOrTab(b) {
			processNewObject()
			return true
		}
		if scanner.IsLineBreak(b) {
			processNewObject()
			p.cur.Advance(1)
			p.cur.RegisterNewline()
			return true
		}
		return false
	}

	// onArrayToken handles a '-' found as the very first byte of this
	// line's content. Like onObjectToken it reports whether the '-' was
	// recognised as a sequence item marker.
	onArrayToken := func() bool {
		if tokenStart != p.cur.IndentPos() {
			return false
		}
		b, ok := p.cur.Byte()
		if !ok || scanner.IsSpaceOrTab(b) {
			p.startSequenceItem()
			return true
		}
		if scanner.IsLineBreak(b) {
			p.startSequenceItem()
			p.cur.Advance(1)
			p.cur.RegisterNewline()
			return true
		}
		return false
	}

	first, ok := p.cur.Byte()
	if !ok {
		onFoundScalarEnd()
		return
	}
	p.cur.Advance(1)

	switch first {
	case '\r', '\n':
		p.cur.RegisterNewline()
		return
	case '#':
		p.signalComment(p.cur.ReadCommentUntilNewline())
		return
	case ':':
		if onObjectToken() {
			return
		}
		tokenEnd = p.cur.Pos()
	case '-':
		if onArrayToken() {
			return
		}
		tokenEnd = p.cur.Pos()
	case '>':
		onScalarBlockToken(StyleFolded)
		return
	case '|':
		onScalarBlockToken(StyleLiteral)
		return
	default:
		tokenEnd = p.cur.Pos()
	}

	for {
		b, ok := p.cur.Byte()
		if !ok {
			break
		}
		p.cur.Advance(1)
		switch b {
		case ' ', '\t':
		case '#':
			if p.cur.IsPrevWhitespace(2) {
				onFoundScalarEnd()
				p.popStackIfNotRoot()
				p.signalComment(p.cur.ReadCommentUntilNewline())
				return
			}
		case '\r', '\n':
			onFoundScalarEnd()
			p.cur.RegisterNewline()
			return
		case ':':
			if onObjectToken() {
				return
			}
			tokenEnd = p.cur.Pos()
		default:
			tokenEnd = p.cur.Pos()
		}
	}

	onFoundScalarEnd()
}

// startSequenceItem promotes the current frame to a sequence and pushes a
// child find_value frame for the first element's value. Unlike an object
// key, a sequence item marker carries no payload of its own to signal.
func (p *Parser) startSequenceItem() {
	top := &p.stack[len(p.stack)-1]
	top.kind = kindSequence
	top.indent = p.cur.Indent()
	top.state = stateReadItem
	p.signalStartArray()
	p.pushStack(stateFindValue)
}

// execReadScalar continues a plain (none-style) scalar across subsequent
// lines that the dedent arbiter left open, i.e. lines indented at least as
// deep as this frame's indent. A blank line carries no bytes of its own (tokenStart == tokenEnd);
// rather than signal it immediately, it is tallied on the frame as a
// pending blank run. The run is only flushed — as that many empty string
// events, immediately ahead of the resuming content — once a later line on
// this same scalar turns out to have content after all. A run still
// pending when the scalar ends (comment, dedent, or EOF) was trailing
// whitespace, not an interior gap, and is simply discarded.
func (p *Parser) execReadScalar() {
	data := p.cur.Data()
	tokenStart := p.cur.Pos()
	tokenEnd := p.cur.Pos()
	top := &p.stack[len(p.stack)-1]

	emitOrHold := func() {
		if tokenEnd == tokenStart {
			top.blankRun++
			return
		}
		for ; top.blankRun > 0; top.blankRun-- {
			p.signalString(data[tokenStart:tokenStart])
		}
		p.signalString(data[tokenStart:tokenEnd])
	}

	for {
		b, ok := p.cur.Byte()
		if !ok {
			break
		}
		p.cur.Advance(1)
		switch b {
		case ' ', '\t':
		case '#':
			if p.cur.IsPrevWhitespace(2) {
				emitOrHold()
				p.popStack()
				p.cur.Advance(-1)
				return
			}
		case '\r':
			p.cur.RegisterNewline()
			emitOrHold()
			return
		case '\n':
			p.cur.RegisterNewline()
			emitOrHold()
			return
		case ':':
			nb, nok := p.cur.Byte()
			if !nok || scanner.IsSpaceOrTab(nb) || nb == '\r' {
				p.fail(ErrUnexpectedKey)
				return
			}
			tokenEnd = p.cur.Pos()
		default:
			tokenEnd = p.cur.Pos()
		}
	}

	emitOrHold()
}

// execReadScalarBlock emits every line of a literal/folded block as a
// verbatim string event, preserving left-padding beyond the block's
// anchor indentation (taken from the first non-empty content line).
func (p *Parser) execReadScalarBlock() {
	lineIndent := p.cur.Indent()
	data := p.cur.Data()
	tokenStart := p.cur.Pos()
	tokenEnd := p.cur.Pos()

	for {
		b, ok := p.cur.Byte()
		if !ok {
			break
		}
		p.cur.Advance(1)
		if scanner.IsLineBreak(b) {
			p.cur.RegisterNewline()
			break
		}
		tokenEnd = p.cur.Pos()
	}

	top := &p.stack[len(p.stack)-1]
	length := tokenEnd - tokenStart
	switch {
	case top.processedLines == 0 && length != 0:
		top.processedLines++
		top.indent = lineIndent
	case top.processedLines > 0:
		top.processedLines++
	}

	leftPad := lineIndent - top.indent
	if leftPad < 0 {
		leftPad = 0
	}
	p.signalString(data[tokenStart-leftPad : tokenEnd])
}

// execReadKey runs for an object frame's second and later keys: it
// expects either a comment starting the line, or `key:` / `key: `.
func (p *Parser) execReadKey() {
	data := p.cur.Data()

	if b, ok := p.cur.Byte(); ok && b == '#' {
		p.cur.Advance(1)
		p.signalComment(p.cur.ReadCommentUntilNewline())
		return
	}

	tokenStart := p.cur.Pos()
	tokenEnd := p.cur.Pos()
	found := false

	for !found {
		b, ok := p.cur.Byte()
		if !ok {
			p.fail(ErrExpectedKey)
			return
		}
		p.cur.Advance(1)
		switch b {
		case ' ', '\t':
		case '#':
			if p.cur.IsPrevWhitespace(2) {
				p.fail(ErrExpectedKey)
				return
			}
		case '\r', '\n':
			if tokenEnd != tokenStart {
				p.fail(ErrExpectedKey)
				return
			}
			p.cur.RegisterNewline()
			return
		case ':':
			nb, nok := p.cur.Byte()
			if !nok || scanner.IsSpaceOrTab(nb) {
				found = true
			} else if scanner.IsLineBreak(nb) {
				p.cur.Advance(1)
				p.cur.RegisterNewline()
				found = true
			} else {
				tokenEnd = p.cur.Pos()
			}
		default:
			tokenEnd = p.cur.Pos()
		}
	}

	p.signalKey(data[tokenStart:tokenEnd])
	p.pushStack(stateFindValue)
}

// execReadItem runs for a sequence frame's second and later elements: it
// expects either a comment starting the line, or a `-` item marker.
func (p *Parser) execReadItem() {
	if b, ok := p.cur.Byte(); ok && b == '#' {
		p.cur.Advance(1)
		p.signalComment(p.cur.ReadCommentUntilNewline())
		return
	}

	b, ok := p.cur.Byte()
	if !ok || b != '-' {
		p.fail(ErrExpectedKey)
		return
	}
	p.cur.Advance(1)

	nb, nok := p.cur.Byte()
	switch {
	case !nok || scanner.IsSpaceOrTab(nb):
		p.pushStack(stateFindValue)
	case scanner.IsLineBreak(nb):
		p.cur.Advance(1)
		p.cur.RegisterNewline()
		p.pushStack(stateFindValue)
	default:
		p.fail(ErrExpectedKey)
	}
}
