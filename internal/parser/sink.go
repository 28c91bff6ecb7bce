package parser

// BlockStyle records how a scalar spans multiple lines.
type BlockStyle int

const (
	// StyleNone is a plain (unquoted, unblocked) scalar.
	StyleNone BlockStyle = iota
	// StyleLiteral is a '|' block: newlines are preserved verbatim.
	StyleLiteral
	// StyleFolded is a '>' block: newlines between non-blank lines fold
	// into spaces.
	StyleFolded
)

func (s BlockStyle) String() string {
	switch s {
	case StyleLiteral:
		return "literal"
	case StyleFolded:
		return "folded"
	default:
		return "none"
	}
}

// Chomping records the trailing-newline policy of a block scalar.
type Chomping int

const (
	// ChompClip keeps a single trailing newline (the YAML default).
	ChompClip Chomping = iota
	// ChompStrip removes all trailing newlines.
	ChompStrip
	// ChompKeep preserves every trailing newline.
	ChompKeep
)

func (c Chomping) String() string {
	switch c {
	case ChompStrip:
		return "strip"
	case ChompKeep:
		return "keep"
	default:
		return "clip"
	}
}

// Handler is the full event sink a parse may report to. A caller need not
// implement every method: the parser only ever asks "does this value
// implement interface X" before calling hook X, so a handler exposing a
// subset of these methods (by embedding BaseHandler and overriding a few,
// or simply declaring only the ones it wants) works exactly as if the
// missing hooks were no-ops. This mirrors capability detection in
// languages with compile-time duck typing; Go expresses the same idea
// with a family of single-method interfaces checked via type assertion.
type Handler interface {
	Null()
	StartScalar(style BlockStyle, chomp Chomping)
	EndScalar()
	StartObject()
	EndObject()
	StartArray()
	EndArray()
	String(value []byte)
	Key(value []byte)
	Comment(value []byte)
}

// The individual capability interfaces below are what the parser actually
// probes for at each signalling site. Any value — including one that
// implements only a few of these — can be passed as a handler.
type (
	nullSink        interface{ Null() }
	startScalarSink interface {
		StartScalar(style BlockStyle, chomp Chomping)
	}
	endScalarSink  interface{ EndScalar() }
	startObjSink   interface{ StartObject() }
	endObjSink     interface{ EndObject() }
	startArraySink interface{ StartArray() }
	endArraySink   interface{ EndArray() }
	stringSink     interface{ String(value []byte) }
	keySink        interface{ Key(value []byte) }
	commentSink    interface{ Comment(value []byte) }
)

// BaseHandler implements every Handler method as a no-op. Embed it in a
// handler type to pick up defaults for events you don't care about.
type BaseHandler struct{}

func (BaseHandler) Null()                                  {}
func (BaseHandler) StartScalar(style BlockStyle, c Chomping) {}
func (BaseHandler) EndScalar()                              {}
func (BaseHandler) StartObject()                            {}
func (BaseHandler) EndObject()                              {}
func (BaseHandler) StartArray()                             {}
func (BaseHandler) EndArray()                               {}
func (BaseHandler) String(value []byte)                     {}
func (BaseHandler) Key(value []byte)                        {}
func (BaseHandler) Comment(value []byte)                    {}

func (p *Parser) signalNull() {
	if h, ok := p.handler.(nullSink); ok {
		h.Null()
	}
}

func (p *Parser) signalStartScalar(style BlockStyle, chomp Chomping) {
	if h, ok := p.handler.(startScalarSink); ok {
		h.StartScalar(style, chomp)
	}
}

func (p *Parser) signalEndScalar() {
	if h, ok := p.handler.(endScalarSink); ok {
		h.EndScalar()
	}
}

func (p *Parser) signalStartObject() {
	if h, ok := p.handler.(startObjSink); ok {
		h.StartObject()
	}
}

func (p *Parser) signalEndObject() {
	if h, ok := p.handler.(endObjSink); ok {
		h.EndObject()
	}
}

func (p *Parser) signalStartArray() {
	if h, ok := p.handler.(startArraySink); ok {
		h.StartArray()
	}
}

func (p *Parser) signalEndArray() {
	if h, ok := p.handler.(endArraySink); ok {
		h.EndArray()
	}
}

func (p *Parser) signalString(value []byte) {
	if h, ok := p.handler.(stringSink); ok {
		h.String(value)
	}
}

func (p *Parser) signalKey(value []byte) {
	if h, ok := p.handler.(keySink); ok {
		h.Key(value)
	}
}

func (p *Parser) signalComment(value []byte) {
	if h, ok := p.handler.(commentSink); ok {
		h.Comment(value)
	}
}
