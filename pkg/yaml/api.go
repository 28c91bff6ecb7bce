// Package yaml provides a streaming (SAX-style) YAML reader and the DOM
// layer built on top of it.
//
// The streaming layer (internal/parser) is a single forward pass over a
// byte buffer: no backtracking, no intermediate line lists, and no
// allocation beyond a bounded frame stack. This package exposes that pass
// two ways:
//
//   - Parse / ParseReader drive the streaming parser against a
//     caller-supplied Handler, for callers who want events as they
//     happen and nothing more.
//   - ReadDocument drives the same parser against the package's own
//     handler, returning a materialised *Node tree.
//
// Supported grammar is YAML's block style: mappings, sequences, plain and
// block (literal/folded) scalars, comments, and the `---`/`...` document
// markers at column 0. Flow collections (`{...}`, `[...]`), anchors and
// aliases, explicit tags, and multi-document streams are out of scope.
//
// # Example
//
//	node, err := yaml.ReadDocument([]byte("name: Alice\nage: 30\n"))
//	if err != nil {
//	    // handle error
//	}
//	name := node.Get("name").Str("")
//	age := node.Get("age").Int(0)
package yaml

import (
	"io"

	"github.com/shapestone/yamlsax/internal/parser"
)

// Handler is the full event sink a Parse call may report to; see
// internal/parser.Handler for the capability-detection contract a partial
// implementation can rely on.
type Handler = parser.Handler

// BaseHandler implements every Handler method as a no-op, for embedding in
// handlers that only care about a few events.
type BaseHandler = parser.BaseHandler

// BlockStyle and Chomping are re-exported so callers implementing Handler
// don't need to import internal/parser directly.
type (
	BlockStyle = parser.BlockStyle
	Chomping   = parser.Chomping
)

const (
	StyleNone    = parser.StyleNone
	StyleLiteral = parser.StyleLiteral
	StyleFolded  = parser.StyleFolded
)

const (
	ChompClip  = parser.ChompClip
	ChompStrip = parser.ChompStrip
	ChompKeep  = parser.ChompKeep
)

// Option configures a parse. The only dimension exposed today is the
// frame-stack depth guard.
type Option func(*parser.Options)

// WithMaxDepth overrides the default frame-stack depth limit (128).
func WithMaxDepth(n int) Option {
	return func(o *parser.Options) { o.MaxDepth = n }
}

func buildOptions(opts []Option) parser.Options {
	var o parser.Options
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// Parse drives the streaming parser over data, reporting events to
// handler, and returns an error describing the first fault (if any).
//
// handler must satisfy the full Handler interface; embedding BaseHandler
// supplies no-op methods for the events a caller does not care about.
func Parse(data []byte, handler Handler, opts ...Option) error {
	r := parser.Execute(data, handler, buildOptions(opts))
	return errFromResult(r)
}

// ParseReader reads all of r's content before parsing it. Large or
// streaming sources should read into a buffer with a size limit of the
// caller's choosing first; this package does not impose one.
func ParseReader(r io.Reader, handler Handler, opts ...Option) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return Parse(data, handler, opts...)
}

// ReadDocument parses data into a DOM tree. On a non-success result the
// returned Node is the null node, per §6 of the format this package
// implements.
func ReadDocument(data []byte, opts ...Option) (*Node, error) {
	b := newBuilder()
	r := parser.Execute(data, b, buildOptions(opts))
	if err := errFromResult(r); err != nil {
		return &Node{kind: Null}, err
	}
	if b.root == nil {
		return &Node{kind: Null}, nil
	}
	return b.root, nil
}

// ReadDocumentReader is the io.Reader counterpart of ReadDocument.
func ReadDocumentReader(r io.Reader, opts ...Option) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return &Node{kind: Null}, err
	}
	return ReadDocument(data, opts...)
}

// Validate reports whether data is syntactically valid YAML (per this
// package's grammar) without retaining any parsed structure.
func Validate(data []byte) error {
	r := parser.Execute(data, parser.BaseHandler{}, parser.Options{})
	return errFromResult(r)
}
