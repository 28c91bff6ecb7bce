package yaml

import "github.com/shapestone/yamlsax/internal/parser"

// builder is the DOM handler: it maintains a stack of open containers and
// a pending key, and reassembles parser events into a Node tree. It
// implements the individual capability interfaces in internal/parser's
// sink.go, not the full parser.Handler — it has no use for Comment.
type builder struct {
	root       *Node
	stack      []*Node
	pendingKey []string
}

func newBuilder() *builder {
	return &builder{}
}

// attach places child at the current position: under the pending key of
// the current container if one is open, as the next sequence element, or
// as the document root if nothing is open yet.
func (b *builder) attach(child *Node) {
	if len(b.stack) == 0 {
		b.root = child
		return
	}
	top := b.stack[len(b.stack)-1]
	switch top.kind {
	case Object:
		key := b.pendingKey[len(b.pendingKey)-1]
		b.pendingKey = b.pendingKey[:len(b.pendingKey)-1]
		top.setKey(key, child)
	case Sequence:
		top.appendItem(child)
	}
}

func (b *builder) Null() {
	b.attach(&Node{kind: Null})
}

func (b *builder) StartScalar(style parser.BlockStyle, chomp parser.Chomping) {
	n := newScalarNode(style, chomp)
	b.attach(n)
	b.stack = append(b.stack, n)
}

func (b *builder) String(value []byte) {
	if len(b.stack) == 0 {
		return
	}
	b.stack[len(b.stack)-1].appendFragment(value)
}

func (b *builder) EndScalar() {
	n := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	if n.style == parser.StyleNone && len(n.fragments) == 1 && nullTokens[string(n.fragments[0])] {
		n.kind = Null
		n.fragments = nil
		n.style = parser.StyleNone
	}
}

func (b *builder) StartObject() {
	n := newObjectNode()
	b.attach(n)
	b.stack = append(b.stack, n)
}

func (b *builder) Key(value []byte) {
	b.pendingKey = append(b.pendingKey, string(value))
}

func (b *builder) EndObject() {
	b.stack = b.stack[:len(b.stack)-1]
}

func (b *builder) StartArray() {
	n := newSequenceNode()
	b.attach(n)
	b.stack = append(b.stack, n)
}

func (b *builder) EndArray() {
	b.stack = b.stack[:len(b.stack)-1]
}
