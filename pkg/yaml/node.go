package yaml

import "github.com/shapestone/yamlsax/internal/parser"

// Kind identifies which variant of the tagged union a Node holds.
type Kind int

const (
	// Null is the zero Kind: an absent or explicitly null value.
	Null Kind = iota
	Scalar
	Object
	Sequence
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Object:
		return "object"
	case Sequence:
		return "sequence"
	default:
		return "null"
	}
}

// Node is a single value in a parsed YAML document: null, a scalar, an
// object, or a sequence. It is a tagged union rather than a set of
// interface implementations with a back-pointer to an "overlying node" —
// there is only ever one concrete type, so a caller holding a *Node always
// already holds the thing the spec calls the overlying node.
//
// A Node owns its children exclusively; there is no sharing and no cycles.
// Scalar fragments are copied out of the input buffer when they are
// appended, so a Node stays valid after the byte slice it was built from
// is modified or released.
type Node struct {
	kind Kind

	fragments [][]byte
	style     parser.BlockStyle
	chomp     parser.Chomping

	keys   []string
	values map[string]*Node

	items []*Node
}

func newScalarNode(style parser.BlockStyle, chomp parser.Chomping) *Node {
	return &Node{kind: Scalar, style: style, chomp: chomp}
}

func newObjectNode() *Node {
	return &Node{kind: Object, values: make(map[string]*Node)}
}

func newSequenceNode() *Node {
	return &Node{kind: Sequence}
}

// Kind reports which variant n holds.
func (n *Node) Kind() Kind {
	if n == nil {
		return Null
	}
	return n.kind
}

func (n *Node) IsNull() bool     { return n.Kind() == Null }
func (n *Node) IsScalar() bool   { return n.Kind() == Scalar }
func (n *Node) IsObject() bool   { return n.Kind() == Object }
func (n *Node) IsSequence() bool { return n.Kind() == Sequence }

// Keys returns an object node's keys in insertion order, or nil for any
// other kind.
func (n *Node) Keys() []string {
	if n == nil || n.kind != Object {
		return nil
	}
	return n.keys
}

// Get returns an object node's child under key, or nil if absent or n is
// not an object.
func (n *Node) Get(key string) *Node {
	if n == nil || n.kind != Object {
		return nil
	}
	return n.values[key]
}

// Len returns the number of entries in an object or elements in a
// sequence; 0 for scalar and null.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.kind {
	case Object:
		return len(n.keys)
	case Sequence:
		return len(n.items)
	default:
		return 0
	}
}

// Items returns a sequence node's elements in order, or nil for any other
// kind.
func (n *Node) Items() []*Node {
	if n == nil || n.kind != Sequence {
		return nil
	}
	return n.items
}

// Style reports a scalar node's block style; StyleNone for any other kind.
func (n *Node) Style() parser.BlockStyle {
	if n == nil || n.kind != Scalar {
		return parser.StyleNone
	}
	return n.style
}

func (n *Node) setKey(key string, child *Node) {
	if _, exists := n.values[key]; !exists {
		n.keys = append(n.keys, key)
	}
	n.values[key] = child
}

func (n *Node) appendItem(child *Node) {
	n.items = append(n.items, child)
}

func (n *Node) appendFragment(b []byte) {
	frag := make([]byte, len(b))
	copy(frag, b)
	n.fragments = append(n.fragments, frag)
}
