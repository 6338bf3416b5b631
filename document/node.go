// Package document models the loosely structured metadata returned by the live
// platform API as a tree of mappings, sequences and scalars.
//
// Nothing here knows about streams. Accessors never fail: a missing key or a
// node of the wrong shape yields nil, and every method is safe on a nil *Node,
// so callers can chain lookups through parts of the tree that may not exist.
package document

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Kind tags the variant held by a Node.
type Kind uint8

const (
	Scalar Kind = iota
	Mapping
	Sequence
)

func (k Kind) String() string {
	switch k {
	case Mapping:
		return "mapping"
	case Sequence:
		return "sequence"
	default:
		return "scalar"
	}
}

// Pair is a single key/value entry of a mapping.
type Pair struct {
	Key   string
	Value *Node
}

// Node is one element of the document tree. Mappings keep the key order of
// the source document.
type Node struct {
	kind  Kind
	pairs []Pair
	items []*Node
	value any
}

// NewMapping builds a mapping node from ordered pairs.
func NewMapping(pairs ...Pair) *Node {
	return &Node{kind: Mapping, pairs: pairs}
}

// NewSequence builds a sequence node.
func NewSequence(items ...*Node) *Node {
	return &Node{kind: Sequence, items: items}
}

// NewScalar wraps a decoded JSON scalar: string, json.Number, float64, bool or nil.
func NewScalar(value any) *Node {
	return &Node{kind: Scalar, value: value}
}

// Kind reports the variant of n. A nil node is an empty scalar.
func (n *Node) Kind() Kind {
	if n == nil {
		return Scalar
	}
	return n.kind
}

// IsContainer reports whether n is a mapping or a sequence.
func (n *Node) IsContainer() bool {
	return n != nil && (n.kind == Mapping || n.kind == Sequence)
}

// Pairs returns the entries of a mapping, or nil for any other node.
func (n *Node) Pairs() []Pair {
	if n == nil || n.kind != Mapping {
		return nil
	}
	return n.pairs
}

// Items returns the elements of a sequence, or nil for any other node.
func (n *Node) Items() []*Node {
	if n == nil || n.kind != Sequence {
		return nil
	}
	return n.items
}

// Len returns the number of pairs or items held by a container.
func (n *Node) Len() int {
	switch n.Kind() {
	case Mapping:
		return len(n.pairs)
	case Sequence:
		return len(n.items)
	default:
		return 0
	}
}

// Get returns the value stored under the first of names present in the
// mapping. Several names cover the spellings the API uses for one field
// (current_qn and currentQn).
func (n *Node) Get(names ...string) *Node {
	if n == nil || n.kind != Mapping {
		return nil
	}
	for _, name := range names {
		for _, p := range n.pairs {
			if p.Key == name {
				return p.Value
			}
		}
	}
	return nil
}

// Dig follows a path of mapping keys. Each segment may list alternative
// spellings separated by "|".
func (n *Node) Dig(path ...string) *Node {
	current := n
	for _, segment := range path {
		current = current.Get(strings.Split(segment, "|")...)
		if current == nil {
			return nil
		}
	}
	return current
}

// Raw returns the scalar value, or nil for containers.
func (n *Node) Raw() any {
	if n == nil || n.kind != Scalar {
		return nil
	}
	return n.value
}

// String returns the scalar string value. Numbers are not converted.
func (n *Node) String() (string, bool) {
	s, ok := n.Raw().(string)
	return s, ok
}

// Int returns the value as an integer. JSON numbers without a fractional part
// and numeric strings qualify.
func (n *Node) Int() (int64, bool) {
	switch value := n.Raw().(type) {
	case json.Number:
		if i, err := value.Int64(); err == nil {
			return i, true
		}
		f, err := value.Float64()
		if err != nil {
			return 0, false
		}
		return wholeFloat(f)
	case float64:
		return wholeFloat(value)
	case int:
		return int64(value), true
	case int64:
		return value, true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}

func wholeFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}
