package document

import (
	"regexp"

	"github.com/livelink-cli/livelink/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Predicate decides whether a string value found under a wanted key is acceptable.
type Predicate func(string) bool

var absoluteHTTP = regexp.MustCompile(`^https?://`)

// IsAbsoluteHTTP reports whether s starts with http:// or https://.
func IsAbsoluteHTTP(s string) bool {
	return absoluteHTTP.MatchString(s)
}

// Search walks every mapping reachable from root and returns the first string
// stored under one of keys that satisfies match.
//
// The walk uses an explicit stack: the pairs of a mapping are checked in
// document order before any of its children is visited, and children pushed
// later are visited first. Sequence elements are pushed without matching
// their indices. For a given tree the result is always the same.
func Search(root *Node, keys []string, match Predicate) mo.Option[string] {
	if root == nil || len(keys) == 0 {
		return mo.None[string]()
	}

	var stack util.Stack[*Node]
	stack.Push(root)

	for stack.Len() > 0 {
		current := stack.Pop()

		switch current.Kind() {
		case Sequence:
			stack.Push(lo.Filter(current.Items(), func(item *Node, _ int) bool {
				return item.IsContainer()
			})...)
		case Mapping:
			for _, pair := range current.Pairs() {
				if lo.Contains(keys, pair.Key) {
					if s, ok := pair.Value.String(); ok && (match == nil || match(s)) {
						return mo.Some(s)
					}
				}

				if pair.Value.IsContainer() {
					stack.Push(pair.Value)
				}
			}
		}
	}

	return mo.None[string]()
}

// FindURL searches for an absolute http(s) URL stored under one of keys.
func FindURL(root *Node, keys ...string) mo.Option[string] {
	return Search(root, keys, IsAbsoluteHTTP)
}
