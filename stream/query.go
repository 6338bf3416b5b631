package stream

import (
	"strings"
)

// Query parameter names carrying the quality tier in stream URLs.
const (
	ParamTier         = "qn"
	ParamExpectedTier = "expected_qn"
)

type queryParam struct {
	key      string
	value    string
	hasValue bool
}

// Query is an ordered list of query parameters parsed from a URL fragment.
// Keys and values are kept exactly as written; no escaping is applied, so a
// fragment that is parsed and encoded without changes comes back unchanged
// (bar empty segments).
type Query struct {
	lead   string
	params []queryParam
}

// ParseQuery parses a fragment such as "?expires=1&qn=10000". The leading
// "?" or "&" is remembered and written back by Encode.
func ParseQuery(fragment string) Query {
	var q Query
	if fragment != "" && (fragment[0] == '?' || fragment[0] == '&') {
		q.lead = fragment[:1]
		fragment = fragment[1:]
	}

	for _, segment := range strings.Split(fragment, "&") {
		if segment == "" {
			continue
		}
		k, v, found := strings.Cut(segment, "=")
		q.params = append(q.params, queryParam{key: k, value: v, hasValue: found})
	}

	return q
}

// Get returns the value of the first parameter matching key, ignoring case.
func (q Query) Get(key string) (string, bool) {
	for _, p := range q.params {
		if strings.EqualFold(p.key, key) {
			return p.value, true
		}
	}
	return "", false
}

// Set upserts key. The first parameter matching key (ignoring case) gets the
// new value in place and later duplicates are dropped; without a match the
// parameter is appended. After Set the key occurs exactly once.
func (q *Query) Set(key, value string) {
	kept := make([]queryParam, 0, len(q.params))
	replaced := false
	for _, p := range q.params {
		if !strings.EqualFold(p.key, key) {
			kept = append(kept, p)
			continue
		}
		if replaced {
			continue
		}
		p.value, p.hasValue = value, true
		kept = append(kept, p)
		replaced = true
	}
	q.params = kept

	if !replaced {
		q.params = append(q.params, queryParam{key: key, value: value, hasValue: true})
	}
}

// Len returns the number of parameters.
func (q Query) Len() int {
	return len(q.params)
}

// Encode serializes the parameters behind the remembered lead character,
// defaulting to "?". An empty query encodes to an empty string.
func (q Query) Encode() string {
	if q.Len() == 0 {
		return ""
	}

	var b strings.Builder
	if q.lead == "" {
		b.WriteByte('?')
	} else {
		b.WriteString(q.lead)
	}

	for i, p := range q.params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.key)
		if p.hasValue {
			b.WriteByte('=')
			b.WriteString(p.value)
		}
	}

	return b.String()
}
