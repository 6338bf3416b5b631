package stream

import (
	"strconv"
	"strings"

	"github.com/livelink-cli/livelink/document"
	"github.com/samber/mo"
)

// Parts are the pieces a stream URL is assembled from.
type Parts struct {
	Host  mo.Option[string]
	Base  mo.Option[string]
	Query mo.Option[string]
}

func (p Parts) get() (host, base, query string, ok bool) {
	host, hasHost := p.Host.Get()
	base, hasBase := p.Base.Get()
	query, hasQuery := p.Query.Get()
	return host, base, query, hasHost && hasBase && hasQuery
}

// Compose concatenates host, base and query. It yields nothing when a part is
// missing or the result is not an absolute http(s) URL.
func (p Parts) Compose() mo.Option[string] {
	host, base, query, ok := p.get()
	if !ok {
		return mo.None[string]()
	}
	return absolute(host + base + query)
}

// ComposeFor composes the URL with the tier parameters qn and expected_qn set
// to target. Applying it to its own output changes nothing.
func (p Parts) ComposeFor(target Tier) mo.Option[string] {
	host, base, query, ok := p.get()
	if !ok {
		return mo.None[string]()
	}

	q := ParseQuery(query)
	if q.lead == "" && strings.Contains(base, "?") {
		q.lead = "&"
	}

	value := strconv.Itoa(int(target))
	q.Set(ParamTier, value)
	q.Set(ParamExpectedTier, value)

	return absolute(host + base + q.Encode())
}

// Compose builds the URL of the codec. The url_info entries are tried in
// order; when none composes, the flat url field is used as is. With a target
// the flat url only serves the codec's own current tier, since it cannot be
// rewritten reliably.
func (c Codec) Compose(target mo.Option[Tier]) mo.Option[string] {
	for _, parts := range c.Parts() {
		var composed mo.Option[string]
		if t, ok := target.Get(); ok {
			composed = parts.ComposeFor(t)
		} else {
			composed = parts.Compose()
		}

		if composed.IsPresent() {
			return composed
		}
	}

	flat, ok := c.URL.Get()
	if !ok || !document.IsAbsoluteHTTP(flat) {
		return mo.None[string]()
	}

	if t, ok := target.Get(); ok {
		if current, ok := c.Current.Get(); ok && current != t {
			return mo.None[string]()
		}
	}

	return mo.Some(flat)
}

func absolute(s string) mo.Option[string] {
	if document.IsAbsoluteHTTP(s) {
		return mo.Some(s)
	}
	return mo.None[string]()
}
