package resolver

import (
	"github.com/livelink-cli/livelink/document"
	"github.com/livelink-cli/livelink/stream"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// MasterKeys are the keys under which the platform stores a ready master playlist URL.
var MasterKeys = []string{"master_url", "m3u8_master_url"}

// Input is what every strategy works on.
type Input struct {
	Root    *document.Node
	Playurl stream.Playurl
	Tier    mo.Option[stream.Tier]
	Format  mo.Option[stream.Format]
}

// Match is a URL found by a strategy. Tier and Format are zero when unknown.
type Match struct {
	URL    string
	Tier   stream.Tier
	Format stream.Format
}

// Strategy is one way of finding a stream URL in the play info document.
type Strategy interface {
	Name() string
	Find(in *Input) mo.Option[Match]
}

// Explicit looks for a master playlist URL anywhere in the playurl_info
// subtree. Documents without one yield nothing.
type Explicit struct{}

func (Explicit) Name() string { return "explicit" }

func (Explicit) Find(in *Input) mo.Option[Match] {
	scope := stream.PlayInfo(in.Root)
	if scope == nil {
		return mo.None[Match]()
	}

	url, ok := document.FindURL(scope, MasterKeys...).Get()
	if !ok {
		return mo.None[Match]()
	}
	return mo.Some(Match{URL: url})
}

// ExactTier serves the requested tier. A codec currently serving it is
// preferred; otherwise the best candidate accepting it is used.
type ExactTier struct{}

func (ExactTier) Name() string { return "exact-tier" }

func (ExactTier) Find(in *Input) mo.Option[Match] {
	target, ok := in.Tier.Get()
	if !ok {
		return mo.None[Match]()
	}

	if format, ok := in.Format.Get(); ok {
		if match, ok := exactTier(in.Playurl, target, mo.Some(format)).Get(); ok {
			return mo.Some(match)
		}
	}

	return exactTier(in.Playurl, target, mo.None[stream.Format]())
}

// exactTier looks for target among the codecs of the given format, or all codecs.
func exactTier(playurl stream.Playurl, target stream.Tier, only mo.Option[stream.Format]) mo.Option[Match] {
	format, restricted := only.Get()

	for _, entry := range codecs(playurl, only) {
		if restricted && entry.format != format {
			continue
		}
		if current, ok := entry.codec.Current.Get(); !ok || current != target {
			continue
		}
		if url, ok := entry.codec.Compose(mo.Some(target)).Get(); ok {
			return mo.Some(Match{URL: url, Tier: target, Format: entry.format})
		}
	}

	candidates := stream.Enumerate(playurl)
	if restricted {
		candidates = stream.Filter(candidates, format)
	}

	if c, ok := stream.BuildIndex(candidates)[target]; ok {
		return mo.Some(Match{URL: c.URL, Tier: c.Tier, Format: c.Format})
	}

	return mo.None[Match]()
}

// Any takes the first codec that composes, HLS streams first.
type Any struct{}

func (Any) Name() string { return "any" }

func (Any) Find(in *Input) mo.Option[Match] {
	for _, entry := range codecs(in.Playurl, in.Format) {
		if url, ok := entry.codec.Compose(mo.None[stream.Tier]()).Get(); ok {
			return mo.Some(Match{
				URL:    url,
				Tier:   entry.codec.Current.OrEmpty(),
				Format: entry.format,
			})
		}
	}
	return mo.None[Match]()
}

type codecEntry struct {
	format stream.Format
	codec  stream.Codec
}

// codecs flattens the playurl into the order strategies visit codecs in:
// HLS streams first, and within a stream the preferred format first.
func codecs(playurl stream.Playurl, preferred mo.Option[stream.Format]) []codecEntry {
	streams := slices.Clone(playurl.Streams)
	slices.SortStableFunc(streams, func(a, b stream.Stream) int {
		return rankHLS(a) - rankHLS(b)
	})

	var entries []codecEntry
	for _, s := range streams {
		formats := slices.Clone(s.Formats)
		if format, ok := preferred.Get(); ok {
			slices.SortStableFunc(formats, func(a, b stream.FormatEntry) int {
				return lo.Ternary(a.Format == format, 0, 1) - lo.Ternary(b.Format == format, 0, 1)
			})
		}

		for _, f := range formats {
			for _, c := range f.Codecs {
				entries = append(entries, codecEntry{format: f.Format, codec: c})
			}
		}
	}

	return entries
}

func rankHLS(s stream.Stream) int {
	return lo.Ternary(s.IsHLS(), 0, 1)
}
