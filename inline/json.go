package inline

import (
	"github.com/livelink-cli/livelink/resolver"
	"github.com/livelink-cli/livelink/stream"
	"github.com/samber/lo"
)

type Candidate struct {
	Tier     int    `json:"qn" jsonschema:"description=Quality tier code."`
	Label    string `json:"label" jsonschema:"description=Human readable name of the tier."`
	Format   string `json:"format" jsonschema:"enum=ts,enum=fmp4,enum=flv,enum=unknown"`
	Protocol string `json:"protocol" jsonschema:"description=Delivery protocol, e.g. http_hls."`
	Codec    string `json:"codec" jsonschema:"description=Video codec, e.g. avc or hevc."`
	URL      string `json:"url" jsonschema:"description=Absolute stream URL."`
}

type Output struct {
	Room     int64  `json:"room" jsonschema:"description=Real room id."`
	URL      string `json:"url" jsonschema:"description=Resolved stream URL."`
	Strategy string `json:"strategy" jsonschema:"enum=gateway,enum=explicit,enum=exact-tier,enum=any"`
	Tier     int    `json:"qn,omitempty" jsonschema:"description=Tier of the resolved URL when known."`
	Format   string `json:"format,omitempty"`
	// Fallback is set when the gateway was asked but did not answer usefully.
	Fallback   bool         `json:"fallback"`
	Candidates []*Candidate `json:"candidates,omitempty"`
}

type Tier struct {
	Tier  int    `json:"qn"`
	Label string `json:"label"`
}

type Listing struct {
	Room       int64        `json:"room"`
	Current    int          `json:"current,omitempty" jsonschema:"description=Highest tier currently served."`
	Default    *Candidate   `json:"default,omitempty" jsonschema:"description=Candidate picked when the user makes no choice."`
	Tiers      []*Tier      `json:"tiers"`
	Candidates []*Candidate `json:"candidates"`
}

func toCandidate(c stream.Candidate) *Candidate {
	return &Candidate{
		Tier:     int(c.Tier),
		Label:    stream.Label(c.Tier),
		Format:   c.Format.String(),
		Protocol: c.Protocol,
		Codec:    c.Codec,
		URL:      c.URL,
	}
}

func toCandidates(candidates []stream.Candidate) []*Candidate {
	return lo.Map(candidates, func(c stream.Candidate, _ int) *Candidate {
		return toCandidate(c)
	})
}

// NewOutput describes a resolution result.
func NewOutput(room int64, result *resolver.Result, withCandidates bool) *Output {
	output := &Output{
		Room:     room,
		URL:      result.URL,
		Strategy: result.Strategy,
		Tier:     int(result.Tier),
		Fallback: result.Fallback,
	}

	if result.Format != stream.FormatUnknown {
		output.Format = result.Format.String()
	}

	if withCandidates {
		output.Candidates = toCandidates(result.Candidates)
	}

	return output
}

// NewListing describes the choices of a room.
func NewListing(room int64, listing *resolver.Listing) *Listing {
	output := &Listing{
		Room:       room,
		Current:    int(listing.Current.OrEmpty()),
		Tiers:      lo.Map(listing.Tiers, func(t resolver.TierInfo, _ int) *Tier { return &Tier{Tier: int(t.Tier), Label: t.Label} }),
		Candidates: toCandidates(listing.Candidates),
	}

	if c, ok := listing.Default.Get(); ok {
		output.Default = toCandidate(c)
	}

	return output
}
