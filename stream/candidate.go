package stream

import (
	"cmp"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Candidate is one playable (tier, format) combination with its composed URL.
type Candidate struct {
	Tier     Tier   `json:"qn"`
	Format   Format `json:"format"`
	Protocol string `json:"protocol"`
	Codec    string `json:"codec"`
	URL      string `json:"url"`
}

// IsHLS reports whether the candidate came from an HLS stream.
func (c Candidate) IsHLS() bool {
	return Stream{Protocol: c.Protocol}.IsHLS()
}

// Enumerate lists a candidate for every tier each codec offers, in document
// order. Codecs that cannot compose a URL for a tier contribute nothing for
// it. The result may hold several candidates for the same tier and format.
func Enumerate(playurl Playurl) []Candidate {
	var candidates []Candidate

	for _, s := range playurl.Streams {
		for _, f := range s.Formats {
			for _, c := range f.Codecs {
				for _, tier := range c.Tiers() {
					url, ok := c.Compose(mo.Some(tier)).Get()
					if !ok {
						continue
					}

					candidates = append(candidates, Candidate{
						Tier:     tier,
						Format:   f.Format,
						Protocol: s.Protocol,
						Codec:    c.Name,
						URL:      url,
					})
				}
			}
		}
	}

	return candidates
}

// Index maps each tier to its preferred candidate.
type Index map[Tier]Candidate

// BuildIndex keeps, per tier, the candidate with the lowest format rank. The
// earliest candidate wins ties.
func BuildIndex(candidates []Candidate) Index {
	index := make(Index)
	for _, c := range candidates {
		existing, ok := index[c.Tier]
		if !ok || c.Format.Rank() < existing.Format.Rank() {
			index[c.Tier] = c
		}
	}
	return index
}

// Tiers returns the indexed tiers in ascending order.
func (ix Index) Tiers() []Tier {
	tiers := lo.Keys(ix)
	slices.Sort(tiers)
	return tiers
}

// SortForDisplay orders candidates by ascending tier, then format rank.
// The input is left untouched.
func SortForDisplay(candidates []Candidate) []Candidate {
	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, func(a, b Candidate) int {
		if a.Tier != b.Tier {
			return cmp.Compare(a.Tier, b.Tier)
		}
		return cmp.Compare(a.Format.Rank(), b.Format.Rank())
	})
	return sorted
}

// DefaultSelection picks the lowest tier. Among candidates of that tier an
// HLS ts stream is preferred, then the lowest format rank.
func DefaultSelection(candidates []Candidate) mo.Option[Candidate] {
	if len(candidates) == 0 {
		return mo.None[Candidate]()
	}

	lowest := lo.MinBy(candidates, func(a, b Candidate) bool {
		return a.Tier < b.Tier
	}).Tier

	sameTier := lo.Filter(SortForDisplay(candidates), func(c Candidate, _ int) bool {
		return c.Tier == lowest
	})

	if preferred, ok := lo.Find(sameTier, func(c Candidate) bool {
		return c.IsHLS() && c.Format == FormatTS
	}); ok {
		return mo.Some(preferred)
	}

	return mo.Some(sameTier[0])
}

// Filter keeps the candidates of the given format.
func Filter(candidates []Candidate, format Format) []Candidate {
	return lo.Filter(candidates, func(c Candidate, _ int) bool {
		return c.Format == format
	})
}
