package stream

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// DefaultTier is assumed when the document names no tier at all.
const DefaultTier Tier = 10000

var labels = map[Tier]string{
	30000: "Dolby",
	25000: "Default",
	20000: "4K",
	10000: "Original",
	400:   "Blu-ray",
	250:   "Ultra",
	150:   "High",
	80:    "Smooth",
}

// Label returns a human readable name of the tier.
func Label(t Tier) string {
	if label, ok := labels[t]; ok {
		return label
	}
	return fmt.Sprintf("qn %d", t)
}

// Label prefers the platform's own description of the tier.
func (p Playurl) Label(t Tier) string {
	if d, ok := lo.Find(p.Descriptions, func(d Description) bool {
		return d.Tier == t && d.Desc != ""
	}); ok {
		return d.Desc
	}
	return Label(t)
}

// CurrentTiers returns the current tier of every codec, in document order.
func (p Playurl) CurrentTiers() []Tier {
	var tiers []Tier
	for _, s := range p.Streams {
		for _, f := range s.Formats {
			for _, c := range f.Codecs {
				if current, ok := c.Current.Get(); ok {
					tiers = append(tiers, current)
				}
			}
		}
	}
	return tiers
}

// HighestCurrent returns the highest tier any codec currently serves.
func (p Playurl) HighestCurrent() (Tier, bool) {
	current := p.CurrentTiers()
	if len(current) == 0 {
		return 0, false
	}
	return lo.Max(current), true
}

// AvailableTiers collects the described, current and accepted tiers, drops
// those above the highest current tier and returns them in descending order.
// A document naming no tier yields DefaultTier.
func (p Playurl) AvailableTiers() []Tier {
	var tiers []Tier
	for _, d := range p.Descriptions {
		tiers = append(tiers, d.Tier)
	}
	for _, s := range p.Streams {
		for _, f := range s.Formats {
			for _, c := range f.Codecs {
				tiers = append(tiers, c.Tiers()...)
			}
		}
	}

	tiers = lo.Uniq(lo.Filter(tiers, func(t Tier, _ int) bool { return t > 0 }))

	if highest, ok := p.HighestCurrent(); ok {
		tiers = lo.Filter(tiers, func(t Tier, _ int) bool { return t <= highest })
	}

	if len(tiers) == 0 {
		return []Tier{DefaultTier}
	}

	slices.SortFunc(tiers, func(a, b Tier) int { return int(b) - int(a) })
	return tiers
}

// ParseTier accepts a tier code ("400") or a label ("blu-ray", "4k"), ignoring case.
func ParseTier(s string) (Tier, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n <= 0 {
			return 0, fmt.Errorf("invalid quality tier %d", n)
		}
		return Tier(n), nil
	}

	normalized := normalizeLabel(s)
	for tier, label := range labels {
		if normalizeLabel(label) == normalized {
			return tier, nil
		}
	}

	return 0, fmt.Errorf("unknown quality tier %q", s)
}

func normalizeLabel(s string) string {
	return strings.NewReplacer("-", "", " ", "", "_", "").Replace(strings.ToLower(s))
}
