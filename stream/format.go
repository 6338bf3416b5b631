// Package stream turns the play info document into playable candidates: it
// enumerates every (tier, format) a codec offers, composes their URLs and
// ranks them.
package stream

import (
	"fmt"
	"strings"
)

// Tier is a quality tier code (qn), e.g. 10000 for the original picture.
type Tier int

// Format is a container format offered by the platform.
type Format int

const (
	FormatUnknown Format = iota
	FormatTS
	FormatFMP4
	FormatFLV
)

// unknownRank sorts unrecognized formats after every known one.
const unknownRank = 99

// ParseFormat maps a format name from the document ("ts", "fmp4", "flv") to a Format.
func ParseFormat(name string) Format {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ts":
		return FormatTS
	case "fmp4":
		return FormatFMP4
	case "flv":
		return FormatFLV
	default:
		return FormatUnknown
	}
}

// Rank is the priority of the format, lower is preferred.
func (f Format) Rank() int {
	switch f {
	case FormatTS:
		return 1
	case FormatFMP4:
		return 2
	case FormatFLV:
		return 3
	default:
		return unknownRank
	}
}

func (f Format) String() string {
	switch f {
	case FormatTS:
		return "ts"
	case FormatFMP4:
		return "fmp4"
	case FormatFLV:
		return "flv"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Only known names are accepted.
func (f *Format) UnmarshalText(text []byte) error {
	parsed := ParseFormat(string(text))
	if parsed == FormatUnknown {
		return fmt.Errorf("unknown format %q", string(text))
	}
	*f = parsed
	return nil
}

// Formats lists the known formats in priority order.
func Formats() []Format {
	return []Format{FormatTS, FormatFMP4, FormatFLV}
}
