package inline

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/livelink-cli/livelink/resolver"
	"github.com/livelink-cli/livelink/stream"
	"github.com/samber/mo"
)

// Resolver is the part of the engine inline mode needs.
type Resolver interface {
	Resolve(ctx context.Context, request resolver.Request) (*resolver.Result, error)
	List(ctx context.Context, room resolver.Room) (*resolver.Listing, error)
}

type Options struct {
	Out      io.Writer
	Resolver Resolver
	Request  resolver.Request
	Json     bool
	// Candidates includes every ranked candidate in JSON output.
	Candidates bool
}

// ParseTier turns a flag value into an optional tier. Empty values and 0 mean
// no preference.
func ParseTier(value string) (mo.Option[stream.Tier], error) {
	value = strings.TrimSpace(value)
	if value == "" || value == "0" {
		return mo.None[stream.Tier](), nil
	}

	tier, err := stream.ParseTier(value)
	if err != nil {
		return mo.None[stream.Tier](), err
	}
	return mo.Some(tier), nil
}

// ParseFormat turns a flag value into an optional format. Empty values mean
// no preference.
func ParseFormat(value string) (mo.Option[stream.Format], error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return mo.None[stream.Format](), nil
	}

	var format stream.Format
	if err := format.UnmarshalText([]byte(value)); err != nil {
		return mo.None[stream.Format](), fmt.Errorf("%w (expected one of ts, fmp4, flv)", err)
	}
	return mo.Some(format), nil
}
