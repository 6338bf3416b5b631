// Package resolver finds a playable stream URL for a live room. It fetches the
// play info once, optionally asks the play gateway, and falls back through a
// chain of strategies over the fetched document.
package resolver

import (
	"context"

	"github.com/livelink-cli/livelink/document"
	"github.com/livelink-cli/livelink/log"
	"github.com/livelink-cli/livelink/stream"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// StrategyGateway names results that came from the play gateway.
const StrategyGateway = "gateway"

// Request describes one resolution.
type Request struct {
	Room       Room
	Tier       mo.Option[stream.Tier]
	Format     mo.Option[stream.Format]
	UseGateway bool
}

// Result is a resolved URL and how it was found.
type Result struct {
	URL      string
	Strategy string
	// Tier is zero when the strategy could not tell.
	Tier   stream.Tier
	Format stream.Format
	// Fallback is set when the gateway was asked but the URL came from the chain.
	Fallback   bool
	Candidates []stream.Candidate
}

// TierInfo is a selectable tier with its label.
type TierInfo struct {
	Tier  stream.Tier
	Label string
}

// Listing is everything a picker needs to present the choices of a room.
type Listing struct {
	Candidates []stream.Candidate
	Default    mo.Option[stream.Candidate]
	Tiers      []TierInfo
	Current    mo.Option[stream.Tier]
}

// Option configures an Engine.
type Option func(*Engine)

// WithChain replaces the default strategy chain.
func WithChain(chain Chain) Option {
	return func(e *Engine) {
		e.chain = chain
	}
}

// WithMasterKeys sets the keys searched for in gateway JSON answers. No keys
// keeps MasterKeys.
func WithMasterKeys(keys ...string) Option {
	return func(e *Engine) {
		if len(keys) > 0 {
			e.gateway.keys = keys
		}
	}
}

// Engine resolves stream URLs. It keeps no state between calls.
type Engine struct {
	fetcher Fetcher
	gateway *Gateway
	chain   Chain
}

// New returns an engine fetching through fetcher.
func New(fetcher Fetcher, options ...Option) *Engine {
	engine := &Engine{
		fetcher: fetcher,
		gateway: NewGateway(fetcher),
		chain:   DefaultChain(),
	}

	for _, option := range options {
		option(engine)
	}

	return engine
}

// Resolve fetches the play info of the room and finds a URL for it.
func (e *Engine) Resolve(ctx context.Context, request Request) (*Result, error) {
	root, err := e.playInfo(ctx, request.Room)
	if err != nil {
		return nil, err
	}

	playurl := stream.ParsePlayurl(stream.PlayurlNode(root))
	candidates := stream.SortForDisplay(stream.Enumerate(playurl))

	logger := log.With(log.Fields{"room": request.Room.ID})

	if request.UseGateway {
		if match, ok := e.gateway.Find(ctx, playurl, request.Room.Owner, request.Tier).Get(); ok {
			logger.Infof("resolved through the gateway")
			return &Result{
				URL:        match.URL,
				Strategy:   StrategyGateway,
				Tier:       match.Tier,
				Candidates: candidates,
			}, nil
		}
	}

	match, name, err := e.chain.Find(&Input{
		Root:    root,
		Playurl: playurl,
		Tier:    request.Tier,
		Format:  request.Format,
	})
	if err != nil {
		logger.Warnf("no stream url among %d candidates", len(candidates))
		return nil, err
	}

	logger.Infof("resolved by %s", name)
	return &Result{
		URL:        match.URL,
		Strategy:   name,
		Tier:       match.Tier,
		Format:     match.Format,
		Fallback:   request.UseGateway,
		Candidates: candidates,
	}, nil
}

// List fetches the play info of the room and returns its ranked candidates
// and selectable tiers.
func (e *Engine) List(ctx context.Context, room Room) (*Listing, error) {
	root, err := e.playInfo(ctx, room)
	if err != nil {
		return nil, err
	}

	playurl := stream.ParsePlayurl(stream.PlayurlNode(root))
	candidates := stream.SortForDisplay(stream.Enumerate(playurl))

	listing := &Listing{
		Candidates: candidates,
		Default:    stream.DefaultSelection(candidates),
		Tiers: lo.Map(playurl.AvailableTiers(), func(t stream.Tier, _ int) TierInfo {
			return TierInfo{Tier: t, Label: playurl.Label(t)}
		}),
	}

	if highest, ok := playurl.HighestCurrent(); ok {
		listing.Current = mo.Some(highest)
	}

	return listing, nil
}

func (e *Engine) playInfo(ctx context.Context, room Room) (*document.Node, error) {
	root, err := e.fetcher.PlayInfo(ctx, room.ID)
	if err != nil {
		return nil, &TransportError{Op: "fetch play info", Err: err}
	}
	return root, nil
}
