package resolver

import (
	"github.com/livelink-cli/livelink/log"
)

// Chain runs strategies in order and stops at the first that finds a URL.
type Chain []Strategy

// DefaultChain is explicit master URL, then exact tier, then any codec.
func DefaultChain() Chain {
	return Chain{Explicit{}, ExactTier{}, Any{}}
}

// Find returns the first match and the name of the strategy that produced it.
func (c Chain) Find(in *Input) (Match, string, error) {
	for _, strategy := range c {
		match, ok := strategy.Find(in).Get()
		if !ok {
			log.Tracef("strategy %s found nothing", strategy.Name())
			continue
		}

		log.Debugf("strategy %s resolved %s", strategy.Name(), match.URL)
		return match, strategy.Name(), nil
	}

	return Match{}, "", ErrNoCandidateFound
}
