package resolver

import (
	"bytes"
	"context"
	"strings"

	"github.com/livelink-cli/livelink/document"
	"github.com/livelink-cli/livelink/log"
	"github.com/livelink-cli/livelink/stream"
	"github.com/samber/mo"
)

const manifestMagic = "#EXTM3U"

var manifestContentTypes = []string{"apple.mpegurl", "mpegurl", "m3u8"}

// Gateway asks the play gateway for a master playlist URL of a given tier.
type Gateway struct {
	fetcher Fetcher
	keys    []string
}

// NewGateway returns a gateway step that searches JSON answers for MasterKeys.
func NewGateway(fetcher Fetcher) *Gateway {
	return &Gateway{fetcher: fetcher, keys: MasterKeys}
}

// Find fetches the gateway once. It needs a content id and a tier: the
// requested one, else the highest tier any codec currently serves. Failures
// of any kind yield nothing so the caller can fall back to the play info.
func (g *Gateway) Find(ctx context.Context, playurl stream.Playurl, owner mo.Option[int64], requested mo.Option[stream.Tier]) mo.Option[Match] {
	cid, ok := playurl.CID.Get()
	if !ok {
		log.Debugf("gateway skipped: no content id")
		return mo.None[Match]()
	}

	tier, ok := requested.Get()
	if !ok {
		if tier, ok = playurl.HighestCurrent(); !ok {
			log.Debugf("gateway skipped: no tier")
			return mo.None[Match]()
		}
	}

	query := GatewayQuery{CID: cid, Owner: owner.OrEmpty(), Tier: tier}
	response, err := g.fetcher.Gateway(ctx, query)
	if err != nil {
		log.With(log.Fields{"cid": cid, "qn": tier}).Warnf("gateway request failed: %s", err)
		return mo.None[Match]()
	}

	if response != nil && !response.OK() {
		log.With(log.Fields{"cid": cid, "qn": tier}).Warnf("gateway answered with status %d", response.Status)
		return mo.None[Match]()
	}

	if url, ok := g.inspect(response).Get(); ok {
		return mo.Some(Match{URL: url, Tier: tier})
	}

	return mo.None[Match]()
}

func (g *Gateway) inspect(response *Response) mo.Option[string] {
	if response == nil {
		return mo.None[string]()
	}

	if bytes.HasPrefix(bytes.TrimSpace(response.Body), []byte("{")) {
		if root, err := document.Parse(response.Body); err == nil {
			if url, ok := document.FindURL(root, g.keys...).Get(); ok {
				log.Debugf("gateway answered with a master url in json")
				return mo.Some(url)
			}
		} else {
			log.Tracef("gateway json: %s", err)
		}
	}

	if isManifest(response) && document.IsAbsoluteHTTP(response.FinalURL) {
		log.Debugf("gateway answered with a playlist, using %s", response.FinalURL)
		return mo.Some(response.FinalURL)
	}

	return mo.None[string]()
}

func isManifest(response *Response) bool {
	if bytes.HasPrefix(response.Body, []byte(manifestMagic)) {
		return true
	}

	contentType := strings.ToLower(response.ContentType)
	for _, t := range manifestContentTypes {
		if strings.Contains(contentType, t) {
			return true
		}
	}

	return false
}
