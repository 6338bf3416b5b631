package resolver

import (
	"context"

	"github.com/livelink-cli/livelink/document"
	"github.com/livelink-cli/livelink/stream"
	"github.com/samber/mo"
)

// Room identifies the live room a resolution is for.
type Room struct {
	ID int64
	// Owner is the uid of the streamer, sent to the gateway. Unknown owners are sent as 0.
	Owner mo.Option[int64]
}

// GatewayQuery holds the parameters of a gateway request.
type GatewayQuery struct {
	CID   int64
	Owner int64
	Tier  stream.Tier
}

// Response is a raw HTTP response body with the metadata the gateway step inspects.
type Response struct {
	Body        []byte
	ContentType string
	// FinalURL is the URL after following redirects.
	FinalURL string
	Status   int
}

// OK reports whether the status is 2xx.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Fetcher performs the two network calls of a resolution.
type Fetcher interface {
	// PlayInfo fetches and parses the play info document of a room.
	PlayInfo(ctx context.Context, room int64) (*document.Node, error)
	// Gateway fetches the master playlist gateway.
	Gateway(ctx context.Context, query GatewayQuery) (*Response, error)
}
