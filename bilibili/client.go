package bilibili

import (
	"context"
	"fmt"
	"net/http"

	"github.com/livelink-cli/livelink/constant"
	"github.com/livelink-cli/livelink/document"
	"github.com/livelink-cli/livelink/log"
	"github.com/livelink-cli/livelink/network"
	"github.com/livelink-cli/livelink/resolver"
	"github.com/samber/mo"
)

// APIError is a response whose code field is not zero.
type APIError struct {
	Code    int64
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

// Client fetches from the live API. It implements resolver.Fetcher.
type Client struct {
	http   *http.Client
	base   string
	cookie mo.Option[string]
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another API host.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.base = base
	}
}

// WithCookie sends the given Cookie header with every request.
func WithCookie(cookie string) Option {
	return func(c *Client) {
		if cookie != "" {
			c.cookie = mo.Some(cookie)
		}
	}
}

var _ resolver.Fetcher = (*Client)(nil)

// New returns a client using httpClient, or network.Client when nil.
func New(httpClient *http.Client, options ...Option) *Client {
	if httpClient == nil {
		httpClient = network.Client
	}

	client := &Client{http: httpClient, base: DefaultBaseURL}
	for _, option := range options {
		option(client)
	}

	return client
}

func (c *Client) header() http.Header {
	header := http.Header{}
	header.Set("User-Agent", constant.UserAgent)
	header.Set("Referer", constant.Referer)
	header.Set("Accept", "application/json, text/plain, */*")
	if cookie, ok := c.cookie.Get(); ok {
		header.Set("Cookie", cookie)
	}
	return header
}

// getJSON fetches url and parses it as an API envelope with a zero code.
func (c *Client) getJSON(ctx context.Context, url string) (*document.Node, error) {
	log.Debugf("GET %s", url)

	resp, err := network.Get(ctx, c.http, url, c.header())
	if err != nil {
		return nil, err
	}

	if !resp.OK() {
		return nil, fmt.Errorf("unexpected status %d", resp.Status)
	}

	root, err := document.Parse(resp.Body)
	if err != nil {
		return nil, err
	}

	if code, ok := root.Get("code").Int(); ok && code != 0 {
		message, _ := root.Get("message", "msg").String()
		return nil, &APIError{Code: code, Message: message}
	}

	return root, nil
}

// PlayInfo fetches the play info document of a room.
func (c *Client) PlayInfo(ctx context.Context, room int64) (*document.Node, error) {
	return c.getJSON(ctx, PlayInfoURL(c.base, room))
}

// Gateway fetches the master playlist gateway. Any status is returned as is.
func (c *Client) Gateway(ctx context.Context, query resolver.GatewayQuery) (*resolver.Response, error) {
	url := GatewayURL(c.base, query)
	log.Debugf("GET %s", url)

	resp, err := network.Get(ctx, c.http, url, c.header())
	if err != nil {
		return nil, err
	}

	return &resolver.Response{
		Body:        resp.Body,
		ContentType: resp.ContentType,
		FinalURL:    resp.FinalURL,
		Status:      resp.Status,
	}, nil
}

// RoomInit maps a possibly short room id to the real one and looks up its owner.
func (c *Client) RoomInit(ctx context.Context, room int64) (resolver.Room, error) {
	root, err := c.getJSON(ctx, RoomInitURL(c.base, room))
	if err != nil {
		return resolver.Room{}, &resolver.TransportError{Op: "room init", Err: err}
	}

	data := root.Get("data")
	resolved := resolver.Room{ID: room}

	if id, ok := data.Get("room_id").Int(); ok && id > 0 {
		resolved.ID = id
	}

	if uid, ok := data.Get("uid").Int(); ok && uid > 0 {
		resolved.Owner = mo.Some(uid)
	}

	return resolved, nil
}

// Room resolves a room reference to a room. When the room init lookup fails
// the parsed id is used with an unknown owner.
func (c *Client) Room(ctx context.Context, reference string) (resolver.Room, error) {
	id, err := ParseRoom(reference)
	if err != nil {
		return resolver.Room{}, err
	}

	room, err := c.RoomInit(ctx, id)
	if err != nil {
		log.Warnf("room init for %d: %s", id, err)
		return resolver.Room{ID: id}, nil
	}

	return room, nil
}
