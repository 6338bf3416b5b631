package stream

import (
	"strings"

	"github.com/livelink-cli/livelink/document"
	"github.com/livelink-cli/livelink/log"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Host is one url_info entry of a codec.
type Host struct {
	Host  mo.Option[string]
	Extra mo.Option[string]
}

// Codec is one codec entry of a format.
type Codec struct {
	Name    string
	Current mo.Option[Tier]
	Accept  []Tier
	Base    mo.Option[string]
	Hosts   []Host
	// URL is the flat url field some responses carry instead of url_info.
	URL mo.Option[string]
}

// FormatEntry is one format entry of a stream.
type FormatEntry struct {
	Name   string
	Format Format
	Codecs []Codec
}

// Stream is one protocol variant, e.g. http_stream or http_hls.
type Stream struct {
	Protocol string
	Formats  []FormatEntry
}

// Description is a g_qn_desc entry.
type Description struct {
	Tier Tier
	Desc string
}

// Playurl is the typed view of the playurl node.
type Playurl struct {
	CID          mo.Option[int64]
	Streams      []Stream
	Descriptions []Description
}

// IsHLS reports whether the stream is served over an HLS protocol.
func (s Stream) IsHLS() bool {
	return strings.Contains(strings.ToLower(s.Protocol), "hls")
}

// Tiers returns the current tier followed by the accepted ones, deduplicated.
func (c Codec) Tiers() []Tier {
	var tiers []Tier
	if current, ok := c.Current.Get(); ok {
		tiers = append(tiers, current)
	}
	return lo.Uniq(append(tiers, c.Accept...))
}

// Parts returns the url parts of every url_info entry, in order.
func (c Codec) Parts() []Parts {
	return lo.Map(c.Hosts, func(h Host, _ int) Parts {
		return Parts{Host: h.Host, Base: c.Base, Query: h.Extra}
	})
}

// PlayInfo returns the playurl_info node of a play info response, accepting
// either the full response or its data field.
func PlayInfo(root *document.Node) *document.Node {
	if info := root.Dig("data", "playurl_info|playurlInfo"); info != nil {
		return info
	}
	return root.Get("playurl_info", "playurlInfo")
}

// PlayurlNode returns the playurl node of a play info response.
func PlayurlNode(root *document.Node) *document.Node {
	return PlayInfo(root).Get("playurl")
}

// ParsePlayurl builds the typed view of a playurl node. Pieces that are absent
// or of the wrong shape are treated as empty.
func ParsePlayurl(node *document.Node) Playurl {
	var playurl Playurl

	if node == nil {
		log.Tracef("playurl node missing")
		return playurl
	}

	if cid, ok := node.Get("cid").Int(); ok {
		playurl.CID = mo.Some(cid)
	} else if cid, ok := node.Dig("video_project|videoProject", "cid").Int(); ok {
		playurl.CID = mo.Some(cid)
	}

	for _, item := range node.Get("g_qn_desc", "gQnDesc").Items() {
		qn, ok := item.Get("qn").Int()
		if !ok {
			continue
		}
		desc, _ := item.Get("desc").String()
		playurl.Descriptions = append(playurl.Descriptions, Description{Tier: Tier(qn), Desc: desc})
	}

	for _, item := range node.Get("stream").Items() {
		if item.Kind() != document.Mapping {
			log.Tracef("skipping stream entry of kind %s", item.Kind())
			continue
		}

		protocol, _ := item.Get("protocol_name", "protocolName").String()
		s := Stream{Protocol: protocol}
		for _, f := range item.Get("format").Items() {
			if f.Kind() != document.Mapping {
				continue
			}
			s.Formats = append(s.Formats, parseFormatEntry(f))
		}
		playurl.Streams = append(playurl.Streams, s)
	}

	return playurl
}

func parseFormatEntry(node *document.Node) FormatEntry {
	name, _ := node.Get("format_name", "formatName").String()
	entry := FormatEntry{Name: name, Format: ParseFormat(name)}

	for _, c := range node.Get("codec").Items() {
		if c.Kind() != document.Mapping {
			continue
		}
		entry.Codecs = append(entry.Codecs, parseCodec(c))
	}

	return entry
}

func parseCodec(node *document.Node) Codec {
	var codec Codec
	codec.Name, _ = node.Get("codec_name", "codecName").String()

	if current, ok := node.Get("current_qn", "currentQn").Int(); ok {
		codec.Current = mo.Some(Tier(current))
	}

	for _, qn := range node.Get("accept_qn", "acceptQn").Items() {
		if tier, ok := qn.Int(); ok {
			codec.Accept = append(codec.Accept, Tier(tier))
		}
	}

	codec.Base = optionalString(node.Get("base_url", "baseUrl"))
	codec.URL = optionalString(node.Get("url"))

	for _, info := range node.Get("url_info", "urlInfo").Items() {
		codec.Hosts = append(codec.Hosts, Host{
			Host:  optionalString(info.Get("host")),
			Extra: optionalString(info.Get("extra")),
		})
	}

	return codec
}

func optionalString(node *document.Node) mo.Option[string] {
	if s, ok := node.String(); ok {
		return mo.Some(s)
	}
	return mo.None[string]()
}
