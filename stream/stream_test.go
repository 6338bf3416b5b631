package stream

import (
	"strings"
	"testing"

	"github.com/livelink-cli/livelink/document"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

const hlsPlayInfo = `{
  "code": 0,
  "data": {
    "room_id": 1,
    "playurl_info": {
      "playurl": {
        "cid": 1,
        "g_qn_desc": [{"qn": 10000, "desc": "原画"}, {"qn": 400, "desc": "蓝光"}, {"qn": 20000, "desc": "4K"}],
        "stream": [{
          "protocol_name": "http_hls",
          "format": [{
            "format_name": "ts",
            "codec": [{
              "codec_name": "avc",
              "current_qn": 10000,
              "accept_qn": [400, 150],
              "base_url": "/live-bvc/foo.m3u8",
              "url_info": [{"host": "https://d1--cn-gotcha.bilivideo.com", "extra": "?expires=1&qn=10000"}]
            }]
          }]
        }]
      }
    }
  }
}`

func parsePlayurl(raw string) Playurl {
	root, err := document.Parse([]byte(raw))
	if err != nil {
		panic(err)
	}
	return ParsePlayurl(PlayurlNode(root))
}

func TestFormat(t *testing.T) {
	Convey("Formats are ranked ts, fmp4, flv", t, func() {
		So(ParseFormat("TS").Rank(), ShouldEqual, 1)
		So(ParseFormat("fmp4").Rank(), ShouldEqual, 2)
		So(ParseFormat("flv").Rank(), ShouldEqual, 3)
		So(ParseFormat("webm").Rank(), ShouldEqual, 99)
	})

	Convey("Unknown names are rejected as text", t, func() {
		var f Format
		So(f.UnmarshalText([]byte("fmp4")), ShouldBeNil)
		So(f, ShouldEqual, FormatFMP4)
		So(f.UnmarshalText([]byte("mkv")), ShouldNotBeNil)
	})
}

func TestQuery(t *testing.T) {
	Convey("Given a query fragment", t, func() {
		q := ParseQuery("?expires=1&QN=10000&flag&qn=5")

		Convey("Set replaces the first match in place and drops duplicates", func() {
			q.Set(ParamTier, "400")
			So(q.count(ParamTier), ShouldEqual, 1)
			So(q.Encode(), ShouldEqual, "?expires=1&QN=400&flag")
		})

		Convey("Set on a copy leaves the original untouched", func() {
			copied := q
			copied.Set(ParamTier, "400")
			So(copied.Encode(), ShouldEqual, "?expires=1&QN=400&flag")
			So(q.Encode(), ShouldEqual, "?expires=1&QN=10000&flag&qn=5")
		})

		Convey("Set appends a missing key", func() {
			q.Set(ParamExpectedTier, "400")
			So(q.Encode(), ShouldEqual, "?expires=1&QN=10000&flag&qn=5&expected_qn=400")
		})

		Convey("Get matches keys regardless of case", func() {
			value, ok := q.Get("Expires")
			So(ok, ShouldBeTrue)
			So(value, ShouldEqual, "1")
		})
	})

	Convey("An empty fragment encodes to nothing", t, func() {
		So(ParseQuery("").Encode(), ShouldEqual, "")
		So(ParseQuery("?").Len(), ShouldEqual, 0)
	})
}

func TestCompose(t *testing.T) {
	parts := Parts{
		Host:  mo.Some("https://d1--cn-gotcha.bilivideo.com"),
		Base:  mo.Some("/live-bvc/foo.m3u8"),
		Query: mo.Some("?expires=1&qn=10000"),
	}

	Convey("Given url parts", t, func() {
		Convey("Compose concatenates them", func() {
			So(parts.Compose().MustGet(), ShouldEqual, "https://d1--cn-gotcha.bilivideo.com/live-bvc/foo.m3u8?expires=1&qn=10000")
		})

		Convey("ComposeFor rewrites the tier parameters", func() {
			So(parts.ComposeFor(400).MustGet(), ShouldEqual, "https://d1--cn-gotcha.bilivideo.com/live-bvc/foo.m3u8?expires=1&qn=400&expected_qn=400")
		})

		Convey("ComposeFor is idempotent", func() {
			once := parts.ComposeFor(250).MustGet()
			prefix, query, _ := strings.Cut(once, "?")
			again := Parts{Host: mo.Some(prefix), Base: mo.Some(""), Query: mo.Some("?" + query)}
			So(again.ComposeFor(250).MustGet(), ShouldEqual, once)
			So(ParseQuery("?"+query).count(ParamTier), ShouldEqual, 1)
		})

		Convey("A missing part yields nothing", func() {
			broken := parts
			broken.Query = mo.None[string]()
			So(broken.Compose().IsPresent(), ShouldBeFalse)
			So(broken.ComposeFor(400).IsPresent(), ShouldBeFalse)
		})

		Convey("A relative result is rejected", func() {
			relative := parts
			relative.Host = mo.Some("")
			So(relative.Compose().IsPresent(), ShouldBeFalse)
		})

		Convey("An empty extra gets a query of its own", func() {
			bare := parts
			bare.Query = mo.Some("")
			So(bare.ComposeFor(80).MustGet(), ShouldEqual, "https://d1--cn-gotcha.bilivideo.com/live-bvc/foo.m3u8?qn=80&expected_qn=80")

			bare.Base = mo.Some("/live-bvc/foo.m3u8?a=1")
			So(bare.ComposeFor(80).MustGet(), ShouldEqual, "https://d1--cn-gotcha.bilivideo.com/live-bvc/foo.m3u8?a=1&qn=80&expected_qn=80")
		})
	})

	Convey("Given a codec", t, func() {
		codec := Codec{
			Current: mo.Some[Tier](10000),
			Base:    mo.Some("/live-bvc/foo.flv"),
			Hosts: []Host{
				{Host: mo.None[string](), Extra: mo.Some("?a=1")},
				{Host: mo.Some("https://second.example"), Extra: mo.Some("?a=1")},
			},
		}

		Convey("The first composing url_info entry wins", func() {
			So(codec.Compose(mo.None[Tier]()).MustGet(), ShouldEqual, "https://second.example/live-bvc/foo.flv?a=1")
		})

		Convey("The flat url is used when nothing composes", func() {
			codec.Hosts = nil
			codec.URL = mo.Some("https://flat.example/x.flv?qn=10000")
			So(codec.Compose(mo.None[Tier]()).MustGet(), ShouldEqual, "https://flat.example/x.flv?qn=10000")
			So(codec.Compose(mo.Some[Tier](10000)).MustGet(), ShouldEqual, "https://flat.example/x.flv?qn=10000")
			So(codec.Compose(mo.Some[Tier](400)).IsPresent(), ShouldBeFalse)
		})

		Convey("A relative flat url is ignored", func() {
			codec.Hosts = nil
			codec.URL = mo.Some("/x.flv")
			So(codec.Compose(mo.None[Tier]()).IsPresent(), ShouldBeFalse)
		})
	})
}

func TestParsePlayurl(t *testing.T) {
	Convey("Given a play info response", t, func() {
		playurl := parsePlayurl(hlsPlayInfo)

		Convey("It reads the content id", func() {
			So(playurl.CID.MustGet(), ShouldEqual, 1)
		})

		Convey("It reads streams, formats and codecs", func() {
			So(len(playurl.Streams), ShouldEqual, 1)
			So(playurl.Streams[0].IsHLS(), ShouldBeTrue)
			codec := playurl.Streams[0].Formats[0].Codecs[0]
			So(codec.Tiers(), ShouldResemble, []Tier{10000, 400, 150})
			So(playurl.Streams[0].Formats[0].Format, ShouldEqual, FormatTS)
		})

		Convey("Enumerate rewrites each accepted tier", func() {
			candidates := Enumerate(playurl)
			So(len(candidates), ShouldEqual, 3)
			So(candidates[1].Tier, ShouldEqual, 400)
			So(candidates[1].URL, ShouldEqual, "https://d1--cn-gotcha.bilivideo.com/live-bvc/foo.m3u8?expires=1&qn=400&expected_qn=400")
		})

		Convey("Labels prefer the platform description", func() {
			So(playurl.Label(400), ShouldEqual, "蓝光")
			So(playurl.Label(150), ShouldEqual, "High")
			So(Label(12345), ShouldEqual, "qn 12345")
		})

		Convey("Available tiers stop at the highest current tier", func() {
			So(playurl.AvailableTiers(), ShouldResemble, []Tier{10000, 400, 150})
		})
	})

	Convey("Camel case spellings and video_project cid are accepted", t, func() {
		playurl := parsePlayurl(`{"data": {"playurlInfo": {"playurl": {
			"video_project": {"cid": "77"},
			"stream": [{"protocolName": "http_stream", "format": [{"formatName": "flv", "codec": [
				{"codecName": "avc", "currentQn": 250, "acceptQn": [250, 80], "baseUrl": "/a.flv",
				 "urlInfo": [{"host": "http://h", "extra": ""}]}
			]}]}]
		}}}}`)

		So(playurl.CID.MustGet(), ShouldEqual, 77)
		candidates := Enumerate(playurl)
		So(len(candidates), ShouldEqual, 2)
		So(candidates[0].URL, ShouldEqual, "http://h/a.flv?qn=250&expected_qn=250")
		So(candidates[1].URL, ShouldEqual, "http://h/a.flv?qn=80&expected_qn=80")
	})

	Convey("Malformed pieces are treated as empty", t, func() {
		playurl := parsePlayurl(`{"data": {"playurl_info": {"playurl": {"stream": [1, {"format": "x"}, {"format": [{"codec": {}}]}]}}}}`)
		So(Enumerate(playurl), ShouldBeEmpty)
		So(playurl.AvailableTiers(), ShouldResemble, []Tier{DefaultTier})
	})

	Convey("A missing playurl yields no candidates", t, func() {
		So(Enumerate(ParsePlayurl(nil)), ShouldBeEmpty)
	})
}

func TestRanking(t *testing.T) {
	flv := Candidate{Tier: 10000, Format: FormatFLV, URL: "https://a/flv"}
	fmp4 := Candidate{Tier: 10000, Format: FormatFMP4, URL: "https://a/fmp4"}
	ts := Candidate{Tier: 400, Format: FormatTS, Protocol: "http_hls", URL: "https://a/ts"}
	flvLow := Candidate{Tier: 400, Format: FormatFLV, Protocol: "http_stream", URL: "https://a/flv400"}

	Convey("The index keeps the lowest rank per tier", t, func() {
		index := BuildIndex([]Candidate{flv, fmp4})
		So(len(index), ShouldEqual, 1)
		So(index[10000], ShouldResemble, fmp4)

		Convey("The first seen wins ties", func() {
			twin := fmp4
			twin.URL = "https://b/fmp4"
			index := BuildIndex([]Candidate{fmp4, twin})
			So(index[10000].URL, ShouldEqual, "https://a/fmp4")
		})

		Convey("Tiers come out ascending", func() {
			index := BuildIndex([]Candidate{flv, ts})
			So(index.Tiers(), ShouldResemble, []Tier{400, 10000})
		})
	})

	Convey("Display order is by tier then rank", t, func() {
		input := []Candidate{flv, flvLow, fmp4, ts}
		sorted := SortForDisplay(input)
		So(sorted, ShouldResemble, []Candidate{ts, flvLow, fmp4, flv})
		So(input[0], ShouldResemble, flv)
	})

	Convey("The default selection is the lowest tier, HLS ts first", t, func() {
		So(DefaultSelection([]Candidate{flv, flvLow, ts}).MustGet(), ShouldResemble, ts)
		So(DefaultSelection([]Candidate{flv, flvLow}).MustGet(), ShouldResemble, flvLow)
		So(DefaultSelection(nil).IsPresent(), ShouldBeFalse)
	})

	Convey("Filter keeps one format", t, func() {
		So(Filter([]Candidate{flv, fmp4, ts}, FormatFMP4), ShouldResemble, []Candidate{fmp4})
	})
}

func TestParseTier(t *testing.T) {
	Convey("Tiers parse from codes and labels", t, func() {
		tier, err := ParseTier("400")
		So(err, ShouldBeNil)
		So(tier, ShouldEqual, 400)

		tier, err = ParseTier("blu ray")
		So(err, ShouldBeNil)
		So(tier, ShouldEqual, 400)

		tier, err = ParseTier("ORIGINAL")
		So(err, ShouldBeNil)
		So(tier, ShouldEqual, DefaultTier)

		_, err = ParseTier("0")
		So(err, ShouldNotBeNil)
		_, err = ParseTier("potato")
		So(err, ShouldNotBeNil)
	})
}

// count returns how many parameters match key, ignoring case.
func (q Query) count(key string) int {
	n := 0
	for _, p := range q.params {
		if strings.EqualFold(p.key, key) {
			n++
		}
	}
	return n
}
