package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/livelink-cli/livelink/resolver"
	"github.com/livelink-cli/livelink/stream"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeResolver struct {
	result  *resolver.Result
	listing *resolver.Listing
	err     error
}

func (f *fakeResolver) Resolve(context.Context, resolver.Request) (*resolver.Result, error) {
	return f.result, f.err
}

func (f *fakeResolver) List(context.Context, resolver.Room) (*resolver.Listing, error) {
	return f.listing, f.err
}

func TestRun(t *testing.T) {
	candidate := stream.Candidate{Tier: 400, Format: stream.FormatTS, Protocol: "http_hls", Codec: "avc", URL: "https://cdn/a.m3u8"}

	Convey("Given a resolver that finds a URL", t, func() {
		var buf bytes.Buffer
		fake := &fakeResolver{result: &resolver.Result{
			URL:        "https://cdn/a.m3u8",
			Strategy:   "exact-tier",
			Tier:       400,
			Format:     stream.FormatTS,
			Fallback:   true,
			Candidates: []stream.Candidate{candidate},
		}}
		options := &Options{Out: &buf, Resolver: fake, Request: resolver.Request{Room: resolver.Room{ID: 6}}}

		Convey("Plain mode prints the URL alone", func() {
			_, err := Run(context.Background(), options)
			So(err, ShouldBeNil)
			So(buf.String(), ShouldEqual, "https://cdn/a.m3u8\n")
		})

		Convey("JSON mode describes the result", func() {
			options.Json = true
			options.Candidates = true
			_, err := Run(context.Background(), options)
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Room, ShouldEqual, 6)
			So(output.Strategy, ShouldEqual, "exact-tier")
			So(output.Format, ShouldEqual, "ts")
			So(output.Fallback, ShouldBeTrue)
			So(output.Candidates, ShouldHaveLength, 1)
			So(output.Candidates[0].Label, ShouldEqual, "Blu-ray")
		})

		Convey("Failures write nothing", func() {
			fake.err = resolver.ErrNoCandidateFound
			_, err := Run(context.Background(), options)
			So(errors.Is(err, resolver.ErrNoCandidateFound), ShouldBeTrue)
			So(buf.Len(), ShouldEqual, 0)
		})
	})

	Convey("List writes the ranked candidates", t, func() {
		var buf bytes.Buffer
		fake := &fakeResolver{listing: &resolver.Listing{
			Candidates: []stream.Candidate{candidate},
			Default:    mo.Some(candidate),
			Tiers:      []resolver.TierInfo{{Tier: 400, Label: "Blu-ray"}},
			Current:    mo.Some[stream.Tier](10000),
		}}

		_, err := List(context.Background(), &Options{Out: &buf, Resolver: fake, Request: resolver.Request{Room: resolver.Room{ID: 6}}})
		So(err, ShouldBeNil)

		var listing Listing
		So(json.Unmarshal(buf.Bytes(), &listing), ShouldBeNil)
		So(listing.Current, ShouldEqual, 10000)
		So(listing.Default.URL, ShouldEqual, "https://cdn/a.m3u8")
		So(listing.Tiers[0].Label, ShouldEqual, "Blu-ray")
	})
}

func TestOptions(t *testing.T) {
	Convey("Flag values", t, func() {
		tier, err := ParseTier("")
		So(err, ShouldBeNil)
		So(tier.IsPresent(), ShouldBeFalse)

		tier, err = ParseTier("4k")
		So(err, ShouldBeNil)
		So(tier.MustGet(), ShouldEqual, 20000)

		format, err := ParseFormat("FLV")
		So(err, ShouldBeNil)
		So(format.MustGet(), ShouldEqual, stream.FormatFLV)

		_, err = ParseFormat("mkv")
		So(err, ShouldNotBeNil)
	})
}

func TestSchema(t *testing.T) {
	Convey("Schemas describe both outputs", t, func() {
		So(Schema(false), ShouldNotBeNil)
		data, err := json.Marshal(Schema(true))
		So(err, ShouldBeNil)
		So(string(data), ShouldContainSubstring, "candidates")
	})
}
