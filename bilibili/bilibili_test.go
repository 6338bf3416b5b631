package bilibili

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/livelink-cli/livelink/resolver"
	"github.com/livelink-cli/livelink/stream"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestURLs(t *testing.T) {
	Convey("URL builders", t, func() {
		So(PlayInfoURL(DefaultBaseURL, 23), ShouldEqual,
			"https://api.live.bilibili.com/xlive/web-room/v2/index/getRoomPlayInfo?room_id=23&protocol=0,1&format=0,1,2&codec=0,1&qn=10000&platform=web&dolby=5&panorama=1")
		So(GatewayURL(DefaultBaseURL+"/", resolver.GatewayQuery{CID: 23, Owner: 0, Tier: 400}), ShouldEqual,
			"https://api.live.bilibili.com/xlive/play-gateway/master/url?cid=23&mid=0&qn=400&pt=web&p2p_type=-1&net=0&free_type=0&build=0&feature=2&drm_type=0&cam_id=0")
		So(RoomInitURL(DefaultBaseURL, 5), ShouldEqual, "https://api.live.bilibili.com/room/v1/Room/room_init?id=5")
	})
}

func TestParseRoom(t *testing.T) {
	Convey("Room references", t, func() {
		Convey("Plain numbers are room ids", func() {
			id, err := ParseRoom(" 21452505 ")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, 21452505)
		})

		Convey("Live page URLs carry the id", func() {
			id, err := ParseRoom("https://live.bilibili.com/blanc/732?spm_id_from=333")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, 732)

			id, err = ParseRoom("live.bilibili.com/6")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, 6)
		})

		Convey("Anything else is rejected", func() {
			_, err := ParseRoom("https://www.bilibili.com/video/BV1")
			So(err, ShouldNotBeNil)
			_, err = ParseRoom("-4")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestClient(t *testing.T) {
	Convey("Given a fake live API", t, func() {
		var seen *http.Request
		mux := http.NewServeMux()
		mux.HandleFunc("/xlive/web-room/v2/index/getRoomPlayInfo", func(w http.ResponseWriter, r *http.Request) {
			seen = r
			if r.URL.Query().Get("room_id") == "404" {
				_, _ = w.Write([]byte(`{"code": 19002000, "message": "room not found"}`))
				return
			}
			_, _ = w.Write([]byte(`{"code": 0, "data": {"playurl_info": {"playurl": {"cid": 99}}}}`))
		})
		mux.HandleFunc("/xlive/play-gateway/master/url", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/live/master.m3u8?qn="+r.URL.Query().Get("qn"), http.StatusFound)
		})
		mux.HandleFunc("/live/master.m3u8", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/vnd.apple.mpegurl")
			_, _ = w.Write([]byte("#EXTM3U\n"))
		})
		mux.HandleFunc("/room/v1/Room/room_init", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("id") == "1" {
				http.Error(w, "down", http.StatusBadGateway)
				return
			}
			_, _ = w.Write([]byte(`{"code": 0, "data": {"room_id": 5440, "short_id": 1, "uid": 9617619}}`))
		})

		server := httptest.NewServer(mux)
		defer server.Close()

		client := New(server.Client(), WithBaseURL(server.URL), WithCookie("SESSDATA=abc"))
		ctx := context.Background()

		Convey("PlayInfo sends the platform headers", func() {
			root, err := client.PlayInfo(ctx, 5440)
			So(err, ShouldBeNil)
			So(stream.ParsePlayurl(stream.PlayurlNode(root)).CID.MustGet(), ShouldEqual, 99)
			So(seen.Header.Get("Referer"), ShouldEqual, "https://live.bilibili.com/")
			So(seen.Header.Get("Cookie"), ShouldEqual, "SESSDATA=abc")
		})

		Convey("A non-zero code is an API error", func() {
			_, err := client.PlayInfo(ctx, 404)
			var apiErr *APIError
			So(errors.As(err, &apiErr), ShouldBeTrue)
			So(apiErr.Code, ShouldEqual, 19002000)
		})

		Convey("Gateway reports the final url after redirects", func() {
			resp, err := client.Gateway(ctx, resolver.GatewayQuery{CID: 99, Tier: 400})
			So(err, ShouldBeNil)
			So(resp.FinalURL, ShouldEqual, server.URL+"/live/master.m3u8?qn=400")
			So(resp.ContentType, ShouldEqual, "application/vnd.apple.mpegurl")
		})

		Convey("Room resolves short ids and owners", func() {
			room, err := client.Room(ctx, "https://live.bilibili.com/6")
			So(err, ShouldBeNil)
			So(room.ID, ShouldEqual, 5440)
			So(room.Owner.MustGet(), ShouldEqual, 9617619)
		})

		Convey("Room falls back to the parsed id when room init fails", func() {
			room, err := client.Room(ctx, "1")
			So(err, ShouldBeNil)
			So(room.ID, ShouldEqual, 1)
			So(room.Owner.IsPresent(), ShouldBeFalse)
		})

		Convey("The client drives the resolver end to end", func() {
			result, err := resolver.New(client).Resolve(ctx, resolver.Request{
				Room:       resolver.Room{ID: 5440},
				UseGateway: true,
				Tier:       mo.Some[stream.Tier](400),
			})
			So(err, ShouldBeNil)
			So(result.Strategy, ShouldEqual, resolver.StrategyGateway)
			So(result.URL, ShouldEqual, server.URL+"/live/master.m3u8?qn=400")
		})
	})
}
