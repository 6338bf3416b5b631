package document

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func mustParse(raw string) *Node {
	node, err := Parse([]byte(raw))
	if err != nil {
		panic(err)
	}
	return node
}

func TestParse(t *testing.T) {
	Convey("Given a JSON document", t, func() {
		node := mustParse(`{"b": 1, "a": [true, null, "x"], "c": {"d": 2.5}}`)

		Convey("It keeps the key order of objects", func() {
			keys := []string{}
			for _, p := range node.Pairs() {
				keys = append(keys, p.Key)
			}
			So(keys, ShouldResemble, []string{"b", "a", "c"})
		})

		Convey("It tags every node with its variant", func() {
			So(node.Kind(), ShouldEqual, Mapping)
			So(node.Get("a").Kind(), ShouldEqual, Sequence)
			So(node.Get("b").Kind(), ShouldEqual, Scalar)
			So(node.Get("a").Len(), ShouldEqual, 3)
		})

		Convey("It rejects trailing values", func() {
			_, err := Parse([]byte(`{} {}`))
			So(err, ShouldEqual, ErrTrailingData)
		})

		Convey("It rejects malformed input", func() {
			_, err := Parse([]byte(`{"a":`))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestAccessors(t *testing.T) {
	Convey("Given a document with mixed spellings", t, func() {
		node := mustParse(`{"data": {"playurlInfo": {"playurl": {"cid": "42", "g_qn_desc": [{"qn": 10000}]}}}}`)

		Convey("Dig accepts alternative spellings per segment", func() {
			playurl := node.Dig("data", "playurl_info|playurlInfo", "playurl")
			So(playurl, ShouldNotBeNil)

			cid, ok := playurl.Get("cid").Int()
			So(ok, ShouldBeTrue)
			So(cid, ShouldEqual, 42)
		})

		Convey("Missing paths yield nil without panicking", func() {
			So(node.Dig("data", "nope", "deeper"), ShouldBeNil)
			So(node.Get("data").Items(), ShouldBeNil)

			var missing *Node
			So(missing.Items(), ShouldBeNil)
			_, ok := missing.String()
			So(ok, ShouldBeFalse)
		})

		Convey("Int rejects fractions and words", func() {
			_, ok := mustParse(`2.5`).Int()
			So(ok, ShouldBeFalse)
			_, ok = mustParse(`"ten"`).Int()
			So(ok, ShouldBeFalse)
			i, ok := mustParse(`400.0`).Int()
			So(ok, ShouldBeTrue)
			So(i, ShouldEqual, 400)
		})
	})
}

func TestSearch(t *testing.T) {
	keys := []string{"master_url", "m3u8_master_url"}

	Convey("Given a nested document", t, func() {
		Convey("It finds a URL three levels deep", func() {
			node := mustParse(`{"playurl_info": {"playurl": {"extra": {"master_url": "https://example.com/live/master.m3u8"}}}}`)
			found, ok := FindURL(node, keys...).Get()
			So(ok, ShouldBeTrue)
			So(found, ShouldEqual, "https://example.com/live/master.m3u8")
		})

		Convey("It traverses sequences without matching indices", func() {
			node := mustParse(`{"list": [{"x": 1}, [{"m3u8_master_url": "http://cdn/a.m3u8"}]]}`)
			found, ok := FindURL(node, keys...).Get()
			So(ok, ShouldBeTrue)
			So(found, ShouldEqual, "http://cdn/a.m3u8")
		})

		Convey("It ignores non-string values under a wanted key", func() {
			node := mustParse(`{"master_url": {"nested": 1}, "other": {"master_url": 12}}`)
			So(FindURL(node, keys...).IsPresent(), ShouldBeFalse)
		})

		Convey("It ignores strings that are not absolute http URLs", func() {
			node := mustParse(`{"master_url": "/relative/path.m3u8", "a": {"master_url": "ftp://host/x"}}`)
			So(FindURL(node, keys...).IsPresent(), ShouldBeFalse)
		})

		Convey("It ignores matching strings under other keys", func() {
			node := mustParse(`{"url": "https://example.com/x.m3u8"}`)
			So(FindURL(node, keys...).IsPresent(), ShouldBeFalse)
		})

		Convey("Keys of the same mapping are checked before its children", func() {
			node := mustParse(`{"child": {"master_url": "https://deep"}, "master_url": "https://shallow"}`)
			So(FindURL(node, keys...).MustGet(), ShouldEqual, "https://shallow")
		})

		Convey("The result is stable across runs", func() {
			node := mustParse(`{"a": {"master_url": "https://one"}, "b": {"master_url": "https://two"}}`)
			first := FindURL(node, keys...).MustGet()
			for i := 0; i < 10; i++ {
				So(FindURL(node, keys...).MustGet(), ShouldEqual, first)
			}
		})

		Convey("A custom predicate narrows the match", func() {
			node := mustParse(`{"a": {"name": "flv"}, "b": {"name": "ts"}}`)
			found := Search(node, []string{"name"}, func(s string) bool { return s == "ts" })
			So(found.MustGet(), ShouldEqual, "ts")
		})

		Convey("A nil root finds nothing", func() {
			So(FindURL(nil, keys...).IsPresent(), ShouldBeFalse)
		})
	})
}
