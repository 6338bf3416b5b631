package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Versions compare component by component", t, func() {
		for _, tc := range []struct {
			a, b string
			want int
		}{
			{"0.3.1", "0.3.1", 0},
			{"v0.4.0", "0.3.9", 1},
			{"1.0.0", "1.0.10", -1},
		} {
			got, err := Compare(tc.a, tc.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, tc.want)
		}

		_, err := Compare("latest", "0.3.1")
		So(err, ShouldNotBeNil)
	})
}

func TestParse(t *testing.T) {
	Convey("Pre-release suffixes are ignored", t, func() {
		v, err := parse("v1.2.3-rc1")
		So(err, ShouldBeNil)
		So(v, ShouldResemble, [3]int{1, 2, 3})

		_, err = parse("1.2")
		So(err, ShouldNotBeNil)
	})
}
