package rooms

import (
	"testing"

	"github.com/livelink-cli/livelink/filesystem"
	"github.com/livelink-cli/livelink/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestRooms(t *testing.T) {
	Convey("Given room history", t, func() {
		viper.Set(key.RoomsRemember, true)
		viper.Set(key.RoomsLimit, 3)
		So(Forget(), ShouldBeNil)

		Convey("When remembering rooms", func() {
			So(Remember(732, "https://live.bilibili.com/blanc/732"), ShouldBeNil)
			So(Remember(6, "6"), ShouldBeNil)
			So(Remember(6, "6"), ShouldBeNil)

			Convey("Then the most used room comes first", func() {
				all := All()
				So(len(all), ShouldEqual, 2)
				So(all[0].ID, ShouldEqual, 6)
				So(all[0].Rank, ShouldEqual, 2)
			})

			Convey("Then suggestions match references fuzzily", func() {
				found := Suggest("blanc")
				So(found.IsPresent(), ShouldBeTrue)
				So(found.MustGet().ID, ShouldEqual, 732)
				So(SuggestMany("zzz"), ShouldBeEmpty)
			})

			Convey("Then the history is capped", func() {
				So(Remember(1, "1"), ShouldBeNil)
				So(Remember(2, "2"), ShouldBeNil)
				So(len(All()), ShouldEqual, 3)
				So(All()[0].ID, ShouldEqual, 6)
			})
		})

		Convey("Nothing is stored when history is off", func() {
			viper.Set(key.RoomsRemember, false)
			So(Remember(5, "5"), ShouldBeNil)
			So(All(), ShouldBeEmpty)
		})
	})
}
