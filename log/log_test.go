package log

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

func TestSetup(t *testing.T) {
	Convey("Given logging is off", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Nothing is written", func() {
			Errorf("room %d", 6)
			So(logger, ShouldEqual, discard)
		})
	})

	Convey("Given logging is on", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		viper.Set(key.LogsJson, true)
		Reset(func() {
			viper.Set(key.LogsWrite, false)
			_ = Setup()
		})

		So(Setup(), ShouldBeNil)

		Convey("Entries at or above the level reach the file", func() {
			With(Fields{"room": 6}).Info("resolved")
			Tracef("hidden")

			data, err := filesystem.API().ReadFile(File())
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"room":6`)
			So(string(data), ShouldContainSubstring, "resolved")
			So(string(data), ShouldNotContainSubstring, "hidden")
		})
	})
}
