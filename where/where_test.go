package where

import (
	"path/filepath"
	"testing"

	"github.com/livelink-cli/livelink/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			So(filepath.Dir(path), ShouldEqual, Config())
		})

		Convey("Rooms() lives in the cache directory", func() {
			So(filepath.Dir(Rooms()), ShouldEqual, Cache())
		})

		Convey("Config() honors the override variable", func() {
			t.Setenv(EnvConfigPath, "/custom/livelink")
			So(Config(), ShouldEqual, "/custom/livelink")
		})
	})
}
