package config

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
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetBool(key.ResolveGateway), ShouldBeTrue)
			So(viper.GetString(key.Player), ShouldEqual, "mpv")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("resolve.quality"), ShouldEqual, "resolve_quality")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.ResolveQuality]

		Convey("Env should carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "LIVELINK_RESOLVE_QUALITY")
		})

		Convey("Parse should convert to the default's type", func() {
			v, err := field.Parse([]string{"400"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 400)

			_, err = field.Parse([]string{"blu-ray"})
			So(err, ShouldNotBeNil)

			gateway := Default[key.ResolveGateway]
			v, err = gateway.Parse([]string{"false"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)

			rate := Default[key.ServeRateLimit]
			v, err = rate.Parse([]string{"2.5"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 2.5)

			args := Default[key.PlayerArgs]
			v, err = args.Parse([]string{"--no-cache", "--mute"})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"--no-cache", "--mute"})

			_, err = field.Parse(nil)
			So(err, ShouldNotBeNil)
		})

		Convey("Pretty should name the key and env", func() {
			pretty := field.Pretty()
			So(pretty, ShouldContainSubstring, key.ResolveQuality)
			So(pretty, ShouldContainSubstring, "LIVELINK_RESOLVE_QUALITY")
		})

		Convey("typeName should reflect the default value", func() {
			So(field.typeName(), ShouldEqual, "int")
			rate := Default[key.ServeRateLimit]
			So(rate.typeName(), ShouldEqual, "float")
		})
	})
}

func TestWrite(t *testing.T) {
	Convey("Write creates the config file when it is missing", t, func() {
		So(Setup(), ShouldBeNil)
		viper.Set(key.Player, "vlc")

		So(Write(), ShouldBeNil)

		exists, err := filesystem.API().Exists(File())
		So(err, ShouldBeNil)
		So(exists, ShouldBeTrue)

		viper.Set(key.Player, "mpv")
		So(Write(), ShouldBeNil)
	})
}
