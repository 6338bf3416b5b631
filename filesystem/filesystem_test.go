package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackend(t *testing.T) {
	Convey("The backend can be swapped", t, func() {
		SetOsFs()
		So(API().Name(), ShouldEqual, "OsFs")

		SetMemMapFs()
		So(API().Name(), ShouldEqual, "MemMapFS")
	})
}

func TestWriteAtomic(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		SetMemMapFs()
		Reset(SetOsFs)

		So(API().MkdirAll("/out", os.ModePerm), ShouldBeNil)

		Convey("WriteAtomic replaces the file and leaves no temp file", func() {
			So(API().WriteFile("/out/url.txt", []byte("old"), 0o644), ShouldBeNil)
			So(WriteAtomic("/out/url.txt", []byte("https://cdn/a.m3u8\n"), 0o644), ShouldBeNil)

			data, err := API().ReadFile("/out/url.txt")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "https://cdn/a.m3u8\n")

			exists, err := API().Exists("/out/url.txt.tmp")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})

		Convey("GacheFs creates directories and files on the backend", func() {
			var fs GacheFs
			So(fs.MkdirAll("/cache/livelink", os.ModePerm), ShouldBeNil)

			file, err := fs.OpenFile("/cache/livelink/rooms.json", os.O_CREATE|os.O_WRONLY, 0o644)
			So(err, ShouldBeNil)
			_, err = file.Write([]byte("{}"))
			So(err, ShouldBeNil)
			So(file.Close(), ShouldBeNil)

			exists, _ := API().Exists("/cache/livelink/rooms.json")
			So(exists, ShouldBeTrue)
		})
	})
}
