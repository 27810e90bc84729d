package where

import (
	"strings"
	"testing"

	"github.com/r3/RedditImageDownloader/constant"
	"github.com/r3/RedditImageDownloader/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Downloads()", func() {
			path := Downloads()
			So(path, ShouldNotBeEmpty)
			So(strings.Contains(path, constant.Imagespider), ShouldBeTrue)
		})

		Convey("FeedList()", func() {
			So(FeedList(), ShouldEndWith, "feeds.lst")
		})
	})
}
