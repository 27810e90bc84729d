package config

import (
	"testing"

	"github.com/r3/RedditImageDownloader/filesystem"
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
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("downloads.max_name_length")
			So(result, ShouldEqual, "downloads_max_name_length")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		f := Default["downloads.overwrite"]

		Convey("Env should carry the application prefix", func() {
			So(f.Env(), ShouldEqual, "IMAGESPIDER_DOWNLOADS_OVERWRITE")
		})

		Convey("typeName should reflect the default value", func() {
			So(f.typeName(), ShouldEqual, "bool")
		})
	})
}
