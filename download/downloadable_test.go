package download

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/r3/RedditImageDownloader/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func testSettings() *Settings {
	return &Settings{
		DestDir:           "/downloads",
		MaxNameLength:     10,
		MaxUniqueAttempts: 64,
	}
}

func TestNew(t *testing.T) {
	Convey("Given a URL with a query string", t, func() {
		d := New(testSettings(), "http://example.com/image.png?ref=feed&x=1")

		Convey("The effective URL has the query string removed", func() {
			So(d.URL(), ShouldEqual, "http://example.com/image.png")
		})
	})
}

func TestSafeFilename(t *testing.T) {
	Convey("Given a grouped Downloadable with a feed name", t, func() {
		d := NewGrouped(testSettings(), "http://i.example.com/ABCdef.JPG", 3, "Alb um!")
		d.SetFeedName("Earth Porn")

		Convey("The name joins non-empty segments, lower-cased, extension preserved", func() {
			name, err := d.SafeFilename(false)
			So(err, ShouldBeNil)
			So(name, ShouldEqual, "earth_porn-album-003-abcdef.jpg")
		})
	})

	Convey("Given a bare Downloadable", t, func() {
		d := New(testSettings(), "http://i.example.com/ABCdef.JPG")

		Convey("Empty segments are omitted", func() {
			name, err := d.SafeFilename(false)
			So(err, ShouldBeNil)
			So(name, ShouldEqual, "abcdef.jpg")
		})
	})

	Convey("Given a long basename", t, func() {
		d := New(testSettings(), "http://i.example.com/abcdefghijklmnop.png")

		Convey("Only the basename is truncated, not the joined name", func() {
			d.SetFeedName("feed")
			name, err := d.SafeFilename(false)
			So(err, ShouldBeNil)
			So(name, ShouldEqual, "feed-abcdefghij.png")
		})
	})
}

func TestSafeFilenameCaching(t *testing.T) {
	Convey("Given a Downloadable with a computed name", t, func() {
		d := New(testSettings(), "http://i.example.com/pic.png")
		d.SetFeedName("cute")
		first, err := d.SafeFilename(false)
		So(err, ShouldBeNil)

		Convey("A second call returns the identical cached string", func() {
			second, err := d.SafeFilename(false)
			So(err, ShouldBeNil)
			So(second, ShouldEqual, first)
		})

		Convey("Reassigning the feed name invalidates the cache", func() {
			d.SetFeedName("aww")
			renamed, err := d.SafeFilename(false)
			So(err, ShouldBeNil)
			So(renamed, ShouldEqual, "aww-pic.png")
			So(renamed, ShouldNotEqual, first)
		})
	})
}

func TestSafeFilenameForceUnique(t *testing.T) {
	Convey("Given a destination that already exists", t, func() {
		filesystem.SetMemMapFs()
		settings := testSettings()
		fs := filesystem.API()
		So(fs.MkdirAll(settings.DestDir, 0o755), ShouldBeNil)
		So(fs.WriteFile(filepath.Join(settings.DestDir, "pic.png"), []byte("old"), 0o644), ShouldBeNil)

		d := New(settings, "http://i.example.com/pic.png")

		Convey("Probing returns a name whose path does not exist", func() {
			name, err := d.SafeFilename(true)
			So(err, ShouldBeNil)
			So(strings.HasPrefix(name, "pic-"), ShouldBeTrue)

			exists, err := fs.Exists(filepath.Join(settings.DestDir, name))
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})

		Convey("An exhausted attempt budget yields ErrCollisionUnresolved", func() {
			settings.MaxUniqueAttempts = 0
			_, err := d.SafeFilename(true)
			So(errors.Is(err, ErrCollisionUnresolved), ShouldBeTrue)
		})
	})

	Convey("Given a free destination", t, func() {
		filesystem.SetMemMapFs()
		d := New(testSettings(), "http://i.example.com/pic.png")

		Convey("Probing keeps the plain name", func() {
			name, err := d.SafeFilename(true)
			So(err, ShouldBeNil)
			So(name, ShouldEqual, "pic.png")
		})
	})
}
