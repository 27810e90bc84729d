package download

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/r3/RedditImageDownloader/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func serveBytes(payload string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
}

func TestPull(t *testing.T) {
	Convey("Given a reachable media URL", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		server := serveBytes("fresh bytes")
		defer server.Close()

		settings := testSettings()
		d := New(settings, server.URL+"/pic.png")
		destination := filepath.Join(settings.DestDir, "pic.png")

		Convey("With no collision the file lands at the destination", func() {
			So(d.Pull(), ShouldBeNil)

			content, err := fs.ReadFile(destination)
			So(err, ShouldBeNil)
			So(string(content), ShouldEqual, "fresh bytes")
		})

		Convey("With an existing file and the skip policy", func() {
			settings.SkipCollisions = true
			So(fs.MkdirAll(settings.DestDir, 0o755), ShouldBeNil)
			So(fs.WriteFile(destination, []byte("old bytes"), 0o644), ShouldBeNil)

			Convey("The pull fails and the existing file is untouched", func() {
				err := d.Pull()
				So(errors.Is(err, ErrSkipped), ShouldBeTrue)

				content, err := fs.ReadFile(destination)
				So(err, ShouldBeNil)
				So(string(content), ShouldEqual, "old bytes")
			})
		})

		Convey("With an existing file and the overwrite policy", func() {
			settings.Overwrite = true
			So(fs.MkdirAll(settings.DestDir, 0o755), ShouldBeNil)
			So(fs.WriteFile(destination, []byte("old bytes"), 0o644), ShouldBeNil)

			Convey("The existing file is replaced", func() {
				So(d.Pull(), ShouldBeNil)

				content, err := fs.ReadFile(destination)
				So(err, ShouldBeNil)
				So(string(content), ShouldEqual, "fresh bytes")
			})
		})

		Convey("With an existing file and neither policy", func() {
			So(fs.MkdirAll(settings.DestDir, 0o755), ShouldBeNil)
			So(fs.WriteFile(destination, []byte("old bytes"), 0o644), ShouldBeNil)

			Convey("A unique name is generated and both files end up present", func() {
				So(d.Pull(), ShouldBeNil)

				entries, err := fs.ReadDir(settings.DestDir)
				So(err, ShouldBeNil)
				So(len(entries), ShouldEqual, 2)

				content, err := fs.ReadFile(destination)
				So(err, ShouldBeNil)
				So(string(content), ShouldEqual, "old bytes")
			})
		})
	})

	Convey("Given a URL returning a non-success status", t, func() {
		filesystem.SetMemMapFs()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		d := New(testSettings(), server.URL+"/gone.png")

		Convey("The pull reports a fetch failure", func() {
			err := d.Pull()
			So(errors.Is(err, ErrFetchFailed), ShouldBeTrue)
		})
	})

	Convey("Given an unreachable host", t, func() {
		filesystem.SetMemMapFs()
		server := serveBytes("")
		server.Close() // connection refused from here on

		d := New(testSettings(), server.URL+"/pic.png")

		Convey("The pull reports a fetch failure", func() {
			err := d.Pull()
			So(errors.Is(err, ErrFetchFailed), ShouldBeTrue)
		})
	})
}
