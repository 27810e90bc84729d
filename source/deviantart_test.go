package source

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDeviantArt(t *testing.T) {
	Convey("Given the deviantart source", t, func() {
		src := NewDeviantArt(testSettings())

		Convey("Match is keyed on the hostname", func() {
			So(src.Match("https://www.deviantart.com/artist/art/piece-1"), ShouldBeTrue)
			So(src.Match("https://imgur.com/a/abc"), ShouldBeFalse)
		})

		Convey("A lookup carrying a media URL yields one Downloadable", func() {
			var requested string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requested = r.URL.Query().Get("url")
				_, _ = w.Write([]byte(`{"url": "https://images.deviantart.example/piece.png"}`))
			}))
			defer server.Close()
			src.Endpoint = server.URL

			downloadables, err := src.DownloadablesFromURL("https://www.deviantart.com/artist/art/piece-1")
			So(err, ShouldBeNil)
			So(requested, ShouldEqual, "https://www.deviantart.com/artist/art/piece-1")
			So(len(downloadables), ShouldEqual, 1)
			So(downloadables[0].URL(), ShouldEqual, "https://images.deviantart.example/piece.png")
		})

		Convey("A lookup without a media URL yields nothing", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"type": "photo"}`))
			}))
			defer server.Close()
			src.Endpoint = server.URL

			downloadables, err := src.DownloadablesFromURL("https://www.deviantart.com/artist/art/piece-1")
			So(err, ShouldBeNil)
			So(downloadables, ShouldBeEmpty)
		})
	})
}

func TestQuote(t *testing.T) {
	Convey("quote", t, func() {
		Convey("Escapes reserved characters", func() {
			So(quote("http://a.example/b c"), ShouldEqual, "http%3A%2F%2Fa.example%2Fb%20c")
		})

		Convey("Preserves the unreserved set and ~()*!.'", func() {
			So(quote("~()*!.'-_Az9"), ShouldEqual, "~()*!.'-_Az9")
		})
	})
}
