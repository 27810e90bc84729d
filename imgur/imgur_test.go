package imgur

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// testServer fakes the API endpoints and records the auth header it last saw.
func testServer(lastAuth *string) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/3/credits", func(w http.ResponseWriter, r *http.Request) {
		*lastAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"data": {"ClientRemaining": 100, "UserRemaining": 50}}`)
	})
	mux.HandleFunc("/3/album/abc123/images", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": [
			{"id": "one", "link": "https://i.imgur.com/one.png"},
			{"id": "two", "link": "https://i.imgur.com/two.png"}
		]}`)
	})
	mux.HandleFunc("/3/image/XyZ", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": {"id": "XyZ", "link": "https://i.imgur.com/XyZ.jpg"}}`)
	})
	return httptest.NewServer(mux)
}

func testClientFor(server *httptest.Server) *Client {
	client := NewClient("test-id", "test-secret")
	client.BaseURL = server.URL
	client.HTTP = server.Client()
	return client
}

func TestConnect(t *testing.T) {
	Convey("Given an unconnected client", t, func() {
		var auth string
		server := testServer(&auth)
		defer server.Close()
		client := testClientFor(server)

		Convey("Quota is unknown and reported insufficient", func() {
			So(client.HasQuota(0), ShouldBeFalse)
		})

		Convey("Connecting loads the remaining-quota pair", func() {
			So(client.Connect(), ShouldBeNil)
			So(auth, ShouldEqual, "Client-ID test-id")
			So(client.quota.Client, ShouldEqual, 100)
			So(client.quota.User, ShouldEqual, 50)

			Convey("And a second connect leaves it untouched", func() {
				client.quota.Client = 7
				So(client.Connect(), ShouldBeNil)
				So(client.quota.Client, ShouldEqual, 7)
			})
		})
	})

	Convey("Given an unreachable API", t, func() {
		var auth string
		server := testServer(&auth)
		server.Close()
		client := testClientFor(server)

		Convey("Connecting fails", func() {
			So(client.Connect(), ShouldNotBeNil)
		})
	})
}

func TestAlbumImages(t *testing.T) {
	Convey("Given a connected client", t, func() {
		var auth string
		server := testServer(&auth)
		defer server.Close()
		client := testClientFor(server)

		Convey("Album images come back in gallery order", func() {
			images, err := client.AlbumImages("abc123")
			So(err, ShouldBeNil)
			So(len(images), ShouldEqual, 2)
			So(images[0].ID, ShouldEqual, "one")
			So(images[1].Link, ShouldEqual, "https://i.imgur.com/two.png")

			Convey("And one call was charged against both counters", func() {
				So(client.quota.Client, ShouldEqual, 99)
				So(client.quota.User, ShouldEqual, 49)
			})
		})
	})
}

func TestImage(t *testing.T) {
	Convey("Given a connected client", t, func() {
		var auth string
		server := testServer(&auth)
		defer server.Close()
		client := testClientFor(server)

		Convey("A single image resolves by id", func() {
			image, err := client.Image("XyZ")
			So(err, ShouldBeNil)
			So(image.Link, ShouldEqual, "https://i.imgur.com/XyZ.jpg")
		})

		Convey("An unknown id is an error, charged regardless", func() {
			_, err := client.Image("missing")
			So(err, ShouldNotBeNil)
			So(client.quota.Client, ShouldEqual, 99)
		})
	})
}

func TestHasQuota(t *testing.T) {
	Convey("Given a known quota pair", t, func() {
		var auth string
		server := testServer(&auth)
		defer server.Close()
		client := testClientFor(server)
		So(client.Connect(), ShouldBeNil)

		Convey("Both counters must exceed the advisory floor", func() {
			So(client.HasQuota(0), ShouldBeTrue)
			So(client.HasQuota(49), ShouldBeTrue)
			So(client.HasQuota(50), ShouldBeFalse)
			So(client.HasQuota(100), ShouldBeFalse)
		})
	})
}
