package source

import (
	"net/url"
	"strings"

	"github.com/r3/RedditImageDownloader/download"
	"github.com/r3/RedditImageDownloader/imgur"
	"github.com/r3/RedditImageDownloader/log"
	"github.com/r3/RedditImageDownloader/util"
)

// Imgur expands gallery URLs through the authenticated imgur API: albums
// become one Downloadable per contained image, single images become one.
type Imgur struct {
	settings *download.Settings
	api      imgur.API
}

// NewImgur constructs an Imgur source backed by the given API client.
func NewImgur(settings *download.Settings, api imgur.API) *Imgur {
	return &Imgur{settings: settings, api: api}
}

func (*Imgur) Name() string {
	return "imgur"
}

// Match reports whether the URL points at the imgur host.
func (*Imgur) Match(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.Contains(parsed.Hostname(), "imgur.com")
}

// DownloadablesFromURL distinguishes albums from single images by path
// prefix. API errors for a given id yield zero results, not a hard failure.
func (s *Imgur) DownloadablesFromURL(rawURL string) ([]*download.Downloadable, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, nil
	}

	if strings.HasPrefix(parsed.Path, "/a/") {
		log.Debugf("Imgur source is managing an album at URL: %s", rawURL)
		return s.album(albumID(parsed)), nil
	}

	log.Debugf("Imgur source is managing an image at URL: %s", rawURL)
	return s.image(imageID(parsed)), nil
}

// albumID extracts the album identifier from an /a/<id> path.
func albumID(parsed *url.URL) string {
	ident := strings.TrimPrefix(parsed.Path, "/a/")
	log.Debugf("Got album id '%s' from URL: %s", ident, parsed)
	return ident
}

// imageID extracts the image identifier from the path basename, extension excluded.
func imageID(parsed *url.URL) string {
	ident := util.FileStem(strings.TrimPrefix(parsed.Path, "/"))
	log.Debugf("Got image id '%s' from URL: %s", ident, parsed)
	return ident
}

// album expands an album into Downloadables numbered by 1-based position and
// tagged with the album id as group id.
func (s *Imgur) album(id string) []*download.Downloadable {
	images, err := s.api.AlbumImages(id)
	if err != nil {
		log.Warnf("There was a problem attempting to get an album with id: %s", id)
		return nil
	}

	downloadables := make([]*download.Downloadable, 0, len(images))
	for i, image := range images {
		log.Debugf("Yielding Downloadable from URL: %s", image.Link)
		downloadables = append(downloadables, download.NewGrouped(s.settings, image.Link, i+1, id))
	}
	return downloadables
}

// image resolves a single image with no ordinal or group.
func (s *Imgur) image(id string) []*download.Downloadable {
	image, err := s.api.Image(id)
	if err != nil {
		log.Warnf("There was a problem attempting to get an image with id: %s", id)
		return nil
	}

	log.Debugf("Yielding Downloadable from URL: %s", image.Link)
	return []*download.Downloadable{download.New(s.settings, image.Link)}
}
