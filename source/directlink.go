package source

import (
	"net/url"
	"path"

	"github.com/r3/RedditImageDownloader/download"
	"github.com/r3/RedditImageDownloader/log"
	"github.com/samber/lo"
)

// DirectLink passes through URLs whose path already ends in an accepted
// media file extension.
type DirectLink struct {
	settings   *download.Settings
	extensions []string
}

// NewDirectLink constructs a DirectLink source accepting the given
// extensions (each including the leading dot).
func NewDirectLink(settings *download.Settings, extensions []string) *DirectLink {
	return &DirectLink{settings: settings, extensions: extensions}
}

func (*DirectLink) Name() string {
	return "directlink"
}

// Match reports whether the URL path carries an accepted extension.
func (s *DirectLink) Match(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	extension := path.Ext(parsed.Path)
	if extension == "" {
		log.Debug("Source lacks an extension and does not match directlink")
		return false
	}

	return lo.Contains(s.extensions, extension)
}

// DownloadablesFromURL yields exactly one Downloadable for the query-stripped URL.
func (s *DirectLink) DownloadablesFromURL(rawURL string) ([]*download.Downloadable, error) {
	d := download.New(s.settings, rawURL)
	log.Debugf("Yielding Downloadable from URL: %s", d.URL())
	return []*download.Downloadable{d}, nil
}
