package source

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/r3/RedditImageDownloader/download"
	"github.com/r3/RedditImageDownloader/log"
)

// gfycatTemplate rewrites a clip name into its canonical giant-host gif URL.
const gfycatTemplate = "https://giant.gfycat.com/%s.gif"

// Gfycat rewrites clip page URLs into direct gif URLs.
type Gfycat struct {
	settings *download.Settings
}

// NewGfycat constructs a Gfycat source.
func NewGfycat(settings *download.Settings) *Gfycat {
	return &Gfycat{settings: settings}
}

func (*Gfycat) Name() string {
	return "gfycat"
}

// Match reports whether the URL points at the gfycat host.
func (*Gfycat) Match(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.Contains(parsed.Hostname(), "gfycat.com")
}

// DownloadablesFromURL yields one Downloadable for the rewritten gif URL,
// derived from the final path segment of the clip page.
func (s *Gfycat) DownloadablesFromURL(rawURL string) ([]*download.Downloadable, error) {
	segments := strings.Split(rawURL, "/")
	name, _, _ := strings.Cut(segments[len(segments)-1], "?")

	gifURL := fmt.Sprintf(gfycatTemplate, name)
	log.Debugf("Yielding Downloadable from URL: %s", gifURL)
	return []*download.Downloadable{download.New(s.settings, gifURL)}, nil
}
