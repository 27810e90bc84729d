package source

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/r3/RedditImageDownloader/constant"
	"github.com/r3/RedditImageDownloader/download"
	"github.com/r3/RedditImageDownloader/log"
	"github.com/r3/RedditImageDownloader/network"
)

// DeviantArt resolves page URLs through the oEmbed metadata lookup endpoint.
type DeviantArt struct {
	settings *download.Settings

	// Endpoint is the oEmbed lookup URL. Overridable for tests.
	Endpoint string
}

// NewDeviantArt constructs a DeviantArt source using the public backend endpoint.
func NewDeviantArt(settings *download.Settings) *DeviantArt {
	return &DeviantArt{
		settings: settings,
		Endpoint: "https://backend.deviantart.com/oembed",
	}
}

func (*DeviantArt) Name() string {
	return "deviantart"
}

// Match reports whether the URL points at the deviantart host.
func (*DeviantArt) Match(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.Contains(parsed.Hostname(), "deviantart.com")
}

// DownloadablesFromURL performs one synchronous lookup against the oEmbed
// endpoint. A response without a media URL yields nothing, not an error.
func (s *DeviantArt) DownloadablesFromURL(rawURL string) ([]*download.Downloadable, error) {
	endpoint := fmt.Sprintf("%s?url=%s", s.Endpoint, quote(rawURL))

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := network.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var lookup struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &lookup); err != nil {
		return nil, err
	}

	if lookup.URL == "" {
		return nil, nil
	}

	log.Debugf("Yielding Downloadable from URL: %s", lookup.URL)
	return []*download.Downloadable{download.New(s.settings, lookup.URL)}, nil
}

// quote percent-encodes a URL for use as a query value, leaving the
// unreserved characters and ~()*!.' unescaped.
func quote(s string) string {
	const safe = "-._~()*!'"

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
			b.WriteByte(c)
		case strings.IndexByte(safe, c) >= 0:
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
