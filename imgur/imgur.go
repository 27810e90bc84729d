// Package imgur implements the authenticated gallery API capability used for album expansion.
package imgur

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/r3/RedditImageDownloader/key"
	"github.com/r3/RedditImageDownloader/log"
	"github.com/r3/RedditImageDownloader/network"
	"github.com/spf13/viper"
)

// Image is a single gallery image reference.
type Image struct {
	ID   string `json:"id"`
	Link string `json:"link"`
}

// Quota is the remaining call budget pair tracked against the imgur API.
type Quota struct {
	Client int
	User   int
}

// API is the capability interface the imgur source depends on.
type API interface {
	// AlbumImages lists the images of an album in gallery order.
	AlbumImages(albumID string) ([]Image, error)

	// Image retrieves a single image by id.
	Image(imageID string) (*Image, error)

	// HasQuota reports whether both remaining-quota counters exceed min.
	// Advisory only: no call path enforces it.
	HasQuota(min int) bool
}

// Client is an authenticated imgur API client holding the remaining-quota pair.
// It is not safe for concurrent use; the crawl is single-threaded.
type Client struct {
	// BaseURL of the API, without a trailing slash. Overridable for tests.
	BaseURL string
	HTTP    *http.Client

	clientID     string
	clientSecret string
	quota        *Quota
}

// NewClient returns an unconnected Client configured with the given credentials.
func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		BaseURL:      "https://api.imgur.com",
		HTTP:         network.Client,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// creditsResponse mirrors the /3/credits payload.
type creditsResponse struct {
	Data struct {
		ClientRemaining int `json:"ClientRemaining"`
		UserRemaining   int `json:"UserRemaining"`
	} `json:"data"`
}

// Connect fetches the remaining-quota pair once. Subsequent calls are no-ops.
func (c *Client) Connect() error {
	if c.quota != nil {
		return nil
	}

	var credits creditsResponse
	if err := c.getJSON(c.BaseURL+"/3/credits", &credits); err != nil {
		return fmt.Errorf("query imgur credits: %w", err)
	}

	c.quota = &Quota{
		Client: credits.Data.ClientRemaining,
		User:   credits.Data.UserRemaining,
	}
	log.Debugf("imgur quota: user->%d client->%d", c.quota.User, c.quota.Client)
	return nil
}

// HasQuota reports whether both counters still exceed min.
func (c *Client) HasQuota(min int) bool {
	if c.quota == nil {
		return false
	}
	return c.quota.Client > min && c.quota.User > min
}

// decrement charges one call against both counters. Charged before every
// remote call, whether or not it succeeds. When either counter sits at or
// below the configured floor a warning is emitted; nothing is blocked.
func (c *Client) decrement() {
	if c.quota == nil {
		return
	}

	if !c.HasQuota(viper.GetInt(key.ImgurMinQuota)) {
		log.Warnf("imgur quota at or below the configured floor: user->%d client->%d", c.quota.User, c.quota.Client)
	}

	c.quota.Client--
	c.quota.User--
	log.Debugf("Decremented imgur quota: user->%d client->%d", c.quota.User, c.quota.Client)
}

// AlbumImages lists the images of an album in gallery order.
func (c *Client) AlbumImages(albumID string) ([]Image, error) {
	if err := c.Connect(); err != nil {
		return nil, err
	}
	c.decrement()

	var album struct {
		Data []Image `json:"data"`
	}
	endpoint := fmt.Sprintf("%s/3/album/%s/images", c.BaseURL, albumID)
	if err := c.getJSON(endpoint, &album); err != nil {
		return nil, err
	}

	return album.Data, nil
}

// Image retrieves a single image by id.
func (c *Client) Image(imageID string) (*Image, error) {
	if err := c.Connect(); err != nil {
		return nil, err
	}
	c.decrement()

	var image struct {
		Data Image `json:"data"`
	}
	endpoint := fmt.Sprintf("%s/3/image/%s", c.BaseURL, imageID)
	if err := c.getJSON(endpoint, &image); err != nil {
		return nil, err
	}

	return &image.Data, nil
}

// getJSON performs one authenticated GET and decodes the body into out.
func (c *Client) getJSON(endpoint string, out any) error {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Client-ID "+c.clientID)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("imgur returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(body, out)
}
