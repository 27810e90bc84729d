// Package reddit implements the feed listing capability over the public reddit JSON API.
package reddit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/r3/RedditImageDownloader/constant"
	"github.com/r3/RedditImageDownloader/log"
	"github.com/r3/RedditImageDownloader/network"
)

// ErrResolutionFailed marks transient listing failures: connection errors,
// timeouts and non-success responses while resolving a feed or paging its
// submissions. Callers convert it into "skip this feed" decisions.
var ErrResolutionFailed = errors.New("feed resolution failed")

// Submission is a single posted item with a score and a linked URL.
// Consumed read-only; the pipeline never mutates it.
type Submission struct {
	Title     string
	URL       string
	Score     int
	Subreddit string
}

// Subreddit carries the resolved metadata of a feed.
type Subreddit struct {
	Name        string
	DisplayName string
}

// Lister is the capability interface the feed walker depends on.
type Lister interface {
	// Subreddit resolves feed metadata by name.
	Subreddit(name string) (*Subreddit, error)

	// Top lists up to limit top-of-all-time submissions in descending score order.
	Top(name string, limit int) ([]*Submission, error)
}

// Client talks to the public reddit JSON API.
type Client struct {
	// BaseURL of the API, without a trailing slash. Overridable for tests.
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a Client backed by the shared network client.
func NewClient() *Client {
	return &Client{
		BaseURL: "https://www.reddit.com",
		HTTP:    network.Client,
	}
}

// aboutResponse mirrors the /r/<name>/about.json payload.
type aboutResponse struct {
	Kind string `json:"kind"`
	Data struct {
		DisplayName string `json:"display_name"`
	} `json:"data"`
}

// listingResponse mirrors the /r/<name>/top.json payload.
type listingResponse struct {
	Kind string `json:"kind"`
	Data struct {
		Children []struct {
			Data struct {
				Title     string `json:"title"`
				URL       string `json:"url"`
				Score     int    `json:"score"`
				Subreddit string `json:"subreddit"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Subreddit resolves feed metadata once per call. Transient failures are
// wrapped in ErrResolutionFailed.
func (c *Client) Subreddit(name string) (*Subreddit, error) {
	var about aboutResponse
	endpoint := fmt.Sprintf("%s/r/%s/about.json", c.BaseURL, name)
	if err := c.getJSON(endpoint, &about); err != nil {
		return nil, err
	}

	if about.Data.DisplayName == "" {
		return nil, fmt.Errorf("%w: subreddit %q does not exist", ErrResolutionFailed, name)
	}

	log.Debugf("Fetched subreddit: %s", about.Data.DisplayName)
	return &Subreddit{Name: name, DisplayName: about.Data.DisplayName}, nil
}

// Top lists the top-of-all-time submissions of a feed, best first.
func (c *Client) Top(name string, limit int) ([]*Submission, error) {
	var listing listingResponse
	endpoint := fmt.Sprintf("%s/r/%s/top.json?t=all&limit=%d", c.BaseURL, name, limit)
	if err := c.getJSON(endpoint, &listing); err != nil {
		return nil, err
	}

	submissions := make([]*Submission, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		submissions = append(submissions, &Submission{
			Title:     child.Data.Title,
			URL:       child.Data.URL,
			Score:     child.Data.Score,
			Subreddit: child.Data.Subreddit,
		})
	}

	return submissions, nil
}

// getJSON performs one blocking GET and decodes the body into out.
func (c *Client) getJSON(endpoint string, out any) error {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Warnf("reddit request failed: %v", err)
		return fmt.Errorf("%w: %v", ErrResolutionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warnf("reddit returned status %d for %s", resp.StatusCode, endpoint)
		return fmt.Errorf("%w: status %d", ErrResolutionFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrResolutionFailed, err)
	}

	// A malformed payload is not a transient condition, so it is surfaced as-is.
	return json.Unmarshal(body, out)
}
