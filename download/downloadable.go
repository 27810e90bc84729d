// Package download implements resolved media references and the fetch-and-place pipeline.
package download

import (
	"errors"
	"fmt"
	"math/rand"
	"path"
	"path/filepath"
	"strings"

	"github.com/r3/RedditImageDownloader/filesystem"
	"github.com/r3/RedditImageDownloader/log"
	"github.com/r3/RedditImageDownloader/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

var (
	// ErrFetchFailed marks a failed download request or a non-success status.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrCollisionUnresolved is returned when random-digit probing exhausts
	// its attempt budget without finding a free filename.
	ErrCollisionUnresolved = errors.New("collision unresolved")

	// ErrSkipped is returned when an existing file is kept under the
	// skip-colliding-names policy.
	ErrSkipped = errors.New("existing file kept")
)

// Downloadable is a resolved, not-yet-fetched media reference plus its
// naming and collision logic. Constructed per resolved URL, assigned a feed
// name once, pulled, and discarded.
type Downloadable struct {
	url      string
	ordinal  string
	groupID  string
	feedName string

	settings   *Settings
	cachedName mo.Option[string]
}

// New constructs a Downloadable for a single resolved URL.
// Any query string is stripped from the URL.
func New(settings *Settings, rawURL string) *Downloadable {
	return &Downloadable{
		url:      stripQuery(rawURL),
		settings: settings,
	}
}

// NewGrouped constructs a Downloadable that belongs to a group such as an
// album: ordinal is its 1-based position, groupID ties the members together.
// Non-word characters are removed from the group identifier.
func NewGrouped(settings *Settings, rawURL string, ordinal int, groupID string) *Downloadable {
	d := New(settings, rawURL)
	d.ordinal = fmt.Sprintf("%03d", ordinal)
	d.groupID = util.StripNonWord(groupID)
	return d
}

func stripQuery(rawURL string) string {
	url, _, _ := strings.Cut(rawURL, "?")
	return url
}

// URL returns the effective (query-stripped) URL.
func (d *Downloadable) URL() string {
	return d.url
}

// SetFeedName tags the Downloadable with the display name of the feed it came
// from, sanitized for filenames. Invalidates the cached safe filename.
func (d *Downloadable) SetFeedName(name string) {
	d.feedName = util.SanitizeFeedName(name)
	d.cachedName = mo.None[string]()
	log.Debugf("Feed name changed to %s, invalidating cached name", d.feedName)
}

// SafeFilename derives the destination filename from the feed name, group id,
// ordinal and the URL basename, joined by dashes with empty segments omitted,
// lower-cased, original extension preserved (case-folded separately).
//
// With forceUnique set, a literal dash and then single random decimal digits
// are appended until the resulting path does not exist, up to the configured
// attempt budget; exhausting it returns ErrCollisionUnresolved.
// The result is cached until the feed name is reassigned.
func (d *Downloadable) SafeFilename(forceUnique bool) (string, error) {
	if cached, ok := d.cachedName.Get(); ok && !forceUnique {
		log.Debugf("Returning cached name: %s", cached)
		return cached, nil
	}

	extension := strings.ToLower(path.Ext(d.url))
	basename := util.Truncate(util.FileStem(d.url), d.settings.MaxNameLength)

	segments := []string{d.feedName, d.groupID, d.ordinal, basename}
	filename := strings.ToLower(strings.Join(lo.Compact(segments), "-"))

	if forceUnique {
		log.Debug("Generating a unique filename for Downloadable")

		unique, err := d.probeUnique(filename, extension)
		if err != nil {
			return "", err
		}
		filename = unique
	}

	log.Debugf("Suggesting name '%s' for: %s", filename+extension, d.url)
	d.cachedName = mo.Some(filename + extension)
	return filename + extension, nil
}

// probeUnique appends random decimal digits until dir/filename+extension does
// not exist on disk. Linear probing, not cryptographically unique.
func (d *Downloadable) probeUnique(filename, extension string) (string, error) {
	exists := func(name string) bool {
		found, err := filesystem.API().Exists(filepath.Join(d.settings.DestDir, name+extension))
		return err == nil && found
	}

	if !exists(filename) {
		return filename, nil
	}

	filename += "-"
	for attempt := 0; attempt < d.settings.MaxUniqueAttempts; attempt++ {
		filename += fmt.Sprint(rand.Intn(10))
		if !exists(filename) {
			return filename, nil
		}
	}

	return "", fmt.Errorf("%w: exhausted %d attempts for %s", ErrCollisionUnresolved, d.settings.MaxUniqueAttempts, d.url)
}

// Destination returns the full path the file will land at.
func (d *Downloadable) Destination() (string, error) {
	filename, err := d.SafeFilename(false)
	if err != nil {
		return "", err
	}
	return filepath.Join(d.settings.DestDir, filename), nil
}
