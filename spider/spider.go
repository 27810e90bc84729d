// Package spider walks configured feeds and drives the resolve-and-download pipeline.
package spider

import (
	"errors"

	"github.com/r3/RedditImageDownloader/download"
	"github.com/r3/RedditImageDownloader/key"
	"github.com/r3/RedditImageDownloader/log"
	"github.com/r3/RedditImageDownloader/reddit"
	"github.com/r3/RedditImageDownloader/source"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Spider iterates feeds sequentially, applies the score predicate and feeds
// qualifying submissions into the resolver registry. Strictly single-threaded;
// its caches live for the process and are never refreshed mid-run.
type Spider struct {
	lister   reddit.Lister
	registry *source.Registry

	limitPerFeed int
	minimum      int
	relative     bool

	// Per-feed caches, keyed by feed name. Failed top-score lookups are
	// cached as absent so the API is queried once per feed either way.
	fetchedFeeds map[string]*reddit.Subreddit
	topScores    map[string]mo.Option[int]
}

// Stats summarizes one crawl.
type Stats struct {
	Feeds       int
	Submissions int
	Downloads   int
	Failures    int
}

// New constructs a Spider over the given feed lister and resolver registry,
// reading its thresholds from the global configuration.
func New(lister reddit.Lister, registry *source.Registry) *Spider {
	return &Spider{
		lister:       lister,
		registry:     registry,
		limitPerFeed: viper.GetInt(key.FeedsLimitPerFeed),
		minimum:      viper.GetInt(key.ScoreMinimum),
		relative:     viper.GetBool(key.ScoreRelative),
		fetchedFeeds: make(map[string]*reddit.Subreddit),
		topScores:    make(map[string]mo.Option[int]),
	}
}

// Run walks the feeds in order. No error aborts the crawl: feed resolution
// failures skip the feed, submission resolution failures skip the
// submission, fetch failures skip the file.
func (s *Spider) Run(feedNames []string) *Stats {
	stats := &Stats{}

	for _, name := range feedNames {
		s.walkFeed(name, stats)
	}

	log.Info("Done processing feeds")
	return stats
}

// walkFeed pages through one feed's top submissions in descending score
// order, stopping at the first submission whose score is insufficient.
func (s *Spider) walkFeed(name string, stats *Stats) {
	feed, err := s.feed(name)
	if err != nil {
		log.Errorf("Failed to get feed '%s': %v", name, err)
		return
	}
	stats.Feeds++

	submissions, err := s.lister.Top(name, s.limitPerFeed)
	if err != nil {
		log.Warnf("Couldn't query submissions for '%s', skipping it: %v", name, err)
		return
	}

	for _, submission := range submissions {
		log.Infof("Working on feed '%s' processing: %s", feed.DisplayName, submission.Title)

		if !s.scoreSufficient(submission) {
			log.Infof("Insufficient score on submission, skipping '%s' and all remaining submissions in feed: %s",
				submission.Title, name)
			break
		}

		stats.Submissions++
		s.pullSubmission(submission, stats)
	}
}

// pullSubmission resolves one submission's URL and pulls every resulting
// Downloadable, tagging each with the feed's display name first.
func (s *Spider) pullSubmission(submission *reddit.Submission, stats *Stats) {
	downloadables, err := s.registry.FromURL(submission.URL)
	if err != nil {
		log.Errorf("Couldn't resolve submission '%s', skipping it: %v", submission.Title, err)
		return
	}

	for _, d := range downloadables {
		log.Infof("Downloading from URL: %s", d.URL())
		d.SetFeedName(submission.Subreddit)

		if err := d.Pull(); err != nil {
			if !errors.Is(err, download.ErrSkipped) {
				stats.Failures++
			}
			log.Warnf("Pull failed for URL %s: %v", d.URL(), err)
			continue
		}
		stats.Downloads++
	}
}

// feed resolves feed metadata once per process; failures are not cached so a
// later run of the same name would retry, but a failed feed is skipped whole.
func (s *Spider) feed(name string) (*reddit.Subreddit, error) {
	if cached, ok := s.fetchedFeeds[name]; ok {
		return cached, nil
	}

	feed, err := s.lister.Subreddit(name)
	if err != nil {
		return nil, err
	}

	s.fetchedFeeds[name] = feed
	return feed, nil
}
