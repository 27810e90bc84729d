package spider

import (
	"github.com/r3/RedditImageDownloader/log"
	"github.com/r3/RedditImageDownloader/reddit"
	"github.com/samber/mo"
)

// scoreSufficient evaluates the configured score predicate for a submission.
func (s *Spider) scoreSufficient(submission *reddit.Submission) bool {
	if s.relative {
		return s.relativeSufficient(submission)
	}
	return submission.Score > s.minimum
}

// relativeSufficient compares the submission's score against the highest
// score of its own feed, expressed as a percentage. An unavailable top score
// fails the predicate rather than raising.
func (s *Spider) relativeSufficient(submission *reddit.Submission) bool {
	top, ok := s.topScore(submission.Subreddit).Get()
	if !ok {
		return false
	}

	relative := float64(submission.Score) / float64(top) * 100
	log.Debugf("Relative score is %.1f, highest score in feed is %d", relative, top)
	return relative > float64(s.minimum)
}

// topScore returns the score of the single highest-rated submission of a
// feed, queried once per process. Lookup failures are cached as absent.
func (s *Spider) topScore(feedName string) mo.Option[int] {
	if cached, ok := s.topScores[feedName]; ok {
		return cached
	}

	result := mo.None[int]()
	submissions, err := s.lister.Top(feedName, 1)
	switch {
	case err != nil, len(submissions) == 0:
		log.Error("There was a problem querying the API, assuming score is too low")
	default:
		log.Debugf("Highest score in feed '%s' is %d", feedName, submissions[0].Score)
		result = mo.Some(submissions[0].Score)
	}

	s.topScores[feedName] = result
	return result
}
