// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Download Destination - these keys govern where files land and how name collisions are resolved.
const (
	DownloadsDir               = "downloads.dir"
	DownloadsMaxNameLength     = "downloads.max_name_length"
	DownloadsOverwrite         = "downloads.overwrite"
	DownloadsSkipCollisions    = "downloads.skip_collisions"
	DownloadsMaxUniqueAttempts = "downloads.max_unique_attempts"
)

// Feed Selection - these keys configure which feeds are walked and how deep.
const (
	FeedsList         = "feeds.list"
	FeedsLimitPerFeed = "feeds.limit_per_feed"
)

// Score Filtering - these keys select the score predicate applied to submissions.
const (
	ScoreMinimum  = "score.minimum"
	ScoreRelative = "score.relative"
)

// Direct Link Source - these keys configure the extension-based passthrough source.
const (
	DirectLinkAcceptedExtensions = "directlink.accepted_extensions"
)

// Imgur Gallery Source - these keys hold credentials and the advisory quota floor.
const (
	ImgurClientID     = "imgur.client_id"
	ImgurClientSecret = "imgur.client_secret"
	ImgurMinQuota     = "imgur.min_quota"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern terminal output behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
