// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Imagespider is the canonical application identifier used for filesystem paths and CLI branding.
	Imagespider = "imagespider"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent identifies the crawler to the services it reads from.
	UserAgent = Imagespider + "/" + Version + " (github.com/r3/RedditImageDownloader)"
)
