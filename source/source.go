// Package source translates submission URLs into downloadable media references.
package source

import (
	"github.com/r3/RedditImageDownloader/download"
	"github.com/r3/RedditImageDownloader/log"
)

// Source defines the required capabilities for a media resolver.
type Source interface {
	// Name returns the unique identifier for the resolver.
	Name() string

	// Match reports whether this resolver handles the URL.
	// Purely syntactic (hostname or extension checks), side-effect free.
	Match(rawURL string) bool

	// DownloadablesFromURL resolves the URL into zero or more Downloadables.
	DownloadablesFromURL(rawURL string) ([]*download.Downloadable, error)
}

// Registry holds a fixed, ordered list of sources. The first whose Match
// returns true resolves the URL; the order is significant.
type Registry struct {
	sources []Source
}

// NewRegistry constructs a Registry trying the given sources in order.
func NewRegistry(sources ...Source) *Registry {
	return &Registry{sources: sources}
}

// FromURL resolves a submission URL through the first matching source.
// A URL no source matches yields zero Downloadables and no error.
func (r *Registry) FromURL(rawURL string) ([]*download.Downloadable, error) {
	for _, src := range r.sources {
		if !src.Match(rawURL) {
			continue
		}
		log.Debugf("Source '%s' matches URL: %s", src.Name(), rawURL)
		return src.DownloadablesFromURL(rawURL)
	}

	log.Debugf("No source matches URL: %s", rawURL)
	return nil, nil
}
