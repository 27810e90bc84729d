// Package util provides a collection of domain-agnostic utility functions and cross-platform helpers.
package util

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/exp/constraints"
)

// nonWord matches every character outside the \w class.
var nonWord = regexp.MustCompile(`\W`)

// StripNonWord removes all non-word characters from a string.
// Group identifiers embedded in filenames are sanitized with this.
func StripNonWord(s string) string {
	return nonWord.ReplaceAllString(s, "")
}

// SanitizeFeedName normalizes a feed display name for use as a filename segment:
// spaces become underscores and the result is lower-cased.
func SanitizeFeedName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

// Quantify returns a pluralized string representation of a count and its associated labels.
func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// FileStem extracts the base filename from a path, excluding all file extensions.
func FileStem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// Truncate keeps only the first max bytes of a string.
func Truncate(s string, max int) string {
	if max >= 0 && len(s) > max {
		return s[:max]
	}
	return s
}

// Ignore executes a function and explicitly discards its error return value.
func Ignore(f func() error) {
	_ = f()
}

// Max returns the maximum value among arguments.
func Max[T constraints.Ordered](items ...T) (max T) {
	if len(items) == 0 {
		return
	}
	max = items[0]
	for _, item := range items[1:] {
		if item > max {
			max = item
		}
	}
	return
}

// Min returns the minimum value among arguments.
func Min[T constraints.Ordered](items ...T) (min T) {
	if len(items) == 0 {
		return
	}
	min = items[0]
	for _, item := range items[1:] {
		if item < min {
			min = item
		}
	}
	return
}
