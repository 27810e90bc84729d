package download

import (
	"github.com/r3/RedditImageDownloader/key"
	"github.com/spf13/viper"
)

// Settings captures the download destination and collision policy.
// Resolved once at startup and shared by reference across every Downloadable,
// replacing the implicit process-wide mutable state of older revisions.
type Settings struct {
	// DestDir is the flat directory all files land in.
	DestDir string

	// MaxNameLength bounds the basename segment of generated filenames.
	MaxNameLength int

	// Overwrite replaces an existing file on collision.
	Overwrite bool

	// SkipCollisions abandons the download on collision. Wins over Overwrite.
	SkipCollisions bool

	// MaxUniqueAttempts bounds random-digit probing for a free name.
	MaxUniqueAttempts int
}

// SettingsFromConfig materializes Settings from the global configuration.
func SettingsFromConfig() *Settings {
	return &Settings{
		DestDir:           viper.GetString(key.DownloadsDir),
		MaxNameLength:     viper.GetInt(key.DownloadsMaxNameLength),
		Overwrite:         viper.GetBool(key.DownloadsOverwrite),
		SkipCollisions:    viper.GetBool(key.DownloadsSkipCollisions),
		MaxUniqueAttempts: viper.GetInt(key.DownloadsMaxUniqueAttempts),
	}
}
