package source

import (
	"github.com/r3/RedditImageDownloader/auth"
	"github.com/r3/RedditImageDownloader/download"
	"github.com/r3/RedditImageDownloader/imgur"
	"github.com/r3/RedditImageDownloader/key"
	"github.com/r3/RedditImageDownloader/log"
	"github.com/spf13/viper"
)

// Default builds the registry with the full ordered source list:
// directlink, gfycat, imgur, deviantart.
func Default(settings *download.Settings) *Registry {
	return NewRegistry(
		NewDirectLink(settings, viper.GetStringSlice(key.DirectLinkAcceptedExtensions)),
		NewGfycat(settings),
		NewImgur(settings, imgurClient()),
		NewDeviantArt(settings),
	)
}

// imgurClient configures the imgur API client from the global configuration,
// falling back to credentials stored in the system keyring.
func imgurClient() *imgur.Client {
	clientID := viper.GetString(key.ImgurClientID)
	clientSecret := viper.GetString(key.ImgurClientSecret)

	if clientID == "" {
		stored, storedSecret, err := auth.GetImgurCredentials()
		if err != nil {
			log.Debug("No imgur credentials in config or keyring")
		} else {
			clientID, clientSecret = stored, storedSecret
		}
	}

	return imgur.NewClient(clientID, clientSecret)
}
