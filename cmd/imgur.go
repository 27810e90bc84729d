package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/r3/RedditImageDownloader/auth"
	"github.com/r3/RedditImageDownloader/color"
	"github.com/r3/RedditImageDownloader/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(imgurCmd)
	imgurCmd.Flags().BoolP("forget", "F", false, "Remove the stored imgur credentials from the system keyring")
}

// imgurCmd stores imgur API credentials in the system keyring.
var imgurCmd = &cobra.Command{
	Use:   "imgur",
	Short: "Store imgur API credentials in the system keyring",
	Long: `Prompt for an imgur API client id and secret and persist them in the system keyring.
The crawler falls back to these whenever the imgur.client_id configuration key is unset.`,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("forget")) {
			handleErr(auth.DeleteImgurCredentials())
			fmt.Println("Imgur credentials removed from the keyring")
			return
		}

		var clientID string
		err := survey.AskOne(&survey.Input{
			Message: "Imgur client id:",
		}, &clientID, survey.WithValidator(survey.Required))
		handleErr(err)

		var clientSecret string
		err = survey.AskOne(&survey.Password{
			Message: "Imgur client secret:",
		}, &clientSecret)
		handleErr(err)

		handleErr(auth.SetImgurCredentials(clientID, clientSecret))
		fmt.Printf("%s Imgur credentials stored in the keyring\n", style.Fg(color.Green)("✓"))
	},
}
