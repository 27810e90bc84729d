package cmd

import (
	"github.com/r3/RedditImageDownloader/constant"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

// versionCmd prints the current application version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the application version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(constant.Imagespider + " version " + constant.Version)
	},
}
