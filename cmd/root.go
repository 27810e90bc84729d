// Package cmd implements the command-line interface for imagespider.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/r3/RedditImageDownloader/color"
	"github.com/r3/RedditImageDownloader/constant"
	"github.com/r3/RedditImageDownloader/download"
	"github.com/r3/RedditImageDownloader/key"
	"github.com/r3/RedditImageDownloader/log"
	"github.com/r3/RedditImageDownloader/reddit"
	"github.com/r3/RedditImageDownloader/source"
	"github.com/r3/RedditImageDownloader/spider"
	"github.com/r3/RedditImageDownloader/style"
	"github.com/r3/RedditImageDownloader/util"
	"github.com/r3/RedditImageDownloader/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("dir", "d", "", "Destination directory for downloaded files")
	lo.Must0(viper.BindPFlag(key.DownloadsDir, rootCmd.PersistentFlags().Lookup("dir")))

	rootCmd.Flags().StringP("feeds", "f", "", "Path to the feed list file")
	lo.Must0(viper.BindPFlag(key.FeedsList, rootCmd.Flags().Lookup("feeds")))

	rootCmd.Flags().IntP("min-score", "m", 0, "Minimum score a submission must exceed")
	lo.Must0(viper.BindPFlag(key.ScoreMinimum, rootCmd.Flags().Lookup("min-score")))

	rootCmd.Flags().BoolP("relative", "r", false, "Treat the minimum score as a percentage of each feed's top score")
	lo.Must0(viper.BindPFlag(key.ScoreRelative, rootCmd.Flags().Lookup("relative")))
}

// rootCmd runs one crawl over the configured feeds and exits.
var rootCmd = &cobra.Command{
	Use:   constant.Imagespider,
	Short: "Download highly-rated images linked from configured community feeds",
	Long: constant.Imagespider + " walks a list of feeds, selects submissions above a score threshold,\n" +
		"resolves their linked media and downloads the files into a single flat directory.",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		names, err := spider.FeedNames(viper.GetString(key.FeedsList))
		handleErr(err)

		settings := download.SettingsFromConfig()
		crawler := spider.New(reddit.NewClient(), source.Default(settings))
		stats := crawler.Run(names)

		fmt.Printf("%s %s from %s (%s)\n",
			style.Fg(color.Green)("Done:"),
			util.Quantify(stats.Downloads, "file", "files"),
			util.Quantify(stats.Feeds, "feed", "feeds"),
			util.Quantify(stats.Failures, "failure", "failures"),
		)

		version.Notify()
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Red)("✗"), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
