// Package main is the entry point for imagespider.
package main

import (
	"github.com/r3/RedditImageDownloader/cmd"
	"github.com/r3/RedditImageDownloader/config"
	"github.com/r3/RedditImageDownloader/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
