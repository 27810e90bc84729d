package spider

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/r3/RedditImageDownloader/filesystem"
)

// FeedNames reads the plain-text feed list: one feed name per line, in file
// order, lines starting with '#' and blank lines ignored.
func FeedNames(path string) ([]string, error) {
	content, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, err
	}

	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}

	return names, scanner.Err()
}
