package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/r3/RedditImageDownloader/color"
	"github.com/r3/RedditImageDownloader/constant"
	"github.com/r3/RedditImageDownloader/key"
	"github.com/r3/RedditImageDownloader/style"
	"github.com/r3/RedditImageDownloader/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Imagespider + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.DownloadsDir, where.Downloads(), "Destination directory for downloaded files.\nAll files land in this single flat directory")
	register(key.DownloadsMaxNameLength, 80, "Maximum length of the basename segment of generated filenames.\nLonger basenames are truncated; the extension is always preserved")
	register(key.DownloadsOverwrite, false, "Replace an existing file when a generated name collides with it")
	register(key.DownloadsSkipCollisions, false, "Skip the download entirely when a generated name collides with an existing file.\nTakes precedence over downloads.overwrite")
	register(key.DownloadsMaxUniqueAttempts, 64, "Upper bound on random-digit probing when searching for a free filename.\nExceeding it abandons the download")
	register(key.FeedsList, where.FeedList(), "Path to the feed list file.\nOne feed name per line, lines starting with # are ignored")
	register(key.FeedsLimitPerFeed, 40, "Maximum number of top submissions to page through per feed")
	register(key.ScoreMinimum, 0, "Minimum score a submission must exceed to be downloaded.\nInterpreted as a percentage of the feed's top score when score.relative is set")
	register(key.ScoreRelative, false, "Compare submission scores relative to the highest-rated submission of the same feed")
	register(key.DirectLinkAcceptedExtensions, []string{".jpg", ".jpeg", ".png", ".gif"}, "File extensions accepted by the direct-link source")
	register(key.ImgurClientID, "", "Imgur API client id.\nFalls back to the system keyring when unset; type \"imagespider imgur\" to store it there")
	register(key.ImgurClientSecret, "", "Imgur API client secret.\nFalls back to the system keyring when unset")
	register(key.ImgurMinQuota, 1, "Advisory lower bound on the remaining imgur API quota pair")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "error", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"bold":   style.Bold,
	"purple": style.Fg(color.Purple),
	"blue":   style.Fg(color.Blue),
	"value":  func(k string) any { return viper.Get(k) },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}`))
