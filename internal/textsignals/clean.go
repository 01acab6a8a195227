package textsignals

import (
	"html"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	mdLinkPattern  = regexp.MustCompile(`\[(.*?)\]\((https?://[^\s\)]+)\)`)
	urlPattern     = regexp.MustCompile(`https?://\S+|www\.\S+`)
	mentionPattern = regexp.MustCompile(`@\w+`)
	hashtagPattern = regexp.MustCompile(`#(\w+)`)
	htmlTagPattern = regexp.MustCompile(`<[^>]+>`)
)

// RemoveLinks strips markdown links down to their text and drops bare URLs.
func RemoveLinks(input string) string {
	input = mdLinkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// CleanText normalizes a caption before scoring: links and mentions are
// removed, hashtags reduced to their word, markdown rendered and flattened
// back to plain text, whitespace collapsed.
func CleanText(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	cleaned := RemoveLinks(text)
	cleaned = mentionPattern.ReplaceAllString(cleaned, "")
	cleaned = hashtagPattern.ReplaceAllString(cleaned, "$1")

	rendered := blackfriday.Run([]byte(cleaned), blackfriday.WithNoExtensions())
	cleaned = htmlTagPattern.ReplaceAllString(string(rendered), " ")
	cleaned = html.UnescapeString(cleaned)

	return strings.Join(strings.Fields(cleaned), " ")
}
