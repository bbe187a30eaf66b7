package catalog

import (
	"fmt"
	"strings"
)

// BioFileName is the biography fragment stored in each designer directory.
const BioFileName = "bio.html"

// bioPlaceholder marks pages that still need to be completed by hand.
const bioPlaceholder = "N/A"

// RenderBio produces the bio.html fragment for a designer. The second
// return value reports whether there is anything to write:
//
//   - bio supplied: a paragraph with the bio text, plus a second paragraph
//     of pipe-separated links when urls are given.
//   - no bio but the file already exists: nothing to write, keep the file.
//   - no bio and no file yet: the placeholder, to be completed manually.
func RenderBio(bio string, urls []string, existingFilePresent bool) (string, bool) {
	if bio != "" {
		html := fmt.Sprintf("<p>%s</p>", bio)
		if len(urls) > 0 {
			hrefs := make([]string, 0, len(urls))
			for _, u := range urls {
				hrefs = append(hrefs, fmt.Sprintf("<a href=%s>%s</a>", u, anchorText(u)))
			}
			html += fmt.Sprintf("\n<p>%s</p>", strings.Join(hrefs, " | "))
		}
		return html, true
	}
	if existingFilePresent {
		return "", false
	}
	return bioPlaceholder, true
}

// anchorText strips everything up to and including the first "//" so the
// visible text reads "example.com/a" rather than "https://example.com/a".
func anchorText(u string) string {
	if i := strings.Index(u, "//"); i >= 0 {
		return u[i+2:]
	}
	return u
}

// ParseURLs splits a whitespace-separated link list into absolute URLs,
// prefixing "https://" onto tokens that do not already start with "http".
// Tokens that do start with "http" pass through unchanged, even when
// otherwise malformed.
func ParseURLs(s string) []string {
	tokens := strings.Fields(s)
	urls := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !strings.HasPrefix(token, "http") {
			token = "https://" + token
		}
		urls = append(urls, token)
	}
	return urls
}
