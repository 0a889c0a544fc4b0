package term

import (
	"html"
	"strings"
)

// htmlToText degrades an HTML fragment to plain text: block-ish breaks
// become newlines, tags are dropped, entities are decoded. Good enough for
// the fragments views emit; this is a terminal, not a browser.
func htmlToText(fragment string) string {
	for _, br := range []string{"<br>", "<br/>", "<br />", "</p>", "</div>", "</li>", "</h1>", "</h2>", "</h3>"} {
		fragment = strings.ReplaceAll(fragment, br, br+"\n")
	}
	var b strings.Builder
	inTag := false
	for _, r := range fragment {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return html.UnescapeString(strings.TrimRight(b.String(), "\n"))
}
