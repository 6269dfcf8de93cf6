package parse

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Flatten collapses markup into a single line of text: every text node
// joined with single spaces, runs of whitespace collapsed. Script and style
// contents are dropped. Malformed markup degrades to whatever text the
// tokenizer recovers; Flatten never fails.
func Flatten(markup string) string {
	node, err := html.Parse(strings.NewReader(markup))
	if err != nil || node == nil {
		return collapseSpace(markup)
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)

	return collapseSpace(b.String())
}

// collapseSpace squeezes runs of whitespace to single spaces and trims.
func collapseSpace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
