// Package text provides the pure text functions the license mapper
// delegates to: HTML to plain-text conversion, HTML entity unescaping, and
// license-text equivalence comparison.
package text

import (
	"html"
	"regexp"
	"strings"
	"sync"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	xhtml "golang.org/x/net/html"
)

// Pre-compiled regexes to avoid runtime compilation on every conversion.
var (
	scriptRe         = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRe          = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	excessiveLinesRe = regexp.MustCompile(`\n{3,}`)
)

var (
	converterOnce sync.Once
	converter     *md.Converter
)

func htmlConverter() *md.Converter {
	converterOnce.Do(func() {
		converter = md.NewConverter("", true, nil)
		converter.Use(plugin.GitHubFlavored())
	})
	return converter
}

// HTMLToPlain converts an HTML-flavored literal to its canonical plain-text
// form. Values with no markup pass through with only whitespace cleanup, so
// calling it on already-plain text is safe.
func HTMLToPlain(s string) string {
	if !strings.ContainsRune(s, '<') {
		return cleanWhitespace(html.UnescapeString(s))
	}

	plain, err := htmlConverter().ConvertString(s)
	if err != nil {
		// Fall back to tag stripping when the converter rejects the input.
		plain = stripTags(s)
	}
	return cleanWhitespace(plain)
}

// UnescapeEntities decodes HTML entity references (&amp;, &#39;, ...) into
// their literal characters. Historical header values were stored escaped
// regardless of whether the rest of the record carried markup, so the
// mapper applies this unconditionally to headers.
func UnescapeEntities(s string) string {
	return html.UnescapeString(s)
}

// stripTags extracts the concatenated text content of s, dropping script
// and style bodies first.
func stripTags(s string) string {
	s = scriptRe.ReplaceAllString(s, "")
	s = styleRe.ReplaceAllString(s, "")

	doc, err := xhtml.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var sb strings.Builder
	var walk func(*xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.TextNode {
			sb.WriteString(n.Data)
		}
		if n.Type == xhtml.ElementNode && (n.Data == "p" || n.Data == "br" || n.Data == "div") {
			sb.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return sb.String()
}

// cleanWhitespace trims trailing space per line and collapses runs of blank
// lines left behind by markup removal.
func cleanWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	s = strings.Join(lines, "\n")
	s = excessiveLinesRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
