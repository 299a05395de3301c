package converter

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var collapseNewlinesRe = regexp.MustCompile(`\n{3,}`)

// toText strips Markdown down to plain text. The Markdown is rendered to
// HTML first and the text is extracted from the document tree, which handles
// nested emphasis, links, and fenced blocks without fragile line regexes.
func (c *Converter) toText(markdownText string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdownText), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		return "", fmt.Errorf("parse rendered HTML: %w", err)
	}

	var b strings.Builder
	doc.Find("body").Children().Each(func(_ int, s *goquery.Selection) {
		renderBlock(&b, s)
	})

	text := collapseNewlinesRe.ReplaceAllString(b.String(), "\n\n")

	return strings.TrimSpace(text), nil
}

func renderBlock(b *strings.Builder, s *goquery.Selection) {
	switch goquery.NodeName(s) {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		b.WriteString("\n\n")
		b.WriteString(strings.TrimSpace(renderInline(s)))
		b.WriteString("\n")
	case "p", "div":
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(renderInline(s)))
		b.WriteString("\n")
	case "ul":
		b.WriteString("\n")
		s.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
			b.WriteString("- ")
			b.WriteString(strings.TrimSpace(renderInline(li)))
			b.WriteString("\n")
		})
	case "ol":
		b.WriteString("\n")
		s.ChildrenFiltered("li").Each(func(i int, li *goquery.Selection) {
			fmt.Fprintf(b, "%d. %s\n", i+1, strings.TrimSpace(renderInline(li)))
		})
	case "pre":
		// Fenced block contents stay verbatim, fences and language tag gone.
		b.WriteString("\n\n")
		b.WriteString(strings.TrimRight(s.Text(), "\n"))
		b.WriteString("\n\n")
	case "blockquote":
		s.Children().Each(func(_ int, child *goquery.Selection) {
			renderBlock(b, child)
		})
	default:
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(s.Text()))
		b.WriteString("\n")
	}
}

// renderInline flattens the inline content of a node: emphasis markers drop
// away, links become "text (url)", inline code keeps its backticks.
func renderInline(s *goquery.Selection) string {
	var b strings.Builder

	s.Contents().Each(func(_ int, c *goquery.Selection) {
		switch goquery.NodeName(c) {
		case "#text":
			b.WriteString(c.Text())
		case "a":
			text := strings.TrimSpace(c.Text())
			href, _ := c.Attr("href")
			switch {
			case text == "":
				b.WriteString(href)
			case href == "" || text == href:
				b.WriteString(text)
			default:
				fmt.Fprintf(&b, "%s (%s)", text, href)
			}
		case "code":
			b.WriteString("`")
			b.WriteString(c.Text())
			b.WriteString("`")
		case "br":
			b.WriteString("\n")
		case "img":
			if alt, ok := c.Attr("alt"); ok {
				b.WriteString(alt)
			}
		default:
			b.WriteString(renderInline(c))
		}
	})

	return b.String()
}
