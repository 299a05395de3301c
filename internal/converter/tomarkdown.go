package converter

import (
	"regexp"
	"strings"

	"mvdan.cc/xurls/v2"
)

const (
	maxHeadingChars = 60
)

var (
	paragraphSplitRe = regexp.MustCompile(`\n\s*\n`)

	bulletedLineRe = regexp.MustCompile(`^\s*[-*]\s`)
	numberedLineRe = regexp.MustCompile(`^\s*\d+[.)]\s`)

	headingTrailingPunctRe = regexp.MustCompile(`[.,:;]$`)
	headingConjunctionRe   = regexp.MustCompile(`(?i)\b(and|or|but|that|with|from|by|as|on)$`)

	singleStarRe       = regexp.MustCompile(`(^|[^*])\*([^*\n]+)\*($|[^*])`)
	singleUnderscoreRe = regexp.MustCompile(`(^|[^_])_([^_\n]+)_($|[^_])`)
	htmlOpenTagRe      = regexp.MustCompile(`<(\w+)[^>]*>`)
	htmlCloseTagRe     = regexp.MustCompile(`</(\w+)>`)

	bareURLRe = mustBareURLRegexp()
)

func mustBareURLRegexp() *regexp.Regexp {
	rx, err := xurls.StrictMatchingScheme(`https?://`)
	if err != nil {
		panic(err)
	}
	return rx
}

// toMarkdown upgrades plain text to Markdown paragraph by paragraph:
// code-like paragraphs become fenced blocks, list-shaped paragraphs pass
// through, short standalone lines become headings, and remaining prose gets
// URL links, emphasis, and inline-code treatment.
func (c *Converter) toMarkdown(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var result []string

	for _, para := range paragraphSplitRe.Split(text, -1) {
		trimmed := strings.TrimSpace(para)
		if trimmed == "" {
			continue
		}
		lines := strings.Split(trimmed, "\n")

		switch {
		case isCodeBlock(para, lines):
			lang := detectLanguage(para)
			result = append(result, "```"+lang+"\n"+para+"\n```")
		case allLinesMatch(lines, bulletedLineRe), allLinesMatch(lines, numberedLineRe):
			result = append(result, enhanceFormatting(para))
		default:
			result = append(result, enhanceFormatting(markUpParagraph(lines)))
		}
	}

	return strings.Join(result, "\n\n")
}

func allLinesMatch(lines []string, re *regexp.Regexp) bool {
	matched := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !re.MatchString(line) {
			return false
		}
		matched = true
	}
	return matched
}

// markUpParagraph promotes heading-like lines: short, standalone, no trailing
// punctuation, not ending mid-thought on a conjunction. The first such line
// of a paragraph becomes a top-level heading, later ones second-level.
func markUpParagraph(lines []string) string {
	processed := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			processed = append(processed, "")
			continue
		}

		if looksLikeHeading(line) {
			if len(processed) == 0 {
				processed = append(processed, "# "+line)
			} else {
				processed = append(processed, "## "+line)
			}
			continue
		}

		processed = append(processed, line)
	}

	return strings.Join(processed, "\n")
}

func looksLikeHeading(line string) bool {
	return len(line) < maxHeadingChars &&
		!headingTrailingPunctRe.MatchString(line) &&
		!headingConjunctionRe.MatchString(line)
}

// enhanceFormatting applies inline Markdown features to prose and list
// paragraphs. Fenced code paragraphs never pass through here, which keeps
// their content byte-for-byte intact.
func enhanceFormatting(para string) string {
	para = singleStarRe.ReplaceAllString(para, "${1}**${2}**${3}")
	para = singleUnderscoreRe.ReplaceAllString(para, "${1}*${2}*${3}")

	para = bareURLRe.ReplaceAllStringFunc(para, func(url string) string {
		return "[" + url + "](" + url + ")"
	})

	para = htmlOpenTagRe.ReplaceAllString(para, "`<${1}>`")
	para = htmlCloseTagRe.ReplaceAllString(para, "`</${1}>`")

	return para
}
