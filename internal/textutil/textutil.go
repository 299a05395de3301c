// Package textutil provides small text normalization helpers shared by the
// summarizer and the HTTP handlers.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	whitespaceRe       = regexp.MustCompile(`\s+`)
	spaceBeforePunctRe = regexp.MustCompile(`\s+([.,;:!?)])`)
	spaceAfterOpenRe   = regexp.MustCompile(`(\()\s+`)
	repeatedPunctRe    = regexp.MustCompile(`([.,!?]){2,}`)
	urlRe              = regexp.MustCompile(`https?://\S+`)
)

// CleanText normalizes whitespace and punctuation spacing and strips bare
// URLs. The summarizer scores cleaned text so that formatting noise does not
// skew sentence weights.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = whitespaceRe.ReplaceAllString(text, " ")
	text = spaceBeforePunctRe.ReplaceAllString(text, "$1")
	text = spaceAfterOpenRe.ReplaceAllString(text, "$1")
	text = repeatedPunctRe.ReplaceAllString(text, "$1")
	text = urlRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// CountWords counts tokens that contain at least one letter, so punctuation
// and bare numbers are not counted as words.
func CountWords(text string) int {
	count := 0
	for _, token := range strings.Fields(text) {
		if strings.ContainsFunc(token, unicode.IsLetter) {
			count++
		}
	}
	return count
}

// Truncate cuts text to at most maxWords words, appending an ellipsis when
// anything was dropped.
func Truncate(text string, maxWords int, addEllipsis bool) string {
	if text == "" || maxWords <= 0 {
		return ""
	}

	words := strings.Fields(text)
	if len(words) <= maxWords {
		return text
	}

	truncated := strings.Join(words[:maxWords], " ")
	if addEllipsis {
		truncated += "..."
	}

	return truncated
}

// ReadingTime estimates reading time in minutes at the given words-per-minute
// pace.
func ReadingTime(text string, wpm int) float64 {
	if wpm <= 0 {
		return 0
	}

	wordCount := CountWords(text)
	if wordCount == 0 {
		return 0
	}

	return float64(wordCount) / float64(wpm)
}
