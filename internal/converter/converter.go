// Package converter transforms plain text into Markdown and Markdown back
// into plain text. Both directions are pure: the same input and mode always
// produce the same output.
package converter

import (
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Mode is the conversion direction.
type Mode string

const (
	ModeToMarkdown Mode = "to_markdown"
	ModeToText     Mode = "to_text"
)

// ErrConversionFailed wraps any internal conversion error. Callers get no
// partial output.
var ErrConversionFailed = errors.New("conversion failed")

// Converter converts between plain text and Markdown.
type Converter struct {
	md goldmark.Markdown
}

func New() *Converter {
	return &Converter{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Convert transforms text in the given direction.
func (c *Converter) Convert(text string, mode Mode) (string, error) {
	switch mode {
	case ModeToMarkdown:
		return c.toMarkdown(text), nil
	case ModeToText:
		result, err := c.toText(text)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrConversionFailed, err)
		}
		return result, nil
	default:
		return "", fmt.Errorf("%w: unsupported mode %q", ErrConversionFailed, mode)
	}
}

// IsValidMode reports whether m is a supported conversion direction.
func IsValidMode(m Mode) bool {
	return m == ModeToMarkdown || m == ModeToText
}
