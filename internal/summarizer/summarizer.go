package summarizer

import "context"

// Mode selects how aggressively the summary compresses the input.
type Mode string

const (
	// ModeConcise targets roughly a third of the original length.
	ModeConcise Mode = "concise"
	// ModeDetailed keeps more context, up to roughly two thirds.
	ModeDetailed Mode = "detailed"
)

// Options tune a single summarization call.
type Options struct {
	// Mode is the compression preset. Defaults to ModeConcise.
	Mode Mode
	// MaxLength caps the summary word count when positive.
	MaxLength int
}

// Result carries the summary together with word-count statistics.
type Result struct {
	Summary        string
	OriginalLength int
	SummaryLength  int
}

// Summarizer produces a summary for a given input text.
type Summarizer interface {
	Summarize(ctx context.Context, text string, opts Options) (Result, error)
}

// IsValidMode reports whether m is one of the supported presets.
func IsValidMode(m Mode) bool {
	return m == ModeConcise || m == ModeDetailed
}
