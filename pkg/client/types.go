package client

// SummaryType is the compression preset for a summary request.
type SummaryType string

const (
	TypeConcise  SummaryType = "concise"
	TypeDetailed SummaryType = "detailed"
)

// ConversionMode is the direction of a markdown conversion.
type ConversionMode string

const (
	ModeToMarkdown ConversionMode = "to_markdown"
	ModeToText     ConversionMode = "to_text"
)

type SummaryRequest struct {
	Text      string      `json:"text"`
	Type      SummaryType `json:"type,omitempty"`
	MaxLength int         `json:"max_length,omitempty"`
}

type SummaryResponse struct {
	Summary             string   `json:"summary"`
	OriginalLength      int      `json:"original_length"`
	SummaryLength       int      `json:"summary_length"`
	ID                  int64    `json:"id,omitempty"`
	ReductionPercentage *float64 `json:"reduction_percentage,omitempty"`
	Warning             string   `json:"warning,omitempty"`
}

// Reduction returns the word-count reduction percentage. When the server
// omits reduction_percentage it is computed from the lengths, clamped to 0
// for empty originals.
func (r *SummaryResponse) Reduction() float64 {
	if r.ReductionPercentage != nil {
		return *r.ReductionPercentage
	}
	if r.OriginalLength <= 0 {
		return 0
	}
	return float64(r.OriginalLength-r.SummaryLength) / float64(r.OriginalLength) * 100
}

type MarkdownRequest struct {
	Text string         `json:"text"`
	Mode ConversionMode `json:"mode,omitempty"`
}

type MarkdownResponse struct {
	Result  string `json:"result"`
	Warning string `json:"warning,omitempty"`
}

// HealthResponse mirrors the health payload. Stats is left loosely typed;
// its contents are implementation-defined.
type HealthResponse struct {
	Status     string         `json:"status"`
	Database   string         `json:"database,omitempty"`
	APIVersion string         `json:"api_version,omitempty"`
	Stats      map[string]any `json:"stats,omitempty"`
}
