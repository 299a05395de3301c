package models

import "time"

// SummaryRecord is a stored summarization result. Records carry an
// expiration time and are removed by the cleanup scheduler.
type SummaryRecord struct {
	ID             int64
	OriginalText   string
	SummaryText    string
	OriginalLength int
	SummaryLength  int
	SummaryType    string
	CreatedAt      time.Time
	ExpiresAt      time.Time
}

// ConversionRecord is a stored markdown conversion result.
type ConversionRecord struct {
	ID             int64
	OriginalText   string
	ConvertedText  string
	ConversionType string
	CreatedAt      time.Time
	ExpiresAt      time.Time
}

// ReductionPercentage computes the word-count reduction from the original to
// the summary, clamped to 0 when the original is empty.
func (r SummaryRecord) ReductionPercentage() float64 {
	if r.OriginalLength <= 0 {
		return 0
	}
	return float64(r.OriginalLength-r.SummaryLength) / float64(r.OriginalLength) * 100
}
