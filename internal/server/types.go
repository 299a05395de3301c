package server

type summarizeRequest struct {
	Text      string `json:"text"`
	Type      string `json:"type"`
	MaxLength *int   `json:"max_length"`
}

type summarizeResponse struct {
	Summary        string `json:"summary"`
	OriginalLength int    `json:"original_length"`
	SummaryLength  int    `json:"summary_length"`
	ID             int64  `json:"id,omitempty"`
	Warning        string `json:"warning,omitempty"`
}

type markdownRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
}

type markdownResponse struct {
	Result  string `json:"result"`
	Warning string `json:"warning,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthStats struct {
	SummaryRecords         int64   `json:"summary_records"`
	ConversionRecords      int64   `json:"conversion_records"`
	CleanupIntervalSeconds float64 `json:"cleanup_interval_seconds"`
	MaxRecordsPerTable     int64   `json:"max_records_per_table"`
	DataTTLHours           float64 `json:"data_ttl_hours"`
}

type healthResponse struct {
	Status     string       `json:"status"`
	Database   string       `json:"database"`
	APIVersion string       `json:"api_version,omitempty"`
	Stats      *healthStats `json:"stats,omitempty"`
}
