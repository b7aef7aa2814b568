package data

// Health is the books API health report.
type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
