// internal/domain/models/stats.go
package models

// Stats is the application summary shown in the dashboard KPI counters.
// Every field is optional on the wire; a missing or null field decodes as 0.
type Stats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Accepted int64 `json:"accepted"`
	Rejected int64 `json:"rejected"`
}
