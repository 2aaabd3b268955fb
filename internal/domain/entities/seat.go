// Package entities contains core domain data structures.
package entities

// Seat is one physical seat in the office. Reference data: rows are
// created and removed by an administrative process, never by this service.
type Seat struct {
	ID    int64  `json:"id"`
	Label string `json:"label"` // unique, orderable display label (e.g. "A-03")
	Area  string `json:"area"`
	Type  string `json:"type"`
}
