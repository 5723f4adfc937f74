// Package medal defines the medal-table domain model and the parser that
// extracts it from MediaWiki wikitext. Entries are pure data; renderers
// decide presentation.
package medal

// Entry is one country's tally in the medal table.
type Entry struct {
	Rank    int    `json:"rank"`
	Code    string `json:"code"` // 3-letter IOC code
	Country string `json:"country"`
	Gold    int    `json:"gold"`
	Silver  int    `json:"silver"`
	Bronze  int    `json:"bronze"`
	Total   int    `json:"total"`
}

// SameTally reports whether two entries have identical medal triples.
// Entries with the same tally share a rank when adjacent in sort order.
func (e Entry) SameTally(o Entry) bool {
	return e.Gold == o.Gold && e.Silver == o.Silver && e.Bronze == o.Bronze
}
