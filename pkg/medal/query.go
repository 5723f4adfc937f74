package medal

import "strings"

// Filter returns the entries whose country name or IOC code contains query,
// case-insensitively. An empty query keeps everything. Filtering preserves
// rank values and order; it runs before any top-N truncation.
func Filter(entries []Entry, query string) []Entry {
	if query == "" {
		return entries
	}
	q := strings.ToLower(query)
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Country), q) ||
			strings.Contains(strings.ToLower(e.Code), q) {
			out = append(out, e)
		}
	}
	return out
}

// Top truncates entries to the first n. n <= 0 means no limit.
func Top(entries []Entry, n int) []Entry {
	if n <= 0 || len(entries) <= n {
		return entries
	}
	return entries[:n]
}

// Find returns the entry with the exact IOC code, if present.
func Find(entries []Entry, code string) (Entry, bool) {
	for _, e := range entries {
		if e.Code == code {
			return e, true
		}
	}
	return Entry{}, false
}

// Totals sums the visible entries for a totals row.
func Totals(entries []Entry) (gold, silver, bronze, total int) {
	for _, e := range entries {
		gold += e.Gold
		silver += e.Silver
		bronze += e.Bronze
		total += e.Total
	}
	return gold, silver, bronze, total
}
