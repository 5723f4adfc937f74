package medal

import (
	"regexp"
	"sort"
	"strconv"
)

// --- Regexes used by the parser ---------------------------------------------

// commentRegex matches HTML comments, which hold commented-out placeholder
// rows (provisional codes) that must never count.
var commentRegex = regexp.MustCompile(`(?s)<!--.*?-->`)

// The medal-table infobox keys rows by field-prefixed IOC codes:
//
//	| gold_NOR = 5 | silver_NOR = 2 | bronze_NOR = 1
var (
	goldRegex   = regexp.MustCompile(`\|\s*gold_(\w+)\s*=\s*(\d+)`)
	silverRegex = regexp.MustCompile(`\|\s*silver_(\w+)\s*=\s*(\d+)`)
	bronzeRegex = regexp.MustCompile(`\|\s*bronze_(\w+)\s*=\s*(\d+)`)
)

// scanCounts collects per-code counts for one pattern family. A duplicated
// key overwrites, it does not sum: the last occurrence in the wikitext wins.
func scanCounts(re *regexp.Regexp, text string) map[string]int {
	counts := make(map[string]int)
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		counts[m[1]] = n
	}
	return counts
}

// Parse extracts ranked medal entries from medal-table wikitext.
//
// Malformed wikitext is not an error; it simply yields fewer (possibly zero)
// matches. Entries with a zero total are dropped, the rest are sorted by
// gold, silver, bronze descending with the IOC code as an alphabetical
// tie-break, and ranks are assigned with tied tallies sharing a rank.
func Parse(wikitext string) []Entry {
	clean := commentRegex.ReplaceAllString(wikitext, "")

	golds := scanCounts(goldRegex, clean)
	silvers := scanCounts(silverRegex, clean)
	bronzes := scanCounts(bronzeRegex, clean)

	codes := make(map[string]struct{})
	for c := range golds {
		codes[c] = struct{}{}
	}
	for c := range silvers {
		codes[c] = struct{}{}
	}
	for c := range bronzes {
		codes[c] = struct{}{}
	}

	entries := make([]Entry, 0, len(codes))
	for code := range codes {
		g, s, b := golds[code], silvers[code], bronzes[code]
		total := g + s + b
		if total == 0 {
			continue
		}
		entries = append(entries, Entry{
			Code:    code,
			Country: CountryName(code),
			Gold:    g,
			Silver:  s,
			Bronze:  b,
			Total:   total,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Gold != b.Gold {
			return a.Gold > b.Gold
		}
		if a.Silver != b.Silver {
			return a.Silver > b.Silver
		}
		if a.Bronze != b.Bronze {
			return a.Bronze > b.Bronze
		}
		return a.Code < b.Code
	})

	assignRanks(entries)
	return entries
}

// assignRanks gives the first entry rank 1; an entry tied with its immediate
// predecessor shares the predecessor's rank, otherwise its rank is its
// 1-based position. A run of three or more tied entries therefore skips
// ranks for the next distinct entry (1, 1, 1, 4), not strict competition
// ranking.
func assignRanks(entries []Entry) {
	for i := range entries {
		switch {
		case i == 0:
			entries[i].Rank = 1
		case entries[i].SameTally(entries[i-1]):
			entries[i].Rank = entries[i-1].Rank
		default:
			entries[i].Rank = i + 1
		}
	}
}
