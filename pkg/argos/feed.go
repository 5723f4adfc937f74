package argos

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/frostholm/medaltrack/pkg/medal"
)

const (
	medalTableURL = "https://www.olympics.com/en/milano-cortina-2026/medals"
	wikipediaURL  = "https://en.wikipedia.org/wiki/2026_Winter_Olympics_medal_table"

	highlightColor = "#3584e4"
	dropdownSize   = "11"
)

// Build assembles the full widget feed: a summary line for the bar (the home
// country's tally when it has medals, otherwise the leader's), then the
// itemized dropdown with the home row highlighted, a totals row, and footer
// links.
func Build(entries []medal.Entry, homeCode string) *Feed {
	var f Feed

	summary := entries[0]
	if home, ok := medal.Find(entries, homeCode); ok && home.Total > 0 {
		summary = home
	}
	f.Add(Text(fmt.Sprintf("🏅 %s %d🥇 %d🥈 %d🥉",
		summary.Code, summary.Gold, summary.Silver, summary.Bronze), Refresh()))

	f.Add(Separator())
	f.Add(Text("🏔️  Milano Cortina 2026", Href(medalTableURL), Size("12")))
	f.Add(Separator())

	f.Add(mono(tableRow("#", "Country", "🥇", "🥈", "🥉", "Tot")))
	f.Add(Separator())

	for _, e := range entries {
		row := tableRow(fmt.Sprint(e.Rank), e.Country,
			fmt.Sprint(e.Gold), fmt.Sprint(e.Silver), fmt.Sprint(e.Bronze), fmt.Sprint(e.Total))
		if e.Code == homeCode {
			f.Add(Text(row, Font("monospace"), Size(dropdownSize), Color(highlightColor)))
			continue
		}
		f.Add(mono(row))
	}

	gold, silver, bronze, total := medal.Totals(entries)
	f.Add(Separator())
	f.Add(mono(tableRow("", "Total",
		fmt.Sprint(gold), fmt.Sprint(silver), fmt.Sprint(bronze), fmt.Sprint(total))))

	f.Add(Separator())
	f.Add(Text("Open Medal Table", Href(medalTableURL)))
	f.Add(Text("Open Wikipedia", Href(wikipediaURL)))
	f.Add(Text("Refresh", Refresh()))

	return &f
}

// BuildError assembles the fixed degraded feed the host gets when fetching
// or parsing failed. Always well-formed: a summary, a separator, an error
// line, and a retry affordance.
func BuildError() *Feed {
	var f Feed
	f.Add(Text("🏅 ???", Refresh()))
	f.Add(Separator())
	f.Add(Text("Failed to fetch medal data", Color("#ff0000")))
	f.Add(Text("Click to retry", Refresh()))
	return &f
}

// mono wraps a dropdown table row in the monospace font hints.
func mono(text string) Line {
	return Text(text, Font("monospace"), Size(dropdownSize))
}

// tableRow lays out one dropdown row with display-width aware padding.
func tableRow(rank, country, gold, silver, bronze, total string) string {
	return strings.Join([]string{
		runewidth.FillRight(rank, 3),
		" " + runewidth.FillRight(country, 20),
		runewidth.FillLeft(gold, 3),
		runewidth.FillLeft(silver, 3),
		runewidth.FillLeft(bronze, 3),
		runewidth.FillLeft(total, 4),
	}, " ")
}
