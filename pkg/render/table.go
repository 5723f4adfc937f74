package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/frostholm/medaltrack/pkg/medal"
)

// Column widths for the medal table. Country is padded, not truncated, so an
// overlong name ("Individual Neutral Athletes") shifts its row instead of
// losing characters.
const (
	rankWidth    = 4
	countryWidth = 25
	codeWidth    = 5
	medalWidth   = 4
	totalWidth   = 5
	ruleWidth    = 58
)

// Table renders the human-readable medal table: header, one row per country,
// and a totals row summing the visible entries. Padding is display-width
// aware so the emoji medal columns line up.
type Table struct {
	theme Theme
}

// NewTable creates a table renderer with the given theme.
func NewTable(theme Theme) *Table {
	return &Table{theme: theme}
}

// Render formats the entries as a table. An empty list renders as a
// "no data" notice.
func (t *Table) Render(entries []medal.Entry) string {
	if len(entries) == 0 {
		return "No medal data found.\n"
	}

	var sb strings.Builder
	rule := "  " + strings.Repeat("-", ruleWidth)

	sb.WriteString("\n")
	sb.WriteString(t.theme.Bold.Render("  " + strings.Join([]string{
		runewidth.FillRight("#", rankWidth),
		runewidth.FillRight("Country", countryWidth),
		runewidth.FillRight("Code", codeWidth),
		runewidth.FillLeft("🥇", medalWidth),
		runewidth.FillLeft("🥈", medalWidth),
		runewidth.FillLeft("🥉", medalWidth),
		runewidth.FillLeft("Tot", totalWidth),
	}, " ")))
	sb.WriteString("\n")
	sb.WriteString(t.theme.Muted.Render(rule))
	sb.WriteString("\n")

	for _, e := range entries {
		sb.WriteString("  " + strings.Join([]string{
			t.theme.Muted.Render(runewidth.FillRight(fmt.Sprint(e.Rank), rankWidth)),
			t.theme.Country.Render(runewidth.FillRight(e.Country, countryWidth)),
			t.theme.Muted.Render(runewidth.FillRight(e.Code, codeWidth)),
			t.theme.Gold.Render(runewidth.FillLeft(fmt.Sprint(e.Gold), medalWidth)),
			t.theme.Silver.Render(runewidth.FillLeft(fmt.Sprint(e.Silver), medalWidth)),
			t.theme.Bronze.Render(runewidth.FillLeft(fmt.Sprint(e.Bronze), medalWidth)),
			t.theme.Bold.Render(runewidth.FillLeft(fmt.Sprint(e.Total), totalWidth)),
		}, " "))
		sb.WriteString("\n")
	}

	gold, silver, bronze, total := medal.Totals(entries)
	label := fmt.Sprintf("Totals (%d nations)", len(entries))

	sb.WriteString(t.theme.Muted.Render(rule))
	sb.WriteString("\n")
	sb.WriteString("  " + strings.Join([]string{
		strings.Repeat(" ", rankWidth),
		t.theme.Bold.Render(runewidth.FillRight(label, countryWidth)),
		strings.Repeat(" ", codeWidth),
		t.theme.Gold.Render(runewidth.FillLeft(fmt.Sprint(gold), medalWidth)),
		t.theme.Silver.Render(runewidth.FillLeft(fmt.Sprint(silver), medalWidth)),
		t.theme.Bronze.Render(runewidth.FillLeft(fmt.Sprint(bronze), medalWidth)),
		t.theme.Bold.Render(runewidth.FillLeft(fmt.Sprint(total), totalWidth)),
	}, " "))
	sb.WriteString("\n\n")

	return sb.String()
}
