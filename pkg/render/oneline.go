package render

import (
	"fmt"
	"strings"

	"github.com/frostholm/medaltrack/pkg/medal"
)

// Oneline renders a compact single-line summary for panel widgets:
//
//	🏅 NOR 5🥇2🥈1🥉 | GER 3🥇4🥈2🥉 | USA 3🥇1🥈5🥉
//
// Without an active country filter only the top three entries are shown;
// with one, every filtered entry is.
type Oneline struct {
	filtered bool
}

// NewOneline creates a oneline renderer. filtered reports whether a country
// filter was applied before rendering.
func NewOneline(filtered bool) *Oneline {
	return &Oneline{filtered: filtered}
}

// Render formats the entries as a single line.
func (o *Oneline) Render(entries []medal.Entry) string {
	show := entries
	if !o.filtered {
		show = medal.Top(entries, 3)
	}
	parts := make([]string, 0, len(show))
	for _, e := range show {
		parts = append(parts, fmt.Sprintf("%s %d🥇%d🥈%d🥉", e.Code, e.Gold, e.Silver, e.Bronze))
	}
	return "🏅 " + strings.Join(parts, " | ") + "\n"
}
