package argos

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostholm/medaltrack/pkg/medal"
)

func TestLine_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "---", Separator().String())
	assert.Equal(t, "hello", Text("hello").String())
	assert.Equal(t, "hello | refresh=true", Text("hello", Refresh()).String())
	assert.Equal(t,
		"row | font=monospace size=11 color=#3584e4",
		Text("row", Font("monospace"), Size("11"), Color("#3584e4")).String())
}

func TestFeed_String_OneLinePerLine(t *testing.T) {
	t.Parallel()

	var f Feed
	f.Add(Text("top", Refresh()))
	f.Add(Separator())
	f.Add(Text("body"))

	assert.Equal(t, "top | refresh=true\n---\nbody\n", f.String())
}

func widgetEntries() []medal.Entry {
	return []medal.Entry{
		{Rank: 1, Code: "NOR", Country: "Norway", Gold: 5, Silver: 2, Bronze: 1, Total: 8},
		{Rank: 2, Code: "USA", Country: "United States", Gold: 3, Silver: 1, Bronze: 5, Total: 9},
	}
}

func TestBuild_When_HomeCountryOnBoard(t *testing.T) {
	t.Parallel()

	out := Build(widgetEntries(), "USA").String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// Summary shows the home country, not the leader, and triggers refresh.
	require.NotEmpty(t, lines)
	assert.Equal(t, "🏅 USA 3🥇 1🥈 5🥉 | refresh=true", lines[0])
	assert.Equal(t, "---", lines[1])

	// Home row carries the highlight color, other rows do not.
	var homeRow, otherRow string
	for _, l := range lines {
		if strings.Contains(l, "United States") {
			homeRow = l
		}
		if strings.Contains(l, "Norway") {
			otherRow = l
		}
	}
	require.NotEmpty(t, homeRow)
	require.NotEmpty(t, otherRow)
	assert.Contains(t, homeRow, "color=#3584e4")
	assert.NotContains(t, otherRow, "color=")
	assert.Contains(t, otherRow, "font=monospace size=11")
}

func TestBuild_When_HomeCountryAbsent_ShowsLeader(t *testing.T) {
	t.Parallel()

	out := Build(widgetEntries(), "FRA").String()
	assert.True(t, strings.HasPrefix(out, "🏅 NOR 5🥇 2🥈 1🥉 | refresh=true\n"), out)
	assert.NotContains(t, out, "color=#3584e4")
}

func TestBuild_TotalsAndFooter(t *testing.T) {
	t.Parallel()

	out := Build(widgetEntries(), "USA").String()

	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "17") // grand total 8+9
	assert.Contains(t, out, "Open Medal Table | href=https://www.olympics.com/en/milano-cortina-2026/medals")
	assert.Contains(t, out, "Open Wikipedia | href=https://en.wikipedia.org/wiki/2026_Winter_Olympics_medal_table")
	assert.Contains(t, out, "Refresh | refresh=true")
}

func TestBuildError_FixedDegradedFeed(t *testing.T) {
	t.Parallel()

	want := "🏅 ??? | refresh=true\n" +
		"---\n" +
		"Failed to fetch medal data | color=#ff0000\n" +
		"Click to retry | refresh=true\n"
	assert.Equal(t, want, BuildError().String())
}
