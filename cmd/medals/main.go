// medals prints the 2026 Winter Olympics medal table from Wikipedia's API.
//
// Usage:
//
//	medals              # tabular report
//	medals --json       # raw JSON
//	medals --top 5      # top N countries
//	medals --country no # filter by country name or IOC code (partial match)
//	medals --oneline    # single line for panel widgets
//
// Exits 1 when fetching fails or no medal data parses; 0 otherwise. An
// empty result after filtering is not an error.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/frostholm/medaltrack/internal/config"
	"github.com/frostholm/medaltrack/internal/wiki"
	"github.com/frostholm/medaltrack/pkg/medal"
	"github.com/frostholm/medaltrack/pkg/render"
)

// fetchFunc fetches medal-table wikitext; stubbed in tests.
type fetchFunc func(ctx context.Context) (string, error)

func main() {
	os.Exit(run(os.Args[1:], nil, os.Stdout, os.Stderr))
}

func run(args []string, fetch fetchFunc, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("medals", flag.ContinueOnError)
	fs.SetOutput(stderr)
	jsonFlag := fs.Bool("json", false, "Output raw JSON")
	topFlag := fs.Int("top", 0, "Show top N countries")
	countryFlag := fs.String("country", "", "Filter by country name or IOC code (partial match)")
	onelineFlag := fs.Bool("oneline", false, "Single line output for panel widgets")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fetch == nil {
		fetch = wiki.NewClient().Fetch
	}

	wikitext, err := fetch(context.Background())
	if err != nil {
		fmt.Fprintf(stderr, "Error fetching data: %v\n", err)
		return 1
	}

	entries := medal.Parse(wikitext)
	if len(entries) == 0 {
		if *onelineFlag {
			fmt.Fprintln(stdout, "🏅 No data")
		} else {
			fmt.Fprintln(stderr, "No medal data found.")
		}
		return 1
	}

	// Filter first, then truncate.
	entries = medal.Filter(entries, *countryFlag)
	entries = medal.Top(entries, *topFlag)

	fmt.Fprint(stdout, selectRenderer(*onelineFlag, *jsonFlag, *countryFlag != "", stdout, stderr).Render(entries))
	return 0
}

func selectRenderer(oneline, asJSON, filtered bool, stdout io.Writer, stderr io.Writer) render.Renderer {
	switch {
	case oneline:
		return render.NewOneline(filtered)
	case asJSON:
		return render.NewJSON()
	default:
		cfg := config.Load(stderr)
		return render.NewTable(resolveTheme(cfg.Theme, stdout))
	}
}

// resolveTheme picks the configured theme on a TTY and mono on a pipe, so
// redirected output stays plain text.
func resolveTheme(name string, w io.Writer) render.Theme {
	if !isTTYWriter(w) {
		return render.MonoTheme()
	}
	return render.ThemeByName(name)
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
