// medalbar emits the 2026 Winter Olympics medal table as an Argos/BitBar
// status-bar feed: a one-line summary for the bar, then the itemized
// dropdown. The host re-invokes the binary on its own schedule (encode the
// interval in the plugin filename, e.g. olympics.1r.10m+.sh), so there is
// no loop here: fetch once, print, exit.
//
// The home country highlighted in the dropdown comes from .medals.yaml.
// On any fetch or parse failure the feed degrades to a fixed error line
// plus a retry affordance; the host always gets well-formed output, so
// medalbar always exits 0.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/frostholm/medaltrack/internal/config"
	"github.com/frostholm/medaltrack/internal/wiki"
	"github.com/frostholm/medaltrack/pkg/argos"
	"github.com/frostholm/medaltrack/pkg/medal"
)

// fetchFunc fetches medal-table wikitext; stubbed in tests.
type fetchFunc func(ctx context.Context) (string, error)

func main() {
	os.Exit(run(nil, os.Stdout, os.Stderr))
}

func run(fetch fetchFunc, stdout, stderr io.Writer) int {
	if fetch == nil {
		fetch = wiki.NewClient().Fetch
	}
	cfg := config.Load(stderr)

	var entries []medal.Entry
	if wikitext, err := fetch(context.Background()); err == nil {
		entries = medal.Parse(wikitext)
	}
	if len(entries) == 0 {
		fmt.Fprint(stdout, argos.BuildError().String())
		return 0
	}

	fmt.Fprint(stdout, argos.Build(entries, cfg.HomeCountry).String())
	return 0
}
