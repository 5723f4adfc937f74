// Package render provides output renderers for the ranked medal list.
package render

import "github.com/frostholm/medaltrack/pkg/medal"

// Renderer converts a ranked, already filtered and truncated entry list to
// formatted output.
type Renderer interface {
	Render(entries []medal.Entry) string
}
