package render

import (
	"encoding/json"

	"github.com/frostholm/medaltrack/pkg/medal"
)

// JSON renders entries as an indented JSON array for automation, preserving
// all fields and list order.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

// Render formats the entries as JSON. An empty list renders as [].
func (j *JSON) Render(entries []medal.Entry) string {
	if entries == nil {
		entries = []medal.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON) + "\n"
	}
	return string(data) + "\n"
}
