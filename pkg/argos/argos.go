// Package argos emits the line protocol understood by Argos/BitBar-style
// status-bar hosts. Lines are either plain display text, "text | key=value
// ..." attribute lines, or the literal "---" section separator.
package argos

import "strings"

// Attr is one key=value rendering hint on a line.
type Attr struct {
	Key   string
	Value string
}

// Recognized attribute constructors. The host ignores keys it does not know,
// so these are hints, not a schema.

// Refresh marks a line as a refresh trigger.
func Refresh() Attr { return Attr{Key: "refresh", Value: "true"} }

// Href makes a line open url when clicked.
func Href(url string) Attr { return Attr{Key: "href", Value: url} }

// Font sets the line's font family.
func Font(name string) Attr { return Attr{Key: "font", Value: name} }

// Size sets the line's font size.
func Size(pt string) Attr { return Attr{Key: "size", Value: pt} }

// Color overrides the line's text color (named or #rrggbb).
func Color(c string) Attr { return Attr{Key: "color", Value: c} }

// Line is one line of the feed.
type Line struct {
	Text      string
	Attrs     []Attr
	separator bool
}

// Text builds a display line with optional attributes.
func Text(text string, attrs ...Attr) Line {
	return Line{Text: text, Attrs: attrs}
}

// Separator builds the "---" section separator.
func Separator() Line {
	return Line{separator: true}
}

// String serializes the line in protocol form.
func (l Line) String() string {
	if l.separator {
		return "---"
	}
	if len(l.Attrs) == 0 {
		return l.Text
	}
	parts := make([]string, 0, len(l.Attrs))
	for _, a := range l.Attrs {
		parts = append(parts, a.Key+"="+a.Value)
	}
	return l.Text + " | " + strings.Join(parts, " ")
}

// Feed is an ordered sequence of lines: everything before the first
// separator is the status-bar summary, the rest is the dropdown.
type Feed struct {
	Lines []Line
}

// Add appends a line to the feed.
func (f *Feed) Add(l Line) {
	f.Lines = append(f.Lines, l)
}

// String serializes the whole feed, one line per Line, newline-terminated.
func (f *Feed) String() string {
	var sb strings.Builder
	for _, l := range f.Lines {
		sb.WriteString(l.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
