package store

import (
	"bytes"
	"fmt"

	"tableflip.dev/ilm/pkg/entry"
	"tableflip.dev/ilm/pkg/journal"
)

// renderMarkdown writes the entry log as a reporting export: one heading
// level per nesting level, a bullet per field, a rule between dates. The
// export is write-only; nothing ever parses it back.
func renderMarkdown(log journal.Log) []byte {
	var buf bytes.Buffer
	for _, date := range log.Dates() {
		day := log[date]
		fmt.Fprintf(&buf, "# %s\n\n", date)
		for _, subject := range day.Subjects() {
			fmt.Fprintf(&buf, "## %s\n\n", subject)
			for _, book := range day.BookTitles(subject) {
				fmt.Fprintf(&buf, "### %s\n", book)
				sessions := day[subject][book]
				for _, label := range sessions.Labels() {
					fmt.Fprintf(&buf, "\n#### %s\n\n", label)
					e := entry.FromRecord(subject, book, sessions[label])
					for _, f := range e.Fields() {
						fmt.Fprintf(&buf, "- **%s:** %s\n", f.Key, f.Value)
					}
				}
				buf.WriteString("\n")
			}
		}
		buf.WriteString("---\n\n")
	}
	return buf.Bytes()
}
