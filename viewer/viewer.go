// package viewer holds the naming and ordering rules shared by the generated page's script and the
// pages rendered ahead of time. page feeds its constants into the script, so the two can't drift apart.
package viewer

import (
	"sort"
	"strings"

	"gitlab.com/efronlicht/docbundle/docs"
)

// Markers are the priority markers, most important first.
// The first document whose name contains Markers[0] is shown on load; failing that, Markers[1], and so on.
var Markers = []string{"manifiesto", "log_prompts"}

// Order returns the document names in navigation order.
func Order(m docs.Map) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DisplayName is how a document is labelled in the title and the navigation:
// the first ext is dropped and underscores become spaces. "design_notes.md" -> "design notes".
func DisplayName(name, ext string) string {
	return strings.ReplaceAll(strings.Replace(name, ext, "", 1), "_", " ")
}
