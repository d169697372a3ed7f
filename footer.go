package scpdoc

import (
	"fmt"
	"strings"
)

// renderFooter emits the three-slot footer. Each slot defaults
// independently; the center slot falls back to the document title.
func renderFooter(doc Record) string {
	foot := doc.sub("footer")

	var b strings.Builder
	b.WriteString("<footer class=\"doc-footer\">\n")
	fmt.Fprintf(&b, "  <span>%s</span>\n", esc(foot.str("left", "«")))
	fmt.Fprintf(&b, "  <span>%s</span>\n", esc(foot.str("center", doc.str("title", "SCP"))))
	fmt.Fprintf(&b, "  <span>%s</span>\n", esc(foot.str("right", "»")))
	b.WriteString("</footer>")
	return b.String()
}
