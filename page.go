package scpdoc

import (
	"fmt"
	"strings"
)

// assemble wraps the rendered fragments in the fixed page skeleton:
// UTF-8, English, one embedded <style> block, then header, sections, and
// footer inside the root content wrapper, in that order.
func assemble(doc Record, css, header, sections, footer string) string {
	var b strings.Builder
	b.WriteString("<!doctype html>\n")
	b.WriteString("<html lang=\"en\">\n")
	b.WriteString("<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", esc(doc.str("title", "SCP Document")))
	b.WriteString("<style>\n")
	b.WriteString(css)
	if !strings.HasSuffix(css, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("</style>\n")
	b.WriteString("</head>\n")
	b.WriteString("<body>\n")
	b.WriteString("<article class=\"doc\">\n")
	b.WriteString(header)
	b.WriteString("\n")
	if sections != "" {
		b.WriteString(sections)
		b.WriteString("\n")
	}
	b.WriteString(footer)
	b.WriteString("\n")
	b.WriteString("</article>\n")
	b.WriteString("</body>\n")
	b.WriteString("</html>\n")
	return b.String()
}
