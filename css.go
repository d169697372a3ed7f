package scpdoc

import "strings"

// sanitizeCSS escapes sequences that could break out of a <style> block.
// Extra CSS is author-supplied; escaping </ prevents it from closing the
// style tag and injecting markup.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
