package scpdoc

import (
	"context"
	"fmt"
	"strings"
)

// formatMarkdown opts a section body into Goldmark rendering instead of
// the plain paragraph wrapper.
const formatMarkdown = "markdown"

// renderSections emits one <section> block per entry in the record's
// "sections" sequence, preserving input order.
func (s *Service) renderSections(ctx context.Context, doc Record) (string, error) {
	var blocks []string
	for _, entry := range doc.list("sections") {
		sec := asRecord(entry)

		class := "section"
		if sec.strOpt("kind") == "log" {
			class += " section--log"
		}

		body, err := s.renderBody(ctx, sec)
		if err != nil {
			return "", err
		}

		var b strings.Builder
		fmt.Fprintf(&b, "<section class=\"%s\">\n", class)
		fmt.Fprintf(&b, "  <h2>%s</h2>\n", esc(sec.str("heading", "Section")))
		if body != "" {
			b.WriteString(body)
			b.WriteString("\n")
		}
		b.WriteString("</section>")
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n"), nil
}

// renderBody renders one section's body, either as escaped paragraphs or,
// for format "markdown", through the Goldmark converter.
func (s *Service) renderBody(ctx context.Context, sec Record) (string, error) {
	items := bodyItems(sec["body"])
	if sec.strOpt("format") == formatMarkdown {
		return s.markdown.Fragment(ctx, strings.Join(items, "\n\n"))
	}
	return renderParagraphs(items), nil
}

// bodyItems normalizes a body value to an ordered string sequence: a
// string becomes a one-element sequence, a sequence keeps its order with
// each element stringified, any other scalar becomes a one-element
// sequence, and absence becomes the empty sequence.
func bodyItems(body any) []string {
	switch v := body.(type) {
	case nil:
		return nil
	case string:
		return []string{v}
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, stringify(item))
		}
		return items
	default:
		return []string{stringify(v)}
	}
}

// renderParagraphs wraps each non-blank entry in its own escaped <p>.
// Entries are stripped first; blank entries produce nothing.
func renderParagraphs(items []string) string {
	var paragraphs []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		paragraphs = append(paragraphs, "  <p>"+esc(item)+"</p>")
	}
	return strings.Join(paragraphs, "\n")
}
