package scpdoc

import (
	"bytes"
	"context"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// markdownConverter abstracts markdown-to-HTML fragment conversion.
type markdownConverter interface {
	Fragment(ctx context.Context, content string) (string, error)
}

// goldmarkConverter converts markdown section bodies using goldmark
// (pure Go).
type goldmarkConverter struct {
	md goldmark.Markdown
}

// newGoldmarkConverter creates a goldmarkConverter with GFM extensions and
// syntax highlighting.
func newGoldmarkConverter() *goldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes so the embedded stylesheet controls colors
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// WithUnsafe() intentionally not used: raw HTML in section
			// bodies must never reach the output unescaped.
		),
	)
	return &goldmarkConverter{md: md}
}

// Fragment converts markdown content to an HTML fragment. Supports
// context cancellation via goroutine + select since goldmark doesn't
// natively support context.
func (c *goldmarkConverter) Fragment(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrMarkdownRender, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
