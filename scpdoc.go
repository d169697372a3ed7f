// Package scpdoc renders structured document records into self-contained
// HTML pages styled as fictional SCP containment reports.
//
// # Quick Start
//
// Create a service and render a record:
//
//	svc := scpdoc.New()
//	page, err := svc.Render(ctx, scpdoc.Record{
//	    "title":       "SCP-999",
//	    "header_mode": "acs",
//	    "sections": []any{
//	        map[string]any{"heading": "Description", "body": "A friendly orange blob."},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("scp-999.html", []byte(page), 0644)
//
// # Rendering Pipeline
//
// Rendering follows three stages:
//
//  1. Field resolution (defaults applied per missing key, never per falsy value)
//  2. Fragment rendering (header variant, classification badges, sections, footer)
//  3. Page assembly (fixed skeleton with one embedded stylesheet)
//
// Every user-supplied string is HTML-escaped before it reaches the output,
// in both text and attribute positions. Malformed or missing fields degrade
// to defaults or omissions; rendering a plain record never fails.
//
// # Header Modes
//
// A record's "header_mode" selects the header layout. The exact value "acs"
// produces the Anomaly Classification System bar with one badge per
// classification axis (Containment, Secondary, Disruption, Risk); any other
// value, including absence, produces the classic Item #/Object Class header.
// Axis values with no known icon are dropped silently rather than rendered
// with a broken image.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := scpdoc.New(
//	    scpdoc.WithStyle("terminal"),
//	    scpdoc.WithCSS(".doc { max-width: 720px; }"),
//	)
//
// Styles are embedded stylesheets selected by name; extra CSS is sanitized
// and appended to the page's single <style> block.
//
// # Markdown Sections
//
// A section with format "markdown" has its body rendered through Goldmark
// (GFM, footnotes, syntax highlighting) instead of the plain paragraph
// wrapper. Raw HTML inside markdown is never passed through.
package scpdoc
