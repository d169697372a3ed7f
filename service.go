package scpdoc

import (
	"context"
	"fmt"

	"github.com/Sharkmare/SCP-DOC/internal/assets"
)

// DefaultStyle is the embedded stylesheet used when none is selected.
const DefaultStyle = "dark"

// headerModeACS is the exact header_mode value selecting the ACS header.
// Any other value, including absence, selects the classic header.
const headerModeACS = "acs"

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	style    string
	extraCSS string
}

// Option configures a Service.
type Option func(*Service)

// WithStyle selects an embedded stylesheet by name.
// Panics if name is empty (programmer error).
func WithStyle(name string) Option {
	if name == "" {
		panic("scpdoc: WithStyle name must not be empty")
	}
	return func(s *Service) {
		s.cfg.style = name
	}
}

// WithCSS appends extra CSS to the page's style block. The CSS is
// sanitized so it cannot close the style tag.
func WithCSS(css string) Option {
	return func(s *Service) {
		s.cfg.extraCSS = css
	}
}

// Service renders document records into complete HTML pages.
type Service struct {
	cfg      serviceConfig
	markdown markdownConverter
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		cfg:      serviceConfig{style: DefaultStyle},
		markdown: newGoldmarkConverter(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Render transforms one record into a complete HTML document. Missing or
// malformed fields degrade to defaults or omissions; the only error paths
// are an unknown style name, a markdown body that fails to convert, and
// context cancellation. Rendering the same record twice yields identical
// output.
func (s *Service) Render(ctx context.Context, doc Record) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	css, err := assets.LoadStyle(s.cfg.style)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStyleLoad, err)
	}
	if s.cfg.extraCSS != "" {
		css += "\n" + sanitizeCSS(s.cfg.extraCSS)
	}

	var header string
	if doc.strOpt("header_mode") == headerModeACS {
		header = renderACSHeader(doc)
	} else {
		header = renderClassicHeader(doc)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sections, err := s.renderSections(ctx, doc)
	if err != nil {
		return "", err
	}

	return assemble(doc, css, header, sections, renderFooter(doc)), nil
}
