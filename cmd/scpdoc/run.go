package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/natefinch/atomic"

	scpdoc "github.com/Sharkmare/SCP-DOC"
)

const usageLine = "usage: scpdoc [flags] <input.json|yaml> <output.html>"

// Sentinel errors for CLI operations.
var (
	ErrInvalidArgs = errors.New(usageLine)
	ErrReadCSS     = errors.New("failed to read CSS file")
	ErrWriteOutput = errors.New("failed to write output file")
)

// run resolves configuration, loads the document record, renders it, and
// writes the output file atomically: the document appears whole or not
// at all.
func run(ctx context.Context, flags *cliFlags, args []string, stdout io.Writer) error {
	if len(args) != 2 {
		return ErrInvalidArgs
	}
	inputPath, outputPath := args[0], args[1]

	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	doc, err := loadRecord(inputPath)
	if err != nil {
		return err
	}
	if cfg.Mode != "" {
		doc["header_mode"] = cfg.Mode
	}

	var opts []scpdoc.Option
	if cfg.Style != "" {
		opts = append(opts, scpdoc.WithStyle(cfg.Style))
	}
	if cfg.CSS != "" {
		css, err := os.ReadFile(cfg.CSS) // #nosec G304 -- CSS path is user-provided
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadCSS, err)
		}
		opts = append(opts, scpdoc.WithCSS(string(css)))
	}

	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Rendering %s\n", inputPath)
	}

	page, err := scpdoc.New(opts...).Render(ctx, doc)
	if err != nil {
		return err
	}

	if err := atomic.WriteFile(outputPath, strings.NewReader(page)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !flags.quiet {
		fmt.Fprintf(stdout, "Created %s\n", outputPath)
	}
	return nil
}
