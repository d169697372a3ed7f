package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/Sharkmare/SCP-DOC/internal/assets"
)

// cliFlags holds all flags for the scpdoc command.
type cliFlags struct {
	config  string
	mode    string
	style   string
	cssPath string
	quiet   bool
	verbose bool
}

// parseFlags parses command-line flags and returns the positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("scpdoc", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.mode, "mode", "", "override header mode: classic, acs")
	fs.StringVar(&f.style, "style", "", "embedded style name ("+strings.Join(assets.Styles(), ", ")+")")
	fs.StringVar(&f.cssPath, "css", "", "extra CSS file appended to the page style")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress the confirmation message")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage writes the usage message and flag descriptions.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, usageLine)
	fmt.Fprint(w, fs.FlagUsages())
}
