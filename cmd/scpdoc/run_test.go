package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func runCLI(t *testing.T, flags *cliFlags, args []string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	err := run(context.Background(), flags, args, &stdout)
	return stdout.String(), err
}

// ---------------------------------------------------------------------------
// Argument handling
// ---------------------------------------------------------------------------

func TestRunArgumentCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "no args", args: nil},
		{name: "one arg", args: []string{"in.json"}},
		{name: "three args", args: []string{"in.json", "out.html", "extra"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := runCLI(t, &cliFlags{}, tt.args); !errors.Is(err, ErrInvalidArgs) {
				t.Errorf("err = %v, want ErrInvalidArgs", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// End-to-end
// ---------------------------------------------------------------------------

func TestRunJSONInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "doc.json", `{"title": "SCP-999", "sections": [{"heading": "Description", "body": "A blob."}]}`)
	output := filepath.Join(dir, "doc.html")

	stdout, err := runCLI(t, &cliFlags{}, []string{input, output})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout, "Created "+output) {
		t.Errorf("stdout = %q, want confirmation", stdout)
	}

	page, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	for _, want := range []string{"<!doctype html>", "<title>SCP-999</title>", "<p>A blob.</p>"} {
		if !strings.Contains(string(page), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunYAMLInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "doc.yaml", strings.Join([]string{
		"title: SCP-049",
		"header_mode: acs",
		"acs:",
		"  containment_class: euclid",
		"sections:",
		"  - heading: Description",
		"    body: The Plague Doctor.",
	}, "\n"))
	output := filepath.Join(dir, "doc.html")

	if _, err := runCLI(t, &cliFlags{quiet: true}, []string{input, output}); err != nil {
		t.Fatalf("run: %v", err)
	}

	page, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	for _, want := range []string{"<title>SCP-049</title>", `class="acs-bar"`, "<p>The Plague Doctor.</p>"} {
		if !strings.Contains(string(page), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunQuietSuppressesConfirmation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "doc.json", `{"title": "SCP-999"}`)
	output := filepath.Join(dir, "doc.html")

	stdout, err := runCLI(t, &cliFlags{quiet: true}, []string{input, output})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
}

func TestRunModeOverride(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "doc.json", `{"title": "SCP-096"}`)
	output := filepath.Join(dir, "doc.html")

	if _, err := runCLI(t, &cliFlags{quiet: true, mode: "acs"}, []string{input, output}); err != nil {
		t.Fatalf("run: %v", err)
	}

	page, _ := os.ReadFile(output)
	if !strings.Contains(string(page), `class="acs-bar"`) {
		t.Error("mode override did not select the ACS header")
	}
}

func TestRunStyleAndCSSFlags(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "doc.json", `{"title": "SCP-999"}`)
	cssPath := writeFile(t, dir, "extra.css", ".doc { border: 1px solid red; }")
	output := filepath.Join(dir, "doc.html")

	flags := &cliFlags{quiet: true, style: "terminal", cssPath: cssPath}
	if _, err := runCLI(t, flags, []string{input, output}); err != nil {
		t.Fatalf("run: %v", err)
	}

	page, _ := os.ReadFile(output)
	if !strings.Contains(string(page), "background:#020402") {
		t.Error("terminal style not applied")
	}
	if !strings.Contains(string(page), ".doc { border: 1px solid red; }") {
		t.Error("extra CSS not applied")
	}
}

// ---------------------------------------------------------------------------
// Failure paths
// ---------------------------------------------------------------------------

func TestRunFailures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	goodInput := writeFile(t, dir, "doc.json", `{"title": "SCP-999"}`)
	badJSON := writeFile(t, dir, "bad.json", `{"title": `)
	textFile := writeFile(t, dir, "doc.txt", "not a record")
	output := filepath.Join(dir, "out.html")

	tests := []struct {
		name    string
		flags   *cliFlags
		args    []string
		wantErr error
	}{
		{
			name:    "missing input file",
			flags:   &cliFlags{},
			args:    []string{filepath.Join(dir, "nope.json"), output},
			wantErr: ErrReadDocument,
		},
		{
			name:    "malformed json",
			flags:   &cliFlags{},
			args:    []string{badJSON, output},
			wantErr: ErrParseDocument,
		},
		{
			name:    "unsupported extension",
			flags:   &cliFlags{},
			args:    []string{textFile, output},
			wantErr: ErrInvalidExtension,
		},
		{
			name:    "invalid mode",
			flags:   &cliFlags{mode: "fancy"},
			args:    []string{goodInput, output},
			wantErr: ErrInvalidMode,
		},
		{
			name:    "missing css file",
			flags:   &cliFlags{cssPath: filepath.Join(dir, "nope.css")},
			args:    []string{goodInput, output},
			wantErr: ErrReadCSS,
		},
		{
			name:    "missing config file",
			flags:   &cliFlags{config: filepath.Join(dir, "nope.yaml")},
			args:    []string{goodInput, output},
			wantErr: ErrConfigNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := runCLI(t, tt.flags, tt.args); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			// No partial output may exist after a failure.
			if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
				t.Errorf("output file exists after failed run")
			}
		})
	}
}

func TestRunConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "doc.json", `{"title": "SCP-999"}`)
	config := writeFile(t, dir, "config.yaml", "style: terminal\nmode: acs\n")
	output := filepath.Join(dir, "doc.html")

	if _, err := runCLI(t, &cliFlags{quiet: true, config: config}, []string{input, output}); err != nil {
		t.Fatalf("run: %v", err)
	}

	page, _ := os.ReadFile(output)
	if !strings.Contains(string(page), "background:#020402") {
		t.Error("config style not applied")
	}
	if !strings.Contains(string(page), `class="acs-bar"`) {
		t.Error("config mode not applied")
	}
}

func TestRunFlagOverridesConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "doc.json", `{"title": "SCP-999"}`)
	config := writeFile(t, dir, "config.yaml", "style: terminal\n")
	output := filepath.Join(dir, "doc.html")

	flags := &cliFlags{quiet: true, config: config, style: "dark"}
	if _, err := runCLI(t, flags, []string{input, output}); err != nil {
		t.Fatalf("run: %v", err)
	}

	page, _ := os.ReadFile(output)
	if !strings.Contains(string(page), "background:#0c0d10") {
		t.Error("flag did not override config style")
	}
}
