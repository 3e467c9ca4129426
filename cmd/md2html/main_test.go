package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// testEnv returns an environment with captured output and a fixed clock.
func testEnv(stdin string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &Environment{
		Now:    func() time.Time { return now },
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

// setupTestDir creates a temp directory with the given file structure.
// Files map paths to content. Returns the temp directory path.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	return tempDir
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// ---------------------------------------------------------------------------
// TestRun_Flags - Help, version, usage errors
// ---------------------------------------------------------------------------

func TestRun_Flags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{name: "help", args: []string{"--help"}, wantCode: ExitSuccess, wantStdout: "Usage: md2html"},
		{name: "short help", args: []string{"-h"}, wantCode: ExitSuccess, wantStdout: "--strict-lang"},
		{name: "version", args: []string{"--version"}, wantCode: ExitSuccess, wantStdout: "md2html dev"},
		{name: "unknown flag", args: []string{"--bogus"}, wantCode: ExitUsage, wantStderr: "invalid usage"},
		{name: "bad duration", args: []string{"--timeout", "soon"}, wantCode: ExitUsage, wantStderr: "invalid usage"},
		{name: "quiet and verbose", args: []string{"-q", "-v"}, wantCode: ExitUsage, wantStderr: "mutually exclusive"},
		{name: "too many workers", args: []string{"-w", "99"}, wantCode: ExitUsage, wantStderr: "invalid worker count"},
		{name: "bad lang", args: []string{"--lang", "en us"}, wantCode: ExitUsage, wantStderr: "document.lang"},
		{name: "missing config", args: []string{"--config", "./nope/missing.yaml"}, wantCode: ExitUsage, wantStderr: "config file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv("# stdin")
			code := run(context.Background(), tt.args, env)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, stderr)
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want to contain %q", stdout, tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want to contain %q", stderr, tt.wantStderr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRun_Stdin - Stream mode
// ---------------------------------------------------------------------------

func TestRun_Stdin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		stdin      string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "fragment",
			stdin:      "# Hi\n\n- a\n  - b",
			wantCode:   ExitSuccess,
			wantStdout: "<h1>Hi</h1><ul><li>a<ul><li>b</li></ul></li></ul>",
		},
		{
			name:       "standalone with title",
			args:       []string{"--standalone", "--title", "Notes"},
			stdin:      "text",
			wantCode:   ExitSuccess,
			wantStdout: "<title>Notes</title>",
		},
		{
			name:       "unknown language warning",
			stdin:      "```zzlang\nx\n```",
			wantCode:   ExitSuccess,
			wantStderr: `WARNING stdin: unknown code language "zzlang"`,
		},
		{
			name:       "unknown language strict",
			args:       []string{"--strict-lang"},
			stdin:      "```zzlang\nx\n```",
			wantCode:   ExitUsage,
			wantStderr: "unknown code language",
		},
		{
			name:       "syntax error",
			stdin:      "- a\n\t- b",
			wantCode:   ExitUsage,
			wantStderr: "tokenize failed",
		},
		{
			name:       "empty input",
			stdin:      "\n\n",
			wantCode:   ExitUsage,
			wantStderr: "cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(tt.stdin)
			code := run(context.Background(), tt.args, env)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, stderr)
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want to contain %q", stdout, tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want to contain %q", stderr, tt.wantStderr)
			}
		})
	}
}

func TestRun_StdinToFile(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "site", "page.html")
	env, stdout, _ := testEnv("*hi*")

	if code := run(context.Background(), []string{"-o", out}, env); code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	if got := readFile(t, out); got != "<p><i>hi</i></p>" {
		t.Errorf("output = %q", got)
	}
	if !strings.Contains(stdout.String(), "Created "+out) {
		t.Errorf("stdout = %q, want Created line", stdout)
	}
}

// ---------------------------------------------------------------------------
// TestRun_Files - File and directory inputs
// ---------------------------------------------------------------------------

func TestRun_SingleFile(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"doc.md": "# Hello World"})
	env, stdout, stderr := testEnv("")

	code := run(context.Background(), []string{filepath.Join(dir, "doc.md")}, env)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	outPath := filepath.Join(dir, "doc.html")
	if got := readFile(t, outPath); got != "<h1>Hello World</h1>" {
		t.Errorf("output = %q", got)
	}
	if !strings.Contains(stdout.String(), "Created "+outPath) {
		t.Errorf("stdout = %q, want Created line", stdout)
	}
}

func TestRun_Directory(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"docs/index.md":          "# Index\n\n![logo](logo.png)",
		"docs/guide/intro.md":    "Intro text",
		"docs/guide/notes.txt":   "not markdown",
		"docs/guide/deep/ref.md": "- item",
	})
	outDir := filepath.Join(dir, "public")
	env, stdout, stderr := testEnv("")

	code := run(context.Background(), []string{"-o", outDir, "-w", "2", filepath.Join(dir, "docs")}, env)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	want := map[string]string{
		"index.html":          "<h1>Index</h1>",
		"guide/intro.html":    "<p>Intro text</p>",
		"guide/deep/ref.html": "<ul><li>item</li></ul>",
	}
	for rel, wantPart := range want {
		got := readFile(t, filepath.Join(outDir, filepath.FromSlash(rel)))
		if !strings.Contains(got, wantPart) {
			t.Errorf("%s = %q, want to contain %q", rel, got, wantPart)
		}
	}

	// Output lives elsewhere, so relative image paths are resolved.
	if got := readFile(t, filepath.Join(outDir, "index.html")); !strings.Contains(got, `src='file://`) {
		t.Errorf("image path not rewritten: %q", got)
	}
	if _, err := os.Stat(filepath.Join(outDir, "guide", "notes.html")); !os.IsNotExist(err) {
		t.Errorf("non-markdown file should be skipped")
	}
	if !strings.Contains(stdout.String(), "3 succeeded, 0 failed") {
		t.Errorf("stdout = %q, want summary", stdout)
	}
}

func TestRun_PartialFailure(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"good.md": "fine",
		"bad.md":  "text ![a](s)",
	})
	env, stdout, stderr := testEnv("")

	code := run(context.Background(), []string{dir}, env)
	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr.String(), "FAILED "+filepath.Join(dir, "bad.md")) {
		t.Errorf("stderr = %q, want FAILED line", stderr)
	}
	if !strings.Contains(stderr.String(), "1 of 2 conversion(s) failed") {
		t.Errorf("stderr = %q, want batch error", stderr)
	}
	if !strings.Contains(stdout.String(), "1 succeeded, 1 failed") {
		t.Errorf("stdout = %q, want summary", stdout)
	}
	if got := readFile(t, filepath.Join(dir, "good.html")); got != "<p>fine</p>" {
		t.Errorf("good.html = %q", got)
	}
}

func TestRun_InputErrors(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"notes.txt": "x"})

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{name: "missing file", args: []string{filepath.Join(dir, "missing.md")}, wantCode: ExitIO},
		{name: "wrong extension", args: []string{filepath.Join(dir, "notes.txt")}, wantCode: ExitUsage},
		{name: "no markdown in dir", args: []string{dir}, wantCode: ExitUsage},
		{name: "missing css", args: []string{"--css", filepath.Join(dir, "none.css"), dir}, wantCode: ExitIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, stderr := testEnv("")
			if code := run(context.Background(), tt.args, env); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, stderr)
			}
		})
	}
}

func TestRun_ConfigFile(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"src/page.md": "---\ntitle: From Front Matter\n---\nbody",
		"theme.css":   "body { color: navy; }",
	})
	cfgPath := filepath.Join(dir, "md2html.yaml")
	cfg := strings.Join([]string{
		"input:",
		"  defaultDir: " + filepath.ToSlash(filepath.Join(dir, "src")),
		"output:",
		"  defaultDir: " + filepath.ToSlash(filepath.Join(dir, "out")),
		"document:",
		"  standalone: true",
		"  lang: de",
		"css:",
		"  file: " + filepath.ToSlash(filepath.Join(dir, "theme.css")),
		"",
	}, "\n")
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	env, _, stderr := testEnv("")
	if code := run(context.Background(), []string{"-c", cfgPath, "-q"}, env); code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	got := readFile(t, filepath.Join(dir, "out", "page.html"))
	for _, want := range []string{
		`<html lang="de">`,
		"<title>From Front Matter</title>",
		"body { color: navy; }",
		"<p>body</p>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output = %q, want to contain %q", got, want)
		}
	}
}

func TestRun_FlagOverridesConfig(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"a.md": "# A"})
	cfgPath := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(cfgPath, []byte("document:\n  standalone: true\n"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	env, _, stderr := testEnv("")
	args := []string{"-c", cfgPath, "--standalone=false", filepath.Join(dir, "a.md")}
	if code := run(context.Background(), args, env); code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}
	if got := readFile(t, filepath.Join(dir, "a.html")); got != "<h1>A</h1>" {
		t.Errorf("output = %q, want bare fragment", got)
	}
}

func TestRun_CanceledContext(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"a.md": "# A"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	env, _, _ := testEnv("")
	if code := run(ctx, []string{dir}, env); code != ExitGeneral {
		t.Errorf("exit code = %d, want %d", code, ExitGeneral)
	}
}

func TestRun_StyleAndDate(t *testing.T) {
	t.Parallel()

	env, stdout, stderr := testEnv("# Notes")
	args := []string{"--standalone", "--style", "plain", "--date", "auto:long"}
	if code := run(context.Background(), args, env); code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	got := stdout.String()
	for _, want := range []string{
		`<meta name="date" content="January 2, 2026">`,
		"max-width: 42rem;",
		"<title>Notes</title>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output = %q, want to contain %q", got, want)
		}
	}
}

func TestRun_Hints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
		code  int
	}{
		{
			name:  "unknown style",
			args:  []string{"--style", "fancy"},
			stdin: "x",
			want:  "hint: available: article, plain",
			code:  ExitUsage,
		},
		{
			name:  "bad date format",
			args:  []string{"--date", "auto:[YYYY"},
			stdin: "x",
			want:  "invalid date format",
			code:  ExitUsage,
		},
		{
			name:  "tab in list",
			stdin: "- a\n\t- b",
			want:  "hint: indent nested list items with spaces",
			code:  ExitUsage,
		},
		{
			name:  "image after text",
			stdin: "see ![a](s)",
			want:  "hint: images must stand alone",
			code:  ExitUsage,
		},
		{
			name:  "strict language",
			args:  []string{"--strict-lang"},
			stdin: "```zzlang\nx\n```",
			want:  "hint: fix the fence language",
			code:  ExitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, stderr := testEnv(tt.stdin)
			if code := run(context.Background(), tt.args, env); code != tt.code {
				t.Errorf("exit code = %d, want %d", code, tt.code)
			}
			if !strings.Contains(stderr.String(), tt.want) {
				t.Errorf("stderr = %q, want to contain %q", stderr, tt.want)
			}
		})
	}
}
