package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestFileExists - Regular file detection
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()

	notesFile := filepath.Join(tempDir, "notes.md")
	if err := os.WriteFile(notesFile, []byte("# Notes"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	docsDir := filepath.Join(tempDir, "docs")
	if err := os.Mkdir(docsDir, 0o755); err != nil {
		t.Fatalf("failed to create test dir: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "existing file", path: notesFile, want: true},
		{name: "directory", path: docsDir, want: false},
		{name: "missing file", path: filepath.Join(tempDir, "missing.md"), want: false},
		{name: "empty path", path: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath / TestIsCSS - Style input classification
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{input: "plain", want: false},
		{input: "./custom.css", want: true},
		{input: "../shared/style.css", want: true},
		{input: "/absolute/path.css", want: true},
		{input: "C:\\windows\\path.css", want: true},
		{input: "name.with.dots", want: false},
		{input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{input: "./custom.css", want: false},
		{input: "body { color: red; }", want: true},
		{input: "pre{background:url(img/bg.png)}", want: true},
		{input: "body {", want: true},
		{input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsCSS(tt.input); got != tt.want {
				t.Errorf("IsCSS(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsMarkdownPath / TestHTMLPathFor - Source and output naming
// ---------------------------------------------------------------------------

func TestIsMarkdownPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{path: "README.md", want: true},
		{path: "docs/guide.markdown", want: true},
		{path: "NOTES.MD", want: true},
		{path: "index.html", want: false},
		{path: "md", want: false},
		{path: "archive.md.bak", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsMarkdownPath(tt.path); got != tt.want {
				t.Errorf("IsMarkdownPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestHTMLPathFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{path: "README.md", want: "README.html"},
		{path: filepath.Join("docs", "guide.markdown"), want: filepath.Join("docs", "guide.html")},
		{path: "v1.2.md", want: "v1.2.html"},
		{path: "noext", want: "noext.html"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.HTMLPathFor(tt.path); got != tt.want {
				t.Errorf("HTMLPathFor(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
