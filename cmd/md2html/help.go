package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-md2html/internal/assets"
)

// printUsage prints the command usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html [flags] [file|dir ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compile markdown files to HTML. With no input, reads stdin and writes stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  file|dir    Markdown files or directories (walked for .md and .markdown)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .html file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Per-file timeout (default 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --standalone          Emit a complete HTML5 document")
	fmt.Fprintln(w, "      --title <s>           Title (\"\" = front matter, then first header)")
	fmt.Fprintln(w, "      --lang <s>            <html lang> value (default en)")
	fmt.Fprintln(w, "      --date <s>            Date meta: text, auto, auto:FORMAT or auto:preset")
	fmt.Fprintln(w, "  -s, --style <name>        Built-in style: "+strings.Join(assets.StyleNames(), ", "))
	fmt.Fprintln(w, "      --css <path>          CSS file inlined after the style")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Checks:")
	fmt.Fprintln(w, "      --strict-lang         Fail when a code language is unknown")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timings and worker count")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Date tokens: YYYY YY MMMM MMM MM M DD D, [text] is literal.")
	fmt.Fprintln(w, "Date presets: iso, european, us, long.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 success, 1 failure, 2 usage/config/syntax, 3 I/O.")
}
