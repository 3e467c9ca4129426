package main

import (
	"io"
	"time"

	flag "github.com/spf13/pflag"
)

// commonFlags holds output verbosity and config selection.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds standalone document flags.
type documentFlags struct {
	standalone    bool
	standaloneSet bool // --standalone given explicitly, so it overrides config
	title         string
	lang          string
	date          string
}

// cliFlags holds every flag of the md2html command.
type cliFlags struct {
	common     commonFlags
	document   documentFlags
	output     string
	workers    int
	css        string
	style      string
	strictLang bool
	strictSet  bool // --strict-lang given explicitly
	timeout    time.Duration
	version    bool
	help       bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timings and worker count")
}

// addDocumentFlags adds standalone document flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.BoolVar(&f.standalone, "standalone", false, "wrap output in a complete HTML5 document")
	fs.StringVar(&f.title, "title", "", "standalone document title")
	fs.StringVar(&f.lang, "lang", "", "standalone document language (default en)")
	fs.StringVar(&f.date, "date", "", `standalone document date, literal or "auto[:FORMAT]"`)
}

// parseFlags parses command-line arguments (without the program name) and
// returns the positional inputs.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVar(&f.css, "css", "", "CSS file embedded in standalone documents")
	fs.StringVarP(&f.style, "style", "s", "", "built-in style for standalone documents")
	fs.BoolVar(&f.strictLang, "strict-lang", false, "fail on unknown code languages")
	fs.DurationVarP(&f.timeout, "timeout", "t", 30*time.Second, "per-file conversion timeout")
	fs.BoolVar(&f.version, "version", false, "show version")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)

	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.document.standaloneSet = fs.Changed("standalone")
	f.strictSet = fs.Changed("strict-lang")

	return f, fs.Args(), nil
}
