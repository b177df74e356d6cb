package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasreport"
	"github.com/erraggy/oasreport/model"
	"github.com/erraggy/oasreport/report"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasreport v%s\n", oasreport.Version())
	case "help", "-h", "--help":
		printUsage()
	case "render":
		if err := handleRender(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// renderFlags contains flags for the render command
type renderFlags struct {
	format  string
	indent  bool
	output  string
	verbose bool
}

func setupRenderFlags() (*flag.FlagSet, *renderFlags) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	flags := &renderFlags{}

	fs.StringVar(&flags.format, "format", report.FormatJSON, "output format: json or yaml")
	fs.BoolVar(&flags.indent, "indent", false, "indent JSON output with two spaces")
	fs.StringVar(&flags.output, "o", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.verbose, "verbose", false, "log rendering diagnostics to stderr")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oasreport render [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Render a diff result as a compact report document.\n")
		_, _ = fmt.Fprintf(output, "Use \"-\" as the file argument to read from stdin.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  oasreport render diff.json\n")
		_, _ = fmt.Fprintf(output, "  oasreport render --format yaml diff.json\n")
		_, _ = fmt.Fprintf(output, "  oasreport render --indent -o report.json diff.json\n")
		_, _ = fmt.Fprintf(output, "  oastools diff --json api-v1.yaml api-v2.yaml | oasreport render -\n")
	}

	return fs, flags
}

func handleRender(args []string) error {
	fs, flags := setupRenderFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("render command requires exactly one file path (or \"-\" for stdin)")
	}

	diff, err := loadDiff(fs.Arg(0))
	if err != nil {
		return err
	}

	sink, err := openSink(flags.output)
	if err != nil {
		return err
	}

	opts := []report.Option{
		report.WithFormat(flags.format),
		report.WithIndent(flags.indent),
	}
	if flags.verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, report.WithLogger(report.NewSlogAdapter(slog.New(handler))))
	}

	// RenderWithOptions closes the sink on every path.
	if err := report.RenderWithOptions(diff, sink, opts...); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}

// loadDiff reads a serialized diff result from path, or from stdin when path
// is "-". Both JSON and YAML input are accepted.
func loadDiff(path string) (*model.DiffResult, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading diff result: %w", err)
	}

	diff := &model.DiffResult{}
	if jsonErr := json.Unmarshal(data, diff); jsonErr != nil {
		if yamlErr := yaml.Unmarshal(data, diff); yamlErr != nil {
			return nil, fmt.Errorf("decoding diff result: %w", jsonErr)
		}
	}
	return diff, nil
}

// openSink opens the output destination. Stdout is wrapped so the renderer's
// close does not close the process's actual stdout.
func openSink(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	commands := []string{"render", "version", "help"}

	best := ""
	bestDist := 3
	for _, cmd := range commands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`oasreport - OpenAPI Diff Report Renderer

Usage:
  oasreport <command> [options]

Commands:
  render      Render a serialized diff result as a report document
  version     Show version information
  help        Show this help message

Examples:
  oasreport render diff.json
  oasreport render --format yaml -o report.yaml diff.json
  oasreport render --indent -

Run 'oasreport <command> --help' for more information on a command.`)
}
