package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/erraggy/treeschema/parser"
	"github.com/erraggy/treeschema/value"
)

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	Quiet  bool
	Format string
}

// parseSummary is the structured output of the parse command.
type parseSummary struct {
	Document     string         `json:"document" yaml:"document"`
	SourceFormat string         `json:"source_format" yaml:"source_format"`
	SourceSize   int64          `json:"source_size" yaml:"source_size"`
	RootKind     string         `json:"root_kind" yaml:"root_kind"`
	NodeCount    int            `json:"node_count" yaml:"node_count"`
	MaxDepth     int            `json:"max_depth" yaml:"max_depth"`
	KindCounts   map[string]int `json:"kind_counts" yaml:"kind_counts"`
	TopLevelKeys []string       `json:"top_level_keys,omitempty" yaml:"top_level_keys,omitempty"`
}

// SetupParseFlags creates and configures a FlagSet for the parse command.
// Returns the FlagSet and a ParseFlags struct with bound flag variables.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &ParseFlags{}

	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the summary, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the summary, no diagnostic messages")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: treeschema parse [flags] <file|->\n\n")
		Writef(output, "Parse a JSON or YAML document and print a structural summary.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  treeschema parse config.yaml\n")
		Writef(output, "  treeschema parse -format json config.yaml | jq '.node_count'\n")
		Writef(output, "  cat config.yaml | treeschema parse -q -\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Use '-' as the file path to read from stdin\n")
		Writef(output, "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Parsing successful\n")
		Writef(output, "  1    Parsing failed\n")
	}

	return fs, flags
}

// HandleParse executes the parse command
func HandleParse(args []string) error {
	fs, flags := SetupParseFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one file path or '-' for stdin")
	}

	docPath := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	// Parse the file or stdin
	p := parser.New()
	var result *parser.ParseResult
	var err error

	if docPath == StdinFilePath {
		result, err = p.ParseReader(os.Stdin)
		if err != nil {
			return fmt.Errorf("parsing stdin: %w", err)
		}
	} else {
		result, err = p.Parse(docPath)
		if err != nil {
			return fmt.Errorf("parsing file: %w", err)
		}
	}

	doc := result.Document
	stats := parser.CollectStats(doc)
	summary := parseSummary{
		Document:     FormatDocPath(docPath),
		SourceFormat: string(result.SourceFormat),
		SourceSize:   result.SourceSize,
		RootKind:     doc.Kind().String(),
		NodeCount:    stats.NodeCount,
		MaxDepth:     stats.MaxDepth,
		KindCounts:   stats.KindCounts,
	}
	if doc.Kind() == value.KindMapping {
		summary.TopLevelKeys = doc.Keys()
	}

	// Handle structured output formats
	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		return OutputStructured(summary, flags.Format)
	}

	// Text format output (always to stderr to keep stdout clean)
	if !flags.Quiet {
		Writef(os.Stderr, "Tree Schema Parser\n")
		Writef(os.Stderr, "==================\n\n")
	}
	Writef(os.Stderr, "Document: %s\n", summary.Document)
	Writef(os.Stderr, "Source Format: %s\n", summary.SourceFormat)
	Writef(os.Stderr, "Source Size: %s\n", parser.FormatBytes(summary.SourceSize))
	Writef(os.Stderr, "Load Time: %v\n", result.LoadTime)
	Writef(os.Stderr, "Root Kind: %s\n", summary.RootKind)
	Writef(os.Stderr, "Nodes: %d\n", summary.NodeCount)
	Writef(os.Stderr, "Max Depth: %d\n", summary.MaxDepth)
	for _, kind := range sortedKindNames(summary.KindCounts) {
		Writef(os.Stderr, "  %s: %d\n", kind, summary.KindCounts[kind])
	}
	if len(summary.TopLevelKeys) > 0 {
		Writef(os.Stderr, "Top-Level Keys: %s\n", strings.Join(summary.TopLevelKeys, ", "))
	}

	if !flags.Quiet {
		Writef(os.Stderr, "\nParsing completed successfully!\n")
	}
	return nil
}

func sortedKindNames(counts map[string]int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
