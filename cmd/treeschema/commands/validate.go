package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/erraggy/treeschema"
	"github.com/erraggy/treeschema/parser"
	"github.com/erraggy/treeschema/validator"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	SchemaPath string
	NoWarnings bool
	Quiet      bool
	Format     string
	MaxDepth   int
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.StringVar(&flags.SchemaPath, "schema", "", "path to the schema document (required)")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning messages (only show errors)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.IntVar(&flags.MaxDepth, "max-depth", 0, "recursion depth limit (0 uses the default of 100)")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: treeschema validate -schema <schema> [flags] <file|->\n\n")
		Writef(fs.Output(), "Validate a JSON or YAML document against a schema tree.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nOutput Formats:\n")
		Writef(fs.Output(), "  text (default)  Human-readable text output\n")
		Writef(fs.Output(), "  json            JSON format for programmatic processing\n")
		Writef(fs.Output(), "  yaml            YAML format for programmatic processing\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  treeschema validate -schema order-schema.yaml order.json\n")
		Writef(fs.Output(), "  treeschema validate -schema s.yaml -no-warnings order.json\n")
		Writef(fs.Output(), "  cat order.json | treeschema validate -schema s.yaml -q -\n")
		Writef(fs.Output(), "  treeschema validate -schema s.yaml -format json order.json | jq '.valid'\n")
		Writef(fs.Output(), "\nPipelining:\n")
		Writef(fs.Output(), "  - Use '-' as the file path to read from stdin\n")
		Writef(fs.Output(), "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		Writef(fs.Output(), "  - Use --format json/yaml for structured output that can be parsed\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Validation successful\n")
		Writef(fs.Output(), "  1    Validation failed with errors\n")
	}

	return fs, flags
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one file path or '-' for stdin")
	}
	if flags.SchemaPath == "" {
		fs.Usage()
		return fmt.Errorf("validate command requires -schema")
	}

	docPath := fs.Arg(0)

	// Validate format flag early to fail fast before expensive operations
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	// Validate the file or stdin with timing
	startTime := time.Now()
	var result *validator.ValidationResult
	var err error

	if docPath == StdinFilePath {
		p := parser.New()
		parseResult, parseErr := p.ParseReader(os.Stdin)
		if parseErr != nil {
			return fmt.Errorf("parsing stdin: %w", parseErr)
		}
		result, err = validator.ValidateWithOptions(
			validator.WithInstanceParsed(*parseResult),
			validator.WithSchemaFile(flags.SchemaPath),
			validator.WithIncludeWarnings(!flags.NoWarnings),
			validator.WithMaxDepth(flags.MaxDepth),
		)
		if err != nil {
			return fmt.Errorf("validating from stdin: %w", err)
		}
	} else {
		result, err = validator.ValidateWithOptions(
			validator.WithInstanceFile(docPath),
			validator.WithSchemaFile(flags.SchemaPath),
			validator.WithIncludeWarnings(!flags.NoWarnings),
			validator.WithMaxDepth(flags.MaxDepth),
		)
		if err != nil {
			return fmt.Errorf("validating file: %w", err)
		}
	}
	totalTime := time.Since(startTime)

	// Handle structured output formats
	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		if err := OutputStructured(result, flags.Format); err != nil {
			return err
		}

		// Exit with error if validation failed
		if !result.Valid {
			os.Exit(1)
		}

		return nil
	}

	// Text format output
	// Print results (always to stderr to be consistent with parse)
	if !flags.Quiet {
		Writef(os.Stderr, "Tree Schema Validator\n")
		Writef(os.Stderr, "=====================\n\n")
		Writef(os.Stderr, "treeschema version: %s\n", treeschema.Version())
		Writef(os.Stderr, "Document: %s\n", FormatDocPath(docPath))
		Writef(os.Stderr, "Schema: %s\n", flags.SchemaPath)
		if result.SourceFormat != "" {
			Writef(os.Stderr, "Source Format: %s\n", result.SourceFormat)
		}
		Writef(os.Stderr, "Source Size: %s\n", parser.FormatBytes(result.SourceSize))
		Writef(os.Stderr, "Load Time: %v\n", result.LoadTime)
		Writef(os.Stderr, "Total Time: %v\n\n", totalTime)

		// Print errors
		if len(result.Errors) > 0 {
			Writef(os.Stderr, "Errors (%d):\n", result.ErrorCount)
			for _, e := range result.Errors {
				Writef(os.Stderr, "  %s\n", e.String())
			}
			Writef(os.Stderr, "\n")
		}

		// Print warnings
		if len(result.Warnings) > 0 {
			Writef(os.Stderr, "Warnings (%d):\n", result.WarningCount)
			for _, warning := range result.Warnings {
				Writef(os.Stderr, "  %s\n", warning.String())
			}
			Writef(os.Stderr, "\n")
		}
	}

	// Print summary (only in non-quiet mode to respect --quiet flag)
	if !flags.Quiet {
		if result.Valid {
			Writef(os.Stderr, "✓ Validation passed")
			if result.WarningCount > 0 {
				Writef(os.Stderr, " with %d warning(s)", result.WarningCount)
			}
			Writef(os.Stderr, "\n")
		} else {
			Writef(os.Stderr, "✗ Validation failed: %d error(s)", result.ErrorCount)
			if result.WarningCount > 0 {
				Writef(os.Stderr, ", %d warning(s)", result.WarningCount)
			}
			Writef(os.Stderr, "\n")
		}
	}

	// Exit with error if validation failed
	if !result.Valid {
		os.Exit(1)
	}

	return nil
}
