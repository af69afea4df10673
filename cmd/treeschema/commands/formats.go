package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/treeschema/validator"
)

// FormatsFlags contains flags for the formats command
type FormatsFlags struct {
	Format string
}

// formatsOutput is the structured output of the formats command.
type formatsOutput struct {
	Formats []string `json:"formats" yaml:"formats"`
}

// SetupFormatsFlags creates and configures a FlagSet for the formats command.
func SetupFormatsFlags() (*flag.FlagSet, *FormatsFlags) {
	fs := flag.NewFlagSet("formats", flag.ContinueOnError)
	flags := &FormatsFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: treeschema formats [flags]\n\n")
		Writef(fs.Output(), "List the string format names the validator recognizes for the 'format' keyword.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  treeschema formats\n")
		Writef(fs.Output(), "  treeschema formats -format json | jq '.formats'\n")
	}

	return fs, flags
}

// HandleFormats executes the formats command
func HandleFormats(args []string) error {
	fs, flags := SetupFormatsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("formats command takes no arguments")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	names := validator.Formats()

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		return OutputStructured(formatsOutput{Formats: names}, flags.Format)
	}

	for _, name := range names {
		Writef(os.Stdout, "%s\n", name)
	}
	return nil
}
