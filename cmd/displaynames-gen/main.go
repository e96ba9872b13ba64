// displaynames-gen extracts Intl display-name locale data from CLDR
// datasets into the JSON or YAML form the formatter consumes.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	displaynames "github.com/goliatone/go-displaynames"
)

// Version information (set via -ldflags during build)
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "displaynames-gen: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "displaynames-gen",
		Short: "Extract Intl display-name data from CLDR",
		Long: `displaynames-gen — CLDR display-name extraction.

Reads language, region, script, currency, calendar, and date/time field
display names from a cldr-json checkout (or the CLDR core XML
distribution) and writes the normalized per-locale dataset used by the
display-name formatter.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newExtractCmd())
	root.AddCommand(newLocalesCmd())
	return root
}

type sourceFlags struct {
	jsonDir string
	cldrDir string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.jsonDir, "source", "", "path to a cldr-json checkout (holds cldr-localenames-full etc.)")
	cmd.Flags().StringVar(&f.cldrDir, "cldr", "", "path to the CLDR core XML directory (expects main/)")
}

// resolve picks the configured data source; exactly one must be set.
func (f *sourceFlags) resolve() (displaynames.DataSource, error) {
	switch {
	case f.jsonDir != "" && f.cldrDir != "":
		return nil, errors.New("--source and --cldr are mutually exclusive")
	case f.jsonDir != "":
		return displaynames.NewFileSource(f.jsonDir), nil
	case f.cldrDir != "":
		return displaynames.NewCLDRSource(f.cldrDir), nil
	default:
		return nil, errors.New("a data source is required (--source or --cldr)")
	}
}

func newExtractCmd() *cobra.Command {
	var (
		source          sourceFlags
		out             string
		format          string
		locales         []string
		concurrency     int
		continueOnError bool
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract display-name data for a set of locales",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := source.resolve()
			if err != nil {
				return err
			}

			if format != "json" && format != "yaml" {
				return fmt.Errorf("unsupported format %q (want json or yaml)", format)
			}

			opts := []displaynames.Option{
				displaynames.WithSource(src),
				displaynames.WithConcurrency(concurrency),
				displaynames.WithContinueOnError(continueOnError),
			}
			if len(locales) > 0 {
				opts = append(opts, displaynames.WithLocales(locales...))
			}

			extractor, err := displaynames.New(opts...)
			if err != nil {
				return err
			}

			data, err := extractor.ExtractAll(cmd.Context())
			if err != nil {
				return err
			}

			db := displaynames.NewDatabase(data)

			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				file, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer file.Close()
				w = file
			}

			if format == "yaml" {
				return db.WriteYAML(w)
			}
			return db.WriteJSON(w)
		},
	}

	source.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file (- for stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	cmd.Flags().StringSliceVarP(&locales, "locale", "l", nil, "locale to extract (repeatable; defaults to the bundled locale list)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "max locales extracted in parallel (0 = unlimited)")
	cmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "skip failed locales instead of aborting the run")

	return cmd
}

func newLocalesCmd() *cobra.Command {
	var source sourceFlags

	cmd := &cobra.Command{
		Use:   "locales",
		Short: "List the locales a source provides",
		Long: `List locales. With --source or --cldr the list comes from the dataset on
disk; otherwise the bundled default locale list is printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			locales, err := listLocales(source)
			if err != nil {
				return err
			}
			for _, locale := range locales {
				fmt.Fprintln(cmd.OutOrStdout(), locale)
			}
			return nil
		},
	}

	source.register(cmd)
	return cmd
}

func listLocales(source sourceFlags) ([]string, error) {
	if source.jsonDir == "" && source.cldrDir == "" {
		return displaynames.DefaultLocales(), nil
	}

	src, err := source.resolve()
	if err != nil {
		return nil, err
	}

	lister, ok := src.(interface{ Locales() ([]string, error) })
	if !ok {
		return nil, errors.New("source does not enumerate locales")
	}
	return lister.Locales()
}
