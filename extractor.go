package displaynames

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
)

// DataSource supplies the raw per-locale records an extraction
// normalizes. Fetch must be safe for concurrent use; the extractor issues
// one call per locale, possibly in parallel.
type DataSource interface {
	Fetch(ctx context.Context, locale string) (RawLocaleSource, error)
}

// DataSourceFunc adapts a bare function to the DataSource interface.
type DataSourceFunc func(ctx context.Context, locale string) (RawLocaleSource, error)

// Fetch implements DataSource.
func (fn DataSourceFunc) Fetch(ctx context.Context, locale string) (RawLocaleSource, error) {
	return fn(ctx, locale)
}

// Extractor runs the per-locale extraction across a set of locales and
// collects the results into a LocaleData mapping.
type Extractor struct {
	source          DataSource
	locales         []string
	concurrency     int
	continueOnError bool
	warnf           func(format string, args ...any)
}

// Option mutates an Extractor during construction.
type Option func(*Extractor) error

// New builds an Extractor via supplied options. A data source is
// required; the locale set defaults to DefaultLocales.
func New(opts ...Option) (*Extractor, error) {
	ex := &Extractor{
		warnf: defaultWarnf,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(ex); err != nil {
			return nil, err
		}
	}

	if ex.source == nil {
		return nil, ErrNoSource
	}

	if len(ex.locales) == 0 {
		ex.locales = DefaultLocales()
	} else {
		ex.locales = FilterLocales(ex.locales, ex.warnf)
	}

	return ex, nil
}

// WithSource sets the raw data source.
func WithSource(source DataSource) Option {
	return func(ex *Extractor) error {
		ex.source = source
		return nil
	}
}

// WithLocales restricts extraction to the given locale identifiers.
// Identifiers are normalized and validated; invalid ones are dropped with
// a warning.
func WithLocales(locales ...string) Option {
	return func(ex *Extractor) error {
		ex.locales = append(ex.locales, locales...)
		return nil
	}
}

// WithConcurrency caps the number of locales extracted in parallel.
// Zero or negative means no cap.
func WithConcurrency(n int) Option {
	return func(ex *Extractor) error {
		ex.concurrency = n
		return nil
	}
}

// WithContinueOnError switches the batch failure policy. The default is
// all-or-nothing: one locale's failure aborts the whole run. With the
// policy enabled, failed locales are omitted from the result and reported
// through the warn hook instead.
func WithContinueOnError(enabled bool) Option {
	return func(ex *Extractor) error {
		ex.continueOnError = enabled
		return nil
	}
}

// WithWarnFunc replaces the hook used to report skipped locales and
// invalid identifiers. Passing nil silences warnings.
func WithWarnFunc(warnf func(format string, args ...any)) Option {
	return func(ex *Extractor) error {
		if warnf == nil {
			warnf = func(string, ...any) {}
		}
		ex.warnf = warnf
		return nil
	}
}

func defaultWarnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "displaynames: "+format+"\n", args...)
}

// Locales returns the locale set the extractor will process.
func (ex *Extractor) Locales() []string {
	return append([]string(nil), ex.locales...)
}

// ExtractAll fetches and normalizes every configured locale. Locales are
// processed independently and concurrently; the result maps each locale
// to its record regardless of completion order. Under the default policy
// the first failure cancels in-flight siblings and fails the run.
func (ex *Extractor) ExtractAll(ctx context.Context) (LocaleData, error) {
	locales := ex.locales
	records := make([]LocaleRecord, len(locales))
	failed := make([]bool, len(locales))

	g, gctx := errgroup.WithContext(ctx)
	if ex.concurrency > 0 {
		g.SetLimit(ex.concurrency)
	}

	for i, locale := range locales {
		i, locale := i, locale
		g.Go(func() error {
			src, err := ex.source.Fetch(gctx, locale)
			if err != nil {
				err = fmt.Errorf("displaynames: fetch %s: %w", locale, err)
			} else {
				records[i], err = ExtractLocale(locale, src)
			}

			if err != nil {
				if ex.continueOnError {
					ex.warnf("skipping %s: %v", locale, err)
					failed[i] = true
					return nil
				}
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	data := make(LocaleData, len(locales))
	for i, locale := range locales {
		if failed[i] {
			continue
		}
		data[locale] = records[i]
	}
	return data, nil
}
