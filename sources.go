package displaynames

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"
)

// FileSource reads raw locale records from a cldr-json checkout: a root
// directory holding the cldr-localenames-full, cldr-numbers-full, and
// cldr-dates-full packages, each with a main/<locale>/ subtree.
type FileSource struct {
	root string
}

// NewFileSource builds a source rooted at the given cldr-json directory.
func NewFileSource(root string) *FileSource {
	return &FileSource{root: root}
}

const (
	namesPackage   = "cldr-localenames-full"
	numbersPackage = "cldr-numbers-full"
	datesPackage   = "cldr-dates-full"
)

// Locales enumerates the locales present under the localenames package.
func (s *FileSource) Locales() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, namesPackage, "main"))
	if err != nil {
		return nil, fmt.Errorf("displaynames: list locales: %w", err)
	}

	locales := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		locales = append(locales, entry.Name())
	}

	sort.Strings(locales)
	return locales, nil
}

// Fetch reads the six per-locale records. The files are independent, so
// they are read concurrently; the first failure cancels the rest.
func (s *FileSource) Fetch(ctx context.Context, locale string) (RawLocaleSource, error) {
	var src RawLocaleSource

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var payload struct {
			LocaleDisplayNames struct {
				Languages map[string]string `json:"languages"`
			} `json:"localeDisplayNames"`
		}
		if err := s.readRecord(gctx, namesPackage, locale, "languages", &payload); err != nil {
			return err
		}
		src.Languages = payload.LocaleDisplayNames.Languages
		return nil
	})

	g.Go(func() error {
		var payload struct {
			LocaleDisplayNames struct {
				Territories map[string]string `json:"territories"`
			} `json:"localeDisplayNames"`
		}
		if err := s.readRecord(gctx, namesPackage, locale, "territories", &payload); err != nil {
			return err
		}
		src.Territories = payload.LocaleDisplayNames.Territories
		return nil
	})

	g.Go(func() error {
		var payload struct {
			LocaleDisplayNames struct {
				Scripts map[string]string `json:"scripts"`
			} `json:"localeDisplayNames"`
		}
		if err := s.readRecord(gctx, namesPackage, locale, "scripts", &payload); err != nil {
			return err
		}
		src.Scripts = payload.LocaleDisplayNames.Scripts
		return nil
	})

	g.Go(func() error {
		var payload struct {
			LocaleDisplayNames RawDisplayNames `json:"localeDisplayNames"`
		}
		if err := s.readRecord(gctx, namesPackage, locale, "localeDisplayNames", &payload); err != nil {
			return err
		}
		src.DisplayNames = payload.LocaleDisplayNames
		return nil
	})

	g.Go(func() error {
		var payload struct {
			Numbers struct {
				Currencies map[string]RawCurrency `json:"currencies"`
			} `json:"numbers"`
		}
		if err := s.readRecord(gctx, numbersPackage, locale, "currencies", &payload); err != nil {
			return err
		}
		src.Currencies = payload.Numbers.Currencies
		return nil
	})

	g.Go(func() error {
		var payload struct {
			Dates struct {
				Fields map[string]RawDateField `json:"fields"`
			} `json:"dates"`
		}
		if err := s.readRecord(gctx, datesPackage, locale, "dateFields", &payload); err != nil {
			return err
		}
		src.DateFields = payload.Dates.Fields
		return nil
	})

	if err := g.Wait(); err != nil {
		return RawLocaleSource{}, err
	}
	return src, nil
}

// readRecord decodes one cldr-json file, unwrapping the main/<locale>
// envelope every package shares.
func (s *FileSource) readRecord(ctx context.Context, pkg, locale, name string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(s.root, pkg, "main", locale, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s record for %s: %w", name, locale, err)
	}

	var file struct {
		Main map[string]json.RawMessage `json:"main"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	payload, ok := file.Main[locale]
	if !ok {
		return fmt.Errorf("%s has no entry for locale %s", path, locale)
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode %s record for %s: %w", name, locale, err)
	}
	return nil
}
