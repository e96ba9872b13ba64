package displaynames

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/unicode/cldr"
)

// CLDRSource serves raw locale records straight from a CLDR core data
// directory (the XML distribution), so extraction can run without the
// JSON-converted dataset. The tree is decoded lazily on first use and
// shared across fetches.
type CLDRSource struct {
	path string

	once sync.Once
	data *cldr.CLDR
	err  error
}

// NewCLDRSource builds a source over the given CLDR core directory
// (expects a main/ subdirectory of LDML files).
func NewCLDRSource(path string) *CLDRSource {
	return &CLDRSource{path: path}
}

func (s *CLDRSource) load() (*cldr.CLDR, error) {
	s.once.Do(func() {
		var decoder cldr.Decoder
		decoder.SetSectionFilter("main")
		data, err := decoder.DecodePath(s.path)
		if err != nil {
			s.err = fmt.Errorf("displaynames: decode CLDR data: %w", err)
			return
		}
		s.data = data
	})
	return s.data, s.err
}

// Locales enumerates the locales present in the decoded tree.
func (s *CLDRSource) Locales() ([]string, error) {
	data, err := s.load()
	if err != nil {
		return nil, err
	}

	raw := data.Locales()
	locales := make([]string, 0, len(raw))
	for _, locale := range raw {
		locales = append(locales, strings.ReplaceAll(locale, "_", "-"))
	}
	return locales, nil
}

// Fetch implements DataSource over the decoded CLDR tree.
func (s *CLDRSource) Fetch(ctx context.Context, locale string) (RawLocaleSource, error) {
	data, err := s.load()
	if err != nil {
		return RawLocaleSource{}, err
	}
	if err := ctx.Err(); err != nil {
		return RawLocaleSource{}, err
	}

	ldml := data.RawLDML(strings.ReplaceAll(locale, "-", "_"))
	if ldml == nil {
		return RawLocaleSource{}, fmt.Errorf("displaynames: no CLDR data for locale %s", locale)
	}

	return RawLocaleSource{
		Languages:    cldrLanguages(ldml),
		Territories:  cldrTerritories(ldml),
		Scripts:      cldrScripts(ldml),
		DisplayNames: cldrDisplayNames(ldml),
		Currencies:   cldrCurrencies(ldml),
		DateFields:   cldrDateFields(ldml),
	}, nil
}

// cldrDisplayKey rebuilds the annotated key form the JSON dataset uses:
// the hyphenated type plus an "-alt-<variant>" suffix when present.
func cldrDisplayKey(common *cldr.Common) string {
	key := strings.ReplaceAll(common.Type, "_", "-")
	if common.Alt != "" {
		key += altMarker + common.Alt
	}
	return key
}

func cldrNameMap(entries []*cldr.Common) map[string]string {
	names := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry == nil || entry.Type == "" {
			continue
		}
		names[cldrDisplayKey(entry)] = entry.Data()
	}
	return names
}

func cldrLanguages(ldml *cldr.LDML) map[string]string {
	if ldml.LocaleDisplayNames == nil || ldml.LocaleDisplayNames.Languages == nil {
		return map[string]string{}
	}
	return cldrNameMap(ldml.LocaleDisplayNames.Languages.Language)
}

func cldrTerritories(ldml *cldr.LDML) map[string]string {
	if ldml.LocaleDisplayNames == nil || ldml.LocaleDisplayNames.Territories == nil {
		return map[string]string{}
	}
	return cldrNameMap(ldml.LocaleDisplayNames.Territories.Territory)
}

func cldrScripts(ldml *cldr.LDML) map[string]string {
	if ldml.LocaleDisplayNames == nil || ldml.LocaleDisplayNames.Scripts == nil {
		return map[string]string{}
	}
	return cldrNameMap(ldml.LocaleDisplayNames.Scripts.Script)
}

func cldrDisplayNames(ldml *cldr.LDML) RawDisplayNames {
	out := RawDisplayNames{
		LocalePattern: LocalePattern{},
		Types:         make(map[string]map[string]string),
	}

	names := ldml.LocaleDisplayNames
	if names == nil {
		return out
	}

	if pattern := names.LocaleDisplayPattern; pattern != nil {
		if value := firstCommonData(pattern.LocalePattern); value != "" {
			out.LocalePattern["localePattern"] = value
		}
		if value := firstCommonData(pattern.LocaleSeparator); value != "" {
			out.LocalePattern["localeSeparator"] = value
		}
		if value := firstCommonData(pattern.LocaleKeyTypePattern); value != "" {
			out.LocalePattern["localeKeyTypePattern"] = value
		}
	}

	if names.Types != nil {
		for _, entry := range names.Types.Type {
			if entry == nil || entry.Key == "" || entry.Type == "" {
				continue
			}
			bucket := out.Types[entry.Key]
			if bucket == nil {
				bucket = make(map[string]string)
				out.Types[entry.Key] = bucket
			}
			key := entry.Type
			if entry.Alt != "" {
				key += altMarker + entry.Alt
			}
			bucket[key] = entry.Data()
		}
	}

	return out
}

func cldrCurrencies(ldml *cldr.LDML) map[string]RawCurrency {
	out := make(map[string]RawCurrency)
	if ldml.Numbers == nil || ldml.Numbers.Currencies == nil {
		return out
	}

	for _, currency := range ldml.Numbers.Currencies.Currency {
		if currency == nil || currency.Type == "" {
			continue
		}

		entry := RawCurrency{}
		for _, name := range currency.DisplayName {
			if name == nil || name.Count != "" {
				continue
			}
			entry.DisplayName = name.Data()
			break
		}
		for _, symbol := range currency.Symbol {
			if symbol == nil || symbol.Alt != "" {
				continue
			}
			entry.Symbol = symbol.Data()
			break
		}

		out[currency.Type] = entry
	}
	return out
}

func cldrDateFields(ldml *cldr.LDML) map[string]RawDateField {
	out := make(map[string]RawDateField)
	if ldml.Dates == nil || ldml.Dates.Fields == nil {
		return out
	}

	// Fields without a displayName element stay in the map as empty
	// records; the extractor treats them as non-naming metadata.
	for _, field := range ldml.Dates.Fields.Field {
		if field == nil || field.Type == "" {
			continue
		}

		entry := RawDateField{}
		for _, name := range field.DisplayName {
			if name == nil || name.Alt != "" {
				continue
			}
			entry.DisplayName = name.Data()
			break
		}
		out[field.Type] = entry
	}
	return out
}

func firstCommonData(entries []*cldr.Common) string {
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		if value := entry.Data(); value != "" {
			return value
		}
	}
	return ""
}
