package displaynames

// WidthStyles is the canonical shape of one display-name category: the
// three verbosity levels the output schema recognizes, each independently
// keyed by the bare (unannotated) source key. A key present only in Long
// has no narrower variant.
type WidthStyles struct {
	Long   map[string]string `json:"long" yaml:"long"`
	Short  map[string]string `json:"short" yaml:"short"`
	Narrow map[string]string `json:"narrow" yaml:"narrow"`
}

func newWidthStyles() WidthStyles {
	return WidthStyles{
		Long:   make(map[string]string),
		Short:  make(map[string]string),
		Narrow: make(map[string]string),
	}
}

// Clone returns an independent copy of the styles.
func (s WidthStyles) Clone() WidthStyles {
	return WidthStyles{
		Long:   cloneStringMap(s.Long),
		Short:  cloneStringMap(s.Short),
		Narrow: cloneStringMap(s.Narrow),
	}
}

// LanguageStyles carries the two language naming variants. Dialect keeps
// the source names verbatim; Standard resolves compound language-region
// tags into "Language (Region)" composites when the region is
// independently known.
type LanguageStyles struct {
	Dialect  WidthStyles `json:"dialect" yaml:"dialect"`
	Standard WidthStyles `json:"standard" yaml:"standard"`
}

// Clone returns an independent copy of both variants.
func (s LanguageStyles) Clone() LanguageStyles {
	return LanguageStyles{
		Dialect:  s.Dialect.Clone(),
		Standard: s.Standard.Clone(),
	}
}

// LocaleTypes groups the per-category display names of one locale. Field
// names and nesting are the contract the downstream formatter reads; they
// must not change.
type LocaleTypes struct {
	Language      LanguageStyles `json:"language" yaml:"language"`
	Region        WidthStyles    `json:"region" yaml:"region"`
	Script        WidthStyles    `json:"script" yaml:"script"`
	Currency      WidthStyles    `json:"currency" yaml:"currency"`
	Calendar      WidthStyles    `json:"calendar" yaml:"calendar"`
	DateTimeField WidthStyles    `json:"dateTimeField" yaml:"dateTimeField"`
}

// LocalePattern mirrors CLDR's localeDisplayPattern block. The extractor
// copies it through unchanged; it is never restructured.
type LocalePattern map[string]string

func (p LocalePattern) clone() LocalePattern {
	out := make(LocalePattern, len(p))
	for key, value := range p {
		out[key] = value
	}
	return out
}

// LocalePatterns holds the pattern definitions of a locale record.
type LocalePatterns struct {
	Locale LocalePattern `json:"locale" yaml:"locale"`
}

// LocaleRecord is the normalized display-name data for a single locale.
type LocaleRecord struct {
	Types    LocaleTypes    `json:"types" yaml:"types"`
	Patterns LocalePatterns `json:"patterns" yaml:"patterns"`
}

// Clone returns an independent copy of the record.
func (r LocaleRecord) Clone() LocaleRecord {
	return LocaleRecord{
		Types: LocaleTypes{
			Language:      r.Types.Language.Clone(),
			Region:        r.Types.Region.Clone(),
			Script:        r.Types.Script.Clone(),
			Currency:      r.Types.Currency.Clone(),
			Calendar:      r.Types.Calendar.Clone(),
			DateTimeField: r.Types.DateTimeField.Clone(),
		},
		Patterns: LocalePatterns{Locale: r.Patterns.Locale.clone()},
	}
}

// LocaleData maps locale identifiers to their extracted records. A run
// either contributes a complete record for a locale or none at all;
// records are never partially populated or updated in place.
type LocaleData map[string]LocaleRecord

// Clone returns an independent snapshot of the data.
func (d LocaleData) Clone() LocaleData {
	out := make(LocaleData, len(d))
	for locale, record := range d {
		out[locale] = record.Clone()
	}
	return out
}

// RawCurrency is one currency entry as supplied by the source dataset.
// DisplayName is required; Symbol rides along for sources that carry it.
type RawCurrency struct {
	DisplayName string `json:"displayName"`
	Symbol      string `json:"symbol,omitempty"`
}

// RawDateField is one date/time field entry. Entries without a display
// name are non-naming metadata (relative-time tables and the like) and
// are skipped during extraction.
type RawDateField struct {
	DisplayName string `json:"displayName"`
}

// RawDisplayNames is the localeDisplayNames container record. It
// contributes the opaque locale pattern and, through Types, the calendar
// type names.
type RawDisplayNames struct {
	LocalePattern LocalePattern                `json:"localeDisplayPattern"`
	Types         map[string]map[string]string `json:"types"`
}

// RawLocaleSource bundles the six raw records the assembler needs for one
// locale. Field keys still use the source vendor's annotated form.
type RawLocaleSource struct {
	Languages    map[string]string
	Territories  map[string]string
	Scripts      map[string]string
	DisplayNames RawDisplayNames
	Currencies   map[string]RawCurrency
	DateFields   map[string]RawDateField
}

func cloneStringMap(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}
