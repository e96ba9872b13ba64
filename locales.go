package displaynames

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

//go:embed data/available_locales.json
var availableLocalesJSON []byte

var availableLocales = mustDecodeLocales(availableLocalesJSON)

// DefaultLocales returns the precomputed list of locales the bundled CLDR
// release ships display-name data for. It is the locale set used when an
// extraction does not request an explicit subset.
func DefaultLocales() []string {
	return append([]string(nil), availableLocales...)
}

func mustDecodeLocales(data []byte) []string {
	var locales []string
	if err := json.Unmarshal(data, &locales); err != nil {
		panic(fmt.Sprintf("displaynames: decode embedded locale list: %v", err))
	}
	return locales
}

// normalizeLocale normalizes a single locale identifier by replacing
// underscores with hyphens and trimming whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// FilterLocales normalizes candidate locale identifiers and drops any
// that fail BCP 47 parsing, reporting each drop through warnf. Invalid
// identifiers are a caller-side data problem, never an extraction
// failure. Order is preserved; duplicates collapse to the first
// occurrence.
func FilterLocales(candidates []string, warnf func(format string, args ...any)) []string {
	if len(candidates) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(candidates))
	result := make([]string, 0, len(candidates))

	for _, candidate := range candidates {
		normalized := normalizeLocale(candidate)
		if normalized == "" {
			continue
		}
		if _, err := language.Parse(normalized); err != nil {
			if warnf != nil {
				warnf("skipping invalid locale %q: %v", candidate, err)
			}
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}

	return result
}
