package displaynames

import "strings"

// extractLanguageStyles computes the two naming variants for a locale's
// language codes. Dialect applies the plain style split to the language
// mapping. Standard walks the same keys but replaces the value of any
// compound language-region tag whose region resolves in the territories
// mapping with a synthesized "Language (Region)" composite; unresolved
// tags keep their dialect value.
func extractLanguageStyles(languages, territories map[string]string) LanguageStyles {
	out := LanguageStyles{
		Dialect:  SplitStyles(languages),
		Standard: newWidthStyles(),
	}

	for key, value := range languages {
		parsed := parseStyleKey(key)
		if parsed.width == widthUnsupportedAlt {
			continue
		}

		if composite, ok := composeStandardName(parsed.base, languages, territories); ok {
			value = composite
		}

		switch parsed.width {
		case widthNarrow:
			out.Standard.Narrow[parsed.base] = value
		case widthShort:
			out.Standard.Short[parsed.base] = value
		default:
			out.Standard.Long[parsed.base] = value
		}
	}

	return out
}

// composeStandardName synthesizes "Language (Region)" for a compound tag.
// Both the language subtag and the region subtag must resolve in their
// source mappings; otherwise ok is false and the caller keeps the dialect
// value.
func composeStandardName(tag string, languages, territories map[string]string) (string, bool) {
	lang, rest, ok := strings.Cut(tag, "-")
	if !ok {
		return "", false
	}

	region := rest
	if idx := strings.Index(region, "-"); idx >= 0 {
		region = region[:idx]
	}

	regionName, ok := territories[region]
	if !ok {
		return "", false
	}
	langName, ok := languages[lang]
	if !ok {
		return "", false
	}

	return langName + " (" + regionName + ")", true
}
