package displaynames

import "strings"

// dateFieldNames maps the source vendor's date/time field keys to the
// vocabulary the downstream formatter expects. Keys absent from the table
// pass through unchanged. Additions belong here, not in the extractor.
var dateFieldNames = map[string]string{
	"week":      "weekOfYear",
	"zone":      "timeZoneName",
	"dayperiod": "dayPeriod",
}

// parseDateFieldKey classifies a date/time field key. Unlike the general
// alternate markers, the field vocabulary annotates widths with bare
// "-short" and "-narrow" suffix segments (e.g. "week-short").
func parseDateFieldKey(key string) styleKey {
	if idx := strings.Index(key, "-narrow"); idx >= 0 {
		return styleKey{base: key[:idx], width: widthNarrow}
	}
	if idx := strings.Index(key, "-short"); idx >= 0 {
		return styleKey{base: key[:idx], width: widthShort}
	}
	return styleKey{base: key, width: widthLong}
}

// extractDateTimeFieldStyles splits date/time field records into the
// three-width schema, renaming bare keys through dateFieldNames. Entries
// without a display name are non-naming metadata and are skipped.
func extractDateTimeFieldStyles(fields map[string]RawDateField) WidthStyles {
	styles := newWidthStyles()
	for key, field := range fields {
		if field.DisplayName == "" {
			continue
		}

		parsed := parseDateFieldKey(key)
		name := parsed.base
		if renamed, ok := dateFieldNames[name]; ok {
			name = renamed
		}

		switch parsed.width {
		case widthNarrow:
			styles.Narrow[name] = field.DisplayName
		case widthShort:
			styles.Short[name] = field.DisplayName
		default:
			styles.Long[name] = field.DisplayName
		}
	}
	return styles
}
