package displaynames

// ExtractLocale assembles the normalized display-name record for one
// locale from its raw source records. The calendar type names and the
// locale pattern both ride in the localeDisplayNames container; the
// pattern is copied through unchanged. Any extractor failure aborts the
// locale, so a partial record is never returned.
func ExtractLocale(locale string, src RawLocaleSource) (LocaleRecord, error) {
	currency, err := extractCurrencyStyles(locale, src.Currencies)
	if err != nil {
		return LocaleRecord{}, err
	}

	return LocaleRecord{
		Types: LocaleTypes{
			Language:      extractLanguageStyles(src.Languages, src.Territories),
			Region:        SplitStyles(src.Territories),
			Script:        SplitStyles(src.Scripts),
			Currency:      currency,
			Calendar:      SplitStyles(src.DisplayNames.Types["calendar"]),
			DateTimeField: extractDateTimeFieldStyles(src.DateFields),
		},
		Patterns: LocalePatterns{Locale: src.DisplayNames.LocalePattern.clone()},
	}, nil
}
