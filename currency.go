package displaynames

// extractCurrencyStyles projects currency records into the three-width
// schema. The source carries no short or narrow currency names, so only
// the long bucket is populated. An entry without a display name is
// malformed source data and fails the locale's extraction.
func extractCurrencyStyles(locale string, currencies map[string]RawCurrency) (WidthStyles, error) {
	styles := newWidthStyles()
	for code, currency := range currencies {
		if currency.DisplayName == "" {
			return WidthStyles{}, &MissingFieldError{
				Locale:    locale,
				Container: "currencies",
				Key:       code,
				Field:     "displayName",
			}
		}
		styles.Long[code] = currency.DisplayName
	}
	return styles, nil
}
