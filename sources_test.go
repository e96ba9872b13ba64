package displaynames

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeSourceFile(t *testing.T, root, pkg, locale, name, payload string) {
	t.Helper()

	dir := filepath.Join(root, pkg, "main", locale)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}

	content := `{"main": {"` + locale + `": ` + payload + `}}`
	if err := os.WriteFile(filepath.Join(dir, name+".json"), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func writeTestLocale(t *testing.T, root, locale string) {
	t.Helper()

	writeSourceFile(t, root, namesPackage, locale, "languages", `{
		"localeDisplayNames": {"languages": {"en": "English", "en-US": "American English"}}
	}`)
	writeSourceFile(t, root, namesPackage, locale, "territories", `{
		"localeDisplayNames": {"territories": {"US": "United States", "GB": "United Kingdom", "GB-alt-short": "UK"}}
	}`)
	writeSourceFile(t, root, namesPackage, locale, "scripts", `{
		"localeDisplayNames": {"scripts": {"Latn": "Latin"}}
	}`)
	writeSourceFile(t, root, namesPackage, locale, "localeDisplayNames", `{
		"localeDisplayNames": {
			"localeDisplayPattern": {"localePattern": "{0} ({1})", "localeSeparator": "{0}, {1}"},
			"types": {"calendar": {"gregorian": "Gregorian Calendar"}}
		}
	}`)
	writeSourceFile(t, root, numbersPackage, locale, "currencies", `{
		"numbers": {"currencies": {"USD": {"displayName": "US Dollar", "symbol": "$", "displayName-count-one": "US dollar"}}}
	}`)
	writeSourceFile(t, root, datesPackage, locale, "dateFields", `{
		"dates": {"fields": {"week": {"displayName": "week"}, "week-short": {"displayName": "wk."}, "zone": {"relative-type-0": "now"}}}
	}`)
}

func TestFileSourceFetch(t *testing.T) {
	root := t.TempDir()
	writeTestLocale(t, root, "en")

	source := NewFileSource(root)
	src, err := source.Fetch(context.Background(), "en")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if src.Languages["en-US"] != "American English" {
		t.Fatalf("Languages = %v", src.Languages)
	}
	if src.Territories["GB-alt-short"] != "UK" {
		t.Fatalf("Territories = %v", src.Territories)
	}
	if src.DisplayNames.LocalePattern["localePattern"] != "{0} ({1})" {
		t.Fatalf("LocalePattern = %v", src.DisplayNames.LocalePattern)
	}
	if src.DisplayNames.Types["calendar"]["gregorian"] != "Gregorian Calendar" {
		t.Fatalf("Types = %v", src.DisplayNames.Types)
	}
	if src.Currencies["USD"].DisplayName != "US Dollar" {
		t.Fatalf("Currencies = %v", src.Currencies)
	}
	if src.DateFields["zone"].DisplayName != "" {
		t.Fatalf("zone should have no display name: %v", src.DateFields)
	}

	record, err := ExtractLocale("en", src)
	if err != nil {
		t.Fatalf("ExtractLocale: %v", err)
	}
	if record.Types.DateTimeField.Short["weekOfYear"] != "wk." {
		t.Fatalf("dateTimeField.short = %v", record.Types.DateTimeField.Short)
	}
}

func TestFileSourceFetchMissingFile(t *testing.T) {
	root := t.TempDir()
	writeTestLocale(t, root, "en")
	if err := os.Remove(filepath.Join(root, numbersPackage, "main", "en", "currencies.json")); err != nil {
		t.Fatalf("remove: %v", err)
	}

	_, err := NewFileSource(root).Fetch(context.Background(), "en")
	if err == nil {
		t.Fatal("expected error for missing currencies file")
	}
	if !strings.Contains(err.Error(), "en") || !strings.Contains(err.Error(), "currencies") {
		t.Fatalf("error %q does not identify locale and record", err.Error())
	}
}

func TestFileSourceFetchWrongLocaleEnvelope(t *testing.T) {
	root := t.TempDir()
	writeTestLocale(t, root, "en")
	writeSourceFile(t, root, namesPackage, "fr", "languages", `{"localeDisplayNames": {"languages": {}}}`)

	_, err := NewFileSource(root).Fetch(context.Background(), "fr")
	if err == nil {
		t.Fatal("expected error for incomplete locale directory")
	}
}

func TestFileSourceLocales(t *testing.T) {
	root := t.TempDir()
	writeTestLocale(t, root, "en")
	writeTestLocale(t, root, "fr")

	locales, err := NewFileSource(root).Locales()
	if err != nil {
		t.Fatalf("Locales: %v", err)
	}
	if !reflect.DeepEqual(locales, []string{"en", "fr"}) {
		t.Fatalf("Locales = %v", locales)
	}
}
