package displaynames

import (
	"fmt"
	"reflect"
	"testing"
)

func TestDefaultLocales(t *testing.T) {
	locales := DefaultLocales()
	if len(locales) == 0 {
		t.Fatal("embedded locale list is empty")
	}

	found := false
	for _, locale := range locales {
		if locale == "en" {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected en in the default locale list")
	}

	// Returned slice is a copy; mutating it must not leak back.
	locales[0] = "mutated"
	if DefaultLocales()[0] == "mutated" {
		t.Fatal("DefaultLocales returns shared storage")
	}
}

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "en_US", want: "en-US"},
		{in: "  fr-CA ", want: "fr-CA"},
		{in: "pt", want: "pt"},
		{in: "", want: ""},
	}

	for _, tc := range tests {
		if got := normalizeLocale(tc.in); got != tc.want {
			t.Fatalf("normalizeLocale(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFilterLocales(t *testing.T) {
	var warnings []string
	warnf := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	got := FilterLocales([]string{"en_US", "fr", "!!", "fr", " ", "de-AT"}, warnf)

	want := []string{"en-US", "fr", "de-AT"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FilterLocales = %v, want %v", got, want)
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v", warnings)
	}
}

func TestFilterLocalesNilWarn(t *testing.T) {
	got := FilterLocales([]string{"en", "!!"}, nil)
	if !reflect.DeepEqual(got, []string{"en"}) {
		t.Fatalf("FilterLocales = %v", got)
	}
}
