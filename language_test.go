package displaynames

import "testing"

func TestExtractLanguageStylesComposite(t *testing.T) {
	styles := extractLanguageStyles(
		map[string]string{"en": "English", "en-US": "American English"},
		map[string]string{"US": "United States"},
	)

	if got := styles.Dialect.Long["en-US"]; got != "American English" {
		t.Fatalf("dialect.long[en-US] = %q", got)
	}
	if got := styles.Standard.Long["en-US"]; got != "English (United States)" {
		t.Fatalf("standard.long[en-US] = %q", got)
	}
	if got := styles.Standard.Long["en"]; got != "English" {
		t.Fatalf("standard.long[en] = %q", got)
	}
}

func TestExtractLanguageStylesUnresolvedRegion(t *testing.T) {
	styles := extractLanguageStyles(
		map[string]string{"fr": "French", "fr-CA": "Canadian French"},
		map[string]string{},
	)

	if got := styles.Standard.Long["fr-CA"]; got != "Canadian French" {
		t.Fatalf("standard.long[fr-CA] = %q, want dialect fallback", got)
	}
}

func TestExtractLanguageStylesScriptSegment(t *testing.T) {
	// "Hans" is a script, not a region, so no composite is synthesized.
	styles := extractLanguageStyles(
		map[string]string{"zh": "Chinese", "zh-Hans-CN": "Simplified Chinese (China)"},
		map[string]string{"CN": "China"},
	)

	if got := styles.Standard.Long["zh-Hans-CN"]; got != "Simplified Chinese (China)" {
		t.Fatalf("standard.long[zh-Hans-CN] = %q, want dialect fallback", got)
	}
}

func TestExtractLanguageStylesAnnotatedKeys(t *testing.T) {
	styles := extractLanguageStyles(
		map[string]string{
			"en":               "English",
			"en-GB":            "British English",
			"en-GB-alt-short":  "UK English",
			"az-alt-variant":   "Azeri",
			"en-US-alt-short":  "US English",
			"en-US":            "American English",
			"en-US-alt-narrow": "American",
			"nds-NL-alt-menu":  "Low Saxon",
		},
		map[string]string{"GB": "United Kingdom", "US": "United States"},
	)

	// Dialect buckets keep the raw values.
	if got := styles.Dialect.Short["en-GB"]; got != "UK English" {
		t.Fatalf("dialect.short[en-GB] = %q", got)
	}

	// Standard buckets synthesize composites per stripped base.
	if got := styles.Standard.Short["en-GB"]; got != "English (United Kingdom)" {
		t.Fatalf("standard.short[en-GB] = %q", got)
	}
	if got := styles.Standard.Narrow["en-US"]; got != "English (United States)" {
		t.Fatalf("standard.narrow[en-US] = %q", got)
	}

	// Unsupported alternates are absent from every standard bucket.
	for _, bucket := range []map[string]string{styles.Standard.Long, styles.Standard.Short, styles.Standard.Narrow} {
		if _, ok := bucket["az"]; ok {
			t.Fatal("az-alt-variant leaked into standard buckets")
		}
		if _, ok := bucket["nds-NL"]; ok {
			t.Fatal("nds-NL-alt-menu leaked into standard buckets")
		}
	}
}
