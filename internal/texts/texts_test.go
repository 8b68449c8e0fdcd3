package texts

import (
	"strings"
	"testing"
)

func TestText_FormatsArgs(t *testing.T) {
	t.Parallel()

	got := Text("en", "profile_view", "Alice", "+15550100", "Acme")
	if !strings.Contains(got, "Alice") || !strings.Contains(got, "Acme") {
		t.Errorf("unexpected formatted message: %q", got)
	}
}

func TestText_FallsBackToEnglish(t *testing.T) {
	t.Parallel()

	if got := Text("de", "welcome"); got != Text("en", "welcome") {
		t.Errorf("expected english fallback, got %q", got)
	}
}

func TestText_UnknownKeyReturnedVerbatim(t *testing.T) {
	t.Parallel()

	if got := Text("en", "no_such_key"); got != "no_such_key" {
		t.Errorf("expected key echoed back, got %q", got)
	}
}

func TestCatalog_AllLanguagesCoverEnglishKeys(t *testing.T) {
	t.Parallel()

	for _, lang := range Languages() {
		msgs := catalog[lang]
		for key := range catalog["en"] {
			if _, ok := msgs[key]; !ok {
				t.Errorf("language %s is missing key %s", lang, key)
			}
		}
	}
}
