package ui

import "testing"

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyGenerate); got != "Generate Itinerary" {
		t.Errorf("unexpected English text: %q", got)
	}

	l.SetLanguage("pt")
	if got := l.GetText(KeyShare); got != "Compartilhar" {
		t.Errorf("unexpected Portuguese text: %q", got)
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "pt" {
		t.Error("unknown language should be ignored")
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("system should resolve to en, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("missing key should come back verbatim, got %q", got)
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for code := range l.GetAvailableLanguages() {
		t.Run(code, func(t *testing.T) {
			texts, ok := l.texts[code]
			if !ok {
				t.Fatalf("no table for %s", code)
			}
			for key := range english {
				if texts[key] == "" {
					t.Errorf("%s is missing %s", code, key)
				}
			}
		})
	}
}
