package siteconfig

import "testing"

func TestResolveLang(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en", "en"},
		{"", "en"},
		{"   ", "en"},
		{"de", "de"},
	}
	for _, tt := range tests {
		if got := ResolveLang(tt.input); got != tt.expected {
			t.Errorf("ResolveLang(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestResolveLangTagsKeepsConfigured(t *testing.T) {
	got := ResolveLangTags([]string{"en-EN"}, envMap(map[string]string{"LANG": "de_DE.UTF-8"}))
	if len(got) != 1 || got[0] != "en-EN" {
		t.Errorf("ResolveLangTags = %v, want [en-EN]", got)
	}
}

func TestResolveLangTagsFallsBackToEnvironment(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected string
	}{
		{"lang", map[string]string{"LANG": "de_DE.UTF-8"}, "de-DE"},
		{"lc_all wins", map[string]string{"LC_ALL": "fr_FR", "LANG": "de_DE"}, "fr-FR"},
		{"modifier", map[string]string{"LANG": "nl_NL@euro"}, "nl-NL"},
		{"posix skipped", map[string]string{"LC_ALL": "C", "LANG": "en_GB.UTF-8"}, "en-GB"},
		{"nothing set", map[string]string{}, "en"},
		{"garbage", map[string]string{"LANG": "???"}, "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveLangTags(nil, envMap(tt.env))
			if len(got) != 1 || got[0] != tt.expected {
				t.Errorf("ResolveLangTags(nil) = %v, want [%s]", got, tt.expected)
			}
		})
	}
}

func TestResolveLangTagsEmptySliceIsNotAnError(t *testing.T) {
	got := ResolveLangTags([]string{}, envMap(nil))
	if len(got) == 0 {
		t.Fatal("expected a default tag for an empty list")
	}
}

func TestParseLangTag(t *testing.T) {
	if _, err := ParseLangTag("en"); err != nil {
		t.Errorf("ParseLangTag(en) error: %v", err)
	}
	if _, err := ParseLangTag("not a tag!"); err == nil {
		t.Error("expected error for malformed tag")
	}
}
