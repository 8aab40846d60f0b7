package siteconfig

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLang is used when the configured language code is empty.
const DefaultLang = "en"

// ResolveLang returns lang, or DefaultLang when lang is blank.
func ResolveLang(lang string) string {
	if l := strings.TrimSpace(lang); l != "" {
		return l
	}
	return DefaultLang
}

// ResolveLangTags returns tags unchanged when non-empty. An empty list means
// "use the environment default": the POSIX locale variables are consulted in
// order and the first parseable one wins, falling back to DefaultLang.
// getenv is normally os.Getenv; nil means os.Getenv.
func ResolveLangTags(tags []string, getenv func(string) string) []string {
	if len(tags) > 0 {
		out := make([]string, len(tags))
		copy(out, tags)
		return out
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if tag, ok := posixLocaleTag(getenv(key)); ok {
			return []string{tag}
		}
	}
	return []string{DefaultLang}
}

// posixLocaleTag converts values like "en_GB.UTF-8" or "de_DE@euro" to a
// BCP 47 tag. "C" and "POSIX" carry no language and are rejected.
func posixLocaleTag(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "" || v == "C" || v == "POSIX" {
		return "", false
	}
	tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
	if err != nil {
		return "", false
	}
	return tag.String(), true
}

// ParseLangTag parses a BCP 47 tag, reporting malformed input.
func ParseLangTag(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language tag %q: %w", s, err)
	}
	return tag, nil
}
