package views

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bepisdev/bepis"
	"github.com/bepisdev/bepis/siteconfig"
)

// HTMLLang returns the lang attribute for <html>.
func HTMLLang(sc bepis.SiteContext) string {
	return siteconfig.ResolveLang(sc.Locale.Lang)
}

// OGLocale returns the og:locale value from the first language tag,
// e.g. "en-EN" becomes "en_EN".
func OGLocale(sc bepis.SiteContext) string {
	tags := siteconfig.ResolveLangTags(sc.Locale.LangTag, nil)
	return strings.ReplaceAll(tags[0], "-", "_")
}

// displayTag is the language used for case mapping of display strings.
func displayTag(sc bepis.SiteContext) language.Tag {
	tags := siteconfig.ResolveLangTags(sc.Locale.LangTag, nil)
	return language.Make(tags[0])
}

// TagTitle formats a stored (lowercase) tag for display.
func TagTitle(sc bepis.SiteContext, tag string) string {
	return cases.Title(displayTag(sc)).String(strings.ReplaceAll(tag, "-", " "))
}

// FormatDate renders a post date as "2 Jan, 2006".
func FormatDate(t time.Time) string {
	return t.Format("2 Jan, 2006")
}

// LogoSrc returns the logo path for the configured format.
func LogoSrc(logo siteconfig.LogoDescriptor) string {
	if logo.SVG {
		return "/public/logo.svg"
	}
	return "/public/logo.png"
}

// SocialIcon returns the icon class for a platform.
func SocialIcon(p siteconfig.Platform) string {
	return "icon-" + strings.ToLower(string(p))
}

// TagClass returns CSS classes for a tag pill, with active variant.
func TagClass(active bool) string {
	base := "tag"
	if active {
		base += " tag-active"
	}
	return base
}

// JoinTags formats a tag slice as a comma-separated string for form fields.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// datetimeLocal formats t for <input type="datetime-local">.
func datetimeLocal(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02T15:04")
}
