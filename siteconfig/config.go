// Package siteconfig holds the static identity of the site: metadata, locale,
// logo options and the social link list. Values are fixed at build time and
// handed out as copies, so callers can never alter the shared record.
package siteconfig

import (
	"slices"
	"time"
)

const (
	Website          = "https://bepis.uk/" // replace with the deployed domain
	Author           = "Josh Burns"
	Desc             = "My blog and portfolio."
	Title            = "BEPIS"
	OGImage          = "astropaper-og.jpg"
	LightAndDarkMode = false
	PostPerPage      = 3

	ScheduledPostMargin = 15 * time.Minute
)

var site = SiteDescriptor{
	Website:             Website,
	Author:              Author,
	Desc:                Desc,
	Title:               Title,
	OGImage:             OGImage,
	LightAndDarkMode:    LightAndDarkMode,
	PostPerPage:         PostPerPage,
	ScheduledPostMargin: ScheduledPostMargin,
}

var locale = LocaleDescriptor{
	Lang:    "en",              // html lang code; empty means "en"
	LangTag: []string{"en-EN"}, // empty means the environment default
}

var logoImage = LogoDescriptor{
	Enable: false,
	SVG:    true,
	Width:  216,
	Height: 46,
}

var socials = []SocialLink{
	{
		Name:      PlatformGithub,
		Href:      "https://github.com/bepisdev",
		LinkTitle: " " + site.Title + " on Github",
		Active:    true,
	},
	{
		Name:      PlatformLinkedIn,
		Href:      "https://linkedin.com/in/joshaburns",
		LinkTitle: site.Title + " on LinkedIn",
		Active:    true,
	},
	{
		Name:      PlatformMail,
		Href:      "mailto:joshyburnss@gmail.com",
		LinkTitle: "Send an email to " + site.Title,
		Active:    true,
	},
	{
		Name:      PlatformTwitter,
		Href:      "https://x.com/joshburnsxyz",
		LinkTitle: "Follow me on X (Twitter)",
		Active:    true,
	},
}

// Site returns the site descriptor.
func Site() SiteDescriptor {
	return site
}

// Locale returns the locale descriptor. The tag slice is a fresh copy.
func Locale() LocaleDescriptor {
	return LocaleDescriptor{
		Lang:    locale.Lang,
		LangTag: slices.Clone(locale.LangTag),
	}
}

// LogoImage returns the logo descriptor.
func LogoImage() LogoDescriptor {
	return logoImage
}

// Socials returns the social links in display order, inactive ones included.
func Socials() []SocialLink {
	return slices.Clone(socials)
}

// ActiveSocials filters links down to the ones marked active, keeping order.
func ActiveSocials(links []SocialLink) []SocialLink {
	var out []SocialLink
	for _, l := range links {
		if l.Active {
			out = append(out, l)
		}
	}
	return out
}
