package siteconfig

import "time"

// SiteDescriptor is the top-level site metadata.
type SiteDescriptor struct {
	Website             string        // canonical site URL, absolute
	Author              string        // author name for meta and JSON-LD
	Desc                string        // default meta description
	Title               string        // site title
	OGImage             string        // social sharing image, relative to the public dir
	LightAndDarkMode    bool          // render the theme toggle
	PostPerPage         int           // listing page size
	ScheduledPostMargin time.Duration // future-dated posts inside this window count as published
}

// ScheduledPostMarginMillis returns the scheduling margin in milliseconds.
func (s SiteDescriptor) ScheduledPostMarginMillis() int64 {
	return s.ScheduledPostMargin.Milliseconds()
}

// LocaleDescriptor carries the html lang code and the BCP 47 tags used for
// date formatting. Both may be empty; see ResolveLang and ResolveLangTags.
type LocaleDescriptor struct {
	Lang    string
	LangTag []string
}

// LogoDescriptor controls the header logo.
type LogoDescriptor struct {
	Enable bool
	SVG    bool
	Width  int
	Height int
}

// Platform names a social network known to the renderer.
type Platform string

const (
	PlatformGithub    Platform = "Github"
	PlatformFacebook  Platform = "Facebook"
	PlatformInstagram Platform = "Instagram"
	PlatformLinkedIn  Platform = "LinkedIn"
	PlatformMail      Platform = "Mail"
	PlatformTwitter   Platform = "Twitter"
	PlatformTwitch    Platform = "Twitch"
	PlatformYouTube   Platform = "YouTube"
	PlatformWhatsApp  Platform = "WhatsApp"
	PlatformSnapchat  Platform = "Snapchat"
	PlatformPinterest Platform = "Pinterest"
	PlatformTikTok    Platform = "TikTok"
	PlatformCodePen   Platform = "CodePen"
	PlatformDiscord   Platform = "Discord"
	PlatformGitLab    Platform = "GitLab"
	PlatformReddit    Platform = "Reddit"
	PlatformSkype     Platform = "Skype"
	PlatformSteam     Platform = "Steam"
	PlatformTelegram  Platform = "Telegram"
	PlatformMastodon  Platform = "Mastodon"
)

// SocialLink is one outbound link shown in the header and footer.
type SocialLink struct {
	Name      Platform
	Href      string
	LinkTitle string // accessibility label
	Active    bool
}
