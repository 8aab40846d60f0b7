package bepis

import (
	"strings"
	"testing"
	"time"

	"github.com/bepisdev/bepis/siteconfig"
)

func TestSetDefaultsUsesSiteConfig(t *testing.T) {
	var cfg Config
	cfg.setDefaults()

	if cfg.Site != siteconfig.Site() {
		t.Errorf("Site = %+v, want siteconfig.Site()", cfg.Site)
	}
	if cfg.Logo != siteconfig.LogoImage() {
		t.Errorf("Logo = %+v, want siteconfig.LogoImage()", cfg.Logo)
	}
	if len(cfg.Socials) != 4 {
		t.Errorf("Socials = %d entries, want 4", len(cfg.Socials))
	}
	if cfg.Locale.Lang != "en" {
		t.Errorf("Locale.Lang = %q, want en", cfg.Locale.Lang)
	}
	if cfg.Addr != ":3000" || cfg.DatabasePath != "data/blog.db" || cfg.StaticDir != "public" {
		t.Errorf("defaults = %q %q %q", cfg.Addr, cfg.DatabasePath, cfg.StaticDir)
	}
	if cfg.PostCacheTTL != 5*time.Minute {
		t.Errorf("PostCacheTTL = %v", cfg.PostCacheTTL)
	}
	if cfg.BaseURL() != "https://bepis.uk" {
		t.Errorf("BaseURL() = %q", cfg.BaseURL())
	}
}

func TestSetDefaultsKeepsExplicitLocale(t *testing.T) {
	cfg := Config{Locale: siteconfig.LocaleDescriptor{LangTag: []string{}}}
	cfg.setDefaults()
	if cfg.Locale.Lang != "" || len(cfg.Locale.LangTag) != 0 {
		t.Errorf("explicit empty locale was replaced: %+v", cfg.Locale)
	}
}

func TestCheckAcceptsShippedConfig(t *testing.T) {
	var cfg Config
	cfg.setDefaults()
	if err := cfg.Check(); err != nil {
		t.Errorf("Check() on the shipped site config: %v", err)
	}
}

func TestCheckReportsAuthoringMistakes(t *testing.T) {
	var cfg Config
	cfg.setDefaults()
	cfg.Site.Website = "bepis.uk"
	cfg.Site.PostPerPage = 0
	cfg.Site.ScheduledPostMargin = -time.Minute
	cfg.Locale.Lang = "not a tag!"
	cfg.Logo = siteconfig.LogoDescriptor{Enable: true}
	cfg.Socials = []siteconfig.SocialLink{
		{Name: siteconfig.PlatformGithub, Href: "github.com/x", LinkTitle: ""},
	}

	err := cfg.Check()
	if err == nil {
		t.Fatal("expected errors")
	}
	msg := err.Error()
	for _, want := range []string{"website", "postPerPage", "scheduledPostMargin", "locale lang", "logo", "empty linkTitle", "not absolute or mailto"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Check() error missing %q:\n%s", want, msg)
		}
	}
}
