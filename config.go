package bepis

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bepisdev/bepis/siteconfig"
)

// Config holds the runtime settings of a bepis server. The site identity
// fields default to the static records in siteconfig.
type Config struct {
	Site    siteconfig.SiteDescriptor
	Locale  siteconfig.LocaleDescriptor
	Logo    siteconfig.LogoDescriptor
	Socials []siteconfig.SocialLink

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path (default "data/blog.db")
	StaticDir    string // Public assets (default "public")

	AdminPassword string // Required: admin login password
	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	PostCacheTTL time.Duration // Post cache TTL (default 5min)

	// Dev shows scheduled posts before their publish time.
	Dev bool
}

func (c *Config) setDefaults() {
	if c.Site == (siteconfig.SiteDescriptor{}) {
		c.Site = siteconfig.Site()
	}
	if c.Locale.Lang == "" && c.Locale.LangTag == nil {
		c.Locale = siteconfig.Locale()
	}
	if c.Logo == (siteconfig.LogoDescriptor{}) {
		c.Logo = siteconfig.LogoImage()
	}
	if c.Socials == nil {
		c.Socials = siteconfig.Socials()
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/blog.db"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
}

// BaseURL returns Site.Website without a trailing slash.
func (c Config) BaseURL() string {
	return strings.TrimSuffix(c.Site.Website, "/")
}

// Check reports authoring mistakes in the site records: malformed URLs,
// a non-positive page size, a negative margin, empty link labels or an
// invalid language code. All problems are joined into one error.
func (c Config) Check() error {
	var errs []error

	if u, err := url.Parse(c.Site.Website); err != nil || !u.IsAbs() || u.Host == "" {
		errs = append(errs, fmt.Errorf("site website %q is not an absolute URL", c.Site.Website))
	}
	if c.Site.Title == "" {
		errs = append(errs, errors.New("site title is empty"))
	}
	if c.Site.PostPerPage < 1 {
		errs = append(errs, fmt.Errorf("postPerPage must be >= 1, got %d", c.Site.PostPerPage))
	}
	if c.Site.ScheduledPostMargin < 0 {
		errs = append(errs, fmt.Errorf("scheduledPostMargin must not be negative, got %s", c.Site.ScheduledPostMargin))
	}
	if c.Locale.Lang != "" {
		if _, err := siteconfig.ParseLangTag(c.Locale.Lang); err != nil {
			errs = append(errs, fmt.Errorf("locale lang: %w", err))
		}
	}
	if c.Logo.Enable && (c.Logo.Width <= 0 || c.Logo.Height <= 0) {
		errs = append(errs, fmt.Errorf("logo enabled with size %dx%d", c.Logo.Width, c.Logo.Height))
	}
	for i, s := range c.Socials {
		if s.LinkTitle == "" {
			errs = append(errs, fmt.Errorf("social %d (%s): empty linkTitle", i, s.Name))
		}
		u, err := url.Parse(s.Href)
		if err != nil || !(u.Scheme == "mailto" || (u.IsAbs() && u.Host != "")) {
			errs = append(errs, fmt.Errorf("social %d (%s): href %q is not absolute or mailto", i, s.Name, s.Href))
		}
	}
	return errors.Join(errs...)
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithLogger sets the structured logger (default zap.NewNop).
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithClock replaces time.Now for scheduled-post checks.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}
