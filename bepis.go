// Package bepis is the blog engine behind bepis.uk, built with Echo and templ.
// Site identity (title, locale, logo, social links) comes from the static
// records in package siteconfig; this package stores posts in SQLite,
// decides which ones are visible, paginates them, and serves the pages,
// feeds and admin dashboard.
//
// Templates are supplied through ViewFuncs, so the engine never imports
// the views package.
package bepis

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/bepisdev/bepis/siteconfig"
)

// SiteContext is the site-wide data every page template receives.
type SiteContext struct {
	Site    siteconfig.SiteDescriptor
	Locale  siteconfig.LocaleDescriptor
	Logo    siteconfig.LogoDescriptor
	Socials []siteconfig.SocialLink
}

// ViewFuncs holds the templ components the engine calls when rendering.
type ViewFuncs struct {
	Home             func(sc SiteContext, meta PageMeta, featured []BlogPost, recent []BlogPost) templ.Component
	Posts            func(sc SiteContext, meta PageMeta, page Page) templ.Component
	Post             func(sc SiteContext, meta PageMeta, post BlogPost, prev, next *BlogPost) templ.Component
	Tags             func(sc SiteContext, meta PageMeta, tags []string) templ.Component
	TagPosts         func(sc SiteContext, meta PageMeta, tag string, page Page) templ.Component
	AdminLogin       func(sc SiteContext, showError bool, csrfToken string) templ.Component
	AdminDashboard   func(sc SiteContext, posts []BlogPost, message string, csrfToken string) templ.Component
	AdminFormPartial func(post BlogPost, csrfToken string) templ.Component
	AdminImages      func(images []Image, csrfToken string) templ.Component
	NotFound         func(sc SiteContext) templ.Component
	ServerError      func(sc SiteContext) templ.Component
}

// App is the central bepis application. It wires together the store,
// cache, handlers, middleware, and templates.
type App struct {
	Config Config
	Echo   *echo.Echo
	Store  *Store
	Cache  *PostCache
	Views  ViewFuncs
	Logger *zap.Logger

	loginLimiter *LoginLimiter
	customRoutes []func(*App)
	now          func() time.Time
}

// New creates an App with the given configuration and view functions.
func New(cfg Config, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  views,
		Logger: zap.NewNop(),
		now:    time.Now,
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// SiteContext returns the data passed to every page template.
func (a *App) SiteContext() SiteContext {
	return SiteContext{
		Site:    a.Config.Site,
		Locale:  a.Config.Locale,
		Logo:    a.Config.Logo,
		Socials: a.Config.Socials,
	}
}

// Init validates the configuration, opens the store and registers
// middleware and routes. Start calls it; tests call it directly.
func (a *App) Init() error {
	if a.Config.AdminPassword == "" {
		return errors.New("bepis: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return errors.New("bepis: SessionSecret is required")
	}
	if err := a.Config.Check(); err != nil {
		return fmt.Errorf("bepis: site config: %w", err)
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("bepis: init store: %w", err)
	}
	a.Store = store

	a.Cache = NewPostCache(a.Store, a.Config.PostCacheTTL, a.Config.Site.ScheduledPostMargin, a.Config.Dev, a.now)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app and serves HTTP until the server is shut down.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	a.Logger.Info("starting server",
		zap.String("addr", a.Config.Addr),
		zap.String("site", a.Config.Site.Website),
		zap.Bool("dev", a.Config.Dev),
	)
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	a.Logger.Info("shutting down")
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/og.jpg", a.handleOGImage)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/rss.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/posts/", a.handlePosts)
	e.GET("/posts/page/:page/", a.handlePosts)
	e.GET("/posts/:slug/", a.handlePost)
	e.GET("/tags/", a.handleTags)
	e.GET("/tags/:tag/", a.handleTagPosts)
	e.GET("/tags/:tag/page/:page/", a.handleTagPosts)

	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.GET("/admin/post/:slug/", a.handleAdminPost)
	e.POST("/admin/save/", a.handleAdminSave)
	e.DELETE("/admin/post/:slug/", a.handleAdminDelete)
	e.GET("/admin/images/", a.handleImageList)
	e.POST("/admin/images/upload/", a.handleImageUpload)
	e.DELETE("/admin/images/:filename/", a.handleImageDelete)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or an error if empty.
func MustEnv(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return v, nil
}
