package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/bepisdev/bepis"
	"github.com/bepisdev/bepis/siteconfig"
	"github.com/bepisdev/bepis/views"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	// A missing .env is fine; the real environment still applies.
	_ = godotenv.Load()

	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := runCheck(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("bepis %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`bepis - the bepis.uk blog server

Usage:
  bepis [command]

Commands:
  serve     Start the server (default)
  check     Print the site configuration and validate it
  version   Print the version
  help      Show this help message

Environment:
  ADDR                  listen address (default :3000)
  DATABASE_PATH         SQLite file (default data/blog.db)
  STATIC_DIR            public assets (default public)
  ADMIN_PASSWORD        required
  ADMIN_SESSION_SECRET  required
  COOKIE_SECURE         "true" behind HTTPS
  BEPIS_DEV             "true" shows scheduled posts and logs for development`)
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func configFromEnv() (bepis.Config, error) {
	password, err := bepis.MustEnv("ADMIN_PASSWORD")
	if err != nil {
		return bepis.Config{}, err
	}
	secret, err := bepis.MustEnv("ADMIN_SESSION_SECRET")
	if err != nil {
		return bepis.Config{}, err
	}
	return bepis.Config{
		Addr:          bepis.EnvOr("ADDR", ":3000"),
		DatabasePath:  bepis.EnvOr("DATABASE_PATH", "data/blog.db"),
		StaticDir:     bepis.EnvOr("STATIC_DIR", "public"),
		AdminPassword: password,
		SessionSecret: secret,
		CookieSecure:  envBool("COOKIE_SECURE"),
		Dev:           envBool("BEPIS_DEV"),
	}, nil
}

func envBool(key string) bool {
	return strings.EqualFold(os.Getenv(key), "true")
}

func runServe() error {
	cfg, err := configFromEnv()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Dev)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	app := bepis.New(cfg, views.Funcs(), bepis.WithLogger(logger))
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
		return err
	}
	return <-errCh
}

func runCheck() error {
	cfg := bepis.Config{
		Site:    siteconfig.Site(),
		Locale:  siteconfig.Locale(),
		Logo:    siteconfig.LogoImage(),
		Socials: siteconfig.Socials(),
	}
	s := cfg.Site
	fmt.Printf("website:             %s\n", s.Website)
	fmt.Printf("title:               %s\n", s.Title)
	fmt.Printf("author:              %s\n", s.Author)
	fmt.Printf("description:         %s\n", s.Desc)
	fmt.Printf("og image:            %s\n", s.OGImage)
	fmt.Printf("light/dark mode:     %t\n", s.LightAndDarkMode)
	fmt.Printf("posts per page:      %d\n", s.PostPerPage)
	fmt.Printf("scheduled margin:    %s (%d ms)\n", s.ScheduledPostMargin, s.ScheduledPostMarginMillis())
	fmt.Printf("lang:                %s\n", siteconfig.ResolveLang(cfg.Locale.Lang))
	fmt.Printf("lang tags:           %s\n", strings.Join(siteconfig.ResolveLangTags(cfg.Locale.LangTag, nil), ", "))
	fmt.Printf("logo:                enabled=%t svg=%t %dx%d\n", cfg.Logo.Enable, cfg.Logo.SVG, cfg.Logo.Width, cfg.Logo.Height)
	for _, l := range cfg.Socials {
		fmt.Printf("social:              %-8s %-40s active=%t %q\n", l.Name, l.Href, l.Active, l.LinkTitle)
	}
	if err := cfg.Check(); err != nil {
		return err
	}
	fmt.Println("ok")
	return nil
}
