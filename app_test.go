package bepis_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bepisdev/bepis"
	"github.com/bepisdev/bepis/views"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func setupTestApp(t *testing.T) (*bepis.App, *testClock) {
	t.Helper()
	dir := t.TempDir()
	clock := &testClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}

	app := bepis.New(bepis.Config{
		DatabasePath:  filepath.Join(dir, "blog.db"),
		StaticDir:     dir,
		AdminPassword: "hunter2",
		SessionSecret: "test-session-secret-0123456789ab",
	}, views.Funcs(), bepis.WithClock(clock.Now))

	if err := app.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { app.Close() })
	return app, clock
}

func get(app *bepis.App, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func savePosts(t *testing.T, app *bepis.App, posts ...bepis.BlogPost) {
	t.Helper()
	for _, p := range posts {
		if err := app.Store.SavePost(p); err != nil {
			t.Fatalf("SavePost(%s) failed: %v", p.Slug, err)
		}
	}
	app.Cache.Invalidate()
}

func TestHomePage(t *testing.T) {
	app, clock := setupTestApp(t)
	savePosts(t, app,
		bepis.BlogPost{Slug: "pinned", Title: "Pinned Post", PubDatetime: clock.now.Add(-48 * time.Hour), Featured: true},
		bepis.BlogPost{Slug: "fresh", Title: "Fresh Post", PubDatetime: clock.now.Add(-time.Hour)},
	)

	rec := get(app, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`<html lang="en">`,
		`<title>BEPIS</title>`,
		`<meta property="og:locale" content="en_EN">`,
		`<meta property="og:image" content="https://bepis.uk/public/astropaper-og.jpg">`,
		`title=" BEPIS on Github"`,
		`href="mailto:joshyburnss@gmail.com"`,
		`Follow me on X (Twitter)`,
		`<section id="featured">`,
		`Pinned Post`,
		`Fresh Post`,
		`Copyright &#169; Josh Burns`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("home page missing %s", want)
		}
	}
	if strings.Contains(body, `id="theme-btn"`) {
		t.Error("theme toggle rendered with light and dark mode disabled")
	}
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=300" {
		t.Errorf("Cache-Control = %q", got)
	}
}

func TestScheduledPostBecomesVisible(t *testing.T) {
	app, clock := setupTestApp(t)
	savePosts(t, app, bepis.BlogPost{Slug: "soon", Title: "Soon", PubDatetime: clock.now.Add(time.Hour)})

	if rec := get(app, "/posts/soon/"); rec.Code != http.StatusNotFound {
		t.Fatalf("scheduled post = %d, want 404", rec.Code)
	}
	if strings.Contains(get(app, "/rss.xml").Body.String(), "/posts/soon/") {
		t.Error("scheduled post listed in feed")
	}

	clock.Advance(46 * time.Minute)

	rec := get(app, "/posts/soon/")
	if rec.Code != http.StatusOK {
		t.Fatalf("post inside margin = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `<meta property="og:type" content="article">`) {
		t.Error("post page missing og:type article")
	}
}

func TestDraftIsHidden(t *testing.T) {
	app, clock := setupTestApp(t)
	savePosts(t, app, bepis.BlogPost{Slug: "wip", Title: "WIP", PubDatetime: clock.now.Add(-time.Hour), Draft: true})

	if rec := get(app, "/posts/wip/"); rec.Code != http.StatusNotFound {
		t.Errorf("draft = %d, want 404", rec.Code)
	}
}

func TestPostsPagination(t *testing.T) {
	app, clock := setupTestApp(t)
	for i := range 4 {
		savePosts(t, app, bepis.BlogPost{
			Slug:        "post-" + string(rune('a'+i)),
			Title:       "Post",
			PubDatetime: clock.now.Add(-time.Duration(i+1) * time.Hour),
		})
	}

	rec := get(app, "/posts/")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /posts/ = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "1 / 2") || !strings.Contains(body, `href="/posts/page/2/"`) {
		t.Errorf("page 1 pagination missing:\n%s", body)
	}
	if strings.Contains(body, "/posts/post-d/") {
		t.Error("page 1 holds more than postPerPage posts")
	}

	rec = get(app, "/posts/page/2/")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/posts/post-d/") {
		t.Errorf("GET /posts/page/2/ = %d", rec.Code)
	}

	for _, target := range []string{"/posts/page/3/", "/posts/page/99/", "/posts/page/0/", "/posts/page/abc/"} {
		if rec := get(app, target); rec.Code != http.StatusNotFound {
			t.Errorf("GET %s = %d, want 404", target, rec.Code)
		}
	}
}

func TestTrailingSlashRedirect(t *testing.T) {
	app, _ := setupTestApp(t)
	rec := get(app, "/posts")
	if rec.Code != http.StatusMovedPermanently || rec.Header().Get("Location") != "/posts/" {
		t.Errorf("GET /posts = %d -> %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestTagPages(t *testing.T) {
	app, clock := setupTestApp(t)
	savePosts(t, app, bepis.BlogPost{Slug: "tagged", Title: "Tagged", PubDatetime: clock.now.Add(-time.Hour), Tags: []string{"Go", "web-dev"}})

	rec := get(app, "/tags/")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `href="/tags/web-dev/"`) {
		t.Errorf("GET /tags/ = %d", rec.Code)
	}
	if rec := get(app, "/tags/go/"); rec.Code != http.StatusOK {
		t.Errorf("GET /tags/go/ = %d", rec.Code)
	}
	if rec := get(app, "/tags/missing/"); rec.Code != http.StatusNotFound {
		t.Errorf("GET /tags/missing/ = %d, want 404", rec.Code)
	}
}

func TestTagWithSlash(t *testing.T) {
	app, clock := setupTestApp(t)
	savePosts(t, app, bepis.BlogPost{Slug: "pipelines", Title: "Pipelines", PubDatetime: clock.now.Add(-time.Hour), Tags: []string{"ci/cd"}})

	rec := get(app, "/tags/")
	if !strings.Contains(rec.Body.String(), `href="/tags/ci%2Fcd/"`) {
		t.Fatalf("tag link not escaped:\n%s", rec.Body.String())
	}
	rec = get(app, "/tags/ci%2Fcd/")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/posts/pipelines/") {
		t.Errorf("GET /tags/ci%%2Fcd/ = %d", rec.Code)
	}
}

func TestRobotsAndFeed(t *testing.T) {
	app, clock := setupTestApp(t)
	savePosts(t, app, bepis.BlogPost{Slug: "hello", Title: "Hello", PubDatetime: clock.now.Add(-time.Hour)})

	rec := get(app, "/robots.txt")
	if !strings.Contains(rec.Body.String(), "Sitemap: https://bepis.uk/sitemap.xml") {
		t.Errorf("robots.txt = %q", rec.Body.String())
	}

	rec = get(app, "/rss.xml")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /rss.xml = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"<title>BEPIS</title>", "<language>en</language>", "<link>https://bepis.uk/posts/hello/</link>"} {
		if !strings.Contains(body, want) {
			t.Errorf("feed missing %s", want)
		}
	}

	rec = get(app, "/sitemap.xml")
	if !strings.Contains(rec.Body.String(), "<loc>https://bepis.uk/posts/hello/</loc>") {
		t.Error("sitemap missing post")
	}
}

func TestOGImageRedirect(t *testing.T) {
	app, _ := setupTestApp(t)
	rec := get(app, "/og.jpg")
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/public/astropaper-og.jpg" {
		t.Errorf("GET /og.jpg = %d -> %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestAdminLogin(t *testing.T) {
	app, _ := setupTestApp(t)

	rec := get(app, "/admin/")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `name="password"`) {
		t.Fatalf("GET /admin/ = %d", rec.Code)
	}
	var csrf *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "_csrf" {
			csrf = c
		}
	}
	if csrf == nil {
		t.Fatal("no _csrf cookie")
	}

	login := func(password, token string) *httptest.ResponseRecorder {
		form := url.Values{"password": {password}, "_csrf": {token}}
		req := httptest.NewRequest(http.MethodPost, "/admin/login/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(csrf)
		rec := httptest.NewRecorder()
		app.Echo.ServeHTTP(rec, req)
		return rec
	}

	if rec := login("hunter2", ""); rec.Code != http.StatusForbidden {
		t.Errorf("login without csrf token = %d, want 403", rec.Code)
	}
	if rec := login("wrong", csrf.Value); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Wrong password.") {
		t.Errorf("wrong password = %d", rec.Code)
	}

	rec = login("hunter2", csrf.Value)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("login = %d, want 303", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	dash := httptest.NewRecorder()
	app.Echo.ServeHTTP(dash, req)
	if !strings.Contains(dash.Body.String(), "<h1>Dashboard</h1>") {
		t.Errorf("dashboard not shown after login")
	}
	if got := dash.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("admin Cache-Control = %q", got)
	}
}

func TestInitRequiresSecrets(t *testing.T) {
	app := bepis.New(bepis.Config{DatabasePath: filepath.Join(t.TempDir(), "blog.db")}, views.Funcs())
	if err := app.Init(); err == nil {
		t.Error("Init without AdminPassword succeeded")
	}
}
