package bepis

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// datetimeLocalLayout matches <input type="datetime-local">.
const datetimeLocalLayout = "2006-01-02T15:04"

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(a.SiteContext(), false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminPost(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	post, err := a.Store.GetPost(c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		return err
	}
	return Render(c, a.Views.AdminFormPartial(post, CsrfToken(c)))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		a.Logger.Warn("login rate limited", zap.String("ip", ip))
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(ip)
	return Render(c, a.Views.AdminLogin(a.SiteContext(), true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	post, msg := a.postFromForm(c)
	if msg != "" {
		return c.Redirect(http.StatusSeeOther, "/admin/?msg="+msg)
	}
	if err := a.Store.SavePost(post); err != nil {
		return err
	}
	a.Cache.Invalidate()
	a.Logger.Info("post saved", zap.String("slug", post.Slug), zap.Bool("draft", post.Draft))
	return a.renderAdminDashboard(c, "saved")
}

// postFromForm builds a post from the admin form. A non-empty msg is a
// URL-encoded validation message for the dashboard.
func (a *App) postFromForm(c echo.Context) (BlogPost, string) {
	title := strings.TrimSpace(c.FormValue("title"))
	slug := Slugify(c.FormValue("slug"))
	if slug == "" {
		slug = Slugify(title)
	}
	if slug == "" {
		return BlogPost{}, "Slug+is+required.+Add+a+title+or+slug."
	}

	now := a.now()
	pub := now.UTC()
	if raw := strings.TrimSpace(c.FormValue("pub_datetime")); raw != "" {
		t, err := time.Parse(datetimeLocalLayout, raw)
		if err != nil {
			return BlogPost{}, "Invalid+publish+time.+Use+YYYY-MM-DDTHH:MM."
		}
		pub = t
	}

	post := BlogPost{
		Slug:        slug,
		Title:       title,
		Description: strings.TrimSpace(c.FormValue("description")),
		Tags:        FilterEmpty(strings.Split(c.FormValue("tags"), ",")),
		PubDatetime: pub,
		Featured:    c.FormValue("featured") != "",
		Draft:       c.FormValue("draft") != "",
		OGImage:     strings.TrimSpace(c.FormValue("og_image")),
		Content:     c.FormValue("content"),
	}
	// Saving over a post that is already out counts as a revision.
	if existing, err := a.Store.GetPost(slug); err == nil && !existing.Draft && !existing.PubDatetime.After(now) {
		mod := now.UTC()
		post.ModDatetime = &mod
	}
	return post, ""
}

func (a *App) handleAdminDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	slug := c.Param("slug")
	if err := a.Store.DeletePost(slug); err != nil {
		return err
	}
	a.Cache.Invalidate()
	a.Logger.Info("post deleted", zap.String("slug", slug))
	return a.renderAdminDashboard(c, "deleted")
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	posts, err := a.Store.ListAllPosts()
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminDashboard(a.SiteContext(), posts, msg, CsrfToken(c)))
}
