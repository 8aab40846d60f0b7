package bepis

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) pageMeta(title, description, relPath, ogType string, post *BlogPost) PageMeta {
	site := a.Config.Site
	if title == "" {
		title = site.Title
	} else {
		title = title + " | " + site.Title
	}
	if description == "" {
		description = site.Desc
	}
	if ogType == "" {
		ogType = "website"
	}
	return PageMeta{
		Title:       title,
		Description: description,
		URL:         a.Config.BaseURL() + relPath,
		OGType:      ogType,
		OGImage:     OGImageURL(site, post),
	}
}

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	featured := FeaturedPosts(posts)
	var recent []BlogPost
	for _, p := range posts {
		if p.Featured {
			continue
		}
		recent = append(recent, p)
		if len(recent) == a.Config.Site.PostPerPage {
			break
		}
	}
	return Render(c, a.Views.Home(a.SiteContext(), a.pageMeta("", "", "/", "", nil), featured, recent))
}

func (a *App) handlePosts(c echo.Context) error {
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	page, err := a.paginate(c, posts, "/posts/")
	if err != nil {
		return err
	}
	meta := a.pageMeta("Posts", "All the articles I've posted.", page.URL(page.Current), "", nil)
	return Render(c, a.Views.Posts(a.SiteContext(), meta, page))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, err := a.Cache.GetPost(slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.SiteContext()))
		}
		return err
	}
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	prev, next := Neighbours(posts, slug)
	meta := a.pageMeta(post.Title, post.Description, post.Link, "article", &post)
	return Render(c, a.Views.Post(a.SiteContext(), meta, post, prev, next))
}

func (a *App) handleTags(c echo.Context) error {
	tags, err := a.Cache.ListTags()
	if err != nil {
		return err
	}
	meta := a.pageMeta("Tags", "All the tags used in posts.", "/tags/", "", nil)
	return Render(c, a.Views.Tags(a.SiteContext(), meta, tags))
}

func (a *App) handleTagPosts(c echo.Context) error {
	raw := c.Param("tag")
	if u, err := url.PathUnescape(raw); err == nil {
		raw = u
	}
	tag := normalizeTag(raw)
	posts, err := a.Cache.ListByTag(tag)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.SiteContext()))
	}
	page, err := a.paginate(c, posts, TagLink(tag))
	if err != nil {
		return err
	}
	meta := a.pageMeta("Tag: "+tag, fmt.Sprintf("All the articles with the tag %q.", tag), page.URL(page.Current), "", nil)
	return Render(c, a.Views.TagPosts(a.SiteContext(), meta, tag, page))
}

// paginate slices posts for the :page route parameter. Bad or out-of-range
// page numbers become 404s.
func (a *App) paginate(c echo.Context, posts []BlogPost, baseURL string) (Page, error) {
	n, err := ParsePage(c.Param("page"))
	if err == nil {
		var page Page
		page, err = Paginate(posts, n, a.Config.Site.PostPerPage, baseURL)
		if err == nil {
			return page, nil
		}
	}
	return Page{}, echo.NewHTTPError(http.StatusNotFound).SetInternal(err)
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(path.Join(a.Config.StaticDir, "favicon.svg"))
}

// handleRobots generates robots.txt from the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s\n", AssetURL(a.Config.Site.Website, "sitemap.xml"))
	return c.String(http.StatusOK, body)
}

// handleOGImage redirects to the configured social image.
func (a *App) handleOGImage(c echo.Context) error {
	if a.Config.Site.OGImage == "" {
		return echo.ErrNotFound
	}
	return c.Redirect(http.StatusFound, path.Join("/public", a.Config.Site.OGImage))
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.SiteContext()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error",
			zap.Error(err),
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
		)
		_ = RenderStatus(c, code, a.Views.ServerError(a.SiteContext()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
