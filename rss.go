package bepis

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title          string    `xml:"title"`
	Link           string    `xml:"link"`
	Description    string    `xml:"description"`
	Language       string    `xml:"language,omitempty"`
	ManagingEditor string    `xml:"managingEditor,omitempty"`
	LastBuildDate  string    `xml:"lastBuildDate,omitempty"`
	Items          []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate"`
	GUID        string   `xml:"guid"`
	Categories  []string `xml:"category,omitempty"`
}

// buildFeed assembles the RSS channel for the visible posts.
func buildFeed(cfg Config, posts []BlogPost) rssXML {
	site := cfg.Site
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		postURL := BuildURL(site.Website, "posts", p.Slug)
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Description,
			PubDate:     p.PubDatetime.UTC().Format(time.RFC1123Z),
			GUID:        postURL,
			Categories:  p.Tags,
		})
	}
	ch := rssChannel{
		Title:       site.Title,
		Link:        BuildURL(site.Website),
		Description: site.Desc,
		Language:    siteLang(cfg),
		Items:       items,
	}
	if site.Author != "" {
		ch.ManagingEditor = site.Author
	}
	if len(posts) > 0 {
		ch.LastBuildDate = posts[0].Updated().UTC().Format(time.RFC1123Z)
	}
	return rssXML{Version: "2.0", Channel: ch}
}

func (a *App) renderRSS(c echo.Context, posts []BlogPost) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(buildFeed(a.Config, posts))
}
