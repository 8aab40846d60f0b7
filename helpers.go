package bepis

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/bepisdev/bepis/siteconfig"
)

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join("/", u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// AssetURL joins a base URL with a file path, without a trailing slash.
func AssetURL(base string, file string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join("/", u.Path, file)
	return u.String()
}

// PostLink returns the site-relative path of a post.
func PostLink(slug string) string {
	return "/posts/" + url.PathEscape(slug) + "/"
}

// TagLink returns the site-relative path of a tag listing.
func TagLink(tag string) string {
	return "/tags/" + url.PathEscape(normalizeTag(tag)) + "/"
}

// OGImageURL returns the absolute social image for a post, falling back to
// the site image. A post image that is already absolute is returned as is.
func OGImageURL(site siteconfig.SiteDescriptor, post *BlogPost) string {
	img := site.OGImage
	if post != nil && post.OGImage != "" {
		img = post.OGImage
	}
	if img == "" {
		return ""
	}
	if u, err := url.Parse(img); err == nil && u.IsAbs() {
		return img
	}
	return AssetURL(site.Website, path.Join("public", img))
}

// siteLang is the html lang of the site with the empty-means-en fallback applied.
func siteLang(cfg Config) string {
	return siteconfig.ResolveLang(cfg.Locale.Lang)
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// WebsiteJsonLD returns a Schema.org WebSite JSON-LD block for the site.
func WebsiteJsonLD(site siteconfig.SiteDescriptor) string {
	data := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     site.Title,
		"url":      BuildURL(site.Website),
	}
	if site.Desc != "" {
		data["description"] = site.Desc
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD returns a Schema.org BlogPosting JSON-LD block for post.
func BlogPostingJsonLD(site siteconfig.SiteDescriptor, post BlogPost) string {
	postURL := BuildURL(site.Website, "posts", post.Slug)
	data := map[string]any{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   post.Description,
		"datePublished": post.PubDatetime.UTC().Format(time.RFC3339),
		"url":           postURL,
		"image":         OGImageURL(site, &post),
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  site.Title,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if post.ModDatetime != nil {
		data["dateModified"] = post.ModDatetime.UTC().Format(time.RFC3339)
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	if len(post.Tags) > 0 {
		data["keywords"] = strings.Join(post.Tags, ", ")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
