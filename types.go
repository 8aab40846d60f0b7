package bepis

import "time"

// BlogPost is the core content type stored in SQLite and rendered by views.
type BlogPost struct {
	Slug        string
	Title       string
	Description string
	Tags        []string
	PubDatetime time.Time
	ModDatetime *time.Time // nil when the post was never revised
	Featured    bool
	Draft       bool
	OGImage     string // overrides the site image when set
	Content     string
	Link        string
}

// Updated returns the modification time if set, else the publish time.
func (p BlogPost) Updated() time.Time {
	if p.ModDatetime != nil && !p.ModDatetime.IsZero() {
		return *p.ModDatetime
	}
	return p.PubDatetime
}

// Image is the metadata row for an uploaded image.
type Image struct {
	Filename     string
	OriginalName string
	Width        int
	Height       int
	Size         int
	UploadedAt   string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the layout.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	OGImage     string // absolute
}
