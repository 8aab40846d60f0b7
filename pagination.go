package bepis

import (
	"errors"
	"strconv"
)

// ErrPageOutOfRange is returned for page numbers outside 1..TotalPages.
var ErrPageOutOfRange = errors.New("page out of range")

// Page is one slice of a paginated post listing.
type Page struct {
	Posts      []BlogPost
	Current    int
	TotalPages int
	BaseURL    string // listing root, e.g. "/posts/"
}

// PageNumbers returns 1..N for total items split into pages of perPage.
// There is always at least one page.
func PageNumbers(total, perPage int) []int {
	if perPage < 1 {
		perPage = 1
	}
	n := (total + perPage - 1) / perPage
	if n < 1 {
		n = 1
	}
	pages := make([]int, n)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// Paginate returns page (1-based) of posts.
func Paginate(posts []BlogPost, page, perPage int, baseURL string) (Page, error) {
	if perPage < 1 {
		perPage = 1
	}
	total := len(PageNumbers(len(posts), perPage))
	if page < 1 || page > total {
		return Page{}, ErrPageOutOfRange
	}
	start := (page - 1) * perPage
	end := min(start+perPage, len(posts))
	return Page{
		Posts:      posts[start:end],
		Current:    page,
		TotalPages: total,
		BaseURL:    baseURL,
	}, nil
}

// ParsePage converts a route parameter to a page number; empty means 1.
func ParsePage(s string) (int, error) {
	if s == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, ErrPageOutOfRange
	}
	return n, nil
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.Current > 1 }

// HasNext reports whether a next page exists.
func (p Page) HasNext() bool { return p.Current < p.TotalPages }

// URL returns the path of page n. Page 1 is the listing root.
func (p Page) URL(n int) string {
	if n <= 1 {
		return p.BaseURL
	}
	return p.BaseURL + "page/" + strconv.Itoa(n) + "/"
}

// PrevURL returns the previous page path, or "" on the first page.
func (p Page) PrevURL() string {
	if !p.HasPrev() {
		return ""
	}
	return p.URL(p.Current - 1)
}

// NextURL returns the next page path, or "" on the last page.
func (p Page) NextURL() string {
	if !p.HasNext() {
		return ""
	}
	return p.URL(p.Current + 1)
}
