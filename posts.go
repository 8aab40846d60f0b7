package bepis

import (
	"sort"
	"strings"
	"time"
)

// IsVisible reports whether post should be shown to readers at now.
// Drafts are never visible. A post dated in the future becomes visible
// margin before its publish time; dev mode shows it immediately.
func IsVisible(post BlogPost, now time.Time, margin time.Duration, dev bool) bool {
	if post.Draft {
		return false
	}
	if dev {
		return true
	}
	return now.After(post.PubDatetime.Add(-margin))
}

// FilterVisible returns the visible posts, preserving order.
func FilterVisible(posts []BlogPost, now time.Time, margin time.Duration, dev bool) []BlogPost {
	var out []BlogPost
	for _, p := range posts {
		if IsVisible(p, now, margin, dev) {
			out = append(out, p)
		}
	}
	return out
}

// SortPosts orders posts newest first by their last update, in place.
func SortPosts(posts []BlogPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		ti, tj := posts[i].Updated(), posts[j].Updated()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return posts[i].Slug < posts[j].Slug
	})
}

// FeaturedPosts returns the posts flagged as featured.
func FeaturedPosts(posts []BlogPost) []BlogPost {
	var out []BlogPost
	for _, p := range posts {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// UniqueTags returns a sorted, deduplicated slice of all tags in posts.
func UniqueTags(posts []BlogPost) []string {
	set := make(map[string]struct{})
	for _, p := range posts {
		for _, t := range p.Tags {
			if n := normalizeTag(t); n != "" {
				set[n] = struct{}{}
			}
		}
	}
	result := make([]string, 0, len(set))
	for t := range set {
		result = append(result, t)
	}
	sort.Strings(result)
	return result
}

// PostsByTag returns posts carrying tag, compared case-insensitively.
func PostsByTag(posts []BlogPost, tag string) []BlogPost {
	normalized := normalizeTag(tag)
	var filtered []BlogPost
	for _, p := range posts {
		for _, t := range p.Tags {
			if normalizeTag(t) == normalized {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered
}

// Neighbours returns the posts before and after slug in posts.
func Neighbours(posts []BlogPost, slug string) (prev, next *BlogPost) {
	for i := range posts {
		if posts[i].Slug != slug {
			continue
		}
		if i > 0 {
			prev = &posts[i-1]
		}
		if i+1 < len(posts) {
			next = &posts[i+1]
		}
		break
	}
	return prev, next
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
