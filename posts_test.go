package bepis

import (
	"testing"
	"time"
)

func TestIsVisible(t *testing.T) {
	now := date("2024-06-01T12:00:00Z")
	margin := 15 * time.Minute

	tests := []struct {
		name     string
		post     BlogPost
		dev      bool
		expected bool
	}{
		{"past", BlogPost{PubDatetime: now.Add(-time.Hour)}, false, true},
		{"inside margin", BlogPost{PubDatetime: now.Add(10 * time.Minute)}, false, true},
		{"exactly at margin", BlogPost{PubDatetime: now.Add(margin)}, false, false},
		{"beyond margin", BlogPost{PubDatetime: now.Add(time.Hour)}, false, false},
		{"future in dev", BlogPost{PubDatetime: now.Add(24 * time.Hour)}, true, true},
		{"draft", BlogPost{PubDatetime: now.Add(-time.Hour), Draft: true}, false, false},
		{"draft in dev", BlogPost{PubDatetime: now.Add(-time.Hour), Draft: true}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsVisible(tt.post, now, margin, tt.dev); got != tt.expected {
				t.Errorf("IsVisible() = %t, want %t", got, tt.expected)
			}
		})
	}
}

func TestIsVisibleZeroMargin(t *testing.T) {
	now := date("2024-06-01T12:00:00Z")
	if IsVisible(BlogPost{PubDatetime: now.Add(time.Second)}, now, 0, false) {
		t.Error("future post visible with zero margin")
	}
}

func TestSortPostsNewestFirst(t *testing.T) {
	mod := date("2024-05-01T00:00:00Z")
	posts := []BlogPost{
		{Slug: "a", PubDatetime: date("2024-01-01T00:00:00Z")},
		{Slug: "b", PubDatetime: date("2024-03-01T00:00:00Z")},
		{Slug: "c", PubDatetime: date("2023-01-01T00:00:00Z"), ModDatetime: &mod},
		{Slug: "d", PubDatetime: date("2024-03-01T00:00:00Z")},
	}
	SortPosts(posts)
	want := []string{"c", "b", "d", "a"}
	for i, p := range posts {
		if p.Slug != want[i] {
			t.Fatalf("order = %v, want %v", slugs(posts), want)
		}
	}
}

func TestUniqueTagsAndPostsByTag(t *testing.T) {
	posts := []BlogPost{
		{Slug: "a", Tags: []string{"Go", "web"}},
		{Slug: "b", Tags: []string{"go"}},
		{Slug: "c", Tags: []string{"rust", " "}},
	}
	tags := UniqueTags(posts)
	if len(tags) != 3 || tags[0] != "go" || tags[1] != "rust" || tags[2] != "web" {
		t.Errorf("UniqueTags() = %v, want [go rust web]", tags)
	}
	if got := PostsByTag(posts, "GO"); len(got) != 2 {
		t.Errorf("PostsByTag(GO) = %v, want 2 posts", slugs(got))
	}
	if got := PostsByTag(posts, "missing"); len(got) != 0 {
		t.Errorf("PostsByTag(missing) = %v, want none", slugs(got))
	}
}

func TestFeaturedPosts(t *testing.T) {
	posts := []BlogPost{{Slug: "a", Featured: true}, {Slug: "b"}, {Slug: "c", Featured: true}}
	got := FeaturedPosts(posts)
	if len(got) != 2 || got[0].Slug != "a" || got[1].Slug != "c" {
		t.Errorf("FeaturedPosts() = %v", slugs(got))
	}
}

func TestNeighbours(t *testing.T) {
	posts := []BlogPost{{Slug: "a"}, {Slug: "b"}, {Slug: "c"}}

	prev, next := Neighbours(posts, "b")
	if prev == nil || prev.Slug != "a" || next == nil || next.Slug != "c" {
		t.Errorf("Neighbours(b) = %v, %v", prev, next)
	}
	prev, next = Neighbours(posts, "a")
	if prev != nil || next == nil || next.Slug != "b" {
		t.Errorf("Neighbours(a) = %v, %v", prev, next)
	}
	prev, next = Neighbours(posts, "zzz")
	if prev != nil || next != nil {
		t.Errorf("Neighbours(zzz) = %v, %v, want nil, nil", prev, next)
	}
}

func slugs(posts []BlogPost) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Slug
	}
	return out
}
