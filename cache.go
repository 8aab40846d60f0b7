package bepis

import (
	"sync"
	"time"
)

// PostCache keeps the non-draft posts in memory for ttl. Visibility of
// scheduled posts is decided on every read, so a post appears once its time
// arrives without waiting for the cache to expire.
type PostCache struct {
	mu      sync.RWMutex
	posts   []BlogPost
	fetched time.Time
	ttl     time.Duration
	store   *Store

	now    func() time.Time
	margin time.Duration
	dev    bool
}

// NewPostCache creates a PostCache backed by the given Store.
func NewPostCache(s *Store, ttl time.Duration, margin time.Duration, dev bool, now func() time.Time) *PostCache {
	if now == nil {
		now = time.Now
	}
	return &PostCache{store: s, ttl: ttl, margin: margin, dev: dev, now: now}
}

func (c *PostCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.mu.Unlock()
}

// ensureLoaded returns the cached posts, reloading them if stale.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *PostCache) ensureLoaded() ([]BlogPost, error) {
	c.mu.RLock()
	if c.valid() {
		posts := c.posts
		c.mu.RUnlock()
		return posts, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.posts, nil
	}
	posts, err := c.store.ListPosts()
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []BlogPost{}
	}
	c.posts = posts
	c.fetched = time.Now()
	return c.posts, nil
}

// ListPosts returns posts visible now, newest first.
func (c *PostCache) ListPosts() ([]BlogPost, error) {
	posts, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	return FilterVisible(posts, c.now(), c.margin, c.dev), nil
}

// ListByTag returns visible posts carrying tag.
func (c *PostCache) ListByTag(tag string) ([]BlogPost, error) {
	posts, err := c.ListPosts()
	if err != nil {
		return nil, err
	}
	return PostsByTag(posts, tag), nil
}

// ListTags returns all unique tags of visible posts.
func (c *PostCache) ListTags() ([]string, error) {
	posts, err := c.ListPosts()
	if err != nil {
		return nil, err
	}
	return UniqueTags(posts), nil
}

// GetPost returns a visible post by slug.
func (c *PostCache) GetPost(slug string) (BlogPost, error) {
	posts, err := c.ListPosts()
	if err != nil {
		return BlogPost{}, err
	}
	for _, p := range posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return BlogPost{}, ErrNotFound
}
