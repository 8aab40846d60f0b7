package bepis

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested post or image does not exist.
var ErrNotFound = sql.ErrNoRows

const postColumns = `slug, title, description, tags, pub_datetime, mod_datetime, featured, draft, og_image, content`

// Store wraps a SQLite database holding posts and image metadata.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// WAL lets readers proceed during writes; busy_timeout makes writers wait
	// instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("configure db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    slug TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    tags TEXT NOT NULL DEFAULT ',',
    pub_datetime TEXT NOT NULL,
    mod_datetime TEXT,
    featured INTEGER NOT NULL DEFAULT 0,
    draft INTEGER NOT NULL DEFAULT 0,
    og_image TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS images (
    filename TEXT PRIMARY KEY,
    original_name TEXT NOT NULL,
    width INTEGER NOT NULL,
    height INTEGER NOT NULL,
    size INTEGER NOT NULL,
    uploaded_at TEXT NOT NULL
);
`)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(r rowScanner) (BlogPost, error) {
	var p BlogPost
	var tags, pub string
	var mod sql.NullString
	var featured, draft int
	if err := r.Scan(&p.Slug, &p.Title, &p.Description, &tags, &pub, &mod, &featured, &draft, &p.OGImage, &p.Content); err != nil {
		return BlogPost{}, err
	}
	t, err := time.Parse(time.RFC3339, pub)
	if err != nil {
		return BlogPost{}, fmt.Errorf("post %s: pub_datetime: %w", p.Slug, err)
	}
	p.PubDatetime = t
	if mod.Valid && mod.String != "" {
		m, err := time.Parse(time.RFC3339, mod.String)
		if err != nil {
			return BlogPost{}, fmt.Errorf("post %s: mod_datetime: %w", p.Slug, err)
		}
		p.ModDatetime = &m
	}
	p.Tags = ParseTags(tags)
	p.Featured = featured == 1
	p.Draft = draft == 1
	p.Link = PostLink(p.Slug)
	return p, nil
}

func (s *Store) queryPosts(query string, args ...any) ([]BlogPost, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []BlogPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	SortPosts(posts)
	return posts, nil
}

// ListPosts returns every non-draft post, newest first. Scheduled posts are
// included; callers apply IsVisible with their clock.
func (s *Store) ListPosts() ([]BlogPost, error) {
	return s.queryPosts(`SELECT ` + postColumns + ` FROM posts WHERE draft = 0`)
}

// ListAllPosts returns every post including drafts (for admin).
func (s *Store) ListAllPosts() ([]BlogPost, error) {
	return s.queryPosts(`SELECT ` + postColumns + ` FROM posts`)
}

// GetPost returns a single post by slug regardless of draft status.
func (s *Store) GetPost(slug string) (BlogPost, error) {
	row := s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE slug = ?`, slug)
	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BlogPost{}, ErrNotFound
		}
		return BlogPost{}, err
	}
	return p, nil
}

// SavePost upserts a blog post. Tags are normalized to lowercase.
func (s *Store) SavePost(p BlogPost) error {
	normalizedTags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		if n := normalizeTag(t); n != "" {
			normalizedTags = append(normalizedTags, n)
		}
	}
	tagString := "," + strings.Join(normalizedTags, ",") + ","
	var mod sql.NullString
	if p.ModDatetime != nil && !p.ModDatetime.IsZero() {
		mod = sql.NullString{String: p.ModDatetime.UTC().Format(time.RFC3339), Valid: true}
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO posts (`+postColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Slug, p.Title, p.Description, tagString, p.PubDatetime.UTC().Format(time.RFC3339), mod,
		boolInt(p.Featured), boolInt(p.Draft), p.OGImage, p.Content)
	return err
}

// DeletePost removes a post by slug.
func (s *Store) DeletePost(slug string) error {
	_, err := s.db.Exec(`DELETE FROM posts WHERE slug = ?`, slug)
	return err
}

// SaveImage records an uploaded image.
func (s *Store) SaveImage(img Image) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO images (filename, original_name, width, height, size, uploaded_at) VALUES (?, ?, ?, ?, ?, ?)`,
		img.Filename, img.OriginalName, img.Width, img.Height, img.Size, img.UploadedAt)
	return err
}

// ListImages returns image metadata, newest upload first.
func (s *Store) ListImages() ([]Image, error) {
	rows, err := s.db.Query(`SELECT filename, original_name, width, height, size, uploaded_at FROM images ORDER BY uploaded_at DESC, filename`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []Image
	for rows.Next() {
		var img Image
		if err := rows.Scan(&img.Filename, &img.OriginalName, &img.Width, &img.Height, &img.Size, &img.UploadedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// ImageExists reports whether filename is already recorded.
func (s *Store) ImageExists(filename string) (bool, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM images WHERE filename = ?`, filename).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteImage removes an image record.
func (s *Store) DeleteImage(filename string) error {
	_, err := s.db.Exec(`DELETE FROM images WHERE filename = ?`, filename)
	return err
}

// ParseTags splits a comma-delimited tag string (e.g. ",go,web,") into a slice.
func ParseTags(tagString string) []string {
	tagString = strings.Trim(tagString, ",")
	if tagString == "" {
		return nil
	}
	parts := strings.Split(tagString, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
