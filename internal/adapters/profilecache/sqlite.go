package profilecache

// Package profilecache persists third-party profiles locally so display
// fields survive agent restarts. It never establishes a session by itself;
// the server-side restore call remains the only restore path.

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	domainauth "github.com/Pulkitsaraswat52/facegate/internal/domain/auth"
)

// ErrNotFound is returned when no cached profile exists for a subject.
var ErrNotFound = errors.New("profile not found")

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	subject     TEXT PRIMARY KEY,
	username    TEXT NOT NULL,
	email       TEXT NOT NULL DEFAULT '',
	picture_url TEXT NOT NULL DEFAULT '',
	saved_at    INTEGER NOT NULL
);`

// Cache is a sqlite-backed store of third-party profiles keyed by subject.
type Cache struct {
	db *sql.DB
}

// Open creates (or opens) the cache database at path and ensures the schema.
func Open(ctx context.Context, path string) (*Cache, error) {
	if path == "" {
		return nil, errors.New("cache path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open profile cache: %w", err)
	}
	if _, err = db.ExecContext(ctx, schema); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			return nil, errors.Join(fmt.Errorf("create schema: %w", err), fmt.Errorf("close database: %w", closeErr))
		}
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Save upserts the profile for an identity.
func (c *Cache) Save(ctx context.Context, identity domainauth.Identity) error {
	if identity.Subject == "" {
		return errors.New("identity subject is required")
	}

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO profiles (subject, username, email, picture_url, saved_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(subject) DO UPDATE SET
			username = excluded.username,
			email = excluded.email,
			picture_url = excluded.picture_url,
			saved_at = excluded.saved_at`,
		identity.Subject, identity.Username, identity.Email, identity.PictureURL, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// Load returns the cached profile for a subject, or ErrNotFound.
func (c *Cache) Load(ctx context.Context, subject string) (domainauth.Identity, error) {
	if subject == "" {
		return domainauth.Identity{}, ErrNotFound
	}

	row := c.db.QueryRowContext(ctx,
		`SELECT subject, username, email, picture_url FROM profiles WHERE subject = ?`, subject)

	var identity domainauth.Identity
	err := row.Scan(&identity.Subject, &identity.Username, &identity.Email, &identity.PictureURL)
	if errors.Is(err, sql.ErrNoRows) {
		return domainauth.Identity{}, ErrNotFound
	}
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("load profile: %w", err)
	}
	return identity, nil
}

// Latest returns the most recently saved profile, or ErrNotFound when the
// cache is empty.
func (c *Cache) Latest(ctx context.Context) (domainauth.Identity, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT subject, username, email, picture_url FROM profiles ORDER BY saved_at DESC LIMIT 1`)

	var identity domainauth.Identity
	err := row.Scan(&identity.Subject, &identity.Username, &identity.Email, &identity.PictureURL)
	if errors.Is(err, sql.ErrNoRows) {
		return domainauth.Identity{}, ErrNotFound
	}
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("load latest profile: %w", err)
	}
	return identity, nil
}

// Delete removes the cached profile for a subject. Deleting a missing
// subject is a no-op.
func (c *Cache) Delete(ctx context.Context, subject string) error {
	if subject == "" {
		return nil
	}
	if _, err := c.db.ExecContext(ctx, `DELETE FROM profiles WHERE subject = ?`, subject); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}
