// Package credstore persists login credentials for named device profiles
// between CLI runs. The SDK itself holds everything in memory; persistence
// is strictly a CLI concern and lives here.
package credstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/oklog/ulid/v2"

	"github.com/unofficialbereal/bereal-go/internal/credstore/migrations"

	_ "modernc.org/sqlite"
)

// ErrNotFound reports a profile with no stored credentials.
var ErrNotFound = errors.New("credstore: profile not found")

// Credentials is one profile's stored login state. The refresh token is the
// durable part; the access token is kept too so short-lived CLI invocations
// can skip a grant while it is still valid.
type Credentials struct {
	Profile      string
	DeviceID     string
	AccessToken  string
	RefreshToken string
	UpdatedAt    time.Time
}

// Store is a SQLite-backed credential store.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the store at dsn and applies any pending schema
// migrations.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.applyMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// applyMigrations brings the schema up to date from the embedded migration
// files.
func (s *Store) applyMigrations() error {
	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	if err != nil {
		return err
	}

	source, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return err
	}

	instance, err := migrate.NewWithInstance("iofs", source, "", driver)
	if err != nil {
		return err
	}

	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// Save upserts the credentials for a profile.
func (s *Store) Save(ctx context.Context, c Credentials) error {
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credentials (id, profile, device_id, access_token, refresh_token, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(profile) DO UPDATE SET
			device_id     = excluded.device_id,
			access_token  = excluded.access_token,
			refresh_token = excluded.refresh_token,
			updated_at    = excluded.updated_at`,
		ulid.Make().String(), c.Profile, c.DeviceID, c.AccessToken, c.RefreshToken, now,
	)
	return err
}

// Load returns the stored credentials for a profile, or ErrNotFound.
func (s *Store) Load(ctx context.Context, profile string) (Credentials, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT profile, device_id, access_token, refresh_token, updated_at
		FROM credentials
		WHERE profile = ?`,
		profile,
	)

	var c Credentials
	err := row.Scan(&c.Profile, &c.DeviceID, &c.AccessToken, &c.RefreshToken, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Credentials{}, ErrNotFound
	}
	if err != nil {
		return Credentials{}, err
	}

	return c, nil
}

// Delete removes a profile's credentials. Deleting an absent profile is not
// an error.
func (s *Store) Delete(ctx context.Context, profile string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE profile = ?`, profile)
	return err
}
