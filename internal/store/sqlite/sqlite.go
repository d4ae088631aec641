package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/peerlink/relay/internal/store"
)

// SQLiteStore implements store.Store for SQLite.
type SQLiteStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS uploads (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL,
	stored_name TEXT NOT NULL UNIQUE,
	kind        TEXT NOT NULL,
	mime        TEXT NOT NULL,
	size        INTEGER NOT NULL,
	created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// New creates a new SQLite store and applies the schema.
// dbPath is the path to the SQLite database file.
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite works best with a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// RecordUpload inserts an upload row and returns it with id and timestamp set.
func (s *SQLiteStore) RecordUpload(ctx context.Context, up *store.Upload) (*store.Upload, error) {
	query := `
		INSERT INTO uploads (name, stored_name, kind, mime, size)
		VALUES (?, ?, ?, ?, ?)
	`
	result, err := s.db.ExecContext(ctx, query, up.Name, up.StoredName, up.Kind, up.MIME, up.Size)
	if err != nil {
		return nil, fmt.Errorf("insert upload: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}

	return s.getUpload(ctx, "id = ?", id)
}

// GetUploadByStoredName returns the upload recorded under an on-disk name.
func (s *SQLiteStore) GetUploadByStoredName(ctx context.Context, storedName string) (*store.Upload, error) {
	return s.getUpload(ctx, "stored_name = ?", storedName)
}

func (s *SQLiteStore) getUpload(ctx context.Context, where string, arg any) (*store.Upload, error) {
	query := `
		SELECT id, name, stored_name, kind, mime, size, created_at
		FROM uploads WHERE ` + where
	var up store.Upload
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&up.ID, &up.Name, &up.StoredName, &up.Kind, &up.MIME, &up.Size, &up.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select upload: %w", err)
	}
	return &up, nil
}

// ListUploads returns the most recent uploads, newest first.
func (s *SQLiteStore) ListUploads(ctx context.Context, limit int) ([]store.Upload, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, name, stored_name, kind, mime, size, created_at
		FROM uploads ORDER BY id DESC LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("select uploads: %w", err)
	}
	defer rows.Close()

	uploads := make([]store.Upload, 0, limit)
	for rows.Next() {
		var up store.Upload
		if err := rows.Scan(&up.ID, &up.Name, &up.StoredName, &up.Kind, &up.MIME, &up.Size, &up.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan upload: %w", err)
		}
		uploads = append(uploads, up)
	}
	return uploads, rows.Err()
}
