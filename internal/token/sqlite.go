package token

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// FileStore persists the session to a local SQLite file so CLI runs
// survive process restarts. It keeps the single-session invariant with
// a one-row table.
type FileStore struct {
	mu sync.Mutex
	db *sql.DB
}

// NewFileStore opens (or creates) the session database at path.
func NewFileStore(path string) (*FileStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS session (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		access_token TEXT NOT NULL,
		refresh_token TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &FileStore{db: db}, nil
}

// SetTokens implements Store.
func (s *FileStore) SetTokens(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO session (id, access_token, refresh_token, updated_at)
		VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			updated_at = CURRENT_TIMESTAMP`, access, refresh)
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// AccessToken implements Store.
func (s *FileStore) AccessToken() string {
	access, _ := s.read()
	return access
}

// RefreshToken implements Store.
func (s *FileStore) RefreshToken() string {
	_, refresh := s.read()
	return refresh
}

func (s *FileStore) read() (access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := s.db.QueryRow(`SELECT access_token, refresh_token FROM session WHERE id = 1`)
	if err := row.Scan(&access, &refresh); err != nil {
		return "", ""
	}
	return access, refresh
}

// ClearTokens implements Store.
func (s *FileStore) ClearTokens() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec(`DELETE FROM session WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *FileStore) Close() error {
	return s.db.Close()
}
