package store

import (
	"database/sql"
	_ "embed"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// Setting keys. These are the only client-side persisted state; everything
// else is remote-owned and re-fetched.
const (
	KeyToken    = "auth_token"
	KeyLanguage = "language"
	KeyTheme    = "theme"
	KeyArchived = "archived_projects"
)

// Store is the local settings database.
type Store struct {
	*sql.DB
}

// Open creates the settings database under dataDir, falling back to the XDG
// data directory when dataDir is empty.
func Open(dataDir string) (*Store, error) {
	dbPath, err := getDBPath(dataDir)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db}, nil
}

func getDBPath(dataDir string) (string, error) {
	if dataDir == "" {
		dataDir = os.Getenv("XDG_DATA_HOME")
		if dataDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			dataDir = filepath.Join(home, ".local", "share")
		}
		dataDir = filepath.Join(dataDir, "ttm")
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(dataDir, "ttm.db"), nil
}

// Get retrieves a setting value by key, empty when unset.
func (s *Store) Get(key string) (string, error) {
	var value string
	err := s.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// Set writes a setting value.
func (s *Store) Set(key, value string) error {
	_, err := s.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// Delete removes a setting.
func (s *Store) Delete(key string) error {
	_, err := s.Exec("DELETE FROM settings WHERE key = ?", key)
	return err
}
