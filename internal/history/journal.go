// Package history keeps an optional SQLite journal of what tagtidy changed.
//
// The journal is an audit trail only: the walker never consults it, the
// folder names and tag blocks on disk stay the source of truth.
//
//	journal, err := history.Open("~/.local/state/tagtidy/history.db")
//	defer journal.Close()
//	processor := normalize.NewProcessor(settings, store, console, journal, onProgress)
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
	CREATE TABLE IF NOT EXISTS renames (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		album_dir  TEXT NOT NULL,
		from_name  TEXT NOT NULL,
		to_name    TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE TABLE IF NOT EXISTS albums (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		dir          TEXT NOT NULL,
		album        TEXT NOT NULL,
		artist       TEXT NOT NULL,
		tracks       INTEGER NOT NULL,
		numbering_ok INTEGER NOT NULL DEFAULT 0,
		created_at   DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS renames_album_dir ON renames (album_dir);
`

// Rename is one recorded track rename.
type Rename struct {
	AlbumDir string
	From     string
	To       string
	At       time.Time
}

// AlbumEntry is one recorded album.
type AlbumEntry struct {
	Dir         string
	Album       string
	Artist      string
	Tracks      int
	NumberingOK bool
	At          time.Time
}

// Journal appends renames and processed albums to a SQLite database.
type Journal struct {
	db  *sql.DB
	mu  sync.Mutex
	now func() time.Time
}

// Open opens or creates the journal at dbPath, creating parent folders.
func Open(dbPath string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal=WAL&_timeout=5000")
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}

	return &Journal{db: db, now: time.Now}, nil
}

// RecordRename appends a track rename inside albumDir.
func (j *Journal) RecordRename(albumDir, from, to string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	_, err := j.db.Exec(
		`INSERT INTO renames (album_dir, from_name, to_name, created_at) VALUES (?, ?, ?, ?)`,
		albumDir, from, to, j.now().UTC(),
	)
	return err
}

// RecordAlbum appends a processed album.
func (j *Journal) RecordAlbum(dir, album, artist string, tracks int, numberingOK bool) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	ok := 0
	if numberingOK {
		ok = 1
	}

	_, err := j.db.Exec(
		`INSERT INTO albums (dir, album, artist, tracks, numbering_ok, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		dir, album, artist, tracks, ok, j.now().UTC(),
	)
	return err
}

// Renames returns the renames recorded for albumDir, oldest first.
func (j *Journal) Renames(albumDir string) ([]Rename, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	rows, err := j.db.Query(
		`SELECT album_dir, from_name, to_name, created_at FROM renames WHERE album_dir = ? ORDER BY id`,
		albumDir,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var renames []Rename
	for rows.Next() {
		var r Rename
		if err := rows.Scan(&r.AlbumDir, &r.From, &r.To, &r.At); err != nil {
			return nil, err
		}
		renames = append(renames, r)
	}
	return renames, rows.Err()
}

// Albums returns every recorded album, oldest first.
func (j *Journal) Albums() ([]AlbumEntry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	rows, err := j.db.Query(`SELECT dir, album, artist, tracks, numbering_ok, created_at FROM albums ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var albums []AlbumEntry
	for rows.Next() {
		var a AlbumEntry
		var ok int
		if err := rows.Scan(&a.Dir, &a.Album, &a.Artist, &a.Tracks, &ok, &a.At); err != nil {
			return nil, err
		}
		a.NumberingOK = ok == 1
		albums = append(albums, a)
	}
	return albums, rows.Err()
}

// Close closes the database.
func (j *Journal) Close() error {
	return j.db.Close()
}
