// Package storage provides SQLite-based persistence for the scene gallery.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only vector shape definitions are stored (kind, color, defining points);
// rasterized canvas pixels are never persisted.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-sketch/internal/geom"
)

// Store manages the SQLite database connection for the scene gallery.
type Store struct {
	db *sql.DB
}

// SceneEntry describes a stored scene.
type SceneEntry struct {
	ID         int64
	Name       string
	ShapeCount int
	CreatedAt  time.Time
}

// ShapeRecord is one stored shape: the kind of primitive, its color as a
// #rrggbb string, and its defining points encoded "x,y;x,y;...".
// For circles and ellipses the points are the center followed by a
// radius-carrying point.
type ShapeRecord struct {
	Kind   string
	Color  string
	Points string
}

// Shape kinds accepted by the gallery.
const (
	KindDot     = "dot"
	KindLine    = "line"
	KindCircle  = "circle"
	KindEllipse = "ellipse"
	KindPolygon = "polygon"
)

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scenes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS shapes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scene_id INTEGER NOT NULL REFERENCES scenes(id) ON DELETE CASCADE,
			kind TEXT NOT NULL,
			color TEXT NOT NULL,
			points TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_shapes_scene_id ON shapes(scene_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScene stores a named scene with its shapes in a single transaction.
// Returns the ID of the inserted scene. Saving over an existing name
// fails; delete the old scene first.
func (s *Store) SaveScene(name string, shapes []ShapeRecord) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	result, err := tx.Exec("INSERT INTO scenes (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save scene %q: %w", name, err)
	}
	sceneID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for _, shape := range shapes {
		if _, err := tx.Exec(
			"INSERT INTO shapes (scene_id, kind, color, points) VALUES (?, ?, ?, ?)",
			sceneID, shape.Kind, shape.Color, shape.Points,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save shape: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit scene: %w", err)
	}
	return sceneID, nil
}

// ListScenes retrieves all stored scenes, newest first.
func (s *Store) ListScenes() ([]SceneEntry, error) {
	rows, err := s.db.Query(
		`SELECT s.id, s.name, s.created_at, COUNT(sh.id)
		 FROM scenes s
		 LEFT JOIN shapes sh ON sh.scene_id = s.id
		 GROUP BY s.id
		 ORDER BY s.created_at DESC, s.id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scenes: %w", err)
	}
	defer rows.Close()

	var entries []SceneEntry
	for rows.Next() {
		var e SceneEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &createdAt, &e.ShapeCount); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// SceneByName retrieves a scene entry by its unique name.
// Returns nil if no such scene exists.
func (s *Store) SceneByName(name string) (*SceneEntry, error) {
	var e SceneEntry
	var createdAt any
	err := s.db.QueryRow(
		`SELECT s.id, s.name, s.created_at, COUNT(sh.id)
		 FROM scenes s
		 LEFT JOIN shapes sh ON sh.scene_id = s.id
		 WHERE s.name = ?
		 GROUP BY s.id`,
		name,
	).Scan(&e.ID, &e.Name, &createdAt, &e.ShapeCount)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scene %q: %w", name, err)
	}
	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

// SceneShapes retrieves the shapes of a scene in insertion order.
func (s *Store) SceneShapes(sceneID int64) ([]ShapeRecord, error) {
	rows, err := s.db.Query(
		"SELECT kind, color, points FROM shapes WHERE scene_id = ? ORDER BY id",
		sceneID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query shapes: %w", err)
	}
	defer rows.Close()

	var shapes []ShapeRecord
	for rows.Next() {
		var sh ShapeRecord
		if err := rows.Scan(&sh.Kind, &sh.Color, &sh.Points); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		shapes = append(shapes, sh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return shapes, nil
}

// DeleteScene removes a scene and its shapes.
func (s *Store) DeleteScene(sceneID int64) error {
	// CASCADE is not enforced without foreign_keys pragma; delete shapes
	// explicitly.
	if _, err := s.db.Exec("DELETE FROM shapes WHERE scene_id = ?", sceneID); err != nil {
		return fmt.Errorf("storage: cannot delete shapes: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM scenes WHERE id = ?", sceneID); err != nil {
		return fmt.Errorf("storage: cannot delete scene: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// FormatPoints encodes points as "x,y;x,y;..." for the points column.
func FormatPoints(pts []geom.Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = fmt.Sprintf("%g,%g", p.X, p.Y)
	}
	return strings.Join(parts, ";")
}

// ParsePoints decodes a points column back into geometry.
func ParsePoints(s string) ([]geom.Point, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ";")
	pts := make([]geom.Point, 0, len(parts))
	for _, part := range parts {
		var p geom.Point
		if _, err := fmt.Sscanf(part, "%g,%g", &p.X, &p.Y); err != nil {
			return nil, fmt.Errorf("storage: invalid point %q: %w", part, err)
		}
		pts = append(pts, p)
	}
	return pts, nil
}
