package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Run struct {
	ID         string `json:"id"`
	Root       string `json:"root"`
	CreatedAt  string `json:"created_at"`
	Variant    string `json:"variant"`
	TotalLines int    `json:"total_lines"`
	TotalFiles int    `json:"total_files"`
	Category   string `json:"category"`
}

type RunExtension struct {
	RunID     string `json:"-"`
	Extension string `json:"extension"`
	Files     int    `json:"files"`
	Lines     int    `json:"lines"`
}

const runSelect = `SELECT id, root, created_at, variant, total_lines, total_files, category FROM runs`

// InsertRun stores run and its per-extension rows in one transaction. An
// empty ID is replaced by a random UUID and an empty CreatedAt by the
// current time. The stored run is returned.
func (d *DB) InsertRun(run Run, extensions []RunExtension) (*Run, error) {
	if strings.TrimSpace(run.ID) == "" {
		run.ID = uuid.NewString()
	}
	if strings.TrimSpace(run.CreatedAt) == "" {
		run.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	}
	if strings.TrimSpace(run.Variant) == "" {
		run.Variant = "extended"
	}

	tx, err := d.sql.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
INSERT INTO runs (id, root, created_at, variant, total_lines, total_files, category)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, run.ID, run.Root, run.CreatedAt, run.Variant, run.TotalLines, run.TotalFiles, run.Category)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	for _, e := range extensions {
		_, err := tx.Exec(`
INSERT INTO run_extensions (run_id, extension, files, lines)
VALUES (?, ?, ?, ?)
`, run.ID, e.Extension, e.Files, e.Lines)
		if err != nil {
			return nil, fmt.Errorf("insert run extension %s: %w", e.Extension, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return &run, nil
}

func (d *DB) GetRun(id string) (*Run, error) {
	row := d.sql.QueryRow(runSelect+` WHERE id = ?`, id)
	run, err := scanRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	return run, nil
}

// LatestRun returns nil without error when no run has been recorded.
func (d *DB) LatestRun() (*Run, error) {
	row := d.sql.QueryRow(runSelect + ` ORDER BY created_at DESC, rowid DESC LIMIT 1`)
	run, err := scanRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("latest run: %w", err)
	}
	return run, nil
}

// ListRuns returns the newest runs first.
func (d *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.sql.Query(runSelect+` ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	out := make([]Run, 0, limit)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		out = append(out, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return out, nil
}

// GetRunExtensions returns the breakdown of one run, largest first.
func (d *DB) GetRunExtensions(runID string) ([]RunExtension, error) {
	rows, err := d.sql.Query(`
SELECT run_id, extension, files, lines FROM run_extensions
WHERE run_id = ?
ORDER BY lines DESC, extension ASC
`, runID)
	if err != nil {
		return nil, fmt.Errorf("get run extensions %s: %w", runID, err)
	}
	defer rows.Close()

	var out []RunExtension
	for rows.Next() {
		var e RunExtension
		if err := rows.Scan(&e.RunID, &e.Extension, &e.Files, &e.Lines); err != nil {
			return nil, fmt.Errorf("scan run extension: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run extensions: %w", err)
	}
	return out, nil
}
