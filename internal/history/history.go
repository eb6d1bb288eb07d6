// Package history keeps one row per analysis run in a SQLite database, so a
// run can be compared with the previous run of the same deck.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/yacobolo/dsfrkit/internal/deck"
)

// Run is the summary of one analysis.
type Run struct {
	ID          int64     `json:"id"`
	Filename    string    `json:"filename"`
	AnalyzedAt  time.Time `json:"analyzed_at"`
	TotalSlides int       `json:"total_slides"`
	TotalIssues int       `json:"total_issues"`
	High        int       `json:"high"`
	Medium      int       `json:"medium"`
	Low         int       `json:"low"`
	AvgWords    float64   `json:"avg_words_per_slide"`
}

// FromAnalysis summarizes a report as a Run analyzed at the given time.
func FromAnalysis(a *deck.Analysis, at time.Time) Run {
	return Run{
		Filename:    a.Filename,
		AnalyzedAt:  at,
		TotalSlides: a.TotalSlides,
		TotalIssues: a.Summary.TotalIssues,
		High:        a.Summary.HighSeverityIssues,
		Medium:      a.Summary.MediumIssues,
		Low:         a.Summary.LowIssues,
		AvgWords:    a.Summary.AvgWordsPerSlide,
	}
}

// Delta is the change from one run to the next; negative is better.
type Delta struct {
	Issues   int     `json:"issues"`
	High     int     `json:"high"`
	Medium   int     `json:"medium"`
	Low      int     `json:"low"`
	AvgWords float64 `json:"avg_words_per_slide"`
}

// Compare returns cur minus prev.
func Compare(prev, cur Run) Delta {
	return Delta{
		Issues:   cur.TotalIssues - prev.TotalIssues,
		High:     cur.High - prev.High,
		Medium:   cur.Medium - prev.Medium,
		Low:      cur.Low - prev.Low,
		AvgWords: cur.AvgWords - prev.AvgWords,
	}
}

// Store is a run history backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	filename TEXT NOT NULL,
	analyzed_at TEXT NOT NULL,
	total_slides INTEGER NOT NULL,
	total_issues INTEGER NOT NULL,
	high INTEGER NOT NULL,
	medium INTEGER NOT NULL,
	low INTEGER NOT NULL,
	avg_words REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_filename ON runs(filename);
`

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history %s: %w", path, err)
	}
	// One writer at a time
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the database file.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores run and returns it with its ID set.
func (s *Store) Record(ctx context.Context, run Run) (Run, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (filename, analyzed_at, total_slides, total_issues, high, medium, low, avg_words)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Filename, run.AnalyzedAt.UTC().Format(time.RFC3339Nano),
		run.TotalSlides, run.TotalIssues, run.High, run.Medium, run.Low, run.AvgWords)
	if err != nil {
		return run, fmt.Errorf("recording run of %s: %w", run.Filename, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return run, fmt.Errorf("recording run of %s: %w", run.Filename, err)
	}
	run.ID = id
	return run, nil
}

const selectRuns = `SELECT id, filename, analyzed_at, total_slides, total_issues, high, medium, low, avg_words FROM runs`

// Previous returns the latest recorded run of filename, or nil when the
// file was never analyzed.
func (s *Store) Previous(ctx context.Context, filename string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, selectRuns+` WHERE filename = ? ORDER BY id DESC LIMIT 1`, filename)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading history of %s: %w", filename, err)
	}
	return &run, nil
}

// Runs returns up to limit runs of filename, newest first. A limit of 0
// returns them all.
func (s *Store) Runs(ctx context.Context, filename string, limit int) ([]Run, error) {
	query := selectRuns + ` WHERE filename = ? ORDER BY id DESC`
	args := []any{filename}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("reading history of %s: %w", filename, err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("reading history of %s: %w", filename, err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		run Run
		at  string
	)
	if err := sc.Scan(&run.ID, &run.Filename, &at, &run.TotalSlides, &run.TotalIssues,
		&run.High, &run.Medium, &run.Low, &run.AvgWords); err != nil {
		return Run{}, err
	}

	t, err := time.Parse(time.RFC3339Nano, at)
	if err != nil {
		return Run{}, fmt.Errorf("bad timestamp %q: %w", at, err)
	}
	run.AnalyzedAt = t
	return run, nil
}
