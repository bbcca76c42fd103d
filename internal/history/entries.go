package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const entryColumns = "id, run_id, action, source_path, target_path, category, year, error_message, created_at"

// Record appends an entry to the journal. CreatedAt defaults to now.
func (s *Store) Record(ctx context.Context, entry Entry) (int64, error) {
	if s == nil || s.db == nil {
		return 0, errors.New("history store is closed")
	}
	if entry.RunID == "" {
		return 0, errors.New("history entry requires a run id")
	}
	if entry.Action == "" {
		return 0, errors.New("history entry requires an action")
	}
	created := entry.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO history_entries (
            run_id, action, source_path, target_path, category, year, error_message, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.RunID,
		string(entry.Action),
		entry.Source,
		nullableString(entry.Target),
		nullableString(entry.Category),
		nullableString(entry.Year),
		nullableString(entry.Error),
		created.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("insert history entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// Recent returns the newest entries first. A non-positive limit returns all.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM history_entries ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return s.query(ctx, query, args...)
}

// ByRun returns the entries of a single run in the order they were recorded.
func (s *Store) ByRun(ctx context.Context, runID string) ([]Entry, error) {
	return s.query(ctx, `SELECT `+entryColumns+` FROM history_entries WHERE run_id = ? ORDER BY id`, runID)
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]Entry, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return entries, nil
}

func scanEntry(scanner interface{ Scan(dest ...any) error }) (Entry, error) {
	var (
		entry      Entry
		action     string
		target     sql.NullString
		category   sql.NullString
		year       sql.NullString
		errMessage sql.NullString
		createdRaw string
	)
	if err := scanner.Scan(
		&entry.ID,
		&entry.RunID,
		&action,
		&entry.Source,
		&target,
		&category,
		&year,
		&errMessage,
		&createdRaw,
	); err != nil {
		return Entry{}, err
	}
	entry.Action = Action(action)
	entry.Target = target.String
	entry.Category = category.String
	entry.Year = year.String
	entry.Error = errMessage.String
	if created, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
		entry.CreatedAt = created
	}
	return entry, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
