package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateTask(ctx context.Context, in Task) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (owner, scope, text, status, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		in.Owner, in.Scope, in.Text, in.Status, mustTime(in.CreatedAt),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLiteRepository) GetTask(ctx context.Context, owner string, id int64) (Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner, scope, text, status, created_at
		FROM tasks WHERE owner = ? AND id = ?`, owner, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		return Task{}, err
	}
	return task, nil
}

func (r *SQLiteRepository) ListTasks(ctx context.Context, filter TaskListFilter) ([]Task, error) {
	if filter.Owner == "" {
		return nil, errors.New("storage: list filter requires an owner")
	}
	query := `SELECT id, owner, scope, text, status, created_at FROM tasks WHERE owner = ?`
	args := []any{filter.Owner}
	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, filter.Status)
	}
	if filter.Scope != "" {
		query += ` AND scope = ?`
		args = append(args, filter.Scope)
	}
	query += ` ORDER BY id DESC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) CountTasks(ctx context.Context, owner string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE owner = ?`, owner).Scan(&count)
	return count, err
}

// CompleteTaskByID transitions one task open -> done. The status condition
// makes the transition single-shot: a second call for the same id reports
// zero rows instead of silently re-completing.
func (r *SQLiteRepository) CompleteTaskByID(ctx context.Context, owner string, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks SET status = 'done'
		WHERE owner = ? AND id = ? AND status = 'open'`, owner, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CompleteTaskMatching completes at most one open task whose text contains
// fragment (case-insensitive). Ties resolve to the lowest id.
func (r *SQLiteRepository) CompleteTaskMatching(ctx context.Context, owner, fragment string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks SET status = 'done'
		WHERE id = (
			SELECT MIN(id) FROM tasks
			WHERE owner = ? AND status = 'open' AND instr(lower(text), lower(?)) > 0
		)`, owner, fragment)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQLiteRepository) DeleteTaskByID(ctx context.Context, owner string, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE owner = ? AND id = ?`, owner, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteTaskMatching removes at most one open task whose text contains
// fragment (case-insensitive), lowest id first. Done tasks are not eligible.
func (r *SQLiteRepository) DeleteTaskMatching(ctx context.Context, owner, fragment string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM tasks
		WHERE id = (
			SELECT MIN(id) FROM tasks
			WHERE owner = ? AND status = 'open' AND instr(lower(text), lower(?)) > 0
		)`, owner, fragment)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	}
	if offset > 0 {
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (Task, error) {
	var out Task
	var created string
	if err := s.Scan(&out.ID, &out.Owner, &out.Scope, &out.Text, &out.Status, &created); err != nil {
		return Task{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return Task{}, err
	}
	out.CreatedAt = createdAt
	return out, nil
}
