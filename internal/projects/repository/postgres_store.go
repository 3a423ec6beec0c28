package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/YogendraNeeladri/CipherStudio/internal/projects/domain"
)

// PostgresStore persists projects in a single table with the file map in a
// JSONB column, keeping single-record write atomicity. Ties on equal
// updated_at in ListRecent follow planner ordering and are not deterministic.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a PostgresStore on an existing connection.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the projects table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS projects (
			project_id TEXT PRIMARY KEY,
			name       TEXT NOT NULL DEFAULT 'Untitled Project',
			files      JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to ensure projects schema: %w", err)
	}
	return nil
}

// Upsert creates or updates the project; absent fields keep stored values.
// GREATEST keeps updated_at strictly increasing per record even when two
// writes land within clock resolution.
func (s *PostgresStore) Upsert(ctx context.Context, projectID string, name *string, files map[string]domain.ProjectFile) (*domain.Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, domain.ErrMissingProjectID
	}

	query := `
		INSERT INTO projects (project_id, name, files)
		VALUES ($1, COALESCE($2, 'Untitled Project'), COALESCE($3, '{}'::jsonb))
		ON CONFLICT (project_id) DO UPDATE SET
			name = COALESCE($2, projects.name),
			files = COALESCE($3, projects.files),
			updated_at = GREATEST(NOW(), projects.updated_at + interval '1 millisecond')
		RETURNING project_id, name, files, created_at, updated_at
	`

	var nameArg sql.NullString
	if name != nil && strings.TrimSpace(*name) != "" {
		nameArg = sql.NullString{String: strings.TrimSpace(*name), Valid: true}
	}

	var filesArg []byte
	if files != nil {
		data, err := json.Marshal(files)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal files: %w", err)
		}
		filesArg = data
	}

	return s.scanProject(s.db.QueryRowContext(ctx, query, projectID, nameArg, filesArg))
}

// FindByID retrieves a project by its ID.
func (s *PostgresStore) FindByID(ctx context.Context, projectID string) (*domain.Project, error) {
	const query = `
		SELECT project_id, name, files, created_at, updated_at
		FROM projects
		WHERE project_id = $1
	`
	return s.scanProject(s.db.QueryRowContext(ctx, query, projectID))
}

// ListRecent returns up to limit projects ordered by updated_at descending.
func (s *PostgresStore) ListRecent(ctx context.Context, limit int) ([]domain.Project, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	const query = `
		SELECT project_id, name, files, created_at, updated_at
		FROM projects
		ORDER BY updated_at DESC
		LIMIT $1
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, limit)
	for rows.Next() {
		var (
			p         domain.Project
			filesJSON []byte
		)
		if err := rows.Scan(&p.ProjectID, &p.Name, &filesJSON, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		if err := json.Unmarshal(filesJSON, &p.Files); err != nil {
			return nil, fmt.Errorf("failed to unmarshal files: %w", err)
		}
		if p.Files == nil {
			p.Files = map[string]domain.ProjectFile{}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// DeleteByID removes the project.
func (s *PostgresStore) DeleteByID(ctx context.Context, projectID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE project_id = $1`, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if affected == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// RenameByID updates only the name and updated_at.
func (s *PostgresStore) RenameByID(ctx context.Context, projectID, name string) (*domain.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrMissingName
	}

	const query = `
		UPDATE projects
		SET name = $2,
		    updated_at = GREATEST(NOW(), updated_at + interval '1 millisecond')
		WHERE project_id = $1
		RETURNING project_id, name, files, created_at, updated_at
	`
	return s.scanProject(s.db.QueryRowContext(ctx, query, projectID, name))
}

func (s *PostgresStore) scanProject(row *sql.Row) (*domain.Project, error) {
	var (
		p         domain.Project
		filesJSON []byte
	)
	err := row.Scan(&p.ProjectID, &p.Name, &filesJSON, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}
	if err := json.Unmarshal(filesJSON, &p.Files); err != nil {
		return nil, fmt.Errorf("failed to unmarshal files: %w", err)
	}
	if p.Files == nil {
		p.Files = map[string]domain.ProjectFile{}
	}
	return &p, nil
}
