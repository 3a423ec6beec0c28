package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/YogendraNeeladri/CipherStudio/internal/projects/domain"
)

const (
	projectKeyPrefix = "studio:project:"        // JSON document per project: studio:project:{project_id}
	recentIndexKey   = "studio:projects:recent" // ZSET scored by updatedAt (unix millis)

	// DefaultListLimit bounds ListRecent when the caller passes no limit.
	DefaultListLimit = 50
)

// RedisStore persists projects as JSON documents in Redis. The recency
// index is a sorted set scored by updatedAt, so ListRecent is a reverse
// range; ties on equal scores fall back to Redis member ordering and are
// not deterministic.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a RedisStore on an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Upsert creates the project when absent, otherwise replaces the supplied
// fields. A nil (or blank) name and a nil file map keep the stored values.
// updatedAt is assigned here and strictly increases per project.
func (s *RedisStore) Upsert(ctx context.Context, projectID string, name *string, files map[string]domain.ProjectFile) (*domain.Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, domain.ErrMissingProjectID
	}

	existing, err := s.FindByID(ctx, projectID)
	if err != nil && !errors.Is(err, domain.ErrProjectNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	var project *domain.Project
	if existing != nil {
		project = existing
		if name != nil && strings.TrimSpace(*name) != "" {
			project.Name = strings.TrimSpace(*name)
		}
		if files != nil {
			project.Files = files
		}
	} else {
		project = &domain.Project{
			ProjectID: projectID,
			Name:      domain.DefaultProjectName,
			Files:     map[string]domain.ProjectFile{},
			CreatedAt: now,
		}
		if name != nil && strings.TrimSpace(*name) != "" {
			project.Name = strings.TrimSpace(*name)
		}
		if files != nil {
			project.Files = files
		}
	}

	prev := time.Time{}
	if existing != nil {
		prev = existing.UpdatedAt
	}
	project.UpdatedAt = nextTimestamp(now, prev)

	if err := s.write(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// FindByID retrieves a project by its ID.
func (s *RedisStore) FindByID(ctx context.Context, projectID string) (*domain.Project, error) {
	data, err := s.client.Get(ctx, s.projectKey(projectID)).Result()
	if err == redis.Nil {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	var project domain.Project
	if err := json.Unmarshal([]byte(data), &project); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project: %w", err)
	}
	if project.Files == nil {
		project.Files = map[string]domain.ProjectFile{}
	}
	return &project, nil
}

// ListRecent returns up to limit projects ordered by updatedAt descending.
func (s *RedisStore) ListRecent(ctx context.Context, limit int) ([]domain.Project, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	ids, err := s.client.ZRevRange(ctx, recentIndexKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read recency index: %w", err)
	}

	out := make([]domain.Project, 0, len(ids))
	for _, id := range ids {
		project, err := s.FindByID(ctx, id)
		if errors.Is(err, domain.ErrProjectNotFound) {
			// Index entry outlived its document; skip it.
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *project)
	}
	return out, nil
}

// DeleteByID removes the project and its index entry.
func (s *RedisStore) DeleteByID(ctx context.Context, projectID string) error {
	deleted, err := s.client.Del(ctx, s.projectKey(projectID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if deleted == 0 {
		return domain.ErrProjectNotFound
	}
	if err := s.client.ZRem(ctx, recentIndexKey, projectID).Err(); err != nil {
		return fmt.Errorf("failed to remove project from recency index: %w", err)
	}
	return nil
}

// RenameByID updates only the name and updatedAt.
func (s *RedisStore) RenameByID(ctx context.Context, projectID, name string) (*domain.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrMissingName
	}

	project, err := s.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	project.Name = name
	project.UpdatedAt = nextTimestamp(time.Now().UTC(), project.UpdatedAt)

	if err := s.write(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// write stores the document and its index entry in one pipeline.
func (s *RedisStore) write(ctx context.Context, project *domain.Project) error {
	data, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.projectKey(project.ProjectID), data, 0)
	pipe.ZAdd(ctx, recentIndexKey, redis.Z{
		Score:  float64(project.UpdatedAt.UnixMilli()),
		Member: project.ProjectID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write project: %w", err)
	}
	return nil
}

func (s *RedisStore) projectKey(projectID string) string {
	return projectKeyPrefix + projectID
}

// nextTimestamp keeps updatedAt strictly increasing per record even when
// the clock has not advanced past the stored value.
func nextTimestamp(now, prev time.Time) time.Time {
	if !now.After(prev) {
		return prev.Add(time.Millisecond)
	}
	return now
}
