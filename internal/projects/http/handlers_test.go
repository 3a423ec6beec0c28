package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YogendraNeeladri/CipherStudio/internal/projects/domain"
	"github.com/YogendraNeeladri/CipherStudio/internal/projects/repository"
	"github.com/YogendraNeeladri/CipherStudio/internal/projects/service"
)

func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := repository.NewRedisStore(client)
	svc := service.NewProjectService(store)

	r := gin.New()
	Register(r.Group("/api/projects"), svc)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestProjectAPI_UpsertAndGetRoundTrip(t *testing.T) {
	r := setupRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/api/projects", map[string]any{
		"projectId": "abc123",
		"name":      "Demo",
		"files":     map[string]any{"App.js": map[string]string{"code": "x"}},
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var created domain.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "abc123", created.ProjectID)
	assert.Equal(t, "Demo", created.Name)
	assert.Len(t, created.Files, 1)

	rr = doJSON(t, r, http.MethodGet, "/api/projects/abc123", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var fetched domain.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fetched))
	assert.Equal(t, created.Files, fetched.Files)
}

func TestProjectAPI_UpsertMissingID(t *testing.T) {
	r := setupRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/api/projects", map[string]any{"name": "Demo"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Project ID is required")
}

func TestProjectAPI_GetMissing(t *testing.T) {
	r := setupRouter(t)

	rr := doJSON(t, r, http.MethodGet, "/api/projects/nope", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Project not found")
}

func TestProjectAPI_List(t *testing.T) {
	r := setupRouter(t)

	for _, id := range []string{"a", "b"} {
		rr := doJSON(t, r, http.MethodPost, "/api/projects", map[string]any{"projectId": id})
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := doJSON(t, r, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var projects []domain.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &projects))
	assert.Len(t, projects, 2)

	rr = doJSON(t, r, http.MethodGet, "/api/projects?limit=1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &projects))
	assert.Len(t, projects, 1)

	rr = doJSON(t, r, http.MethodGet, "/api/projects?limit=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestProjectAPI_Delete(t *testing.T) {
	r := setupRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/api/projects", map[string]any{"projectId": "abc123"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, r, http.MethodDelete, "/api/projects/abc123", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Project deleted successfully")

	rr = doJSON(t, r, http.MethodGet, "/api/projects/abc123", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, r, http.MethodDelete, "/api/projects/abc123", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestProjectAPI_Rename(t *testing.T) {
	r := setupRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/api/projects", map[string]any{"projectId": "abc123", "name": "Demo"})
	require.Equal(t, http.StatusOK, rr.Code)

	t.Run("missing name", func(t *testing.T) {
		rr := doJSON(t, r, http.MethodPatch, "/api/projects/abc123/name", map[string]any{"name": ""})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown project", func(t *testing.T) {
		rr := doJSON(t, r, http.MethodPatch, "/api/projects/nope/name", map[string]any{"name": "X"})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("renames", func(t *testing.T) {
		rr := doJSON(t, r, http.MethodPatch, "/api/projects/abc123/name", map[string]any{"name": "Renamed"})
		require.Equal(t, http.StatusOK, rr.Code)

		var p domain.Project
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
		assert.Equal(t, "Renamed", p.Name)
	})
}
