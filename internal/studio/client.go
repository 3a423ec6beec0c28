package studio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/YogendraNeeladri/CipherStudio/internal/projects/domain"
)

// DefaultTimeout bounds every API request; there is no retry, a timed-out
// save surfaces as a NetworkError.
const DefaultTimeout = 10 * time.Second

// NetworkError is a client-to-API transport failure, as opposed to an HTTP
// error response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a non-success HTTP response from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Client talks to the CipherStudio HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL (".../api").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

type upsertBody struct {
	ProjectID string                        `json:"projectId"`
	Name      string                        `json:"name"`
	Files     map[string]domain.ProjectFile `json:"files"`
}

// Upsert pushes the full project to the server (last write wins) and
// returns the persisted record with server-assigned timestamps.
func (c *Client) Upsert(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	body := upsertBody{
		ProjectID: project.ProjectID,
		Name:      project.Name,
		Files:     project.Files,
	}
	var out domain.Project
	if err := c.do(ctx, http.MethodPost, "/projects", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Fetch retrieves a project by ID.
func (c *Client) Fetch(ctx context.Context, projectID string) (*domain.Project, error) {
	var out domain.Project
	if err := c.do(ctx, http.MethodGet, "/projects/"+projectID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List retrieves the most recently modified projects.
func (c *Client) List(ctx context.Context) ([]domain.Project, error) {
	var out []domain.Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a project on the server.
func (c *Client) Delete(ctx context.Context, projectID string) error {
	return c.do(ctx, http.MethodDelete, "/projects/"+projectID, nil, nil)
}

// Rename updates only the project name on the server.
func (c *Client) Rename(ctx context.Context, projectID, name string) (*domain.Project, error) {
	var out domain.Project
	body := map[string]string{"name": name}
	if err := c.do(ctx, http.MethodPatch, "/projects/"+projectID+"/name", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrProjectNotFound
	}
	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
