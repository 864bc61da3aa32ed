package clockify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"clockify-report/internal/domain"
)

// DefaultBaseURL is used when NewClient is given an empty base URL.
const DefaultBaseURL = "https://api.clockify.me/api/v1"

// Client implements ports.TimeTrackingClient using the Clockify REST API v1.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *slog.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, log *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// UserID returns the id of the user owning the API key.
// Clockify: GET /user
func (c *Client) UserID(ctx context.Context) (string, error) {
	var u rawUser
	if err := c.get(ctx, "/user", &u); err != nil {
		return "", err
	}
	return u.ID, nil
}

// Workspaces lists the workspaces the user belongs to.
// Clockify: GET /workspaces
func (c *Client) Workspaces(ctx context.Context) ([]domain.Workspace, error) {
	var raw []rawWorkspace
	if err := c.get(ctx, "/workspaces", &raw); err != nil {
		return nil, err
	}
	out := make([]domain.Workspace, 0, len(raw))
	for _, w := range raw {
		out = append(out, domain.Workspace{ID: w.ID, Name: w.Name})
	}
	return out, nil
}

// TimeEntries lists the user's entries in a workspace.
// Clockify: GET /workspaces/{workspaceId}/user/{userId}/time-entries
func (c *Client) TimeEntries(ctx context.Context, userID, workspaceID string) ([]domain.TimeEntry, error) {
	path := fmt.Sprintf("/workspaces/%s/user/%s/time-entries", url.PathEscape(workspaceID), url.PathEscape(userID))
	var raw []rawTimeEntry
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, err
	}
	out := make([]domain.TimeEntry, 0, len(raw))
	for _, r := range raw {
		out = append(out, domain.TimeEntry{
			ID:          r.ID,
			Description: r.Description,
			WorkspaceID: r.WorkspaceID,
			Start:       r.TimeInterval.Start,
			End:         r.TimeInterval.End,
			Duration:    r.TimeInterval.Duration,
		})
	}
	return out, nil
}

// get issues an authenticated GET and decodes the JSON body into dst.
// A 401 response is reported as domain.ErrAuthentication.
func (c *Client) get(ctx context.Context, path string, dst any) error {
	if c.apiKey == "" {
		return fmt.Errorf("%w: no API key provided", domain.ErrAuthentication)
	}
	u := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.log.Debug("clockify request", slog.String("url", u))
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: incorrect API key provided", domain.ErrAuthentication)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("clockify: unexpected status %d: %s", resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

type rawUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type rawWorkspace struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// rawTimeEntry mirrors the JSON from Clockify v1.
type rawTimeEntry struct {
	ID           string `json:"id"`
	Description  string `json:"description"`
	UserID       string `json:"userId"`
	WorkspaceID  string `json:"workspaceId"`
	ProjectID    string `json:"projectId"`
	TimeInterval struct {
		Start    string `json:"start"`
		End      string `json:"end"`
		Duration string `json:"duration"`
	} `json:"timeInterval"`
}
