// Package superset exchanges a service account for dashboard guest tokens
// on an Apache Superset instance.
package superset

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	loginPath      = "/api/v1/security/login"
	guestTokenPath = "/api/v1/security/guest_token/"

	// maxErrorBody bounds how much of an upstream error body is kept for logs.
	maxErrorBody = 2048
)

var ErrMissingField = errors.New("superset: response field missing")

// GuestUser is the embedded viewer identity the guest token is issued for.
type GuestUser struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Config struct {
	BaseURL  string
	Username string
	Password string
	Guest    GuestUser
	Timeout  time.Duration
}

type Client struct {
	baseURL  string
	username string
	password string
	guest    GuestUser
	http     *http.Client
}

func NewClient(cfg Config) *Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.Timeout})
}

func NewClientWithHTTP(cfg Config, hc *http.Client) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		username: cfg.Username,
		password: cfg.Password,
		guest:    cfg.Guest,
		http:     hc,
	}
}

// StatusError is a non-2xx upstream response.
type StatusError struct {
	Op     string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("superset %s: status %d: %s", e.Op, e.Status, e.Body)
}

type resource struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type guestTokenRequest struct {
	Resources []resource `json:"resources"`
	RLS       []any      `json:"rls"`
	User      GuestUser  `json:"user"`
}

// GuestToken logs in with the service account and requests a guest token
// scoped to a single dashboard.
func (c *Client) GuestToken(ctx context.Context, dashboardID string) (string, error) {
	accessToken, err := c.login(ctx)
	if err != nil {
		return "", err
	}

	body := guestTokenRequest{
		Resources: []resource{{Type: "dashboard", ID: dashboardID}},
		RLS:       []any{},
		User:      c.guest,
	}

	res, err := c.post(ctx, "guest_token", guestTokenPath, body, accessToken)
	if err != nil {
		return "", err
	}

	token := gjson.GetBytes(res, "token")
	if !token.Exists() || token.String() == "" {
		return "", fmt.Errorf("guest_token: %w: token", ErrMissingField)
	}
	return token.String(), nil
}

func (c *Client) login(ctx context.Context) (string, error) {
	body := map[string]any{
		"username": c.username,
		"password": c.password,
		"provider": "db",
		"refresh":  true,
	}

	res, err := c.post(ctx, "login", loginPath, body, "")
	if err != nil {
		return "", err
	}

	token := gjson.GetBytes(res, "access_token")
	if !token.Exists() || token.String() == "" {
		return "", fmt.Errorf("login: %w: access_token", ErrMissingField)
	}
	return token.String(), nil
}

func (c *Client) post(ctx context.Context, op, path string, payload any, bearer string) ([]byte, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("superset %s: encode: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("superset %s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("superset %s: %w", op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("superset %s: read body: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(data) > maxErrorBody {
			data = data[:maxErrorBody]
		}
		return nil, &StatusError{Op: op, Status: resp.StatusCode, Body: string(data)}
	}

	return data, nil
}
