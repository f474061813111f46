// Package walker talks to the news-analysis backend, which exposes its
// operations as JSON "walker" endpoints under /walker/<name>.
package walker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/rs/zerolog"

	"github.com/newscurator/curator-web/internal/api/metrics"
	"github.com/newscurator/curator-web/internal/core/ports"
)

const (
	loginWalker     = "login_user"
	listUsersWalker = "get_all_users"

	// maxReplyBytes bounds how much of a reply body is read.
	maxReplyBytes = 1 << 20
)

// Client implements ports.Backend over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient returns a Client for the backend at baseURL (e.g. http://localhost:8000).
// The pooled client has no overall timeout: a request runs until the backend answers
// or the connection fails. httpClient may be nil.
func NewClient(baseURL string, httpClient *http.Client, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = cleanhttp.DefaultPooledClient()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     log,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type listUsersRequest struct {
	AdminEmail string `json:"admin_email"`
}

// LoginUser posts the credentials to the login walker.
func (c *Client) LoginUser(ctx context.Context, email, password string) (*ports.LoginReply, error) {
	var reply ports.LoginReply
	if err := c.call(ctx, loginWalker, loginRequest{Email: email, Password: password}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetAllUsers asks the backend for every account visible to adminEmail.
func (c *Client) GetAllUsers(ctx context.Context, adminEmail string) (*ports.UserListReply, error) {
	var reply ports.UserListReply
	if err := c.call(ctx, listUsersWalker, listUsersRequest{AdminEmail: adminEmail}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Ping checks that the backend accepts connections. Any HTTP answer counts.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("backend ping: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend ping: %w", err)
	}
	_ = resp.Body.Close()
	return nil
}

// call POSTs body to the walker and decodes the reply into out. The reply is
// decoded whatever the HTTP status: the backend reports failures in the body.
func (c *Client) call(ctx context.Context, walker string, body, out any) (err error) {
	start := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}
		metrics.BackendRequestDuration.WithLabelValues(walker, result).Observe(time.Since(start).Seconds())
	}()

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", walker, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/walker/"+walker, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", walker, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", walker, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return fmt.Errorf("%s: read reply: %w", walker, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decode reply (status %d): %w", walker, resp.StatusCode, err)
	}

	c.log.Debug().Str("walker", walker).Int("status", resp.StatusCode).Dur("took", time.Since(start)).Msg("backend call")
	return nil
}
