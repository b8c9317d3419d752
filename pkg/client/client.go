// Package client is a Go client for the objectified REST API. Create requests are validated
// locally before they are sent.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mugiliam/objectifiedsrv/pkg/api"
)

const DefaultServer = "http://localhost:3001"

var ErrInvalidServer = errors.New("invalid server url")

// APIError is an error response returned by the server.
type APIError struct {
	StatusCode  int    `json:"-"`
	Result      string `json:"result"`
	Description string `json:"description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Description)
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL *url.URL
	token   string
	http    *http.Client
}

type Option func(*Client)

// WithToken sends token as a bearer token on every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

func New(server string, opts ...Option) (*Client, error) {
	if server == "" {
		server = DefaultServer
	}
	u, err := url.Parse(strings.TrimRight(server, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidServer, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidServer, server)
	}
	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) Server() string {
	return c.baseURL.String()
}

func (c *Client) GetVersion(ctx context.Context) (*api.GetVersionRsp, error) {
	method, path := api.GetVersionReq{}.RequestMethod()
	rsp := &api.GetVersionRsp{}
	if err := c.do(ctx, method, path, nil, nil, rsp); err != nil {
		return nil, err
	}
	return rsp, nil
}

// do sends a request and decodes a JSON response into out, when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("unable to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	// path is already escaped
	u := *c.baseURL
	u.RawPath = c.baseURL.EscapedPath() + path
	unescaped, err := url.PathUnescape(u.RawPath)
	if err != nil {
		return fmt.Errorf("invalid request path %q: %w", path, err)
	}
	u.Path = unescaped
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	rsp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer rsp.Body.Close()

	data, err := io.ReadAll(rsp.Body)
	if err != nil {
		return fmt.Errorf("unable to read response: %w", err)
	}
	if rsp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: rsp.StatusCode}
		if json.Unmarshal(data, apiErr) != nil || apiErr.Description == "" {
			apiErr.Description = strings.TrimSpace(string(data))
		}
		return apiErr
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], data...)
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unable to decode response: %w", err)
	}
	return nil
}

func idPath(base string, id int64, suffix ...string) string {
	return base + "/" + strconv.FormatInt(id, 10) + strings.Join(suffix, "")
}

func filter(name string, id int64) url.Values {
	if id == 0 {
		return nil
	}
	return url.Values{name: []string{strconv.FormatInt(id, 10)}}
}

func create[T any](ctx context.Context, c *Client, base string, v *T) (*T, error) {
	out := new(T)
	if err := c.do(ctx, http.MethodPost, base+"/create", nil, v, out); err != nil {
		return nil, err
	}
	return out, nil
}

func get[T any](ctx context.Context, c *Client, path string) (*T, error) {
	out := new(T)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func list[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	var out []T
	if err := c.do(ctx, http.MethodGet, path, query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func edit[T any](ctx context.Context, c *Client, base string, id int64, v *T) error {
	return c.do(ctx, http.MethodPut, idPath(base, id, "/edit"), nil, v, nil)
}

func remove(ctx context.Context, c *Client, base string, id int64) error {
	return c.do(ctx, http.MethodDelete, idPath(base, id), nil, nil, nil)
}
