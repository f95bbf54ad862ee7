package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/glypha-labs/glypha/internal/branding"
	"github.com/glypha-labs/glypha/internal/font"
)

// Client talks to a Glypha server rooted at baseURL (e.g. http://localhost:3000/api).
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(cl *Client) {
		cl.userAgent = ua
	}
}

// New creates a Client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		userAgent:  branding.UserAgent(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListFonts returns every font in insertion order.
func (c *Client) ListFonts(ctx context.Context) ([]font.Record, error) {
	var out []font.Record
	if err := c.do(ctx, http.MethodGet, "/fonts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetFont returns the font with the given id.
func (c *Client) GetFont(ctx context.Context, id int) (font.Record, error) {
	var out font.Record
	err := c.do(ctx, http.MethodGet, fontPath(id), nil, &out)
	return out, err
}

// CreateFont creates a font and returns it with its assigned id.
func (c *Client) CreateFont(ctx context.Context, in font.Input) (font.Record, error) {
	var out font.Record
	err := c.do(ctx, http.MethodPost, "/fonts", in, &out)
	return out, err
}

// UpdateFont applies p to the font with the given id.
func (c *Client) UpdateFont(ctx context.Context, id int, p font.Patch) (font.Record, error) {
	var out font.Record
	err := c.do(ctx, http.MethodPut, fontPath(id), p, &out)
	return out, err
}

// DeleteFont removes the font with the given id and returns it.
func (c *Client) DeleteFont(ctx context.Context, id int) (font.Record, error) {
	var out font.Record
	err := c.do(ctx, http.MethodDelete, fontPath(id), nil, &out)
	return out, err
}

// ServerVersion returns the version reported by the server.
func (c *Client) ServerVersion(ctx context.Context) (string, error) {
	var out struct {
		Version string `json:"version"`
	}
	if err := c.do(ctx, http.MethodGet, "/version", nil, &out); err != nil {
		return "", err
	}
	return out.Version, nil
}

func fontPath(id int) string {
	return "/fonts/" + strconv.Itoa(id)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &RemoteError{Method: method, Path: path, Message: "encoding request body", Err: err}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &RemoteError{Method: method, Path: path, Message: "creating request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RemoteError{Method: method, Path: path, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RemoteError{Method: method, Path: path, Status: resp.StatusCode, Message: "reading response body", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(method, path, resp, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &RemoteError{Method: method, Path: path, Status: resp.StatusCode, Message: "decoding response body", Err: err}
	}
	return nil
}

// errorEnvelope mirrors the server's error body.
type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func newStatusError(method, path string, resp *http.Response, data []byte) *RemoteError {
	re := &RemoteError{
		Method:  method,
		Path:    path,
		Status:  resp.StatusCode,
		Message: http.StatusText(resp.StatusCode),
	}

	var env errorEnvelope
	if json.Unmarshal(data, &env) == nil {
		switch {
		case env.Message != "" && env.Error != "":
			re.Message = env.Message + ": " + env.Error
		case env.Message != "":
			re.Message = env.Message
		case env.Error != "":
			re.Message = env.Error
		}
	}
	return re
}

// RemoteError reports a failed API call. Status is 0 when no response was
// received.
type RemoteError struct {
	Method  string
	Path    string
	Status  int
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", e.Method, e.Path)
	if e.Status != 0 {
		fmt.Fprintf(&b, ": status %d", e.Status)
	}
	if e.Message != "" {
		b.WriteString(": " + e.Message)
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *RemoteError) Unwrap() error { return e.Err }

// StatusOf returns the HTTP status carried by err, or 0 if err is not a
// *RemoteError or no response was received.
func StatusOf(err error) int {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Status
	}
	return 0
}
