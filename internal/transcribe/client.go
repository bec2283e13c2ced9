// Package transcribe talks to the remote Transcription Service.
//
// POST {server}/transcribe with a multipart/form-data body whose "file" field
// carries the raw video. A 2xx JSON response with a "text" field is success.
package transcribe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// TranscribePath is appended to the server URL
	TranscribePath = "/transcribe"
	// FormField is the multipart field carrying the video
	FormField = "file"

	// DefaultTimeout bounds one upload plus transcription
	DefaultTimeout = 60 * time.Minute

	maxErrorBody = 4096
)

// ErrMalformedResponse is returned when a 2xx response is not the expected JSON
var ErrMalformedResponse = errors.New("malformed transcription response")

// StatusError is returned for any non-2xx response
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("transcription service returned http %d", e.StatusCode)
	}
	return fmt.Sprintf("transcription service returned http %d: %s", e.StatusCode, e.Body)
}

// Upload describes the file being sent
type Upload struct {
	Name        string
	Size        int64
	ContentType string
	Body        io.Reader
	RequestID   string // sent as X-Request-ID when set
}

// Segment is one timed piece of the transcription
type Segment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Result is a decoded successful response
type Result struct {
	Text     string
	Language string
	Segments []Segment
}

type response struct {
	Text     *string   `json:"text"`
	Language string    `json:"language"`
	Segments []Segment `json:"segments"`
}

// Client uploads videos to a Transcription Service
type Client struct {
	serverURL  string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the overall request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: d}
	}
}

// New creates a client for the service rooted at serverURL
func New(serverURL string, opts ...Option) *Client {
	c := &Client{
		serverURL:  strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the full transcription URL
func (c *Client) Endpoint() string {
	return c.serverURL + TranscribePath
}

// Transcribe streams the upload to the service and decodes the transcription.
// onProgress, when not nil, receives strictly increasing percentages of request
// body bytes sent.
func (c *Client) Transcribe(ctx context.Context, up Upload, onProgress func(int)) (*Result, error) {
	body, err := newMultipartBody(up)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), newProgressReader(body.reader, body.length, onProgress))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.ContentLength = body.length
	req.Header.Set("Content-Type", body.contentType)
	req.Header.Set("Accept", "application/json")
	if up.RequestID != "" {
		req.Header.Set("X-Request-ID", up.RequestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", c.Endpoint(), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	var decoded response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if decoded.Text == nil {
		return nil, fmt.Errorf("%w: missing text field", ErrMalformedResponse)
	}

	return &Result{
		Text:     *decoded.Text,
		Language: decoded.Language,
		Segments: decoded.Segments,
	}, nil
}

// Ping checks that the server answers HTTP at all. Any status code counts as reachable.
func (c *Client) Ping(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.serverURL+"/", nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()
	return resp.StatusCode, nil
}
