package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const fallbackMessage = "Request failed"

// RequestError is the only failure kind callers see: any non-2xx response or
// transport error. Message is the raw response text when the backend sent one.
type RequestError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string { return e.Message }

func (e *RequestError) Unwrap() error { return e.Err }

type Options struct {
	Method    string
	Body      any
	AuthToken string
	Headers   map[string]string
}

type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// New builds a client for the given backend origin. No timeout is configured;
// callers bound requests through the context.
func New(baseURL string, httpClient *http.Client, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		log:     log,
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

// Do performs exactly one round trip. On success the JSON body is decoded into
// out unless out is nil, the status is 204 or the body is empty.
func (c *Client) Do(ctx context.Context, path string, opts Options, out any) error {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if opts.Body != nil {
		raw, err := json.Marshal(opts.Body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &RequestError{Message: err.Error(), Err: err}
	}

	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Content-Type", "application/json")
	if opts.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+opts.AuthToken)
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("backend request failed",
			slog.String("method", method), slog.String("path", path),
			slog.String("request_id", reqID), slog.Any("err", err))
		return &RequestError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug("backend request",
		slog.String("method", method), slog.String("path", path),
		slog.Int("status", resp.StatusCode), slog.Duration("took", time.Since(start)),
		slog.String("request_id", reqID))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, err := io.ReadAll(resp.Body)
		msg := string(text)
		// a truncated body is not the backend's message
		if err != nil || strings.TrimSpace(msg) == "" {
			msg = fallbackMessage
		}
		return &RequestError{StatusCode: resp.StatusCode, Message: msg, Err: err}
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// Call is Do with the result type as a type parameter. A 204 yields the zero T.
func Call[T any](ctx context.Context, c *Client, path string, opts Options) (T, error) {
	var out T
	if err := c.Do(ctx, path, opts, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
