// Package relay posts contact submissions to the third-party form relay.
package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/greenaire/site/internal/ui/model"
	"github.com/greenaire/site/logging"
)

// DefaultEndpoint is the company inbox on the formsubmit AJAX relay.
const DefaultEndpoint = "https://formsubmit.co/ajax/shanuchees@gmail.com"

const maxBodyBytes = 64 * 1024

// ErrInvalidResponse is returned when the relay answers 2xx with a body that is not JSON.
var ErrInvalidResponse = errors.New("relay: response is not valid JSON")

// ErrResponseTooLarge is returned when a 2xx body exceeds the read limit, so
// it cannot be told apart from a malformed reply.
var ErrResponseTooLarge = errors.New("relay: response body too large")

// StatusError reports a non-2xx answer from the relay.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("relay: unexpected status %d", e.Code)
	}
	return fmt.Sprintf("relay: unexpected status %d: %s", e.Code, e.Body)
}

// Response is the decoded JSON body of a successful relay call.
type Response struct {
	Success any    `json:"success"`
	Message string `json:"message"`
}

// Client sends submissions to a formsubmit-style endpoint.
type Client struct {
	Endpoint   string
	HTTPClient *http.Client
	Logger     *logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

// WithLogger attaches a logger for relay attempts.
func WithLogger(l *logging.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.Logger = l
		}
	}
}

// New builds a Client for endpoint. An empty endpoint uses DefaultEndpoint.
func New(endpoint string, opts ...Option) *Client {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		Logger:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Payload returns the form values posted for sub.
func Payload(sub model.Submission) url.Values {
	values := url.Values{}
	values.Set("name", sub.Name)
	values.Set("email", sub.Email)
	values.Set("message", sub.Message)
	values.Set("_captcha", "false")
	values.Set("_template", "table")
	values.Set("_subject", "New Contact Form Submission from "+sub.Name)
	return values
}

// Send posts sub to the relay and reports whether it was accepted.
func (c *Client) Send(ctx context.Context, sub model.Submission) error {
	_, err := c.SendWithResponse(ctx, sub)
	return err
}

// SendWithResponse posts sub and returns the decoded relay answer.
func (c *Client) SendWithResponse(ctx context.Context, sub model.Submission) (Response, error) {
	attempt := uuid.NewString()
	logCtx := c.Logger.WithRequestID(attempt).WithCategory(logging.CategoryRelay).
		WithField("endpoint", c.Endpoint)
	start := time.Now()

	resp, err := c.post(ctx, sub)
	logCtx.WithField("duration_ms", time.Since(start).Milliseconds())
	if err != nil {
		logCtx.Error("relay submission failed", err)
		return Response{}, err
	}
	logCtx.Info("relay accepted submission")
	return resp, nil
}

func (c *Client) post(ctx context.Context, sub model.Submission) (Response, error) {
	body := Payload(sub).Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, strings.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("create relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("post to relay: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes+1))
	if err != nil {
		return Response{}, fmt.Errorf("read relay response: %w", err)
	}
	truncated := len(data) > maxBodyBytes
	if truncated {
		data = data[:maxBodyBytes]
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return Response{}, &StatusError{Code: res.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	if truncated {
		return Response{}, fmt.Errorf("%w: more than %d bytes", ErrResponseTooLarge, maxBodyBytes)
	}

	var decoded Response
	if err := json.Unmarshal(data, &decoded); err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return decoded, nil
}
