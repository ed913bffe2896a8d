package placesapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"placesweb/internal/domain"
)

// Client talks to the places API. Calls are attempted once; the caller
// inspects the returned Response to decide success.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewWithHTTPClient lets tests plug a custom transport.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: hc}
}

// Response is a fully read API response.
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// StatusText is the reason phrase without the numeric code.
func (r *Response) StatusText() string {
	text := strings.TrimSpace(strings.TrimPrefix(r.Status, strconv.Itoa(r.StatusCode)))
	if text == "" {
		text = http.StatusText(r.StatusCode)
	}
	return text
}

func (r *Response) DecodeJSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode %d response: %w", r.StatusCode, err)
	}
	return nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/login", "", domain.LoginRequest{Email: email, Password: password})
}

func (c *Client) ListPlaces(ctx context.Context, token string) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/places", token, nil)
}

func (c *Client) GetPlace(ctx context.Context, token, placeID string) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/places/"+url.PathEscape(placeID), token, nil)
}

func (c *Client) SubmitReview(ctx context.Context, token, placeID, text string, rating int) (*Response, error) {
	body := domain.ReviewSubmission{Review: text, Rating: rating}
	return c.do(ctx, http.MethodPost, "/places/"+url.PathEscape(placeID)+"/reviews", token, body)
}

func (c *Client) do(ctx context.Context, method, path, token string, body any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if id := RequestIDFrom(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}

	return &Response{StatusCode: resp.StatusCode, Status: resp.Status, Body: data}, nil
}

type requestIDKey struct{}

// WithRequestID attaches the inbound request id so it is forwarded upstream.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
