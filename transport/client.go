package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/iw2rmb/genkou/essay"
)

const (
	defaultTimeout = 30 * time.Second
	// maxErrorBody bounds how much of a failed response is quoted in the
	// returned error.
	maxErrorBody = 4 << 10
	maxBody      = 16 << 20
)

// ClientConfig configures a Client.
type ClientConfig struct {
	// URL is the submission endpoint, e.g. http://localhost:8080/api/essays.
	URL string
	// Timeout defaults to 30s. Ignored when HTTPClient is set.
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client submits documents to a review endpoint.
type Client struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient returns a Client for cfg.URL.
func NewClient(cfg ClientConfig) (*Client, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("transport: submit URL is required")
	}
	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{url: cfg.URL, httpClient: hc, log: log}, nil
}

// Submit posts doc as JSON and decodes the response body as the document
// to load next. Transport errors and non-2xx statuses wrap
// essay.ErrNetworkFailure; an unparsable response wraps
// essay.ErrMalformedDocument.
func (c *Client) Submit(ctx context.Context, doc essay.Document) (essay.Document, error) {
	body, err := essay.EncodeJSON(doc)
	if err != nil {
		return essay.Document{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return essay.Document{}, fmt.Errorf("%w: %v", essay.ErrNetworkFailure, err)
	}
	req.Header.Set("Content-Type", essay.FormatJSON.MIMEType())
	req.Header.Set("Accept", essay.FormatJSON.MIMEType())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return essay.Document{}, fmt.Errorf("%w: submit request failed: %v", essay.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	c.log.Debug("submit response", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return essay.Document{}, fmt.Errorf("%w: submit failed with status %d: %s",
			essay.ErrNetworkFailure, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return essay.Document{}, fmt.Errorf("%w: reading response: %v", essay.ErrNetworkFailure, err)
	}
	return essay.DecodeJSON(data)
}
