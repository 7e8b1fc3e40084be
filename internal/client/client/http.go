package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/common"
	"github.com/dmitrijs2005/userconsole/internal/logging"
	"github.com/google/uuid"
)

// DefaultTimeout bounds every request made by HTTPClient.
const DefaultTimeout = 30 * time.Second

// HTTPClient is the Client implementation over net/http. It prefixes every
// path with the base URL and sends the fixed bearer credential.
type HTTPClient struct {
	baseURL    *url.URL
	authKey    string
	httpClient *http.Client
	logger     logging.Logger

	newRequestID func() string
}

// NewHTTPClient validates baseURL and returns a client with the given
// timeout (DefaultTimeout when zero).
func NewHTTPClient(baseURL, authKey string, timeout time.Duration, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid api base url %q: scheme and host are required", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &HTTPClient{
		baseURL:      u,
		authKey:      authKey,
		httpClient:   &http.Client{Timeout: timeout},
		logger:       logger,
		newRequestID: uuid.NewString,
	}, nil
}

type errorBody struct {
	Error string `json:"error"`
}

func (c *HTTPClient) Do(ctx context.Context, r Request, out any) error {
	requestID := c.newRequestID()
	log := c.logger.With("method", r.Method, "path", r.Path, "request_id", requestID)

	req, err := c.newRequest(ctx, r)
	if err != nil {
		log.Warn(ctx, "request not sent", "error", err)
		return fmt.Errorf("%w: %v", ErrRequestConstruction, err)
	}
	req.Header.Set(common.RequestIDHeader, requestID)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, "no response", "error", err)
		return fmt.Errorf("%w: %v", ErrNoResponse, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn(ctx, "response body lost", "status", resp.StatusCode, "error", err)
		return fmt.Errorf("%w: %v", ErrNoResponse, err)
	}

	log.Debug(ctx, "request completed", "status", resp.StatusCode, "latency_ms", time.Since(started).Milliseconds())

	if resp.StatusCode >= http.StatusBadRequest {
		var eb errorBody
		_ = json.Unmarshal(body, &eb)
		msg := eb.Error
		if msg == "" {
			msg = DefaultServerMessage
		}
		return &ServerError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		// an undecodable success body is treated as empty
		log.Warn(ctx, "response body is not json", "error", err)
	}
	return nil
}

func (c *HTTPClient) newRequest(ctx context.Context, r Request) (*http.Request, error) {
	if r.Method == "" {
		return nil, fmt.Errorf("empty method")
	}

	u := *c.baseURL
	u.Path = c.baseURL.Path + "/" + strings.TrimLeft(r.Path, "/")
	if len(r.Query) > 0 {
		u.RawQuery = r.Query.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		b, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, u.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+c.authKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}
