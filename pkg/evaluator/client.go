package evaluator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Config carries the connection settings for the evaluation service.
// RequestTimeout bounds a single full-pipeline call via context;
// ReadTimeout is the http.Client ceiling and must sit above it.
type Config struct {
	BaseURL        string
	APIKey         string
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
	ReadTimeout    time.Duration
	HealthTimeout  time.Duration
	MaxAttempts    int
	RetryInterval  time.Duration
}

// StatusError is returned when the evaluation service answers with a
// non-2xx status. 4xx responses are not retried.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("evaluator returned status %d: %s", e.Code, e.Body)
}

func (e *StatusError) IsClientError() bool {
	return e.Code >= 400 && e.Code < 500
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: cfg.ConnectTimeout,
		}).DialContext,
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 50,
		IdleConnTimeout:     2 * time.Minute,
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.ReadTimeout,
		},
	}
}

// Evaluate posts the full-pipeline request and retries transport failures
// and 5xx responses with exponential backoff. 4xx responses fail immediately.
func (c *Client) Evaluate(ctx context.Context, req *PipelineRequest) (*PipelineResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal pipeline request: %w", err)
	}

	operation := func() (*PipelineResponse, error) {
		reqCtx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
		defer cancel()

		resp, err := c.doEvaluate(reqCtx, body)
		if err != nil {
			var statusErr *StatusError
			if errors.As(err, &statusErr) && statusErr.IsClientError() {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		return resp, nil
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = c.cfg.RetryInterval

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(expo),
		backoff.WithMaxTries(uint(c.cfg.MaxAttempts)),
	)
}

func (c *Client) doEvaluate(ctx context.Context, body []byte) (*PipelineResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/ai/full-pipeline", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-API-KEY", c.cfg.APIKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, &StatusError{Code: httpResp.StatusCode, Body: truncate(string(respBody), 512)}
	}

	var resp PipelineResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decode pipeline response: %w", err)
	}

	return &resp, nil
}

// HealthCheck returns true when the evaluation service answers 2xx.
func (c *Client) HealthCheck(ctx context.Context) bool {
	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.HealthTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodGet, c.cfg.BaseURL+"/ai/health", nil)
	if err != nil {
		return false
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return false
	}
	defer httpResp.Body.Close()
	io.Copy(io.Discard, httpResp.Body)

	return httpResp.StatusCode >= 200 && httpResp.StatusCode < 300
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
