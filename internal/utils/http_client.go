package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	clientRetryCount   = 2
	clientRetryWait    = 200 * time.Millisecond
	clientRetryMaxWait = 2 * time.Second
)

// HTTPClient is a wrapper around resty.Client preconfigured for the
// progress API: base URL, timeout, JSON accept header and retries on
// transport errors and 5xx responses.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client for baseURL. A zero timeout
// leaves resty's default (none).
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(clientRetryCount).
		SetRetryWaitTime(clientRetryWait).
		SetRetryMaxWaitTime(clientRetryMaxWait).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// WithBearerToken sets the Authorization header sent with every request.
func (c *HTTPClient) WithBearerToken(token string) *HTTPClient {
	c.SetAuthToken(token)
	return c
}
