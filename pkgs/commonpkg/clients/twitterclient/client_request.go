package twitterclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////

// RawResponse is the transport level view of a completed HTTP exchange
type RawResponse struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
	Method     string
	URL        string
	ReceivedAt time.Time
	Duration   time.Duration
}

// Callback receives the outcome of a request, error first. resp is nil when
// the failure happened before a response was received.
type Callback func(err error, body []byte, resp *RawResponse)

func newRawResponse(resp *resty.Response) *RawResponse {
	if resp == nil || resp.RawResponse == nil {
		return nil
	}

	raw := &RawResponse{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Header:     resp.Header(),
		Body:       resp.Body(),
		ReceivedAt: resp.ReceivedAt(),
		Duration:   resp.Time(),
	}
	if resp.Request != nil {
		raw.Method = resp.Request.Method
		raw.URL = resp.Request.URL
	}
	return raw
}

////////////////////////////////////////////////////////////////////////////////

// Request issues one HTTP call and reports its outcome to done on a separate
// goroutine. done is invoked exactly once.
func (c *Client) Request(ctx context.Context, method, path string, params map[string]any, done Callback) {
	go func() {
		body, raw, err := c.Do(ctx, method, path, params)
		done(err, body, raw)
	}()
}

// Do is the blocking form of Request
func (c *Client) Do(ctx context.Context, method, path string, params map[string]any) ([]byte, *RawResponse, error) {
	logger := log.WithFields(log.Fields{
		"caller": "Client.Do",
		"method": method,
		"path":   path,
	})

	resolved, rest, err := resolvePath(path, params)
	if err != nil {
		return nil, nil, err
	}

	req := c.restyClient.R().SetContext(ctx)
	switch method {
	case http.MethodGet:
		req.SetQueryParamsFromValues(encodeParams(rest))
	case http.MethodPost:
		req.SetFormDataFromValues(encodeParams(rest))
	default:
		return nil, nil, fmt.Errorf("unsupported method %q", method)
	}

	resp, err := req.Execute(method, c.EndpointUrl(resolved))
	raw := newRawResponse(resp)
	if err != nil {
		logger.WithError(err).Debugln("request failed")
		return nil, raw, err
	}

	logger.WithField("status_code", resp.StatusCode()).Debugln("request done")
	return resp.Body(), raw, nil
}

////////////////////////////////////////////////////////////////////////////////

// EndpointUrl maps a resolved resource path to its absolute url
func (c *Client) EndpointUrl(path string) string {
	host := c.apiHost
	if strings.HasPrefix(path, MEDIA_PATH_PREFIX) {
		host = c.uploadHost
	}
	return strings.TrimSuffix(host, "/") + "/" + strings.TrimPrefix(path, "/") + PATH_SUFFIX
}

// EndpointPath is the url path that rate limits and request counts are keyed by
func (c *Client) EndpointPath(path string) string {
	u, err := url.Parse(c.EndpointUrl(path))
	if err != nil {
		return ""
	}
	return u.Path
}
