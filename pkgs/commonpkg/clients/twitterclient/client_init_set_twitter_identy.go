package twitterclient

import (
	"net/http"
	"time"

	"github.com/WangWilly/xRest/pkgs/commonpkg/utils"
	"github.com/go-resty/resty/v2"
)

////////////////////////////////////////////////////////////////////////////////

const (
	TWITTER_API_BEARER_TOKEN = "AAAAAAAAAAAAAAAAAAAAANRILgAAAAAAnNwIzUejRCOuH5E6I8xnZz4puTs%3D1Zv7ttfk8LF81IUq16cHjhLTvJu4FA33AGWWjCpTnA"
)

////////////////////////////////////////////////////////////////////////////////

func (c *Client) setTwitterIdenty(cfg Config) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.setClientAuth(cfg.BearerToken, cfg.AuthToken, cfg.Ct0)
	c.configureTransport()
}

// setClientAuth configures authentication for the Twitter API client.
// A cookie session falls back to the web client bearer token.
func (c *Client) setClientAuth(bearer string, authToken string, ct0 string) {
	if bearer == "" && authToken != "" {
		bearer = TWITTER_API_BEARER_TOKEN
	}
	if bearer != "" {
		c.restyClient.SetAuthToken(bearer)
	}
	if authToken == "" {
		return
	}

	c.restyClient.SetCookie(&http.Cookie{
		Name:  COOKIE_AUTH_TOKEN,
		Value: authToken,
	})
	c.restyClient.SetCookie(&http.Cookie{
		Name:  COOKIE_CT0,
		Value: ct0,
	})
	c.restyClient.SetHeader(HEADER_CSRF_TOKEN, ct0)
}

// configureErrorHandling turns API level failures into errors
func (c *Client) configureErrorHandling() {
	c.restyClient.OnAfterResponse(func(client *resty.Client, r *resty.Response) error {
		if err := CheckApiResp(r.Body()); err != nil {
			return err
		}
		return utils.CheckRespStatus(r)
	})
}

// configureRetryLogic is opt-in: a zero count keeps one attempt per request
func (c *Client) configureRetryLogic(retryCount int) {
	if retryCount <= 0 {
		return
	}
	c.restyClient.SetRetryCount(retryCount)

	c.restyClient.AddRetryCondition(func(r *resty.Response, err error) bool {
		if err == ErrWouldBlock {
			return false
		}
		// For TCP Error
		return err != nil && !isKnownError(err)
	})

	c.restyClient.AddRetryCondition(func(r *resty.Response, err error) bool {
		// For Twitter API Error
		if apiErr, ok := err.(*TwitterApiError); ok {
			return apiErr.Code == ErrTimeout || apiErr.Code == ErrOverCapacity || apiErr.Code == ErrDependency
		}
		return false
	})

	c.restyClient.AddRetryCondition(func(r *resty.Response, err error) bool {
		// For Http 429
		return utils.IsStatusCode(err, http.StatusTooManyRequests)
	})
}

// configureTransport sets up HTTP transport configuration
func (c *Client) configureTransport() {
	c.restyClient.SetTransport(&http.Transport{
		MaxIdleConns:          0,
		MaxIdleConnsPerHost:   100,
		IdleConnTimeout:       5 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: 5 * time.Second,
		Proxy:                 http.ProxyFromEnvironment,
	})
}
