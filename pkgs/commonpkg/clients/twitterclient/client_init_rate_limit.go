package twitterclient

import (
	"net/url"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

func (c *Client) setRateLimit(failFast bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.rateLimiter != nil {
		log.Debugln("rate limiter already initialized")
		return
	}
	c.rateLimiter = newRateLimiter(failFast)

	////////////////////////////////////////////////////////////////////////////

	c.restyClient.OnBeforeRequest(func(client *resty.Client, req *resty.Request) error {
		u, err := url.Parse(req.URL)
		if err != nil {
			return err
		}
		return c.rateLimiter.check(u)
	})

	// registered ahead of the error check so failed responses are recorded too
	c.restyClient.OnAfterResponse(func(client *resty.Client, resp *resty.Response) error {
		if resp.Request == nil || resp.Request.RawRequest == nil {
			return nil
		}
		c.rateLimiter.record(resp.Request.RawRequest.URL, resp)
		return nil
	})
}

// WouldBlock reports whether the last observed window of path is nearly exhausted
func (c *Client) WouldBlock(path string) bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.rateLimiter.wouldBlock(path)
}

// RateLimit returns the last observed window of path
func (c *Client) RateLimit(path string) (RateLimit, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.rateLimiter.get(path)
}
