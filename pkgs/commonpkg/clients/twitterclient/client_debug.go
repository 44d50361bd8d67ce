package twitterclient

import (
	"net/url"
	"sort"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// SetRequestCounting registers cb to observe the path of every outgoing request
func (c *Client) SetRequestCounting(cb func(path string)) {
	c.restyClient.OnBeforeRequest(func(client *resty.Client, req *resty.Request) error {
		url, err := url.Parse(req.URL)
		if err != nil {
			return err
		}

		cb(url.Path)
		return nil
	})
}

// EnableRequestCounting counts requests per path into RequestCounts
func (c *Client) EnableRequestCounting() {
	c.SetRequestCounting(func(path string) {
		count, _ := c.apiCounts.LoadOrStore(path, &atomic.Int32{})
		count.Add(1)
	})
}

func (c *Client) RequestCounts() map[string]int32 {
	res := make(map[string]int32)
	for _, kv := range c.apiCounts.Range() {
		res[kv.Key] = kv.Value.Load()
	}
	return res
}

// ReportRequestCount reports API request counts for debugging
func (c *Client) ReportRequestCount() {
	counts := c.RequestCounts()
	paths := make([]string, 0, len(counts))
	for path := range counts {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		log.Debugf("* %s request count: %d", path, counts[path])
	}
}

////////////////////////////////////////////////////////////////////////////////

const (
	ErrTimeout         = 29
	ErrDependency      = 0
	ErrExceedPostLimit = 88
	ErrOverCapacity    = 130
	ErrAccountLocked   = 326
)

////////////////////////////////////////////////////////////////////////////////

func CheckApiResp(body []byte) error {
	if !gjson.ValidBytes(body) {
		return nil
	}
	errors := gjson.GetBytes(body, "errors")
	if !errors.Exists() || !errors.IsArray() || len(errors.Array()) == 0 {
		return nil
	}

	codej := errors.Get("0.code")
	code := -1
	if codej.Exists() {
		code = int(codej.Int())
	}
	return NewTwitterApiError(code, errors.Get("0.message").String(), string(body))
}

type TwitterApiError struct {
	Code    int
	Message string
	raw     string
}

func (err *TwitterApiError) Error() string {
	return err.raw
}

func NewTwitterApiError(code int, message string, raw string) *TwitterApiError {
	return &TwitterApiError{Code: code, Message: message, raw: raw}
}
