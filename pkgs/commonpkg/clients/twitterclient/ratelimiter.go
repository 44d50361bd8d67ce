package twitterclient

import (
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/WangWilly/xRest/pkgs/commonpkg/utils"
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////
// Rate Limit Observation
////////////////////////////////////////////////////////////////////////////////

// RateLimit is the last window reported by the X-Rate-Limit-* headers of a path
type RateLimit struct {
	Limit     int
	Remaining int
	ResetTime time.Time
}

// xRateLimit represents Twitter API rate limit information for a specific endpoint
type xRateLimit struct {
	ResetTime time.Time
	Remaining int
	Limit     int
	Url       string
	Mtx       sync.Mutex
}

// wouldBlock checks if the window is close to exhaustion (internal, not thread-safe)
func (rl *xRateLimit) wouldBlock(now time.Time) bool {
	threshold := max(2*rl.Limit/100, 1)
	return rl.Remaining <= threshold && now.Before(rl.ResetTime)
}

// exhausted checks if the window has no request left (internal, not thread-safe)
func (rl *xRateLimit) exhausted(now time.Time) bool {
	return rl.Remaining <= 0 && now.Before(rl.ResetTime)
}

func (rl *xRateLimit) snapshot() RateLimit {
	rl.Mtx.Lock()
	defer rl.Mtx.Unlock()
	return RateLimit{Limit: rl.Limit, Remaining: rl.Remaining, ResetTime: rl.ResetTime}
}

// makeRateLimit creates a rate limit from HTTP response headers
func makeRateLimit(resp *resty.Response) *xRateLimit {
	header := resp.Header()
	limit := header.Get(HEADER_RATE_LIMIT_LIMIT)
	if limit == "" {
		return nil
	}
	remaining := header.Get(HEADER_RATE_LIMIT_REMAINING)
	if remaining == "" {
		return nil
	}
	resetTime := header.Get(HEADER_RATE_LIMIT_RESET)
	if resetTime == "" {
		return nil
	}

	resetTimeNum, err := strconv.ParseInt(resetTime, 10, 64)
	if err != nil {
		return nil
	}
	remainingNum, err := strconv.Atoi(remaining)
	if err != nil {
		return nil
	}
	limitNum, err := strconv.Atoi(limit)
	if err != nil {
		return nil
	}

	return &xRateLimit{
		ResetTime: time.Unix(resetTimeNum, 0),
		Remaining: remainingNum,
		Limit:     limitNum,
		Url:       resp.Request.URL,
	}
}

////////////////////////////////////////////////////////////////////////////////

// rateLimiter records rate limit windows per path. It never sleeps: in
// fail-fast mode an exhausted window rejects the request with ErrWouldBlock.
type rateLimiter struct {
	limits   *utils.SyncMap[string, *xRateLimit]
	failFast bool
	now      func() time.Time
}

func newRateLimiter(failFast bool) *rateLimiter {
	return &rateLimiter{
		limits:   utils.NewSyncMap[string, *xRateLimit](),
		failFast: failFast,
		now:      time.Now,
	}
}

// check verifies if a request can proceed without hitting rate limits
func (rl *rateLimiter) check(u *url.URL) error {
	if !rl.failFast {
		return nil
	}

	limit, ok := rl.limits.Load(u.Path)
	if !ok {
		return nil
	}

	limit.Mtx.Lock()
	defer limit.Mtx.Unlock()
	if limit.exhausted(rl.now()) {
		log.
			WithFields(log.Fields{
				"path":  u.Path,
				"until": limit.ResetTime,
			}).
			Debugln("[RateLimiter] window exhausted")
		return ErrWouldBlock
	}
	limit.Remaining--
	return nil
}

// record stores the window reported by resp, if any
func (rl *rateLimiter) record(u *url.URL, resp *resty.Response) {
	if resp == nil || resp.RawResponse == nil {
		return
	}
	rateLimit := makeRateLimit(resp)
	if rateLimit == nil {
		return
	}
	rl.limits.Store(u.Path, rateLimit)
}

// wouldBlock checks if a request to the given path would likely be limited
func (rl *rateLimiter) wouldBlock(path string) bool {
	limit, ok := rl.limits.Load(path)
	if !ok {
		return false
	}
	limit.Mtx.Lock()
	defer limit.Mtx.Unlock()
	return limit.wouldBlock(rl.now())
}

func (rl *rateLimiter) get(path string) (RateLimit, bool) {
	limit, ok := rl.limits.Load(path)
	if !ok {
		return RateLimit{}, false
	}
	return limit.snapshot(), true
}
