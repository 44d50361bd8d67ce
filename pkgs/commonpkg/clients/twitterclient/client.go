package twitterclient

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/WangWilly/xRest/pkgs/commonpkg/utils"
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////

// header keys
const (
	HEADER_USER_AGENT = "User-Agent"
	HEADER_CSRF_TOKEN = "X-Csrf-Token"
)

// cookie names
const (
	COOKIE_AUTH_TOKEN = "auth_token"
	COOKIE_CT0        = "ct0"
)

// agent strings
const (
	USER_AGENT_1 = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
)

////////////////////////////////////////////////////////////////////////////////

// Client is a resty backed transport for the v1.1 REST surface. Every request
// completes through a callback that is invoked exactly once.
type Client struct {
	restyClient *resty.Client
	rateLimiter *rateLimiter
	apiCounts   *utils.SyncMap[string, *atomic.Int32]

	apiHost    string
	uploadHost string

	mutex sync.RWMutex
}

type Config struct {
	ApiHost    string
	UploadHost string

	BearerToken string
	AuthToken   string
	Ct0         string

	Timeout           time.Duration
	RetryCount        int
	RateLimitFailFast bool
}

func New(cfg Config) *Client {
	if cfg.ApiHost == "" {
		cfg.ApiHost = API_HOST
	}
	if cfg.UploadHost == "" {
		cfg.UploadHost = UPLOAD_HOST
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DEFAULT_REQUEST_TIMEOUT
	}

	c := &Client{
		restyClient: resty.New(),
		apiCounts:   utils.NewSyncMap[string, *atomic.Int32](),
		apiHost:     cfg.ApiHost,
		uploadHost:  cfg.UploadHost,
	}

	c.restyClient.SetHeader(HEADER_USER_AGENT, USER_AGENT_1)
	c.restyClient.SetTimeout(cfg.Timeout)

	c.setTwitterIdenty(cfg)
	c.setRateLimit(cfg.RateLimitFailFast)
	c.configureErrorHandling()
	c.configureRetryLogic(cfg.RetryCount)
	return c
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) SetLogger(logger *log.Logger) {
	c.restyClient.SetLogger(logger)
}

func (c *Client) SetDebug(debug bool) {
	c.restyClient.SetDebug(debug)
}
