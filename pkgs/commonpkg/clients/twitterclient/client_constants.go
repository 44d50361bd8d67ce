package twitterclient

import "time"

// API Base Configuration
const (
	API_HOST    = "https://api.x.com/1.1"
	UPLOAD_HOST = "https://upload.x.com/1.1"
)

// Paths under this prefix are served by UPLOAD_HOST
const (
	MEDIA_PATH_PREFIX = "media/"
	PATH_SUFFIX       = ".json"
)

// Rate limit headers
const (
	HEADER_RATE_LIMIT_LIMIT     = "X-Rate-Limit-Limit"
	HEADER_RATE_LIMIT_REMAINING = "X-Rate-Limit-Remaining"
	HEADER_RATE_LIMIT_RESET     = "X-Rate-Limit-Reset"
)

// Default Values
const (
	DEFAULT_REQUEST_TIMEOUT = 30 * time.Second
)
