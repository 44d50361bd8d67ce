package twitterclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/WangWilly/xRest/pkgs/commonpkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, failFast bool) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(Config{
		ApiHost:           srv.URL + "/1.1",
		UploadHost:        srv.URL + "/upload/1.1",
		BearerToken:       "test-bearer",
		Timeout:           5 * time.Second,
		RateLimitFailFast: failFast,
	})
}

func TestClientCreation(t *testing.T) {
	client := New(Config{})
	require.NotNil(t, client)
	assert.NotNil(t, client.restyClient)
	assert.NotNil(t, client.rateLimiter)
	assert.Equal(t, API_HOST, client.apiHost)
	assert.Equal(t, UPLOAD_HOST, client.uploadHost)
}

func TestEndpointUrl(t *testing.T) {
	client := New(Config{})

	assert.Equal(t, "https://api.x.com/1.1/friends/ids.json", client.EndpointUrl("friends/ids"))
	assert.Equal(t, "https://upload.x.com/1.1/media/upload.json", client.EndpointUrl("media/upload"))
	assert.Equal(t, "/1.1/friends/ids.json", client.EndpointPath("friends/ids"))
}

func TestDoGetResolvesPlaceholderAndEncodesQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/1.1/statuses/retweets/123.json", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("count"))
		assert.Equal(t, "true", r.URL.Query().Get("trim_user"))
		assert.False(t, r.URL.Query().Has("id"))
		assert.Equal(t, "Bearer test-bearer", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id_str":"1"}]`))
	}, false)

	params := map[string]any{"id": "123", "count": 5, "trim_user": true}
	body, raw, err := client.Do(context.Background(), http.MethodGet, "statuses/retweets/:id", params)
	require.NoError(t, err)
	require.NotNil(t, raw)

	assert.JSONEq(t, `[{"id_str":"1"}]`, string(body))
	assert.Equal(t, 200, raw.StatusCode)
	assert.Equal(t, http.MethodGet, raw.Method)
	assert.Contains(t, params, "id", "caller params must not be mutated")
}

func TestDoPostSendsForm(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/1.1/statuses/lookup.json", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "1,2,3", r.PostForm.Get("id"))

		w.Write([]byte(`[]`))
	}, false)

	_, raw, err := client.Do(context.Background(), http.MethodPost, "statuses/lookup", map[string]any{
		"id": []string{"1", "2", "3"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, raw.Method)
}

func TestDoMediaUsesUploadHost(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/upload/1.1/media/upload.json", r.URL.Path)
		w.Write([]byte(`{"media_id_string":"9"}`))
	}, false)

	_, _, err := client.Do(context.Background(), http.MethodPost, "media/upload", map[string]any{"media_data": "AAAA"})
	require.NoError(t, err)
}

func TestDoMissingPlaceholder(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}, false)

	_, raw, err := client.Do(context.Background(), http.MethodGet, "statuses/show/:id", map[string]any{})
	require.Error(t, err)

	var paramErr *MissingParamError
	require.True(t, errors.As(err, &paramErr))
	assert.Equal(t, "id", paramErr.Param)
	assert.Nil(t, raw)
	assert.Zero(t, hits.Load())
}

func TestDoUnsupportedMethod(t *testing.T) {
	client := New(Config{})
	_, raw, err := client.Do(context.Background(), http.MethodDelete, "friends/ids", nil)
	assert.Error(t, err)
	assert.Nil(t, raw)
}

func TestDoApiError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors":[{"code":88,"message":"Rate limit exceeded"}]}`))
	}, false)

	_, raw, err := client.Do(context.Background(), http.MethodGet, "friends/ids", nil)
	require.Error(t, err)

	var apiErr *TwitterApiError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, ErrExceedPostLimit, apiErr.Code)
	assert.Equal(t, "Rate limit exceeded", apiErr.Message)
	require.NotNil(t, raw)
	assert.Equal(t, 200, raw.StatusCode)
}

func TestDoHttpStatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, false)

	_, raw, err := client.Do(context.Background(), http.MethodGet, "users/show", map[string]any{"screen_name": "nobody"})
	require.Error(t, err)
	assert.True(t, utils.IsStatusCode(err, 404))
	require.NotNil(t, raw)
	assert.Equal(t, 404, raw.StatusCode)
}

func TestRequestInvokesCallbackOnce(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"a":1}`))
	}, false)

	type outcome struct {
		err  error
		body []byte
		raw  *RawResponse
	}
	results := make(chan outcome, 2)
	client.Request(context.Background(), http.MethodGet, "help/tos", nil, func(err error, body []byte, raw *RawResponse) {
		results <- outcome{err, body, raw}
	})

	select {
	case res := <-results:
		require.NoError(t, res.err)
		assert.JSONEq(t, `{"a":1}`, string(res.body))
		assert.Equal(t, 200, res.raw.StatusCode)
	case <-time.After(5 * time.Second):
		t.Fatal("callback was not invoked")
	}

	select {
	case <-results:
		t.Fatal("callback invoked twice")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRateLimitObserved(t *testing.T) {
	reset := time.Now().Add(10 * time.Minute).Unix()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HEADER_RATE_LIMIT_LIMIT, "15")
		w.Header().Set(HEADER_RATE_LIMIT_REMAINING, "1")
		w.Header().Set(HEADER_RATE_LIMIT_RESET, strconv.FormatInt(reset, 10))
		w.Write([]byte(`{"ids":[]}`))
	}, false)

	path := client.EndpointPath("friends/ids")
	_, ok := client.RateLimit(path)
	assert.False(t, ok)
	assert.False(t, client.WouldBlock(path))

	_, _, err := client.Do(context.Background(), http.MethodGet, "friends/ids", map[string]any{"cursor": -1})
	require.NoError(t, err)

	limit, ok := client.RateLimit(path)
	require.True(t, ok)
	assert.Equal(t, 15, limit.Limit)
	assert.Equal(t, 1, limit.Remaining)
	assert.Equal(t, reset, limit.ResetTime.Unix())
	assert.True(t, client.WouldBlock(path))
}

func TestRateLimitFailFast(t *testing.T) {
	var hits atomic.Int32
	reset := time.Now().Add(10 * time.Minute).Unix()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set(HEADER_RATE_LIMIT_LIMIT, "15")
		w.Header().Set(HEADER_RATE_LIMIT_REMAINING, "0")
		w.Header().Set(HEADER_RATE_LIMIT_RESET, strconv.FormatInt(reset, 10))
		w.Write([]byte(`{"ids":[]}`))
	}, true)

	_, _, err := client.Do(context.Background(), http.MethodGet, "followers/ids", nil)
	require.NoError(t, err)

	_, raw, err := client.Do(context.Background(), http.MethodGet, "followers/ids", nil)
	assert.ErrorIs(t, err, ErrWouldBlock)
	assert.Nil(t, raw)
	assert.Equal(t, int32(1), hits.Load())
}

func TestRequestCounting(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}, false)
	client.EnableRequestCounting()

	for range 3 {
		_, _, err := client.Do(context.Background(), http.MethodGet, "help/languages", nil)
		require.NoError(t, err)
	}

	counts := client.RequestCounts()
	assert.Equal(t, int32(3), counts[client.EndpointPath("help/languages")])
}

func TestCheckApiResp(t *testing.T) {
	assert.NoError(t, CheckApiResp([]byte(`{"ids":[]}`)))
	assert.NoError(t, CheckApiResp([]byte(`not json`)))
	assert.NoError(t, CheckApiResp([]byte(`{"errors":[]}`)))

	err := CheckApiResp([]byte(`{"errors":[{"message":"boom"}]}`))
	var apiErr *TwitterApiError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, -1, apiErr.Code)
}
