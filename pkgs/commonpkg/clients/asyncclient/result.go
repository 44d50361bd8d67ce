package asyncclient

import (
	"encoding/json"
	"fmt"

	"github.com/WangWilly/xRest/pkgs/commonpkg/clients/twitterclient"
	"github.com/tidwall/gjson"
)

////////////////////////////////////////////////////////////////////////////////

// collection keys of a cursor page
const (
	COLLECTION_IDS   = "ids"
	COLLECTION_USERS = "users"
	COLLECTION_LISTS = "lists"
)

const (
	FIRST_CURSOR    = "-1"
	TERMINAL_CURSOR = "0"
)

////////////////////////////////////////////////////////////////////////////////

// Result is a successfully settled call. Response is the raw transport
// response and is nil when the call was answered without a network round trip.
type Result struct {
	body     []byte
	Response *twitterclient.RawResponse
}

func newResult(body []byte, resp *twitterclient.RawResponse) *Result {
	return &Result{body: body, Response: resp}
}

func (r *Result) Body() []byte {
	return r.body
}

// Value decodes the body into plain Go values: map[string]any, []any,
// string, float64, bool or nil.
func (r *Result) Value() any {
	if len(r.body) == 0 {
		return nil
	}
	return gjson.ParseBytes(r.body).Value()
}

func (r *Result) Get(path string) gjson.Result {
	return gjson.GetBytes(r.body, path)
}

func (r *Result) Unmarshal(v any) error {
	if err := json.Unmarshal(r.body, v); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}
	return nil
}

func (r *Result) IsEmpty() bool {
	res := gjson.ParseBytes(r.body)
	switch {
	case !res.Exists(), res.Type == gjson.Null:
		return true
	case res.IsArray():
		return len(res.Array()) == 0
	}
	return false
}

// NextCursor returns next_cursor_str of a cursor page, empty when absent
func (r *Result) NextCursor() string {
	res := r.Get("next_cursor_str")
	if res.Exists() {
		return res.String()
	}
	if res = r.Get("next_cursor"); res.Exists() {
		return cursorString(res.Int())
	}
	return ""
}

////////////////////////////////////////////////////////////////////////////////

func emptyList() *Result {
	return newResult([]byte(`[]`), nil)
}

func emptyNull() *Result {
	return newResult([]byte(`null`), nil)
}

func emptyCursorPage(key string) *Result {
	body := fmt.Sprintf(
		`{"previous_cursor":0,"previous_cursor_str":"0","next_cursor":0,"next_cursor_str":"0",%q:[]}`,
		key,
	)
	return newResult([]byte(body), nil)
}

////////////////////////////////////////////////////////////////////////////////

// RequestError is a failed call. Error returns the transport's message
// unchanged; Response is nil when no response was received.
type RequestError struct {
	Err      error
	Response *twitterclient.RawResponse
}

func (e *RequestError) Error() string {
	if e.Err == nil {
		return "request failed"
	}
	return e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func (e *RequestError) StatusCode() int {
	if e.Response == nil {
		return 0
	}
	return e.Response.StatusCode
}
