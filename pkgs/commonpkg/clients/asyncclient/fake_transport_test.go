package asyncclient

import (
	"context"
	"sync"

	"github.com/WangWilly/xRest/pkgs/commonpkg/clients/twitterclient"
)

type recordedCall struct {
	method string
	path   string
	params map[string]any
}

type fakeTransport struct {
	mu    sync.Mutex
	calls []recordedCall

	respond func(call recordedCall, done twitterclient.Callback)
}

func (f *fakeTransport) Request(ctx context.Context, method, path string, params map[string]any, done twitterclient.Callback) {
	call := recordedCall{method: method, path: path, params: params}

	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()

	if f.respond != nil {
		f.respond(call, done)
		return
	}
	done(nil, []byte(`{}`), &twitterclient.RawResponse{StatusCode: 200})
}

func (f *fakeTransport) Calls() []recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make([]recordedCall, len(f.calls))
	copy(res, f.calls)
	return res
}
