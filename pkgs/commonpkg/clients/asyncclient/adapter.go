package asyncclient

import (
	"context"
	"net/http"

	"github.com/WangWilly/xRest/pkgs/commonpkg/clients/twitterclient"
)

// Transport is a callback style REST client. done must be called once with
// either an error or a body; the adapter ignores any later invocation.
type Transport interface {
	Request(ctx context.Context, method, path string, params map[string]any, done twitterclient.Callback)
}

// Adapter turns Transport callbacks into Pending results
type Adapter struct {
	transport Transport
}

func NewAdapter(transport Transport) *Adapter {
	return &Adapter{transport: transport}
}

func (a *Adapter) Request(ctx context.Context, method, path string, params Params) *Pending {
	p := newPending()
	a.transport.Request(ctx, method, path, params, func(err error, body []byte, resp *twitterclient.RawResponse) {
		if err != nil {
			p.settle(nil, &RequestError{Err: err, Response: resp})
			return
		}
		p.settle(newResult(body, resp), nil)
	})
	return p
}

func (a *Adapter) Get(ctx context.Context, path string, params Params) *Pending {
	return a.Request(ctx, http.MethodGet, path, params)
}

func (a *Adapter) Post(ctx context.Context, path string, params Params) *Pending {
	return a.Request(ctx, http.MethodPost, path, params)
}
