package asyncclient

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var endpointsByName = func() map[string]Endpoint {
	res := make(map[string]Endpoint, len(endpoints))
	for _, ep := range endpoints {
		res[ep.Name] = ep
	}
	return res
}()

////////////////////////////////////////////////////////////////////////////////

// Client exposes the dispatch table over an Adapter
type Client struct {
	adapter *Adapter
}

func New(transport Transport) *Client {
	return &Client{adapter: NewAdapter(transport)}
}

func (c *Client) Adapter() *Adapter {
	return c.adapter
}

// Call dispatches ep. A guarded endpoint whose params make the call futile
// settles immediately with the canonical empty result and never reaches the
// transport.
func (c *Client) Call(ctx context.Context, ep Endpoint, params Params) *Pending {
	if res, ok := ep.Guard.ShortCircuit(params); ok {
		return settledPending(res)
	}
	if ep.StringifyIds {
		params = params.With("stringify_ids", true)
	}
	return c.adapter.Request(ctx, ep.Method, ep.Path, params)
}

// CallByName is Call with the endpoint resolved through Lookup
func (c *Client) CallByName(ctx context.Context, name string, params Params) (*Pending, error) {
	ep, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, ep, params), nil
}

func (c *Client) Get(ctx context.Context, path string, params Params) *Pending {
	return c.adapter.Get(ctx, path, params)
}

func (c *Client) Post(ctx context.Context, path string, params Params) *Pending {
	return c.adapter.Post(ctx, path, params)
}

func (c *Client) call(ctx context.Context, name string, params Params) *Pending {
	ep, ok := endpointsByName[name]
	if !ok {
		panic("asyncclient: unknown endpoint " + name)
	}
	return c.Call(ctx, ep, params)
}

////////////////////////////////////////////////////////////////////////////////

// Lookup resolves an endpoint by method name; getFriendsIds and
// GetFriendsIds name the same entry.
func Lookup(name string) (Endpoint, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Endpoint{}, fmt.Errorf("empty endpoint name")
	}
	r, size := utf8.DecodeRuneInString(name)
	if ep, ok := endpointsByName[string(unicode.ToUpper(r))+name[size:]]; ok {
		return ep, nil
	}
	return Endpoint{}, fmt.Errorf("unknown endpoint %q", name)
}

// Endpoints returns a copy of the dispatch table in declaration order
func Endpoints() []Endpoint {
	res := make([]Endpoint, len(endpoints))
	copy(res, endpoints)
	return res
}
