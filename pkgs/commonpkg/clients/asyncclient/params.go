package asyncclient

import "strconv"

////////////////////////////////////////////////////////////////////////////////

// Params is the loosely typed parameter map sent with a request. A nil map
// means no params were supplied, which several guards treat as futile.
type Params map[string]any

// Clone returns a shallow copy; nil stays nil
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	res := make(Params, len(p)+1)
	for k, v := range p {
		res[k] = v
	}
	return res
}

// With returns a copy of p with key set to value. p is not modified.
func (p Params) With(key string, value any) Params {
	res := p.Clone()
	if res == nil {
		res = Params{}
	}
	res[key] = value
	return res
}

// Has reports whether key holds a truthy value: nil, "", false and numeric
// zero all count as missing.
func (p Params) Has(key string) bool {
	v, ok := p[key]
	return ok && !isFalsy(v)
}

// HasAny reports whether at least one of keys is present
func (p Params) HasAny(keys ...string) bool {
	for _, key := range keys {
		if p.Has(key) {
			return true
		}
	}
	return false
}

func (p Params) isTerminalCursor() bool {
	v, ok := p["cursor"]
	if !ok {
		return false
	}
	if s, ok := v.(string); ok {
		return s == TERMINAL_CURSOR
	}
	return isNumericZero(v)
}

func (p Params) isZeroCount() bool {
	v, ok := p["count"]
	return ok && isNumericZero(v)
}

////////////////////////////////////////////////////////////////////////////////

// PageParams is the typed shape of a cursor paginated request
type PageParams struct {
	Cursor string // empty asks for the first page
	Count  int    // zero leaves the server default
	Extra  Params
}

func (pp PageParams) Params() Params {
	res := pp.Extra.Clone()
	if res == nil {
		res = Params{}
	}
	if pp.Cursor == "" {
		res["cursor"] = FIRST_CURSOR
	} else {
		res["cursor"] = pp.Cursor
	}
	if pp.Count != 0 {
		res["count"] = pp.Count
	}
	return res
}

// NextPage returns the params for the page after the one that returned res,
// or false when res carries the terminal cursor.
func (pp PageParams) NextPage(res *Result) (PageParams, bool) {
	next := res.NextCursor()
	if next == "" || next == TERMINAL_CURSOR {
		return pp, false
	}
	pp.Cursor = next
	return pp, true
}

////////////////////////////////////////////////////////////////////////////////

func isFalsy(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	}
	return isNumericZero(v)
}

func isNumericZero(v any) bool {
	switch val := v.(type) {
	case int:
		return val == 0
	case int8:
		return val == 0
	case int16:
		return val == 0
	case int32:
		return val == 0
	case int64:
		return val == 0
	case uint:
		return val == 0
	case uint8:
		return val == 0
	case uint16:
		return val == 0
	case uint32:
		return val == 0
	case uint64:
		return val == 0
	case float32:
		return val == 0
	case float64:
		return val == 0
	case interface{ Int64() (int64, error) }:
		n, err := val.Int64()
		return err == nil && n == 0
	}
	return false
}

func cursorString(n int64) string {
	return strconv.FormatInt(n, 10)
}
