package asyncclient

type GuardKind int

const (
	GUARD_NONE GuardKind = iota
	GUARD_CURSOR
	GUARD_COUNT
	GUARD_LOOKUP
)

func (k GuardKind) String() string {
	switch k {
	case GUARD_CURSOR:
		return "cursor"
	case GUARD_COUNT:
		return "count"
	case GUARD_LOOKUP:
		return "lookup"
	}
	return "none"
}

type EmptyShape int

const (
	EMPTY_LIST EmptyShape = iota
	EMPTY_NULL
	EMPTY_CURSOR_PAGE
)

////////////////////////////////////////////////////////////////////////////////

// Guard describes when a call is known to return nothing and can be answered
// locally. Absent params always short-circuit a guarded endpoint.
type Guard struct {
	Kind GuardKind

	OnZeroCount      bool
	OnTerminalCursor bool
	// at least one must be present
	Required []string

	Empty         EmptyShape
	CollectionKey string
}

func cursorGuard(key string, onZeroCount bool, required ...string) Guard {
	return Guard{
		Kind:             GUARD_CURSOR,
		OnZeroCount:      onZeroCount,
		OnTerminalCursor: true,
		Required:         required,
		Empty:            EMPTY_CURSOR_PAGE,
		CollectionKey:    key,
	}
}

func countGuard(onZeroCount bool) Guard {
	return Guard{Kind: GUARD_COUNT, OnZeroCount: onZeroCount, Empty: EMPTY_LIST}
}

func lookupGuard(empty EmptyShape, required ...string) Guard {
	return Guard{Kind: GUARD_LOOKUP, Required: required, Empty: empty}
}

// ShortCircuit returns the canonical empty result when params make the call
// futile.
func (g Guard) ShortCircuit(params Params) (*Result, bool) {
	if g.Kind == GUARD_NONE {
		return nil, false
	}
	if !g.futile(params) {
		return nil, false
	}
	return g.emptyResult(), true
}

func (g Guard) futile(params Params) bool {
	switch {
	case params == nil:
		return true
	case g.OnTerminalCursor && params.isTerminalCursor():
		return true
	case g.OnZeroCount && params.isZeroCount():
		return true
	case len(g.Required) > 0 && !params.HasAny(g.Required...):
		return true
	}
	return false
}

func (g Guard) emptyResult() *Result {
	switch g.Empty {
	case EMPTY_NULL:
		return emptyNull()
	case EMPTY_CURSOR_PAGE:
		return emptyCursorPage(g.CollectionKey)
	}
	return emptyList()
}
