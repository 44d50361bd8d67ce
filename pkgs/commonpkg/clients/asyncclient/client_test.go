package asyncclient

import (
	"context"
	"net/http"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient() (*Client, *fakeTransport) {
	transport := &fakeTransport{}
	return New(transport), transport
}

func mustLookup(t *testing.T, name string) Endpoint {
	t.Helper()
	ep, err := Lookup(name)
	require.NoError(t, err)
	return ep
}

func awaitBody(t *testing.T, p *Pending) string {
	t.Helper()
	res, err := p.Wait()
	require.NoError(t, err)
	return string(res.Body())
}

////////////////////////////////////////////////////////////////////////////////

var cursorEndpoints = map[string]string{
	"GetFriendsIds":          COLLECTION_IDS,
	"GetFollowersIds":        COLLECTION_IDS,
	"GetFriendshipsIncoming": COLLECTION_IDS,
	"GetFriendshipsOutgoing": COLLECTION_IDS,
	"GetBlocksIds":           COLLECTION_IDS,
	"GetMutesUsersIds":       COLLECTION_IDS,
	"GetFriendsList":         COLLECTION_USERS,
	"GetFollowersList":       COLLECTION_USERS,
	"GetBlocksList":          COLLECTION_USERS,
	"GetMutesUsersList":      COLLECTION_USERS,
	"GetListsSubscribers":    COLLECTION_USERS,
	"GetListsMembers":        COLLECTION_USERS,
	"GetListsMemberships":    COLLECTION_LISTS,
	"GetListsSubscriptions":  COLLECTION_LISTS,
	"GetListsOwnerships":     COLLECTION_LISTS,
}

var countEndpoints = []string{
	"GetStatusesUserTimeline",
	"GetStatusesHomeTimeline",
	"GetStatusesRetweetsOfMe",
	"GetStatusesRetweetsById",
	"GetDirectMessagesSent",
	"GetDirectMessages",
	"GetFavoritesList",
	"GetListsStatuses",
}

func TestTerminalCursorShortCircuits(t *testing.T) {
	for name, key := range cursorEndpoints {
		t.Run(name, func(t *testing.T) {
			ep := mustLookup(t, name)
			expected := `{"previous_cursor":0,"previous_cursor_str":"0","next_cursor":0,"next_cursor_str":"0","` + key + `":[]}`

			for _, cursor := range []any{"0", 0, int64(0)} {
				client, transport := newTestClient()
				res, err := client.Call(context.Background(), ep, Params{"cursor": cursor, "user_id": "1"}).Wait()
				require.NoError(t, err)
				assert.JSONEq(t, expected, string(res.Body()))
				assert.Nil(t, res.Response)
				assert.Empty(t, transport.Calls())
			}

			client, transport := newTestClient()
			assert.JSONEq(t, expected, awaitBody(t, client.Call(context.Background(), ep, nil)))
			assert.Empty(t, transport.Calls())
		})
	}
}

func TestRetweetersIdsGuard(t *testing.T) {
	client, transport := newTestClient()
	expected := `{"previous_cursor":0,"previous_cursor_str":"0","next_cursor":0,"next_cursor_str":"0","ids":[]}`

	assert.JSONEq(t, expected, awaitBody(t, client.GetStatusesRetweetersIds(context.Background(), Params{"cursor": -1})))
	assert.JSONEq(t, expected, awaitBody(t, client.GetStatusesRetweetersIds(context.Background(), Params{"id": "5", "cursor": "0"})))
	assert.Empty(t, transport.Calls())

	awaitBody(t, client.GetStatusesRetweetersIds(context.Background(), Params{"id": "5", "cursor": -1}))
	calls := transport.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "statuses/retweeters/ids", calls[0].path)
	assert.Equal(t, true, calls[0].params["stringify_ids"])
}

func TestCursorCountZero(t *testing.T) {
	client, transport := newTestClient()

	awaitBody(t, client.GetFriendsIds(context.Background(), Params{"cursor": -1, "count": 0}))
	awaitBody(t, client.GetListsOwnerships(context.Background(), Params{"count": 0}))
	assert.Empty(t, transport.Calls())

	// blocks and mutes ignore count
	awaitBody(t, client.GetBlocksIds(context.Background(), Params{"cursor": -1, "count": 0}))
	awaitBody(t, client.GetMutesUsersList(context.Background(), Params{"count": 0}))
	assert.Len(t, transport.Calls(), 2)
}

func TestCountBoundedShortCircuits(t *testing.T) {
	for _, name := range countEndpoints {
		t.Run(name, func(t *testing.T) {
			ep := mustLookup(t, name)
			client, transport := newTestClient()

			assert.Equal(t, "[]", awaitBody(t, client.Call(context.Background(), ep, Params{"count": 0, "id": "1"})))
			assert.Equal(t, "[]", awaitBody(t, client.Call(context.Background(), ep, nil)))
			assert.Empty(t, transport.Calls())

			awaitBody(t, client.Call(context.Background(), ep, Params{"count": 20, "id": "1"}))
			assert.Len(t, transport.Calls(), 1)
		})
	}
}

func TestCountZeroIsNumericOnly(t *testing.T) {
	client, transport := newTestClient()

	awaitBody(t, client.GetStatusesHomeTimeline(context.Background(), Params{"count": "0"}))
	assert.Len(t, transport.Calls(), 1)
}

func TestMentionsTimeline(t *testing.T) {
	client, transport := newTestClient()

	assert.Equal(t, "[]", awaitBody(t, client.GetStatusesMentionsTimeline(context.Background(), nil)))
	assert.Empty(t, transport.Calls())

	awaitBody(t, client.GetStatusesMentionsTimeline(context.Background(), Params{}))
	awaitBody(t, client.GetStatusesMentionsTimeline(context.Background(), Params{"count": 0}))
	calls := transport.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, http.MethodGet, calls[0].method)
	assert.Equal(t, "statuses/mentions_timeline", calls[0].path)
}

func TestStatusesLookup(t *testing.T) {
	client, transport := newTestClient()

	assert.Equal(t, "[]", awaitBody(t, client.GetStatusesLookup(context.Background(), Params{})))
	assert.Equal(t, "[]", awaitBody(t, client.GetStatusesLookup(context.Background(), nil)))
	assert.Empty(t, transport.Calls())

	awaitBody(t, client.GetStatusesLookup(context.Background(), Params{"id": "1,2"}))
	calls := transport.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodPost, calls[0].method)
	assert.Equal(t, "statuses/lookup", calls[0].path)
	assert.Equal(t, "1,2", calls[0].params["id"])
}

func TestStatusesShowMissingId(t *testing.T) {
	client, transport := newTestClient()

	res, err := client.GetStatusesShowById(context.Background(), Params{"trim_user": true}).Wait()
	require.NoError(t, err)
	assert.Equal(t, "null", string(res.Body()))
	assert.Nil(t, res.Value())
	assert.True(t, res.IsEmpty())
	assert.Empty(t, transport.Calls())

	awaitBody(t, client.GetStatusesShowById(context.Background(), Params{"id": "20"}))
	assert.Len(t, transport.Calls(), 1)
}

func TestUserLookups(t *testing.T) {
	client, transport := newTestClient()

	assert.Equal(t, "[]", awaitBody(t, client.GetUsersSearch(context.Background(), Params{"q": ""})))
	assert.Equal(t, "[]", awaitBody(t, client.GetUsersLookup(context.Background(), Params{})))
	assert.Equal(t, "[]", awaitBody(t, client.GetFriendshipsLookup(context.Background(), nil)))
	assert.Equal(t, "[]", awaitBody(t, client.GetFriendshipsNoRetweetsIds(context.Background(), nil)))
	assert.Empty(t, transport.Calls())

	awaitBody(t, client.GetUsersLookup(context.Background(), Params{"screen_name": "a,b"}))
	awaitBody(t, client.GetFriendshipsLookup(context.Background(), Params{"user_id": "1"}))
	awaitBody(t, client.GetFriendshipsNoRetweetsIds(context.Background(), Params{}))

	calls := transport.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, http.MethodPost, calls[0].method)
	assert.Equal(t, "users/lookup", calls[0].path)
	assert.Equal(t, http.MethodGet, calls[1].method)
	assert.Equal(t, true, calls[2].params["stringify_ids"])
}

func TestStringifyIdsOnCopy(t *testing.T) {
	client, transport := newTestClient()

	params := Params{"cursor": -1}
	awaitBody(t, client.GetFriendsIds(context.Background(), params))

	calls := transport.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodGet, calls[0].method)
	assert.Equal(t, "friends/ids", calls[0].path)
	assert.Equal(t, true, calls[0].params["stringify_ids"])
	assert.Equal(t, -1, calls[0].params["cursor"])
	assert.NotContains(t, params, "stringify_ids")
}

func TestStringifyIdsEndpoints(t *testing.T) {
	var names []string
	for _, ep := range Endpoints() {
		if ep.StringifyIds {
			names = append(names, ep.Name)
		}
	}
	assert.ElementsMatch(t, []string{
		"GetFriendsIds",
		"GetFollowersIds",
		"GetMutesUsersIds",
		"GetFriendshipsNoRetweetsIds",
		"GetStatusesRetweetersIds",
		"GetFriendshipsIncoming",
		"GetFriendshipsOutgoing",
	}, names)
}

func TestUnguardedEndpointsDelegate(t *testing.T) {
	client, transport := newTestClient()

	awaitBody(t, client.PostStatusesUpdate(context.Background(), nil))
	awaitBody(t, client.PostDirectMessagesNew(context.Background(), Params{"text": "hi", "user_id": "1"}))
	awaitBody(t, client.GetUsersSuggestionsBySlugMemebers(context.Background(), Params{"slug": "music"}))

	calls := transport.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, http.MethodPost, calls[0].method)
	assert.Nil(t, calls[0].params)
	assert.Equal(t, http.MethodPost, calls[1].method)
	assert.Equal(t, "direct_messages/new", calls[1].path)
	assert.Equal(t, "users/suggestions/:slug/members", calls[2].path)
}

func TestRepeatedCallsAreIndependent(t *testing.T) {
	client, transport := newTestClient()

	params := Params{"screen_name": "someone"}
	p1 := client.GetUsersShow(context.Background(), params)
	p2 := client.GetUsersShow(context.Background(), params)
	assert.NotSame(t, p1, p2)

	awaitBody(t, p1)
	awaitBody(t, p2)
	assert.Len(t, transport.Calls(), 2)
}

func TestLowerCamelLookupDispatches(t *testing.T) {
	client, _ := newTestClient()
	ep := mustLookup(t, "getHelpTos")
	assert.Equal(t, "help/tos", ep.Path)

	res, err := client.Call(context.Background(), ep, nil).Wait()
	require.NoError(t, err)
	assert.NotNil(t, res.Response)
}

////////////////////////////////////////////////////////////////////////////////

func TestLookup(t *testing.T) {
	ep, err := Lookup("getFriendsIds")
	require.NoError(t, err)
	assert.Equal(t, "GetFriendsIds", ep.Name)
	assert.Equal(t, "GET friends/ids", ep.String())

	_, err = Lookup("GetNothing")
	assert.Error(t, err)
	_, err = Lookup(" ")
	assert.Error(t, err)
}

func TestCallByName(t *testing.T) {
	client, transport := newTestClient()

	p, err := client.CallByName(context.Background(), "postStatusesUpdate", Params{"status": "x"})
	require.NoError(t, err)
	awaitBody(t, p)
	require.Len(t, transport.Calls(), 1)

	_, err = client.CallByName(context.Background(), "postNothing", nil)
	assert.Error(t, err)
}

func TestEveryEndpointHasMethod(t *testing.T) {
	eps := Endpoints()
	assert.Len(t, eps, 104)

	seen := map[string]bool{}
	for _, ep := range eps {
		assert.False(t, seen[ep.Name], "duplicate endpoint %s", ep.Name)
		seen[ep.Name] = true

		client, transport := newTestClient()
		method := reflect.ValueOf(client).MethodByName(ep.Name)
		require.True(t, method.IsValid(), "missing method %s", ep.Name)

		params := Params{
			"id": "1", "q": "go", "user_id": "1", "cursor": -1, "count": 5,
			"slug": "s", "place_id": "p",
		}
		out := method.Call([]reflect.Value{reflect.ValueOf(context.Background()), reflect.ValueOf(params)})
		_, err := out[0].Interface().(*Pending).Wait()
		require.NoError(t, err)

		calls := transport.Calls()
		require.Len(t, calls, 1, ep.Name)
		assert.Equal(t, ep.Path, calls[0].path)
		assert.Equal(t, ep.Method, calls[0].method)
	}
}

func TestEndpointsReturnsCopy(t *testing.T) {
	eps := Endpoints()
	eps[0].Path = "changed"
	assert.NotEqual(t, "changed", Endpoints()[0].Path)
}
