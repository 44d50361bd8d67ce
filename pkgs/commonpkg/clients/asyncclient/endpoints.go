package asyncclient

import "net/http"

// Endpoint is one row of the dispatch table
type Endpoint struct {
	Name   string
	Method string
	Path   string
	Guard  Guard
	// inject stringify_ids=true into a copy of the params
	StringifyIds bool
}

func (e Endpoint) String() string {
	return e.Method + " " + e.Path
}

////////////////////////////////////////////////////////////////////////////////

var endpoints = []Endpoint{
	// tweets
	{Name: "GetStatusesMentionsTimeline", Method: http.MethodGet, Path: "statuses/mentions_timeline", Guard: countGuard(false)},
	{Name: "GetStatusesUserTimeline", Method: http.MethodGet, Path: "statuses/user_timeline", Guard: countGuard(true)},
	{Name: "GetStatusesHomeTimeline", Method: http.MethodGet, Path: "statuses/home_timeline", Guard: countGuard(true)},
	{Name: "GetStatusesRetweetsOfMe", Method: http.MethodGet, Path: "statuses/retweets_of_me", Guard: countGuard(true)},
	{Name: "GetStatusesRetweetsById", Method: http.MethodGet, Path: "statuses/retweets/:id", Guard: countGuard(true)},
	{Name: "GetStatusesShowById", Method: http.MethodGet, Path: "statuses/show/:id", Guard: lookupGuard(EMPTY_NULL, "id")},
	{Name: "PostStatusesDestroyById", Method: http.MethodPost, Path: "statuses/destroy/:id"},
	{Name: "PostStatusesUpdate", Method: http.MethodPost, Path: "statuses/update"},
	{Name: "PostStatusesRetweetById", Method: http.MethodPost, Path: "statuses/retweet/:id"},
	{Name: "GetStatusesOembed", Method: http.MethodGet, Path: "statuses/oembed"},
	{Name: "GetStatusesRetweetersIds", Method: http.MethodGet, Path: "statuses/retweeters/ids", Guard: cursorGuard(COLLECTION_IDS, false, "id"), StringifyIds: true},
	{Name: "GetStatusesLookup", Method: http.MethodPost, Path: "statuses/lookup", Guard: lookupGuard(EMPTY_LIST, "id")},
	// media host
	{Name: "PostMediaUpload", Method: http.MethodPost, Path: "media/upload"},
	// direct messages and search
	{Name: "GetDirectMessagesSent", Method: http.MethodGet, Path: "direct_messages/sent", Guard: countGuard(true)},
	{Name: "GetDirectMessagesShow", Method: http.MethodGet, Path: "direct_messages/show"},
	{Name: "GetSearchTweets", Method: http.MethodGet, Path: "search/tweets"},
	{Name: "GetDirectMessages", Method: http.MethodGet, Path: "direct_messages", Guard: countGuard(true)},
	{Name: "PostDirectMessagesDestroy", Method: http.MethodPost, Path: "direct_messages/destroy"},
	{Name: "PostDirectMessagesNew", Method: http.MethodPost, Path: "direct_messages/new"},
	// friends and followers
	{Name: "GetFriendshipsNoRetweetsIds", Method: http.MethodGet, Path: "friendships/no_retweets/ids", Guard: lookupGuard(EMPTY_LIST), StringifyIds: true},
	{Name: "GetFriendsIds", Method: http.MethodGet, Path: "friends/ids", Guard: cursorGuard(COLLECTION_IDS, true), StringifyIds: true},
	{Name: "GetFollowersIds", Method: http.MethodGet, Path: "followers/ids", Guard: cursorGuard(COLLECTION_IDS, true), StringifyIds: true},
	{Name: "GetFriendshipsIncoming", Method: http.MethodGet, Path: "friendships/incoming", Guard: cursorGuard(COLLECTION_IDS, false), StringifyIds: true},
	{Name: "GetFriendshipsOutgoing", Method: http.MethodGet, Path: "friendships/outgoing", Guard: cursorGuard(COLLECTION_IDS, false), StringifyIds: true},
	{Name: "PostFriendshipsCreate", Method: http.MethodPost, Path: "friendships/create"},
	{Name: "PostFriendshipsDestroy", Method: http.MethodPost, Path: "friendships/destroy"},
	{Name: "PostFriendshipsUpdate", Method: http.MethodPost, Path: "friendships/update"},
	{Name: "GetFriendshipsShow", Method: http.MethodGet, Path: "friendships/show"},
	{Name: "GetFriendsList", Method: http.MethodGet, Path: "friends/list", Guard: cursorGuard(COLLECTION_USERS, true)},
	{Name: "GetFollowersList", Method: http.MethodGet, Path: "followers/list", Guard: cursorGuard(COLLECTION_USERS, true)},
	{Name: "GetFriendshipsLookup", Method: http.MethodGet, Path: "friendships/lookup", Guard: lookupGuard(EMPTY_LIST, "user_id", "screen_name")},
	// account
	{Name: "GetAccountSettings", Method: http.MethodGet, Path: "account/settings"},
	{Name: "GetAccountVerifyCredentials", Method: http.MethodGet, Path: "account/verify_credentials"},
	{Name: "PostAccountSettings", Method: http.MethodPost, Path: "account/settings"},
	{Name: "PostAccountUpdateDeliveryDevice", Method: http.MethodPost, Path: "account/update_delivery_device"},
	{Name: "PostAccountUpdateProfile", Method: http.MethodPost, Path: "account/update_profile"},
	{Name: "PostAccountUpdateProfileBackgroundImage", Method: http.MethodPost, Path: "account/update_profile_background_image"},
	{Name: "PostAccountUpdateProfileImage", Method: http.MethodPost, Path: "account/update_profile_image"},
	// blocks and users
	{Name: "GetBlocksList", Method: http.MethodGet, Path: "blocks/list", Guard: cursorGuard(COLLECTION_USERS, false)},
	{Name: "GetBlocksIds", Method: http.MethodGet, Path: "blocks/ids", Guard: cursorGuard(COLLECTION_IDS, false)},
	{Name: "PostBlocksCreate", Method: http.MethodPost, Path: "blocks/create"},
	{Name: "PostBlocksDestroy", Method: http.MethodPost, Path: "blocks/destroy"},
	// POST despite the Get name
	{Name: "GetUsersLookup", Method: http.MethodPost, Path: "users/lookup", Guard: lookupGuard(EMPTY_LIST, "user_id", "screen_name")},
	{Name: "GetUsersShow", Method: http.MethodGet, Path: "users/show"},
	{Name: "GetUsersSearch", Method: http.MethodGet, Path: "users/search", Guard: lookupGuard(EMPTY_LIST, "q")},
	{Name: "PostAccountRemoveProfileBanner", Method: http.MethodPost, Path: "account/remove_profile_banner"},
	{Name: "PostAccountUpdateProfileBanner", Method: http.MethodPost, Path: "account/update_profile_banner"},
	{Name: "GetUsersProfileBanner", Method: http.MethodGet, Path: "users/profile_banner"},
	{Name: "PostMutesUsersCreate", Method: http.MethodPost, Path: "mutes/users/create"},
	{Name: "PostMutesUsersDestroy", Method: http.MethodPost, Path: "mutes/users/destroy"},
	{Name: "GetMutesUsersIds", Method: http.MethodGet, Path: "mutes/users/ids", Guard: cursorGuard(COLLECTION_IDS, false), StringifyIds: true},
	{Name: "GetMutesUsersList", Method: http.MethodGet, Path: "mutes/users/list", Guard: cursorGuard(COLLECTION_USERS, false)},
	{Name: "GetUsersSuggestionsBySlug", Method: http.MethodGet, Path: "users/suggestions/:slug"},
	{Name: "GetUsersSuggestions", Method: http.MethodGet, Path: "users/suggestions"},
	{Name: "GetUsersSuggestionsBySlugMemebers", Method: http.MethodGet, Path: "users/suggestions/:slug/members"},

	{Name: "GetFavoritesList", Method: http.MethodGet, Path: "favorites/list", Guard: countGuard(true)},
	{Name: "PostFavoritesDestroy", Method: http.MethodPost, Path: "favorites/destroy"},
	{Name: "PostFavoritesCreate", Method: http.MethodPost, Path: "favorites/create"},
	// lists
	{Name: "GetListsList", Method: http.MethodGet, Path: "lists/list"},
	{Name: "GetListsStatuses", Method: http.MethodGet, Path: "lists/statuses", Guard: countGuard(true)},
	{Name: "PostListsMembersDestroy", Method: http.MethodPost, Path: "lists/members/destroy"},
	{Name: "GetListsMemberships", Method: http.MethodGet, Path: "lists/memberships", Guard: cursorGuard(COLLECTION_LISTS, true)},
	{Name: "GetListsSubscribers", Method: http.MethodGet, Path: "lists/subscribers", Guard: cursorGuard(COLLECTION_USERS, true)},
	{Name: "PostListsSubscribersCreate", Method: http.MethodPost, Path: "lists/subscribers/create"},
	{Name: "GetListsSubscribersShow", Method: http.MethodGet, Path: "lists/subscribers/show"},
	{Name: "PostListsSubscribersDestroy", Method: http.MethodPost, Path: "lists/subscribers/destroy"},
	{Name: "PostListsMembersCreateAll", Method: http.MethodPost, Path: "lists/members/create_all"},
	{Name: "GetListsMembersShow", Method: http.MethodGet, Path: "lists/members/show"},
	{Name: "GetListsMembers", Method: http.MethodGet, Path: "lists/members", Guard: cursorGuard(COLLECTION_USERS, true)},
	{Name: "PostListsMembersCreate", Method: http.MethodPost, Path: "lists/members/create"},
	{Name: "PostListsDestroy", Method: http.MethodPost, Path: "lists/destroy"},
	{Name: "PostListsUpdate", Method: http.MethodPost, Path: "lists/update"},
	{Name: "PostListsCreate", Method: http.MethodPost, Path: "lists/create"},
	{Name: "GetListsShow", Method: http.MethodGet, Path: "lists/show"},
	{Name: "GetListsSubscriptions", Method: http.MethodGet, Path: "lists/subscriptions", Guard: cursorGuard(COLLECTION_LISTS, true)},
	{Name: "PostListsMembersDestroyAll", Method: http.MethodPost, Path: "lists/members/destroy_all"},
	{Name: "GetListsOwnerships", Method: http.MethodGet, Path: "lists/ownerships", Guard: cursorGuard(COLLECTION_LISTS, true)},
	// saved searches and misc
	{Name: "GetSavedSearchesList", Method: http.MethodGet, Path: "saved_searches/list"},
	{Name: "GetSavedSearchesShowById", Method: http.MethodGet, Path: "saved_searches/show/:id"},
	{Name: "PostSavedSearchesCreate", Method: http.MethodPost, Path: "saved_searches/create"},
	{Name: "PostSavedSearchesDestroyById", Method: http.MethodPost, Path: "saved_searches/destroy/:id"},
	{Name: "GetGeoIdByPlaceId", Method: http.MethodGet, Path: "geo/id/:place_id"},
	{Name: "GetGeoReverseGeocode", Method: http.MethodGet, Path: "geo/reverse_geocode"},
	{Name: "GetGeoSearch", Method: http.MethodGet, Path: "geo/search"},
	{Name: "PostGeoPlace", Method: http.MethodPost, Path: "geo/place"},
	{Name: "GetTrendsPlace", Method: http.MethodGet, Path: "trends/place"},
	{Name: "GetTrendsAvailable", Method: http.MethodGet, Path: "trends/available"},
	{Name: "GetApplicationRateLimitStatus", Method: http.MethodGet, Path: "application/rate_limit_status"},
	{Name: "GetHelpConfiguration", Method: http.MethodGet, Path: "help/configuration"},
	{Name: "GetHelpLanguages", Method: http.MethodGet, Path: "help/languages"},
	{Name: "GetHelpPrivacy", Method: http.MethodGet, Path: "help/privacy"},
	{Name: "GetHelpTos", Method: http.MethodGet, Path: "help/tos"},
	{Name: "GetTrendsClosest", Method: http.MethodGet, Path: "trends/closest"},
	{Name: "PostUsersReportSpam", Method: http.MethodPost, Path: "users/report_spam"},
	// collections
	{Name: "GetCollectionsList", Method: http.MethodGet, Path: "collections/list"},
	{Name: "GetCollectionsShow", Method: http.MethodGet, Path: "collections/show"},
	{Name: "GetCollectionsEntries", Method: http.MethodGet, Path: "collections/entries"},
	{Name: "PostCollectionsCreate", Method: http.MethodPost, Path: "collections/create"},
	{Name: "PostCollectionsUpdate", Method: http.MethodPost, Path: "collections/update"},
	{Name: "PostCollectionsDestroy", Method: http.MethodPost, Path: "collections/destroy"},
	{Name: "PostCollectionsEntriesAdd", Method: http.MethodPost, Path: "collections/entries/add"},
	{Name: "PostCollectionsEntriesRemove", Method: http.MethodPost, Path: "collections/entries/remove"},
	{Name: "PostCollectionsEntriesMove", Method: http.MethodPost, Path: "collections/entries/move"},
	{Name: "PostCollectionsEntriesCurate", Method: http.MethodPost, Path: "collections/entries/curate"},
}
