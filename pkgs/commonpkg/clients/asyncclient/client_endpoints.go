package asyncclient

import "context"

////////////////////////////////////////////////////////////////////////////////

func (c *Client) GetStatusesMentionsTimeline(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetStatusesMentionsTimeline", params)
}

func (c *Client) GetStatusesUserTimeline(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetStatusesUserTimeline", params)
}

func (c *Client) GetStatusesHomeTimeline(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetStatusesHomeTimeline", params)
}

func (c *Client) GetStatusesRetweetsOfMe(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetStatusesRetweetsOfMe", params)
}

func (c *Client) GetStatusesRetweetsById(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetStatusesRetweetsById", params)
}

func (c *Client) GetStatusesShowById(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetStatusesShowById", params)
}

func (c *Client) PostStatusesDestroyById(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostStatusesDestroyById", params)
}

func (c *Client) PostStatusesUpdate(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostStatusesUpdate", params)
}

func (c *Client) PostStatusesRetweetById(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostStatusesRetweetById", params)
}

func (c *Client) GetStatusesOembed(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetStatusesOembed", params)
}

func (c *Client) GetStatusesRetweetersIds(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetStatusesRetweetersIds", params)
}

// GetStatusesLookup is sent as POST statuses/lookup
func (c *Client) GetStatusesLookup(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetStatusesLookup", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) PostMediaUpload(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostMediaUpload", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) GetDirectMessagesSent(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetDirectMessagesSent", params)
}

func (c *Client) GetDirectMessagesShow(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetDirectMessagesShow", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) GetSearchTweets(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetSearchTweets", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) GetDirectMessages(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetDirectMessages", params)
}

func (c *Client) PostDirectMessagesDestroy(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostDirectMessagesDestroy", params)
}

// PostDirectMessagesNew sends a direct message
func (c *Client) PostDirectMessagesNew(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostDirectMessagesNew", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) GetFriendshipsNoRetweetsIds(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetFriendshipsNoRetweetsIds", params)
}

////////////////////////////////////////////////////////////////////////////////

// GetFriendsIds pages through friends/ids with stringify_ids set
func (c *Client) GetFriendsIds(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetFriendsIds", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) GetFollowersIds(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetFollowersIds", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) GetFriendshipsIncoming(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetFriendshipsIncoming", params)
}

func (c *Client) GetFriendshipsOutgoing(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetFriendshipsOutgoing", params)
}

func (c *Client) PostFriendshipsCreate(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostFriendshipsCreate", params)
}

func (c *Client) PostFriendshipsDestroy(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostFriendshipsDestroy", params)
}

func (c *Client) PostFriendshipsUpdate(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostFriendshipsUpdate", params)
}

func (c *Client) GetFriendshipsShow(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetFriendshipsShow", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) GetFriendsList(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetFriendsList", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) GetFollowersList(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetFollowersList", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) GetFriendshipsLookup(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetFriendshipsLookup", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) GetAccountSettings(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetAccountSettings", params)
}

func (c *Client) GetAccountVerifyCredentials(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetAccountVerifyCredentials", params)
}

func (c *Client) PostAccountSettings(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostAccountSettings", params)
}

func (c *Client) PostAccountUpdateDeliveryDevice(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostAccountUpdateDeliveryDevice", params)
}

func (c *Client) PostAccountUpdateProfile(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostAccountUpdateProfile", params)
}

func (c *Client) PostAccountUpdateProfileBackgroundImage(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostAccountUpdateProfileBackgroundImage", params)
}

func (c *Client) PostAccountUpdateProfileImage(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostAccountUpdateProfileImage", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) GetBlocksList(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetBlocksList", params)
}

func (c *Client) GetBlocksIds(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetBlocksIds", params)
}

func (c *Client) PostBlocksCreate(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostBlocksCreate", params)
}

func (c *Client) PostBlocksDestroy(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostBlocksDestroy", params)
}

////////////////////////////////////////////////////////////////////////////////

// GetUsersLookup is sent as POST users/lookup
func (c *Client) GetUsersLookup(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetUsersLookup", params)
}

func (c *Client) GetUsersShow(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetUsersShow", params)
}

func (c *Client) GetUsersSearch(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetUsersSearch", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) PostAccountRemoveProfileBanner(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostAccountRemoveProfileBanner", params)
}

func (c *Client) PostAccountUpdateProfileBanner(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostAccountUpdateProfileBanner", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) GetUsersProfileBanner(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetUsersProfileBanner", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) PostMutesUsersCreate(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostMutesUsersCreate", params)
}

func (c *Client) PostMutesUsersDestroy(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostMutesUsersDestroy", params)
}

func (c *Client) GetMutesUsersIds(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetMutesUsersIds", params)
}

func (c *Client) GetMutesUsersList(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetMutesUsersList", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) GetUsersSuggestionsBySlug(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetUsersSuggestionsBySlug", params)
}

func (c *Client) GetUsersSuggestions(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetUsersSuggestions", params)
}

// GetUsersSuggestionsBySlugMemebers keeps its historical spelling
func (c *Client) GetUsersSuggestionsBySlugMemebers(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetUsersSuggestionsBySlugMemebers", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) GetFavoritesList(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetFavoritesList", params)
}

func (c *Client) PostFavoritesDestroy(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostFavoritesDestroy", params)
}

func (c *Client) PostFavoritesCreate(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostFavoritesCreate", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) GetListsList(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetListsList", params)
}

func (c *Client) GetListsStatuses(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetListsStatuses", params)
}

func (c *Client) PostListsMembersDestroy(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostListsMembersDestroy", params)
}

func (c *Client) GetListsMemberships(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetListsMemberships", params)
}

func (c *Client) GetListsSubscribers(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetListsSubscribers", params)
}

func (c *Client) PostListsSubscribersCreate(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostListsSubscribersCreate", params)
}

func (c *Client) GetListsSubscribersShow(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetListsSubscribersShow", params)
}

func (c *Client) PostListsSubscribersDestroy(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostListsSubscribersDestroy", params)
}

func (c *Client) PostListsMembersCreateAll(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostListsMembersCreateAll", params)
}

func (c *Client) GetListsMembersShow(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetListsMembersShow", params)
}

func (c *Client) GetListsMembers(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetListsMembers", params)
}

func (c *Client) PostListsMembersCreate(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostListsMembersCreate", params)
}

func (c *Client) PostListsDestroy(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostListsDestroy", params)
}

func (c *Client) PostListsUpdate(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostListsUpdate", params)
}

func (c *Client) PostListsCreate(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostListsCreate", params)
}

func (c *Client) GetListsShow(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetListsShow", params)
}

func (c *Client) GetListsSubscriptions(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetListsSubscriptions", params)
}

func (c *Client) PostListsMembersDestroyAll(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostListsMembersDestroyAll", params)
}

func (c *Client) GetListsOwnerships(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetListsOwnerships", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) GetSavedSearchesList(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetSavedSearchesList", params)
}

func (c *Client) GetSavedSearchesShowById(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetSavedSearchesShowById", params)
}

func (c *Client) PostSavedSearchesCreate(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostSavedSearchesCreate", params)
}

func (c *Client) PostSavedSearchesDestroyById(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostSavedSearchesDestroyById", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) GetGeoIdByPlaceId(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetGeoIdByPlaceId", params)
}

func (c *Client) GetGeoReverseGeocode(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetGeoReverseGeocode", params)
}

func (c *Client) GetGeoSearch(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetGeoSearch", params)
}

func (c *Client) PostGeoPlace(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostGeoPlace", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) GetTrendsPlace(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetTrendsPlace", params)
}

func (c *Client) GetTrendsAvailable(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetTrendsAvailable", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) GetApplicationRateLimitStatus(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetApplicationRateLimitStatus", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) GetHelpConfiguration(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetHelpConfiguration", params)
}

func (c *Client) GetHelpLanguages(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetHelpLanguages", params)
}

func (c *Client) GetHelpPrivacy(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetHelpPrivacy", params)
}

func (c *Client) GetHelpTos(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetHelpTos", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) GetTrendsClosest(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetTrendsClosest", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) PostUsersReportSpam(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostUsersReportSpam", params)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) GetCollectionsList(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetCollectionsList", params)
}

func (c *Client) GetCollectionsShow(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetCollectionsShow", params)
}

func (c *Client) GetCollectionsEntries(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "GetCollectionsEntries", params)
}

func (c *Client) PostCollectionsCreate(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostCollectionsCreate", params)
}

func (c *Client) PostCollectionsUpdate(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostCollectionsUpdate", params)
}

func (c *Client) PostCollectionsDestroy(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostCollectionsDestroy", params)
}

func (c *Client) PostCollectionsEntriesAdd(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostCollectionsEntriesAdd", params)
}

func (c *Client) PostCollectionsEntriesRemove(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostCollectionsEntriesRemove", params)
}

func (c *Client) PostCollectionsEntriesMove(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostCollectionsEntriesMove", params)
}

func (c *Client) PostCollectionsEntriesCurate(ctx context.Context, params Params) *Pending {
	return c.call(ctx, "PostCollectionsEntriesCurate", params)
}
