package origin

const (
	// authTokenHeader carries the access token on lookup requests.
	authTokenHeader = "authtoken"
	// cookieHeader carries the session cookies on mint requests.
	cookieHeader = "cookie"
	// acceptHeader announces the media type the endpoint decoder expects.
	acceptHeader = "Accept"
)

const (
	// queryUserName is the lookup query parameter for a case-insensitive EA ID.
	queryUserName = "eaId"
	// queryUserIDs is the lookup query parameter for comma-joined user IDs.
	queryUserIDs = "userIds"
)

const (
	// opMintToken names the mint operation in errors and logs.
	opMintToken = "mint token"
	// opGetUserByName names the lookup by name.
	opGetUserByName = "get user by name"
	// opGetUsersByIDs names the lookup by IDs.
	opGetUsersByIDs = "get users by ids"
)

const (
	// userIDCacheKeyPrefix prefixes user cache keys built from a user ID.
	userIDCacheKeyPrefix = "id:"
	// userNameCacheKeyPrefix prefixes user cache keys built from a lower-cased EA ID.
	userNameCacheKeyPrefix = "name:"
)
