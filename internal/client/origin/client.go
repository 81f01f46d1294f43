package origin

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/oshokin/origin-lookup/internal/config"
	"github.com/oshokin/origin-lookup/internal/logger"
)

// Client defines the interface for looking up Origin users.
type Client interface {
	// GetUserByName looks up a single user by EA ID (case-insensitive on the server).
	GetUserByName(ctx context.Context, name string) (*User, error)
	// GetUserByID looks up a single user by ID, answering from the cache when it can.
	// It returns ErrNotFound when nothing matches.
	GetUserByID(ctx context.Context, id string) (*User, error)
	// GetUsersByIDs looks up several users at once, keeping the server's order.
	GetUsersByIDs(ctx context.Context, ids []string) (*UserList, error)
	// GetUserIDByName resolves an EA ID to a user ID.
	GetUserIDByName(ctx context.Context, name string) (string, error)
	// GetUserNameByID resolves a user ID to an EA ID.
	GetUserNameByID(ctx context.Context, id string) (string, error)
}

// ClientImpl implements the Client interface on top of a Session.
type ClientImpl struct {
	// session supplies and refreshes the access token.
	session *Session
	// httpClient performs the lookups.
	httpClient *http.Client
	// usersURL is the lookup endpoint without a query.
	usersURL string
	// decoder decodes lookup responses.
	decoder responseDecoder
	// usersCache keeps decoded users by ID and by lower-cased EA ID. Nil when disabled.
	usersCache *lru.Cache[string, *User]
}

// NewClient creates a lookup client that authenticates with the given session.
func NewClient(cfg *config.Config, session *Session, httpClient *http.Client) (Client, error) {
	client := &ClientImpl{
		session:    session,
		httpClient: httpClient,
		usersURL:   cfg.UsersURL,
		decoder:    xmlDecoder{},
	}

	if cfg.UsersCacheSize > 0 {
		usersCache, err := lru.New[string, *User](cfg.UsersCacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create users cache: %w", err)
		}

		client.usersCache = usersCache
	}

	return client, nil
}

// GetUserByName looks up a single user by EA ID.
func (c *ClientImpl) GetUserByName(ctx context.Context, name string) (*User, error) {
	cacheKey := userNameCacheKeyPrefix + strings.ToLower(name)
	if cached, ok := c.getCachedUser(cacheKey); ok {
		logger.Debugf(ctx, "User cache hit for name: %s", name)

		return cached, nil
	}

	user, err := authenticatedGet[User](c, ctx, opGetUserByName, queryUserName+"="+url.QueryEscape(name))
	if err != nil {
		return nil, err
	}

	c.cacheUser(user, cacheKey)

	return user, nil
}

// GetUsersByIDs looks up several users at once.
// The result always comes from the server since its order is server-defined; the cache is only filled.
func (c *ClientImpl) GetUsersByIDs(ctx context.Context, ids []string) (*UserList, error) {
	if len(ids) == 0 {
		return nil, ErrNoUserIDs
	}

	escapedIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		escapedIDs = append(escapedIDs, url.QueryEscape(id))
	}

	// The endpoint expects literal commas between IDs.
	userList, err := authenticatedGet[UserList](
		c, ctx, opGetUsersByIDs, queryUserIDs+"="+strings.Join(escapedIDs, ","))
	if err != nil {
		return nil, err
	}

	for i := range userList.Users {
		user := userList.Users[i]
		c.cacheUser(&user)
	}

	return userList, nil
}

// GetUserByID looks up a single user by ID.
// A user already in the cache is returned without a request; only a cache miss
// delegates to GetUsersByIDs with the single ID. With the cache disabled every call delegates.
func (c *ClientImpl) GetUserByID(ctx context.Context, id string) (*User, error) {
	if cached, ok := c.getCachedUser(userIDCacheKeyPrefix + id); ok {
		logger.Debugf(ctx, "User cache hit for ID: %s", id)

		return cached, nil
	}

	userList, err := c.GetUsersByIDs(ctx, []string{id})
	if err != nil {
		return nil, err
	}

	if len(userList.Users) == 0 {
		return nil, fmt.Errorf("%w: no result for user '%s'", ErrNotFound, id)
	}

	user := userList.Users[0]

	return &user, nil
}

// GetUserIDByName resolves an EA ID to a user ID.
func (c *ClientImpl) GetUserIDByName(ctx context.Context, name string) (string, error) {
	user, err := c.GetUserByName(ctx, name)
	if err != nil {
		return "", err
	}

	return user.UserID, nil
}

// GetUserNameByID resolves a user ID to an EA ID.
func (c *ClientImpl) GetUserNameByID(ctx context.Context, id string) (string, error) {
	user, err := c.GetUserByID(ctx, id)
	if err != nil {
		return "", err
	}

	return user.EAID, nil
}

func (c *ClientImpl) getCachedUser(key string) (*User, bool) {
	if c.usersCache == nil {
		return nil, false
	}

	return c.usersCache.Get(key)
}

// cacheUser stores the user under its ID, its EA ID and any extra keys.
func (c *ClientImpl) cacheUser(user *User, extraKeys ...string) {
	if c.usersCache == nil || user == nil || user.UserID == "" {
		return
	}

	c.usersCache.Add(userIDCacheKeyPrefix+user.UserID, user)

	if user.EAID != "" {
		c.usersCache.Add(userNameCacheKeyPrefix+strings.ToLower(user.EAID), user)
	}

	for _, key := range extraKeys {
		c.usersCache.Add(key, user)
	}
}
