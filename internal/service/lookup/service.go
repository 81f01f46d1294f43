package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oshokin/origin-lookup/internal/client/origin"
	"github.com/oshokin/origin-lookup/internal/logger"
)

// ErrInvalidQuery indicates that a query sets both or neither of name and IDs.
var ErrInvalidQuery = errors.New("exactly one of name or user IDs must be set")

// Query selects users either by EA ID or by user IDs.
type Query struct {
	// Name is an EA ID, matched case-insensitively by the server.
	Name string
	// IDs are user IDs; results keep the server's order.
	IDs []string
}

// Service looks users up.
type Service interface {
	// Lookup returns the users matching the query.
	Lookup(ctx context.Context, query Query) ([]*origin.User, error)
}

// ServiceImpl implements Service on top of an Origin client.
type ServiceImpl struct {
	originClient origin.Client
}

// NewService creates a lookup service.
func NewService(originClient origin.Client) Service {
	return &ServiceImpl{
		originClient: originClient,
	}
}

// Lookup returns the users matching the query.
func (s *ServiceImpl) Lookup(ctx context.Context, query Query) ([]*origin.User, error) {
	name := strings.TrimSpace(query.Name)
	ids := normalizeIDs(query.IDs)

	if (name == "") == (len(ids) == 0) {
		return nil, ErrInvalidQuery
	}

	if name != "" {
		logger.Debugf(ctx, "Looking up user by name: %s", name)

		user, err := s.originClient.GetUserByName(ctx, name)
		if err != nil {
			return nil, err
		}

		return []*origin.User{user}, nil
	}

	if len(ids) == 1 {
		logger.Debugf(ctx, "Looking up user by ID: %s", ids[0])

		user, err := s.originClient.GetUserByID(ctx, ids[0])
		if err != nil {
			return nil, err
		}

		return []*origin.User{user}, nil
	}

	logger.Debugf(ctx, "Looking up %d users by IDs", len(ids))

	userList, err := s.originClient.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	if len(userList.Users) == 0 {
		return nil, fmt.Errorf("%w: no result for users '%s'", origin.ErrNotFound, strings.Join(ids, ","))
	}

	users := make([]*origin.User, 0, len(userList.Users))
	for i := range userList.Users {
		users = append(users, &userList.Users[i])
	}

	return users, nil
}

// normalizeIDs trims IDs and drops blanks, keeping the given order.
func normalizeIDs(ids []string) []string {
	result := make([]string, 0, len(ids))

	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" {
			result = append(result, id)
		}
	}

	return result
}
