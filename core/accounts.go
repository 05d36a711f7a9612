package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkerholladay/odyssey-voyage-II-server/models"
)

// User resolves a user by id for public profile views.
func (c *Core) User(ctx context.Context, userID uint) (*models.User, error) {
	user, err := c.Accounts.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: no user found for this Id", ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (c *Core) Me(ctx context.Context, id Identity) (*models.User, error) {
	if err := requireIdentity(id); err != nil {
		return nil, err
	}
	return c.Accounts.GetUser(ctx, id.UserID)
}

func (c *Core) UpdateProfile(ctx context.Context, id Identity, input ProfileInput) (ProfileResult, error) {
	if err := requireIdentity(id); err != nil {
		return ProfileResult{}, err
	}

	user, err := c.Accounts.UpdateUser(ctx, id.UserID, input)
	if err != nil {
		return ProfileResult{Response: failed(err.Error())}, nil
	}

	return ProfileResult{Response: ok("Profile successfully updated!"), User: user}, nil
}
