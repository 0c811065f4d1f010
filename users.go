package harmonia

import "context"

// CurrentUser retrieves the authorized user's profile.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser retrieves another user's public profile.
func (c *Client) GetUser(ctx context.Context, userID string) (*PublicUser, error) {
	var user PublicUser
	if err := c.get(ctx, "/users/"+userID, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
