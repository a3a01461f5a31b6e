package eveapi

import (
	"context"
	"pew/lib/xmltree"
)

// AccountCharacters lists the characters on the client's API key.
func (c *Client) AccountCharacters(ctx context.Context) (xmltree.Value, error) {
	return c.AuthRequest(ctx, CategoryAccount, "characters", nil)
}

func (c *Client) AccountStatus(ctx context.Context) (xmltree.Value, error) {
	return c.AuthRequest(ctx, CategoryAccount, "accountStatus", nil)
}

func (c *Client) AccountAPIKeyInfo(ctx context.Context) (xmltree.Value, error) {
	return c.AuthRequest(ctx, CategoryAccount, "APIKeyInfo", nil)
}
