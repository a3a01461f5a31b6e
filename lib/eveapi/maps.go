package eveapi

import (
	"context"
	"pew/lib/xmltree"
)

func (c *Client) MapFacWarSystems(ctx context.Context) (xmltree.Value, error) {
	return c.Request(ctx, CategoryMap, "facwarsystems", nil)
}

func (c *Client) MapJumps(ctx context.Context) (xmltree.Value, error) {
	return c.Request(ctx, CategoryMap, "jumps", nil)
}

func (c *Client) MapKills(ctx context.Context) (xmltree.Value, error) {
	return c.Request(ctx, CategoryMap, "kills", nil)
}

func (c *Client) MapSovereignty(ctx context.Context) (xmltree.Value, error) {
	return c.Request(ctx, CategoryMap, "sovereignty", nil)
}

// ServerStatus reports whether the game server is open and how many players
// are online.
func (c *Client) ServerStatus(ctx context.Context) (xmltree.Value, error) {
	return c.Request(ctx, CategoryServer, "serverstatus", nil)
}

// CallList lists the calls and call groups an access mask can grant.
func (c *Client) CallList(ctx context.Context) (xmltree.Value, error) {
	return c.AuthRequest(ctx, CategoryAPI, "CallList", nil)
}
