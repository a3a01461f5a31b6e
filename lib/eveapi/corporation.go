package eveapi

import (
	"context"
	"pew/lib/xmltree"
)

// corporation calls are made on behalf of a character holding the required
// corporation roles.

func (c *Client) CorpAccountBalance(ctx context.Context, characterID int64) (xmltree.Value, error) {
	return c.CharRequest(ctx, CategoryCorporation, "accountBalance", characterID, nil)
}

func (c *Client) CorpAssetList(ctx context.Context, characterID int64) (xmltree.Value, error) {
	return c.CharRequest(ctx, CategoryCorporation, "assetList", characterID, nil)
}

func (c *Client) CorpCorporationSheet(ctx context.Context, characterID int64) (xmltree.Value, error) {
	return c.CharRequest(ctx, CategoryCorporation, "corporationsheet", characterID, nil)
}

func (c *Client) CorpMarketOrders(ctx context.Context, characterID int64) (xmltree.Value, error) {
	return c.CharRequest(ctx, CategoryCorporation, "marketorders", characterID, nil)
}

func (c *Client) CorpMemberTracking(ctx context.Context, characterID int64) (xmltree.Value, error) {
	return c.CharRequest(ctx, CategoryCorporation, "membertracking", characterID, nil)
}

// CorpStarbaseDetail is keyed by the starbase's item id rather than a
// character.
func (c *Client) CorpStarbaseDetail(ctx context.Context, itemID int64) (xmltree.Value, error) {
	params := Params{}
	params.Set("itemID", itemID)
	return c.AuthRequest(ctx, CategoryCorporation, "starbasedetail", params)
}

func (c *Client) CorpStarbaseList(ctx context.Context, characterID int64) (xmltree.Value, error) {
	return c.CharRequest(ctx, CategoryCorporation, "starbaselist", characterID, nil)
}

func (c *Client) CorpWalletJournal(ctx context.Context, characterID int64) (xmltree.Value, error) {
	return c.CharRequest(ctx, CategoryCorporation, "walletjournal", characterID, nil)
}
