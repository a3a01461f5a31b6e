package eveapi

import (
	"context"
	"pew/lib/xmltree"
)

func (c *Client) EveAllianceList(ctx context.Context) (xmltree.Value, error) {
	return c.Request(ctx, CategoryEve, "alliancelist", nil)
}

// EveCharacterID resolves character names to ids.
func (c *Client) EveCharacterID(ctx context.Context, names []string) (xmltree.Value, error) {
	params := Params{}
	params.Set("names", names)
	return c.Request(ctx, CategoryEve, "characterid", params)
}

func (c *Client) EveCharacterInfo(ctx context.Context, characterID int64) (xmltree.Value, error) {
	return c.CharRequest(ctx, CategoryEve, "characterinfo", characterID, nil)
}

func (c *Client) EveCharacterName(ctx context.Context, characterIDs []int64) (xmltree.Value, error) {
	params := Params{}
	params.Set("ids", characterIDs)
	return c.Request(ctx, CategoryEve, "charactername", params)
}

func (c *Client) EveConquerableStationList(ctx context.Context) (xmltree.Value, error) {
	return c.Request(ctx, CategoryEve, "conquerablestationlist", nil)
}

func (c *Client) EveErrorList(ctx context.Context) (xmltree.Value, error) {
	return c.Request(ctx, CategoryEve, "errorlist", nil)
}

func (c *Client) EveRefTypes(ctx context.Context) (xmltree.Value, error) {
	return c.Request(ctx, CategoryEve, "reftypes", nil)
}

func (c *Client) EveSkillTree(ctx context.Context) (xmltree.Value, error) {
	return c.Request(ctx, CategoryEve, "skilltree", nil)
}

func (c *Client) EveTypeName(ctx context.Context, typeIDs []int64) (xmltree.Value, error) {
	params := Params{}
	params.Set("ids", typeIDs)
	return c.Request(ctx, CategoryEve, "typeName", params)
}
