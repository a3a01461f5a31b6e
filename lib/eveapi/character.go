package eveapi

import (
	"context"
	"pew/lib/xmltree"
)

func (c *Client) CharAccountBalance(ctx context.Context, characterID int64) (xmltree.Value, error) {
	return c.CharRequest(ctx, CategoryCharacter, "AccountBalance", characterID, nil)
}

// CharAssetList returns the character's assets, as a flat list instead of
// nested containers when flat is set.
func (c *Client) CharAssetList(ctx context.Context, characterID int64, flat bool) (xmltree.Value, error) {
	params := Params{"flat": "0"}
	if flat {
		params["flat"] = "1"
	}
	return c.CharRequest(ctx, CategoryCharacter, "assetList", characterID, params)
}

func (c *Client) CharCharacterSheet(ctx context.Context, characterID int64) (xmltree.Value, error) {
	return c.CharRequest(ctx, CategoryCharacter, "characterSheet", characterID, nil)
}

// CharContracts returns all of the character's contracts, or only one when
// contractID is non-nil.
func (c *Client) CharContracts(ctx context.Context, characterID int64, contractID *int64) (xmltree.Value, error) {
	params := Params{}
	if contractID != nil {
		params.Set("contractID", *contractID)
	}
	return c.CharRequest(ctx, CategoryCharacter, "contracts", characterID, params)
}

func (c *Client) CharIndustryJobs(ctx context.Context, characterID int64) (xmltree.Value, error) {
	return c.CharRequest(ctx, CategoryCharacter, "industryJobs", characterID, nil)
}

func (c *Client) CharKillLog(ctx context.Context, characterID int64) (xmltree.Value, error) {
	return c.CharRequest(ctx, CategoryCharacter, "killLog", characterID, nil)
}

func (c *Client) CharMailBodies(ctx context.Context, characterID int64, mailIDs []int64) (xmltree.Value, error) {
	params := Params{}
	params.Set("ids", mailIDs)
	return c.CharRequest(ctx, CategoryCharacter, "mailbodies", characterID, params)
}

func (c *Client) CharMarketOrders(ctx context.Context, characterID int64) (xmltree.Value, error) {
	return c.CharRequest(ctx, CategoryCharacter, "marketorders", characterID, nil)
}

func (c *Client) CharNotificationTexts(ctx context.Context, characterID int64, notificationIDs []int64) (xmltree.Value, error) {
	params := Params{}
	params.Set("ids", notificationIDs)
	return c.CharRequest(ctx, CategoryCharacter, "notificationtexts", characterID, params)
}

func (c *Client) CharPlanetaryPins(ctx context.Context, characterID, planetID int64) (xmltree.Value, error) {
	params := Params{}
	params.Set("planetID", planetID)
	return c.CharRequest(ctx, CategoryCharacter, "planetaryPins", characterID, params)
}

func (c *Client) CharSkillInTraining(ctx context.Context, characterID int64) (xmltree.Value, error) {
	return c.CharRequest(ctx, CategoryCharacter, "skillintraining", characterID, nil)
}

func (c *Client) CharSkillQueue(ctx context.Context, characterID int64) (xmltree.Value, error) {
	return c.CharRequest(ctx, CategoryCharacter, "skillqueue", characterID, nil)
}

func (c *Client) CharStandings(ctx context.Context, characterID int64) (xmltree.Value, error) {
	return c.CharRequest(ctx, CategoryCharacter, "standings", characterID, nil)
}

func (c *Client) CharUpcomingCalendarEvents(ctx context.Context, characterID int64) (xmltree.Value, error) {
	return c.CharRequest(ctx, CategoryCharacter, "upcomingcalendarevents", characterID, nil)
}

func (c *Client) CharWalletJournal(ctx context.Context, characterID int64) (xmltree.Value, error) {
	return c.CharRequest(ctx, CategoryCharacter, "walletjournal", characterID, nil)
}

func (c *Client) CharWalletTransactions(ctx context.Context, characterID int64) (xmltree.Value, error) {
	return c.CharRequest(ctx, CategoryCharacter, "wallettransactions", characterID, nil)
}
