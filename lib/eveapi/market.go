package eveapi

import (
	"context"
	"fmt"
	"pew/lib/xmltree"
)

// MarketFilter narrows market data queries, empty fields are left out.
type MarketFilter struct {
	MarketGroupIDs []int64
	RegionIDs      []int64
	SolarSystemIDs []int64
	StationIDs     []int64
}

func (f MarketFilter) apply(params Params) {
	set := func(name string, ids []int64) {
		if len(ids) > 0 {
			params.Set(name, ids)
		}
	}
	set("marketgroup_ids", f.MarketGroupIDs)
	set("region_ids", f.RegionIDs)
	set("solarsystem_ids", f.SolarSystemIDs)
	set("station_ids", f.StationIDs)
}

// MarketItemPrices queries eve-marketdata.com for item prices. buySell is
// "b", "s" or "a".
func (c *Client) MarketItemPrices(ctx context.Context, buySell string, typeIDs []int64, filter MarketFilter) (xmltree.Value, error) {
	params := Params{"buysell": buySell}
	params.Set("type_ids", typeIDs)
	filter.apply(params)
	return c.MarketRequest(ctx, "item_prices2", params)
}

// MarketItemOrders queries eve-marketdata.com for open orders. minMax picks
// the cheapest ("min") or most expensive ("max") orders.
func (c *Client) MarketItemOrders(ctx context.Context, buySell, minMax string, typeIDs []int64, filter MarketFilter) (xmltree.Value, error) {
	params := Params{
		"buysell": buySell,
		"minmax":  minMax,
	}
	params.Set("type_ids", typeIDs)
	filter.apply(params)
	return c.MarketRequest(ctx, "item_orders2", params)
}

// CentralMarketStat returns eve-central's aggregate statistics for a type,
// limited to a region when regionID is not 0. eve-central documents have no
// envelope, the marketstat element is returned as is.
func (c *Client) CentralMarketStat(ctx context.Context, typeID, regionID int64) (xmltree.Value, error) {
	params := Params{}
	params.Set("typeid", typeID)
	if regionID != 0 {
		params.Set("regionlimit", regionID)
	}

	doc, err := c.Document(ctx, CategoryEveCentral, "marketstat", params)
	if err != nil {
		return xmltree.Value{}, err
	}
	stat, ok := doc.Get("marketstat")
	if !ok {
		return xmltree.Value{}, fmt.Errorf("%w: marketstat element missing", ErrMalformedEnvelope)
	}
	return stat, nil
}
