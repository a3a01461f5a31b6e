package eveapi

import (
	"fmt"
	"strings"
)

// Category selects the URL template a request is built against.
type Category string

const (
	CategoryAPI         Category = "api"
	CategoryAccount     Category = "account"
	CategoryCharacter   Category = "char"
	CategoryCorporation Category = "corp"
	CategoryEve         Category = "eve"
	CategoryMap         Category = "map"
	CategoryServer      Category = "server"

	// CategoryMarketData targets eve-marketdata.com, which serves
	// <method>.xml without the .aspx suffix.
	CategoryMarketData Category = "emd"
	// CategoryEveCentral targets eve-central.com, which serves bare method
	// paths.
	CategoryEveCentral Category = "ecent"
)

const (
	DefaultAPIUrl        = "https://api.eveonline.com"
	DefaultMarketDataUrl = "http://eve-marketdata.com/api"
	DefaultEveCentralUrl = "http://api.eve-central.com/api"
)

// Endpoints holds the base urls of the three services requests can go to.
type Endpoints struct {
	API        string
	MarketData string
	EveCentral string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		API:        DefaultAPIUrl,
		MarketData: DefaultMarketDataUrl,
		EveCentral: DefaultEveCentralUrl,
	}
}

// BuildURL composes the request url for a category and method. The query
// string is only appended when there are parameters, keys are sorted.
func (e Endpoints) BuildURL(category Category, method string, params Params) string {
	var link string
	switch category {
	case CategoryMarketData:
		link = fmt.Sprintf("%s/%s.xml", trimBase(e.MarketData), method)
	case CategoryEveCentral:
		link = fmt.Sprintf("%s/%s", trimBase(e.EveCentral), method)
	default:
		link = fmt.Sprintf("%s/%s/%s.xml.aspx", trimBase(e.API), category, method)
	}

	if len(params) > 0 {
		link = fmt.Sprintf("%s?%s", link, params.Encode())
	}
	return link
}

func trimBase(base string) string {
	return strings.TrimRight(base, "/")
}
