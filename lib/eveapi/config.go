package eveapi

import (
	"time"
)

// Config is the json5 representation of ClientOptions.
type Config struct {
	ApiUrl        string `json:"api_url"`
	MarketDataUrl string `json:"market_data_url"`
	EveCentralUrl string `json:"eve_central_url"`

	MarketDataCharName string `json:"market_data_char_name"`

	KeyID            string `json:"key_id"`
	VerificationCode string `json:"verification_code"`

	UserAgent        string `json:"user_agent"`
	TimeoutSeconds   int    `json:"timeout_seconds"`
	BypassCloudflare bool   `json:"bypass_cloudflare"`
}

func (c Config) ClientOptions() ClientOptions {
	return ClientOptions{
		Endpoints: Endpoints{
			API:        c.ApiUrl,
			MarketData: c.MarketDataUrl,
			EveCentral: c.EveCentralUrl,
		},
		KeyID:              c.KeyID,
		VerificationCode:   c.VerificationCode,
		MarketDataCharName: c.MarketDataCharName,
		UserAgent:          c.UserAgent,
		Timeout:            time.Second * time.Duration(c.TimeoutSeconds),
		BypassCloudflare:   c.BypassCloudflare,
	}
}
