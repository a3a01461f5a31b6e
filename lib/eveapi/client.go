// Package eveapi is a client for the EVE Online XML API and the market data
// sites that speak the same response format.
//
// Every call is a single GET whose XML response is decoded by xmltree into a
// generic value. A Client keeps no per-call state, so it may be shared
// between goroutines.
package eveapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"pew/lib/restyutil"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const (
	DefaultTimeout            = time.Second * 30
	DefaultUserAgent          = "pew/2.0"
	DefaultMarketDataCharName = "demo"
)

type ClientOptions struct {
	// Endpoints defaults to DefaultEndpoints for any empty field.
	Endpoints Endpoints

	// KeyID and VerificationCode are passed through untouched to
	// authenticated calls.
	KeyID            string
	VerificationCode string

	// MarketDataCharName identifies the caller to eve-marketdata.com.
	MarketDataCharName string

	UserAgent string
	Timeout   time.Duration

	BypassCloudflare bool

	// InstrumentOutput receives a dump of every HTTP exchange when debug
	// logging is enabled, it may be nil.
	InstrumentOutput restyutil.InstrumentOutput
}

type Client struct {
	Http *resty.Client

	endpoints          Endpoints
	keyID              string
	verificationCode   string
	marketDataCharName string
}

func NewClient(opts ClientOptions) (*Client, error) {
	endpoints := withDefaults(opts.Endpoints)
	for _, base := range []string{endpoints.API, endpoints.MarketData, endpoints.EveCentral} {
		parsed, err := url.Parse(base)
		if err != nil {
			return nil, err
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return nil, fmt.Errorf("base url %q must be absolute", base)
		}
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	charName := opts.MarketDataCharName
	if charName == "" {
		charName = DefaultMarketDataCharName
	}

	client := resty.New()
	client.SetHeader("user-agent", userAgent)
	client.SetTimeout(timeout)
	if opts.BypassCloudflare {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}

	restyutil.InstrumentClient(client, tracer, opts.InstrumentOutput)

	return &Client{
		Http:               client,
		endpoints:          endpoints,
		keyID:              opts.KeyID,
		verificationCode:   opts.VerificationCode,
		marketDataCharName: charName,
	}, nil
}

func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}

func withDefaults(e Endpoints) Endpoints {
	defaults := DefaultEndpoints()
	if e.API == "" {
		e.API = defaults.API
	}
	if e.MarketData == "" {
		e.MarketData = defaults.MarketData
	}
	if e.EveCentral == "" {
		e.EveCentral = defaults.EveCentral
	}
	return e
}

// fetch performs the GET and returns the raw body. Every failure comes back
// as a *ConnectionError.
func (c *Client) fetch(ctx context.Context, link string) ([]byte, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		return nil, &ConnectionError{URL: link, Err: err}
	}
	if res.IsError() {
		return nil, &ConnectionError{
			URL:        link,
			StatusCode: res.StatusCode(),
			Err: fmt.Errorf(
				"HTTP Error %d: %s",
				res.StatusCode(),
				http.StatusText(res.StatusCode()),
			),
		}
	}
	return res.Body(), nil
}
