package eveapi

import (
	"context"
	"fmt"
	"log/slog"
	"pew/lib/xmltree"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Request performs an unauthenticated call and returns the envelope's
// result. params is not modified.
func (c *Client) Request(ctx context.Context, category Category, method string, params Params) (xmltree.Value, error) {
	ctx, span := c.startSpan(ctx, category, method)
	defer span.End()

	body, err := c.fetch(ctx, c.endpoints.BuildURL(category, method, params))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return xmltree.Value{}, err
	}

	result, err := HandleResult(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to handle result")
		slog.DebugContext(ctx, "api call failed", "category", category, "method", method, "err", err)
		return xmltree.Value{}, err
	}
	return result, nil
}

// AuthRequest is Request with the client's key id and verification code
// added to the parameters.
func (c *Client) AuthRequest(ctx context.Context, category Category, method string, params Params) (xmltree.Value, error) {
	p := params.Clone()
	p[paramKeyID] = c.keyID
	p[paramVerificationCode] = c.verificationCode
	return c.Request(ctx, category, method, p)
}

// CharRequest is AuthRequest scoped to a single character.
func (c *Client) CharRequest(ctx context.Context, category Category, method string, characterID int64, params Params) (xmltree.Value, error) {
	p := params.Clone()
	p.Set(paramCharacterID, characterID)
	return c.AuthRequest(ctx, category, method, p)
}

// MarketRequest calls eve-marketdata.com, which wants the caller's character
// name on every request.
func (c *Client) MarketRequest(ctx context.Context, method string, params Params) (xmltree.Value, error) {
	p := params.Clone()
	p[paramMarketCharName] = c.marketDataCharName
	return c.Request(ctx, CategoryMarketData, method, p)
}

// Document fetches and decodes a response without envelope handling, for
// services whose documents have no result/error envelope.
func (c *Client) Document(ctx context.Context, category Category, method string, params Params) (xmltree.Value, error) {
	ctx, span := c.startSpan(ctx, category, method)
	defer span.End()

	body, err := c.fetch(ctx, c.endpoints.BuildURL(category, method, params))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return xmltree.Value{}, err
	}

	doc, err := xmltree.DecodeBytes(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to decode document")
		return xmltree.Value{}, fmt.Errorf("decode response: %w", err)
	}
	return doc, nil
}

func (c *Client) startSpan(ctx context.Context, category Category, method string) (context.Context, trace.Span) {
	return tracer.Start(
		ctx,
		fmt.Sprintf("eveapi:%s/%s", category, method),
		trace.WithAttributes(
			attribute.String("eveapi.category", string(category)),
			attribute.String("eveapi.method", method),
		),
	)
}
