// Package vote is a thin client for the external roadmap vote counter.
// Counts live entirely in the remote service, keyed by a configured
// namespace plus a per-feature item key. Nothing is persisted locally.
package vote

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/smallbiznis/photohub/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the vote client.
var Module = fx.Module("vote",
	fx.Provide(NewClient),
)

// Client talks to the count API.
type Client struct {
	log       *zap.Logger
	client    *resty.Client
	namespace string
}

// NewClient builds a vote client from the configured base URL and namespace.
func NewClient(cfg config.Config, log *zap.Logger) *Client {
	return &Client{
		log:       log.Named("vote"),
		client:    resty.New().SetBaseURL(cfg.VoteAPIBaseURL).SetTimeout(cfg.HTTPTimeout),
		namespace: cfg.VoteNamespace,
	}
}

type countResponse struct {
	Value int `json:"value"`
}

// Count returns the current vote total for item.
func (c *Client) Count(ctx context.Context, item string) (int, error) {
	return c.get(ctx, "/get/{namespace}/{item}", item)
}

// Cast registers one vote for item and returns the new total. Votes cannot
// be undone.
func (c *Client) Cast(ctx context.Context, item string) (int, error) {
	n, err := c.get(ctx, "/hit/{namespace}/{item}", item)
	if err != nil {
		return 0, err
	}
	c.log.Info("vote cast", zap.String("item", item), zap.Int("total", n))
	return n, nil
}

func (c *Client) get(ctx context.Context, path, item string) (int, error) {
	var out countResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("namespace", c.namespace).
		SetPathParam("item", item).
		SetResult(&out).
		Get(path)
	if err != nil {
		return 0, fmt.Errorf("vote api %s: %w", item, err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("vote api %s: status %s", item, resp.Status())
	}
	return out.Value, nil
}
