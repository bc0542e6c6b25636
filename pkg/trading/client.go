package trading

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/GlebRadaev/skinbet/pkg/clients"
)

const apiKeyHeader = "X-Api-Key"

type Client struct {
	baseURL string
	apiKey  string
	http    clients.HTTPClientI
}

func NewClient(baseURL, apiKey string, http clients.HTTPClientI) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    http,
	}
}

type depositRequest struct {
	TradeLink string   `json:"trade_link"`
	AssetIDs  []string `json:"asset_ids"`
}

type withdrawalRequest struct {
	TradeLink string   `json:"trade_link"`
	ItemIDs   []string `json:"item_ids"`
}

func (c *Client) LoadInventory(ctx context.Context, steamID string) ([]Item, error) {
	return get[[]Item](ctx, c, "/inventory/"+url.PathEscape(steamID), nil)
}

func (c *Client) CreateDeposit(ctx context.Context, tradeLink string, assetIDs []string) (Trade, error) {
	return post[Trade](ctx, c, "/deposits", depositRequest{TradeLink: tradeLink, AssetIDs: assetIDs})
}

func (c *Client) CreateWithdrawal(ctx context.Context, tradeLink string, itemIDs []string) (Trade, error) {
	return post[Trade](ctx, c, "/withdrawals", withdrawalRequest{TradeLink: tradeLink, ItemIDs: itemIDs})
}

func (c *Client) ListItems(ctx context.Context, filter ItemFilter) ([]Item, error) {
	query := url.Values{}
	if filter.State != "" {
		query.Set("state", filter.State)
	}
	return get[[]Item](ctx, c, "/items", query)
}

func (c *Client) ListTrades(ctx context.Context, filter TradeFilter) ([]Trade, error) {
	query := url.Values{}
	if filter.UserSteamID != "" {
		query.Set("user_steam_id", filter.UserSteamID)
	}
	if filter.Type != "" {
		query.Set("type", filter.Type)
	}
	if filter.State != "" {
		query.Set("state", filter.State)
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Sort != "" {
		query.Set("sort", filter.Sort)
	}
	return get[[]Trade](ctx, c, "/trades", query)
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Accept", "application/json")
	h.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		h.Set(apiKeyHeader, c.apiKey)
	}
	return h
}

func get[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	statusCode, body, _, err := c.http.Get(ctx, target, c.headers())
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: GET %s: %w", ErrExternalService, path, err)
	}
	return decode[T](statusCode, body).Unwrap()
}

func post[T any](ctx context.Context, c *Client, path string, payload any) (T, error) {
	var zero T
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return zero, fmt.Errorf("failed to encode request: %w", err)
	}
	statusCode, body, _, err := c.http.Post(ctx, c.baseURL+path, c.headers(), reqBody)
	if err != nil {
		return zero, fmt.Errorf("%w: POST %s: %w", ErrExternalService, path, err)
	}
	return decode[T](statusCode, body).Unwrap()
}
