package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/yhw923/zenkeeper/internal/config"
	"github.com/yhw923/zenkeeper/pkg/clients"
	"go.uber.org/zap"
)

const searchPath = "/v1/search/shop.json"

// ErrUpstream marks provider unavailability or a non-success status. It is
// surfaced to the caller as-is; it is never downgraded to an empty result
// and the request is never retried.
var ErrUpstream = errors.New("shop search provider failure")

// Item is one raw provider listing. Price fields arrive as strings and are
// parsed downstream so one malformed listing cannot fail the batch.
type Item struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	LPrice   string `json:"lprice"`
	Shipping string `json:"shipping"`
	MallName string `json:"mallName"`
}

type response struct {
	Total int    `json:"total"`
	Items []Item `json:"items"`
}

var titleSanitizer = strings.NewReplacer("<b>", "", "</b>", "")

type Client struct {
	url          string
	clientID     string
	clientSecret string
	display      int
	client       clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:          cfg.SearchAddress,
		clientID:     cfg.SearchClientID,
		clientSecret: cfg.SearchClientSecret,
		display:      cfg.SearchPageSize,
		client:       client,
	}
}

// Search issues a single blocking request for one page of listings sorted
// by relevance. Titles are sanitized of emphasis markup before they leave
// this layer.
func (c *Client) Search(ctx context.Context, query string) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("display", strconv.Itoa(c.display))
	params.Set("sort", "sim")

	headers := http.Header{}
	headers.Set("X-Naver-Client-Id", c.clientID)
	headers.Set("X-Naver-Client-Secret", c.clientSecret)

	endpoint := c.url + searchPath + "?" + params.Encode()
	statusCode, respBody, _, err := c.client.Get(endpoint, headers)
	if err != nil {
		zap.L().Error("shop search request failed", zap.String("query", query), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if statusCode != http.StatusOK {
		zap.L().Error("shop search returned non-success status", zap.String("query", query), zap.Int("status", statusCode))
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, statusCode)
	}

	var resp response
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: can't parse response: %v", ErrUpstream, err)
	}

	for i := range resp.Items {
		resp.Items[i].Title = titleSanitizer.Replace(resp.Items[i].Title)
	}
	return resp.Items, nil
}
