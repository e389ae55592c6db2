package searchservice

import (
	"sort"
	"strconv"
	"strings"

	"github.com/yhw923/zenkeeper/internal/domain"
	"github.com/yhw923/zenkeeper/internal/search"
)

const (
	// Listings whose base price falls below this share of the reference
	// price are treated as mis-tagged results (accessories, wrong variant).
	minPriceRatio = 0.3

	maxCandidates = 3

	defaultMall = "general"
)

type mallRule struct {
	marker string
	mall   string
}

// Evaluated top to bottom; the first matching marker wins over the
// provider-supplied store label.
var mallRules = []mallRule{
	{marker: "smartstore", mall: "naver"},
	{marker: "brand.naver", mall: "naver"},
	{marker: "coupang.", mall: "coupang"},
}

func canonicalMall(link, provided string) string {
	for _, rule := range mallRules {
		if strings.Contains(link, rule.marker) {
			return rule.mall
		}
	}
	if provided == "" {
		return defaultMall
	}
	return provided
}

// TopDeals filters raw listings against the reference price, deduplicates
// by shipping-inclusive total and returns at most three candidates, cheapest
// first. An empty result means no better deal was found, not a failure.
func TopDeals(items []search.Item, referencePrice int) []domain.Candidate {
	floor := float64(referencePrice) * minPriceRatio

	byTotal := make(map[int]domain.Candidate, len(items))
	for _, item := range items {
		// Malformed numeric fields default to 0 instead of failing the batch.
		price, err := strconv.Atoi(item.LPrice)
		if err != nil || price < 0 {
			price = 0
		}
		shipFee := 0
		if n, err := strconv.Atoi(item.Shipping); err == nil && n >= 0 {
			shipFee = n
		}

		// The floor applies to the base price, not the total: it guards
		// against mismatched listings, not shipping variance.
		if float64(price) < floor {
			continue
		}

		total := price + shipFee
		byTotal[total] = domain.Candidate{
			BasePrice:  price,
			ShipFee:    shipFee,
			TotalPrice: total,
			Title:      item.Title,
			Link:       item.Link,
			Mall:       canonicalMall(item.Link, item.MallName),
		}
	}

	candidates := make([]domain.Candidate, 0, len(byTotal))
	for _, c := range byTotal {
		candidates = append(candidates, c)
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].TotalPrice < candidates[j].TotalPrice
	})

	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}
	return candidates
}
