package affiliate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yhw923/zenkeeper/internal/config"
)

func newRewriter() *Rewriter {
	return New(&config.Config{
		CoupangPartnerID: "AF1234567",
		NaverAdID:        "yhw923",
		AffiliateSubID:   "zen",
	})
}

func TestRewrite(t *testing.T) {
	rw := newRewriter()

	tests := []struct {
		name     string
		link     string
		mall     string
		expected string
	}{
		{
			name:     "coupang link with product id",
			link:     "https://www.coupang.com/vp/products/7654321?itemId=123",
			mall:     "coupang",
			expected: "https://link.coupang.com/re/AFFSDP?lptag=AF1234567&subid=zen&pageKey=7654321",
		},
		{
			name:     "coupang link without product id passes through",
			link:     "https://www.coupang.com/np/categories/1234",
			mall:     "coupang",
			expected: "https://www.coupang.com/np/categories/1234",
		},
		{
			name:     "naver mall without query string",
			link:     "https://smartstore.naver.com/shop/100",
			mall:     "naver",
			expected: "https://smartstore.naver.com/shop/100?n_ad=yhw923",
		},
		{
			name:     "naver mall with query string",
			link:     "https://smartstore.naver.com/shop/100?ref=top",
			mall:     "naver",
			expected: "https://smartstore.naver.com/shop/100?ref=top&n_ad=yhw923",
		},
		{
			name:     "smartstore marker wins over unknown mall label",
			link:     "https://smartstore.naver.com/shop/200",
			mall:     "general",
			expected: "https://smartstore.naver.com/shop/200?n_ad=yhw923",
		},
		{
			name:     "unknown marketplace passes through",
			link:     "https://shop.example.com/item/9",
			mall:     "general",
			expected: "https://shop.example.com/item/9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rw.Rewrite(tt.link, tt.mall))
		})
	}
}

// rewrite(rewrite(url)) == rewrite(url) for anything that does not match a
// partner pattern.
func TestRewrite_IdempotentOnNonMatching(t *testing.T) {
	rw := newRewriter()

	links := []string{
		"https://shop.example.com/item/9",
		"https://www.coupang.com/np/categories/1234",
		"ftp://weird/scheme",
		"",
	}
	for _, link := range links {
		once := rw.Rewrite(link, "general")
		assert.Equal(t, once, rw.Rewrite(once, "general"))
	}
}

func TestRewrite_UnsetPartnerIDs(t *testing.T) {
	rw := New(&config.Config{})

	link := "https://www.coupang.com/vp/products/7654321"
	assert.Equal(t, link, rw.Rewrite(link, "coupang"))

	link = "https://smartstore.naver.com/shop/100"
	assert.Equal(t, link, rw.Rewrite(link, "naver"))
}
