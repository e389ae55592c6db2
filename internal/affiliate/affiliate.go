package affiliate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yhw923/zenkeeper/internal/config"
)

const (
	coupangMall = "coupang"
	naverMall   = "naver"

	coupangRedirect = "https://link.coupang.com/re/AFFSDP"
)

var coupangProductRe = regexp.MustCompile(`products/(\d+)`)

// Rewriter rewrites outbound listing URLs to carry partner identifiers.
// It is total: any URL it cannot handle is returned unchanged.
type Rewriter struct {
	coupangTag string
	naverAdID  string
	subID      string
}

func New(cfg *config.Config) *Rewriter {
	return &Rewriter{
		coupangTag: cfg.CoupangPartnerID,
		naverAdID:  cfg.NaverAdID,
		subID:      cfg.AffiliateSubID,
	}
}

func (rw *Rewriter) Rewrite(link, mall string) string {
	switch {
	case mall == coupangMall && rw.coupangTag != "":
		m := coupangProductRe.FindStringSubmatch(link)
		if m == nil {
			return link
		}
		return fmt.Sprintf("%s?lptag=%s&subid=%s&pageKey=%s", coupangRedirect, rw.coupangTag, rw.subID, m[1])

	case (mall == naverMall || strings.Contains(link, "smartstore")) && rw.naverAdID != "":
		sep := "?"
		if strings.Contains(link, "?") {
			sep = "&"
		}
		return link + sep + "n_ad=" + rw.naverAdID
	}
	return link
}
