package searchservice

import (
	"math"

	"github.com/yhw923/zenkeeper/internal/domain"
)

const (
	// Modeled time spent switching vendors, in minutes.
	waitMinutes = 15
	// Flat handling cost charged on top of the time cost, currency units.
	handlingCost = 3000

	RecommendSwitch = "switch"
	RecommendKeep   = "keep"
)

// Evaluate weighs a candidate's adjusted price against the reference price
// and the value of the buyer's time. Pure and idempotent; rate nil means
// the configured baseline.
func (s *Service) Evaluate(totalPrice, adjustment, referencePrice int, rate *int) domain.Evaluation {
	hourly := s.baselineRate
	if rate != nil && *rate >= 0 {
		hourly = *rate
	}

	adjusted := totalPrice + adjustment
	diff := adjusted - referencePrice
	waitCost := int(math.Round(waitMinutes*float64(hourly)/60)) + handlingCost
	netBenefit := (referencePrice - adjusted) - waitCost

	recommendation := RecommendKeep
	if netBenefit > 0 {
		recommendation = RecommendSwitch
	}

	return domain.Evaluation{
		AdjustedPrice:  adjusted,
		Diff:           diff,
		WaitCost:       waitCost,
		NetBenefit:     netBenefit,
		Score:          domain.EfficiencyScore(adjusted, referencePrice-adjusted),
		Recommendation: recommendation,
	}
}
