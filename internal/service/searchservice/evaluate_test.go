package searchservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yhw923/zenkeeper/internal/config"
)

func intPtr(v int) *int { return &v }

func TestEvaluate(t *testing.T) {
	s := New(&config.Config{TimeValueRate: 10030}, nil)

	tests := []struct {
		name           string
		totalPrice     int
		adjustment     int
		referencePrice int
		rate           *int
		wantAdjusted   int
		wantWaitCost   int
		wantNetBenefit int
		wantRecommend  string
	}{
		{
			name:           "clear win recommends switching",
			totalPrice:     83000,
			adjustment:     0,
			referencePrice: 100000,
			rate:           intPtr(10030),
			wantAdjusted:   83000,
			wantWaitCost:   5508, // round(15/60*10030)+3000
			wantNetBenefit: 11492,
			wantRecommend:  RecommendSwitch,
		},
		{
			name:           "thin margin eaten by wait cost recommends keeping",
			totalPrice:     99000,
			adjustment:     0,
			referencePrice: 100000,
			rate:           intPtr(10030),
			wantAdjusted:   99000,
			wantWaitCost:   5508,
			wantNetBenefit: -4508,
			wantRecommend:  RecommendKeep,
		},
		{
			name:           "manual adjustment moves the verdict",
			totalPrice:     99000,
			adjustment:     -10000,
			referencePrice: 100000,
			rate:           intPtr(10030),
			wantAdjusted:   89000,
			wantWaitCost:   5508,
			wantNetBenefit: 5492,
			wantRecommend:  RecommendSwitch,
		},
		{
			name:           "nil rate uses the configured baseline",
			totalPrice:     83000,
			adjustment:     0,
			referencePrice: 100000,
			rate:           nil,
			wantAdjusted:   83000,
			wantWaitCost:   5508,
			wantNetBenefit: 11492,
			wantRecommend:  RecommendSwitch,
		},
		{
			name:           "zero rate still charges the handling cost",
			totalPrice:     83000,
			adjustment:     0,
			referencePrice: 100000,
			rate:           intPtr(0),
			wantAdjusted:   83000,
			wantWaitCost:   3000,
			wantNetBenefit: 14000,
			wantRecommend:  RecommendSwitch,
		},
		{
			name:           "zero net benefit keeps the original purchase",
			totalPrice:     94492,
			adjustment:     0,
			referencePrice: 100000,
			rate:           intPtr(10030),
			wantAdjusted:   94492,
			wantWaitCost:   5508,
			wantNetBenefit: 0,
			wantRecommend:  RecommendKeep,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Evaluate(tt.totalPrice, tt.adjustment, tt.referencePrice, tt.rate)

			assert.Equal(t, tt.wantAdjusted, got.AdjustedPrice)
			assert.Equal(t, tt.wantAdjusted-tt.referencePrice, got.Diff)
			assert.Equal(t, tt.wantWaitCost, got.WaitCost)
			assert.Equal(t, tt.wantNetBenefit, got.NetBenefit)
			assert.Equal(t, tt.wantRecommend, got.Recommendation)
		})
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	s := New(&config.Config{TimeValueRate: 10030}, nil)

	first := s.Evaluate(83000, -2000, 100000, intPtr(12000))
	second := s.Evaluate(83000, -2000, 100000, intPtr(12000))

	assert.Equal(t, first, second)
}
