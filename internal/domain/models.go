package domain

import (
	"math"
	"time"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	PasswordHint string    `db:"password_hint"`
	CreatedAt    time.Time `db:"created_at"`
}

// SavingsRecord is one confirmed save decision. Amounts are whole currency
// units.
type SavingsRecord struct {
	ID          int       `db:"id"`
	UserID      int       `db:"user_id"`
	Marketplace string    `db:"marketplace"`
	Title       string    `db:"title"`
	Paid        int       `db:"paid"`
	Saved       int       `db:"saved"`
	Score       float64   `db:"score"`
	WaitCost    int       `db:"wait_cost"`
	RecordedAt  time.Time `db:"recorded_at"`
}

// Candidate is a provider listing that survived filtering. TotalPrice is
// always BasePrice+ShipFee and drives both ordering and uniqueness.
type Candidate struct {
	BasePrice  int    `json:"base_price"`
	ShipFee    int    `json:"ship_fee"`
	TotalPrice int    `json:"total_price"`
	Title      string `json:"title"`
	Link       string `json:"link"`
	Mall       string `json:"mall"`
}

// EfficiencyScore is saved/(paid+saved)*100 rounded to one decimal. A zero
// denominator scores 0.
func EfficiencyScore(paid, saved int) float64 {
	base := paid + saved
	if base == 0 {
		return 0
	}
	return math.Round(float64(saved)/float64(base)*1000) / 10
}

type Evaluation struct {
	AdjustedPrice  int     `json:"adjusted_price"`
	Diff           int     `json:"diff"`
	WaitCost       int     `json:"wait_cost"`
	NetBenefit     int     `json:"net_benefit"`
	Score          float64 `json:"score"`
	Recommendation string  `json:"recommendation"`
}
