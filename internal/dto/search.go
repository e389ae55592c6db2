package dto

type SearchRequestDTO struct {
	URL            string `json:"url"`
	Name           string `json:"name"`
	ReferencePrice int    `json:"reference_price" example:"100000"`
}

type CandidateDTO struct {
	Mall          string `json:"mall" example:"naver"`
	Title         string `json:"title"`
	BasePrice     int    `json:"base_price" example:"80000"`
	ShipFee       int    `json:"ship_fee" example:"3000"`
	TotalPrice    int    `json:"total_price" example:"83000"`
	Link          string `json:"link"`
	AffiliateLink string `json:"affiliate_link"`
}

type SearchResponseDTO struct {
	Query      string         `json:"query"`
	Candidates []CandidateDTO `json:"candidates"`
}

type SuggestResponseDTO struct {
	Query string `json:"query" example:"SM-S928N"`
}

type EvaluateRequestDTO struct {
	TotalPrice     int  `json:"total_price" example:"83000"`
	Adjustment     int  `json:"adjustment" example:"-2000"`
	ReferencePrice int  `json:"reference_price" example:"100000"`
	TimeValueRate  *int `json:"time_value_rate,omitempty" example:"10030"`
}

type EvaluateResponseDTO struct {
	AdjustedPrice  int     `json:"adjusted_price"`
	Diff           int     `json:"diff"`
	WaitCost       int     `json:"wait_cost"`
	NetBenefit     int     `json:"net_benefit"`
	Score          float64 `json:"score"`
	Recommendation string  `json:"recommendation" example:"switch"`
}
