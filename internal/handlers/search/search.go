package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yhw923/zenkeeper/internal/domain"
	"github.com/yhw923/zenkeeper/internal/dto"
	"github.com/yhw923/zenkeeper/internal/search"
	"github.com/yhw923/zenkeeper/internal/service/searchservice"
	"github.com/yhw923/zenkeeper/pkg/utils"
)

type Service interface {
	Search(ctx context.Context, rawURL, name string, referencePrice int) (string, []domain.Candidate, error)
	Suggest(rawURL string) string
	Evaluate(totalPrice, adjustment, referencePrice int, rate *int) domain.Evaluation
}

type Rewriter interface {
	Rewrite(link, mall string) string
}

type SearchHandler struct {
	searchService Service
	rewriter      Rewriter
}

func New(searchService Service, rewriter Rewriter) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		rewriter:      rewriter,
	}
}

// Search godoc
//
//	@Summary		Find cheaper alternatives
//	@Description	Query the shop-search provider and return up to three candidates ranked by shipping-inclusive total price.
//	@Tags			Search
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SearchRequestDTO	true	"Product URL and/or name plus the current price"
//	@Success		200		{object}	dto.SearchResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing query or reference price"
//	@Failure		502		{object}	utils.Response	"Search provider failure"
//	@Router			/api/search [post]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req dto.SearchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ReferencePrice <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Reference price must be positive")
		return
	}

	query, candidates, err := h.searchService.Search(r.Context(), req.URL, req.Name, req.ReferencePrice)
	if err != nil {
		switch {
		case errors.Is(err, searchservice.ErrEmptyQuery):
			utils.RespondWithError(w, http.StatusBadRequest, "Enter a product name or URL")
		case errors.Is(err, search.ErrUpstream):
			utils.RespondWithError(w, http.StatusBadGateway, "Search provider failure")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := dto.SearchResponseDTO{
		Query:      query,
		Candidates: make([]dto.CandidateDTO, len(candidates)),
	}
	for i, c := range candidates {
		response.Candidates[i] = dto.CandidateDTO{
			Mall:          c.Mall,
			Title:         c.Title,
			BasePrice:     c.BasePrice,
			ShipFee:       c.ShipFee,
			TotalPrice:    c.TotalPrice,
			Link:          c.Link,
			AffiliateLink: h.rewriter.Rewrite(c.Link, c.Mall),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Evaluate godoc
//
//	@Summary		Evaluate a candidate
//	@Description	Weigh a candidate's adjusted price against the reference price and the configured value of the buyer's time.
//	@Tags			Search
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.EvaluateRequestDTO	true	"Candidate total, manual adjustment, reference price, optional hourly rate"
//	@Success		200		{object}	dto.EvaluateResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Router			/api/search/evaluate [post]
func (h *SearchHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req dto.EvaluateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ReferencePrice <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Reference price must be positive")
		return
	}

	evaluation := h.searchService.Evaluate(req.TotalPrice, req.Adjustment, req.ReferencePrice, req.TimeValueRate)
	utils.RespondWithJSON(w, http.StatusOK, dto.EvaluateResponseDTO{
		AdjustedPrice:  evaluation.AdjustedPrice,
		Diff:           evaluation.Diff,
		WaitCost:       evaluation.WaitCost,
		NetBenefit:     evaluation.NetBenefit,
		Score:          evaluation.Score,
		Recommendation: evaluation.Recommendation,
	})
}

// Suggest godoc
//
//	@Summary		Suggest a search query
//	@Description	Derive a model-code query from a product URL; empty when nothing is extractable.
//	@Tags			Search
//	@Produce		json
//	@Param			url	query		string	true	"Product URL"
//	@Success		200	{object}	dto.SuggestResponseDTO
//	@Router			/api/search/suggest [get]
func (h *SearchHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.SuggestResponseDTO{
		Query: h.searchService.Suggest(r.URL.Query().Get("url")),
	})
}
