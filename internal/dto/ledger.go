package dto

import (
	"time"

	"github.com/yhw923/zenkeeper/internal/domain"
)

type AddRecordRequestDTO struct {
	Marketplace string `json:"marketplace" example:"naver"`
	Title       string `json:"title" validate:"required"`
	Paid        int    `json:"paid" example:"83000"`
	Saved       int    `json:"saved" example:"17000"`
	WaitCost    int    `json:"wait_cost" example:"5508"`
}

type RecordResponseDTO struct {
	ID          int       `json:"id"`
	Marketplace string    `json:"marketplace"`
	Title       string    `json:"title"`
	Paid        int       `json:"paid"`
	Saved       int       `json:"saved"`
	Score       float64   `json:"score" example:"17.0"`
	WaitCost    int       `json:"wait_cost"`
	RecordedAt  time.Time `json:"recorded_at"`
}

func NewRecordResponse(record domain.SavingsRecord) RecordResponseDTO {
	return RecordResponseDTO{
		ID:          record.ID,
		Marketplace: record.Marketplace,
		Title:       record.Title,
		Paid:        record.Paid,
		Saved:       record.Saved,
		Score:       record.Score,
		WaitCost:    record.WaitCost,
		RecordedAt:  record.RecordedAt,
	}
}

type UpdateRecordRequestDTO struct {
	Title string `json:"title" validate:"required"`
	Paid  int    `json:"paid"`
	Saved int    `json:"saved"`
}

type DeleteRecordsRequestDTO struct {
	IDs []int `json:"ids"`
}

type SummaryResponseDTO struct {
	TotalSaved int    `json:"total_saved" example:"152000"`
	Tier       int    `json:"tier" example:"3"`
	TierName   string `json:"tier_name" example:"master"`
}

type ImportResponseDTO struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
