package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/yhw923/zenkeeper/internal/domain"
	"github.com/yhw923/zenkeeper/internal/dto"
	"github.com/yhw923/zenkeeper/internal/service/ledgerservice"
	"github.com/yhw923/zenkeeper/pkg/auth"
	"github.com/yhw923/zenkeeper/pkg/utils"
)

type Service interface {
	AddRecord(ctx context.Context, userID int, record *domain.SavingsRecord) (*domain.SavingsRecord, error)
	GetRecords(ctx context.Context, userID int) ([]domain.SavingsRecord, error)
	UpdateRecord(ctx context.Context, userID, recordID int, title string, paid, saved int) (*domain.SavingsRecord, error)
	DeleteRecords(ctx context.Context, userID int, ids []int) error
	Summary(ctx context.Context, userID int) (int, ledgerservice.Tier, error)
	ExportCSV(ctx context.Context, userID int, w io.Writer) error
	ImportCSV(ctx context.Context, userID int, r io.Reader) (int, int, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// GetRecords godoc
//
//	@Summary		List savings records
//	@Description	Get the authenticated user's savings diary, oldest first.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RecordResponseDTO
//	@Success		204	{object}	utils.Response	"No records yet"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/records [get]
func (h *LedgerHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	records, err := h.ledgerService.GetRecords(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch records")
		return
	}
	if len(records) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Records not found")
		return
	}

	response := make([]dto.RecordResponseDTO, len(records))
	for i, record := range records {
		response[i] = dto.NewRecordResponse(record)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// AddRecord godoc
//
//	@Summary		Append a savings record
//	@Description	Record one confirmed save decision. The efficiency score is computed server-side.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddRecordRequestDTO	true	"Record payload"
//	@Success		200		{object}	dto.RecordResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/records [post]
func (h *LedgerHandler) AddRecord(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AddRecordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}

	record, err := h.ledgerService.AddRecord(r.Context(), userID, &domain.SavingsRecord{
		Marketplace: req.Marketplace,
		Title:       req.Title,
		Paid:        req.Paid,
		Saved:       req.Saved,
		WaitCost:    req.WaitCost,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRecordResponse(*record))
}

// UpdateRecord godoc
//
//	@Summary		Update a savings record
//	@Description	Rewrite title, paid and saved amounts of one owned record; the score is recomputed.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			recordID	path		int							true	"Record id"
//	@Param			request		body		dto.UpdateRecordRequestDTO	true	"Fields to rewrite"
//	@Success		200			{object}	dto.RecordResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Record not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/user/records/{recordID} [put]
func (h *LedgerHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	recordID, err := strconv.Atoi(chi.URLParam(r, "recordID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid record id")
		return
	}

	var req dto.UpdateRecordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.ledgerService.UpdateRecord(r.Context(), userID, recordID, req.Title, req.Paid, req.Saved)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrRecordNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Record not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRecordResponse(*record))
}

// DeleteRecords godoc
//
//	@Summary		Delete savings records
//	@Description	Remove a set of owned records by id.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DeleteRecordsRequestDTO	true	"Record ids"
//	@Success		200		{object}	utils.Response	"Records deleted"
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/records [delete]
func (h *LedgerHandler) DeleteRecords(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DeleteRecordsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.ledgerService.DeleteRecords(r.Context(), userID, req.IDs); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Records deleted"})
}

// GetSummary godoc
//
//	@Summary		Savings summary
//	@Description	Cumulative saved amount and the resulting tier.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SummaryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/summary [get]
func (h *LedgerHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	total, tier, err := h.ledgerService.Summary(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SummaryResponseDTO{
		TotalSaved: total,
		Tier:       int(tier),
		TierName:   tier.String(),
	})
}

// ExportRecords godoc
//
//	@Summary		Export the savings diary
//	@Description	Download the user's records as the legacy UTF-8-BOM CSV.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		text/csv
//	@Success		200	{string}	string	"CSV file"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/records/export [get]
func (h *LedgerHandler) ExportRecords(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="savings_log.csv"`)
	if err := h.ledgerService.ExportCSV(r.Context(), userID, w); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
}

// ImportRecords godoc
//
//	@Summary		Import a legacy savings log
//	@Description	Ingest a legacy CSV into the account; malformed rows are skipped.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			text/csv
//	@Produce		json
//	@Success		200	{object}	dto.ImportResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/records/import [post]
func (h *LedgerHandler) ImportRecords(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	imported, skipped, err := h.ledgerService.ImportCSV(r.Context(), userID, r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ImportResponseDTO{
		Imported: imported,
		Skipped:  skipped,
	})
}
