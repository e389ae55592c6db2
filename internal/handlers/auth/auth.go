package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yhw923/zenkeeper/internal/domain"
	"github.com/yhw923/zenkeeper/internal/dto"
	"github.com/yhw923/zenkeeper/internal/service/authservice"
	"github.com/yhw923/zenkeeper/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, login, password, hint string) (*domain.User, error)
	Verify(ctx context.Context, login, password string) (*authservice.VerifyResult, error)
	GenerateToken(userID int) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create the account that gates the savings ledger; the password and hint become the permanent credential.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"User already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Register(r.Context(), req.Login, req.Password, req.Hint)
	if err != nil {
		if errors.Is(err, authservice.ErrLoginTaken) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		Message: "User successfully registered",
	})
}

// Login godoc
//
//	@Summary		Verify user credentials
//	@Description	Tri-state credential check: NEW for an unknown login, SUCCESS with a bearer token and the record set, FAIL with the password hint.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO	"Status NEW or SUCCESS"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	dto.LoginResponseDTO	"Status FAIL with hint"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.authService.Verify(r.Context(), req.Login, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	switch result.Status {
	case authservice.StatusNew:
		utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
			Status: string(authservice.StatusNew),
		})
	case authservice.StatusFail:
		utils.RespondWithJSON(w, http.StatusUnauthorized, dto.LoginResponseDTO{
			Status: string(authservice.StatusFail),
			Hint:   result.Hint,
		})
	default:
		token, err := h.authService.GenerateToken(result.User.ID)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
			return
		}
		records := make([]dto.RecordResponseDTO, len(result.Records))
		for i, record := range result.Records {
			records[i] = dto.NewRecordResponse(record)
		}
		w.Header().Set("Authorization", "Bearer "+token)
		utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
			Status:  string(authservice.StatusSuccess),
			Records: records,
		})
	}
}
