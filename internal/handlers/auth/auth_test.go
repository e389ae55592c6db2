package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/yhw923/zenkeeper/internal/domain"
	"github.com/yhw923/zenkeeper/internal/dto"
	"github.com/yhw923/zenkeeper/internal/service/authservice"
)

func setup(t *testing.T) (*AuthHandler, *MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(s *MockService)
		wantStatus int
		wantToken  bool
	}{
		{
			name: "registers and issues a token",
			body: `{"login":"alice","password":"hunter2","hint":"first pet"}`,
			mockSetup: func(s *MockService) {
				s.EXPECT().
					Register(gomock.Any(), "alice", "hunter2", "first pet").
					Return(&domain.User{ID: 7, Login: "alice"}, nil)
				s.EXPECT().GenerateToken(7).Return("token-7", nil)
			},
			wantStatus: http.StatusOK,
			wantToken:  true,
		},
		{
			name:       "rejects invalid body",
			body:       `{invalid`,
			mockSetup:  func(s *MockService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "conflict on taken login",
			body: `{"login":"alice","password":"hunter2"}`,
			mockSetup: func(s *MockService) {
				s.EXPECT().
					Register(gomock.Any(), "alice", "hunter2", "").
					Return(nil, authservice.ErrLoginTaken)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "internal error from service",
			body: `{"login":"alice","password":"hunter2"}`,
			mockSetup: func(s *MockService) {
				s.EXPECT().
					Register(gomock.Any(), "alice", "hunter2", "").
					Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := setup(t)
			tt.mockSetup(service)

			req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler.Register(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantToken {
				assert.Equal(t, "Bearer token-7", rr.Header().Get("Authorization"))
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	records := []domain.SavingsRecord{
		{ID: 1, UserID: 7, Marketplace: "naver", Title: "TV 55 inch", Paid: 83000, Saved: 17000, Score: 17.0, RecordedAt: time.Now()},
	}

	tests := []struct {
		name       string
		body       string
		mockSetup  func(s *MockService)
		wantStatus int
		check      func(t *testing.T, rr *httptest.ResponseRecorder)
	}{
		{
			name: "unknown login reports NEW",
			body: `{"login":"nobody","password":"x"}`,
			mockSetup: func(s *MockService) {
				s.EXPECT().
					Verify(gomock.Any(), "nobody", "x").
					Return(&authservice.VerifyResult{Status: authservice.StatusNew}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var resp dto.LoginResponseDTO
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, string(authservice.StatusNew), resp.Status)
				assert.Empty(t, rr.Header().Get("Authorization"))
			},
		},
		{
			name: "wrong password reports FAIL with hint",
			body: `{"login":"alice","password":"wrong"}`,
			mockSetup: func(s *MockService) {
				s.EXPECT().
					Verify(gomock.Any(), "alice", "wrong").
					Return(&authservice.VerifyResult{Status: authservice.StatusFail, Hint: "first pet"}, nil)
			},
			wantStatus: http.StatusUnauthorized,
			check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var resp dto.LoginResponseDTO
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, string(authservice.StatusFail), resp.Status)
				assert.Equal(t, "first pet", resp.Hint)
			},
		},
		{
			name: "correct password returns token and records",
			body: `{"login":"alice","password":"hunter2"}`,
			mockSetup: func(s *MockService) {
				s.EXPECT().
					Verify(gomock.Any(), "alice", "hunter2").
					Return(&authservice.VerifyResult{
						Status:  authservice.StatusSuccess,
						User:    &domain.User{ID: 7, Login: "alice"},
						Records: records,
					}, nil)
				s.EXPECT().GenerateToken(7).Return("token-7", nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var resp dto.LoginResponseDTO
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, string(authservice.StatusSuccess), resp.Status)
				assert.Len(t, resp.Records, 1)
				assert.Equal(t, "Bearer token-7", rr.Header().Get("Authorization"))
			},
		},
		{
			name:       "rejects invalid body",
			body:       `{invalid`,
			mockSetup:  func(s *MockService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "internal error from service",
			body: `{"login":"alice","password":"hunter2"}`,
			mockSetup: func(s *MockService) {
				s.EXPECT().
					Verify(gomock.Any(), "alice", "hunter2").
					Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := setup(t)
			tt.mockSetup(service)

			req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler.Login(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.check != nil {
				tt.check(t, rr)
			}
		})
	}
}
