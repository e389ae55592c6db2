package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/yhw923/zenkeeper/docs"
	"github.com/yhw923/zenkeeper/internal/affiliate"
	"github.com/yhw923/zenkeeper/internal/config"
	"github.com/yhw923/zenkeeper/internal/handlers/auth"
	"github.com/yhw923/zenkeeper/internal/handlers/ledger"
	"github.com/yhw923/zenkeeper/internal/handlers/search"
	"github.com/yhw923/zenkeeper/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:   auth.NewMockService(ctrl),
		SearchService: search.NewMockService(ctrl),
		LedgerService: ledger.NewMockService(ctrl),
	}

	h := New(services, affiliate.New(&config.Config{}))
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockSearchHandler := NewMockSearchHandler(ctrl)
	mockLedgerHandler := NewMockLedgerHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockSearchHandler.EXPECT().Search(gomock.Any(), gomock.Any()).AnyTimes()
	mockSearchHandler.EXPECT().Evaluate(gomock.Any(), gomock.Any()).AnyTimes()
	mockSearchHandler.EXPECT().Suggest(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().AddRecord(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().GetRecords(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().UpdateRecord(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().DeleteRecords(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().GetSummary(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().ExportRecords(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().ImportRecords(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:   mockAuthHandler,
		SearchHandler: mockSearchHandler,
		LedgerHandler: mockLedgerHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/search", http.StatusOK},
		{"POST", "/api/search/evaluate", http.StatusOK},
		{"GET", "/api/search/suggest", http.StatusOK},
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"POST", "/api/user/records", http.StatusUnauthorized},
		{"GET", "/api/user/records", http.StatusUnauthorized},
		{"DELETE", "/api/user/records", http.StatusUnauthorized},
		{"PUT", "/api/user/records/1", http.StatusUnauthorized},
		{"GET", "/api/user/records/export", http.StatusUnauthorized},
		{"POST", "/api/user/records/import", http.StatusUnauthorized},
		{"GET", "/api/user/summary", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
