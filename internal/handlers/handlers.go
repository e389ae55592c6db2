package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/yhw923/zenkeeper/docs"
	"github.com/yhw923/zenkeeper/internal/affiliate"
	authhandlers "github.com/yhw923/zenkeeper/internal/handlers/auth"
	ledgerhandlers "github.com/yhw923/zenkeeper/internal/handlers/ledger"
	searchhandlers "github.com/yhw923/zenkeeper/internal/handlers/search"
	"github.com/yhw923/zenkeeper/internal/service"
	"github.com/yhw923/zenkeeper/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type SearchHandler interface {
	Search(w http.ResponseWriter, r *http.Request)
	Evaluate(w http.ResponseWriter, r *http.Request)
	Suggest(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	GetRecords(w http.ResponseWriter, r *http.Request)
	AddRecord(w http.ResponseWriter, r *http.Request)
	UpdateRecord(w http.ResponseWriter, r *http.Request)
	DeleteRecords(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	ExportRecords(w http.ResponseWriter, r *http.Request)
	ImportRecords(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	SearchHandler SearchHandler
	LedgerHandler LedgerHandler
}

func New(s *service.Services, rewriter *affiliate.Rewriter) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		SearchHandler: searchhandlers.New(s.SearchService, rewriter),
		LedgerHandler: ledgerhandlers.New(s.LedgerService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/search", func(r chi.Router) {
		r.Post("/", h.SearchHandler.Search)
		r.Post("/evaluate", h.SearchHandler.Evaluate)
		r.Get("/suggest", h.SearchHandler.Suggest)
	})
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/records", func(r chi.Router) {
				r.Post("/", h.LedgerHandler.AddRecord)
				r.Get("/", h.LedgerHandler.GetRecords)
				r.Delete("/", h.LedgerHandler.DeleteRecords)
				r.Put("/{recordID}", h.LedgerHandler.UpdateRecord)
				r.Get("/export", h.LedgerHandler.ExportRecords)
				r.Post("/import", h.LedgerHandler.ImportRecords)
			})
			r.Get("/summary", h.LedgerHandler.GetSummary)
		})
	})

	return r
}
