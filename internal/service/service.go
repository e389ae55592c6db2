package service

import (
	"github.com/yhw923/zenkeeper/internal/handlers/auth"
	"github.com/yhw923/zenkeeper/internal/handlers/ledger"
	"github.com/yhw923/zenkeeper/internal/handlers/search"

	pkgauth "github.com/yhw923/zenkeeper/pkg/auth"

	"github.com/yhw923/zenkeeper/internal/config"
	"github.com/yhw923/zenkeeper/internal/repo"
	authservice "github.com/yhw923/zenkeeper/internal/service/authservice"
	ledgerservice "github.com/yhw923/zenkeeper/internal/service/ledgerservice"
	searchservice "github.com/yhw923/zenkeeper/internal/service/searchservice"
)

type Services struct {
	AuthService   auth.Service
	SearchService search.Service
	LedgerService ledger.Service
}

func New(cfg *config.Config, repo *repo.Repositories, searchClient searchservice.SearchClient) *Services {
	ledgerService := ledgerservice.New(repo.RecordRepo, repo.UserReader)
	searchService := searchservice.New(cfg, searchClient)
	authService := authservice.New(repo.UserRepo, ledgerService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:   authService,
		SearchService: searchService,
		LedgerService: ledgerService,
	}
}
