package repo

import (
	"github.com/yhw923/zenkeeper/internal/pg"
	recordrepo "github.com/yhw923/zenkeeper/internal/repo/record-repo"
	userrepo "github.com/yhw923/zenkeeper/internal/repo/user-repo"
	"github.com/yhw923/zenkeeper/internal/service/authservice"
	"github.com/yhw923/zenkeeper/internal/service/ledgerservice"
)

type Repositories struct {
	UserRepo   authservice.Repo
	UserReader ledgerservice.UserRepo
	RecordRepo ledgerservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	recordRepo := recordrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:   userRepo,
		UserReader: userRepo,
		RecordRepo: recordRepo,
	}
}
