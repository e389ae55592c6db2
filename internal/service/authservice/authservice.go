package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/yhw923/zenkeeper/internal/domain"
	"github.com/yhw923/zenkeeper/internal/handlers/ledger"
	"github.com/yhw923/zenkeeper/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// VerifyStatus is the tri-state outcome of a credential check. FAIL covers
// both a wrong and a missing password for an existing account; an unknown
// login is NEW no matter what password was supplied.
type VerifyStatus string

const (
	StatusNew     VerifyStatus = "NEW"
	StatusSuccess VerifyStatus = "SUCCESS"
	StatusFail    VerifyStatus = "FAIL"
)

type VerifyResult struct {
	Status  VerifyStatus
	User    *domain.User
	Records []domain.SavingsRecord
	Hint    string
}

var ErrLoginTaken = errors.New("username already taken")

type Service struct {
	userRepo      Repo
	ledgerService ledger.Service
	hashService   auth.HashServiceInterface
	jwtService    auth.JWTServiceInterface
}

func New(repo Repo, ledgerService ledger.Service, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:      repo,
		ledgerService: ledgerService,
		hashService:   hashService,
		jwtService:    jwtService,
	}
}

// Register creates the account that gates a user's ledger. The password and
// hint given here become the permanent credential; there is no way to
// attach a different password to later records.
func (s *Service) Register(ctx context.Context, login, password, hint string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", login))
		return nil, ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Login:        login,
		PasswordHash: hashedPassword,
		PasswordHint: hint,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return newUser, nil
}

// Verify checks a login/password pair against the store. On SUCCESS the
// user's record set rides along so the caller needs no second round-trip;
// on FAIL the stored hint is exposed instead.
func (s *Service) Verify(ctx context.Context, login, password string) (*VerifyResult, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return &VerifyResult{Status: StatusNew}, nil
	}

	if password == "" || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("verification failed", zap.String("login", login))
		return &VerifyResult{Status: StatusFail, Hint: user.PasswordHint}, nil
	}

	records, err := s.ledgerService.GetRecords(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return &VerifyResult{Status: StatusSuccess, User: user, Records: records}, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
