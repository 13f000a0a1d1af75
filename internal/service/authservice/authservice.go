package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/GlebRadaev/campuspay/pkg/auth"
	"go.uber.org/zap"
)

const (
	tokenTTL       = 15 * time.Minute
	reservedPrefix = "APP-"
)

var (
	ErrUserExists         = domain.NewError(domain.ErrConflict, "username already taken")
	ErrReservedLogin      = domain.NewError(domain.ErrInvalid, "login is reserved")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// Service manages accounts. A user's login is its address on the ledger.
type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	admin       string
}

// New reserves the admin login: it can only be provisioned, never registered.
func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, admin string) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		admin:       admin,
	}
}

func (s *Service) reserved(login string) bool {
	return strings.HasPrefix(login, reservedPrefix) || (s.admin != "" && login == s.admin)
}

func (s *Service) Register(ctx context.Context, login, password string) (*domain.User, error) {
	if s.reserved(login) {
		zap.L().Info("reserved login rejected", zap.String("login", login))
		return nil, ErrReservedLogin
	}
	return s.create(ctx, login, password)
}

// ProvisionAdmin creates the admin account with the configured password. An
// existing admin account is left untouched.
func (s *Service) ProvisionAdmin(ctx context.Context, password string) error {
	if s.admin == "" {
		return nil
	}
	_, err := s.create(ctx, s.admin, password)
	if errors.Is(err, ErrUserExists) {
		return nil
	}
	return err
}

func (s *Service) create(ctx context.Context, login, password string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", login))
		return nil, ErrUserExists
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Login:        login,
		PasswordHash: hashedPassword,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.String("login", login), zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

// GenerateToken issues a bearer token whose subject is the caller address.
func (s *Service) GenerateToken(login string) (string, error) {
	token, err := s.jwtService.GenerateJWT(login, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
