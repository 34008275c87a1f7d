package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"covoit/internal/auth"
	"covoit/internal/errors"
	"covoit/internal/model"
	"covoit/internal/repository"
)

const bcryptCost = 10

// minPasswordLength is enforced before any store access.
const minPasswordLength = 8

// AuthService verifies credentials, issues and renews the session
// credential, and handles the one-shot password initialization.
type AuthService interface {
	Authenticate(ctx context.Context, mail, password string) (string, *model.User, error)
	VerifyAndRenew(ctx context.Context, raw string) (*model.User, string, error)
	InitializePassword(ctx context.Context, mail, nom, password string) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// Ensure the service satisfies the middleware contract.
var _ auth.SessionVerifier = (AuthService)(nil)

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Authenticate checks the password against the stored hash and issues
// a session token. Short passwords are rejected before the store is
// consulted; the three failure modes keep distinct messages so the
// login page can surface them, as the source app does.
func (s *authService) Authenticate(ctx context.Context, mail, password string) (string, *model.User, error) {
	if len(password) < minPasswordLength {
		return "", nil, errors.ErrPasswordTropCourt
	}

	user, err := s.userRepo.FindByMail(ctx, mail)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil, errors.ErrMailInconnu
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if user.Password == "" {
		return "", nil, errors.ErrPasswordNonDefini
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.ErrPasswordIncorrect
	}

	token, err := s.jwtService.GenerateSessionToken(user.ID, user.Nom, user.Prenom, user.Mail, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate session token: %w", err)
	}
	return token, user, nil
}

// VerifyAndRenew validates a raw cookie value, loads the referenced
// account and reissues a fresh token, giving the session its sliding
// 24h window.
func (s *authService) VerifyAndRenew(ctx context.Context, raw string) (*model.User, string, error) {
	claims, err := s.jwtService.ValidateToken(auth.StripCookiePrefix(raw))
	if err != nil {
		return nil, "", errors.ErrSessionInvalide
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, "", errors.ErrUserNotFound
		}
		return nil, "", fmt.Errorf("load user: %w", err)
	}

	token, err := s.jwtService.GenerateSessionToken(user.ID, user.Nom, user.Prenom, user.Mail, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("renew session token: %w", err)
	}
	return user, token, nil
}

// InitializePassword sets the password of an account that does not
// have one yet. The account is matched on both mail and surname, and
// the operation is single-use: a second call conflicts.
func (s *authService) InitializePassword(ctx context.Context, mail, nom, password string) error {
	if len(password) < minPasswordLength {
		return errors.ErrPasswordTropCourt
	}

	user, err := s.userRepo.FindByMailAndNom(ctx, mail, nom)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if user.Password != "" {
		return errors.ErrPasswordDejaDefini
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return fmt.Errorf("store password: %w", err)
	}
	return nil
}
