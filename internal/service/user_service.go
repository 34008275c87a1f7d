package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"covoit/internal/cache"
	"covoit/internal/errors"
	"covoit/internal/model"
	"covoit/internal/repository"
)

const userSummaryTTL = 5 * time.Minute

// UserSummary is the public slice of an account shown in the trip
// detail modal.
type UserSummary struct {
	Nom       string `json:"nom"`
	Telephone string `json:"telephone"`
	Email     string `json:"email"`
}

// UserService exposes read-only account operations. Accounts are
// never mutated here; creation happens out of band and the password
// write path lives in AuthService.
type UserService interface {
	GetSummary(ctx context.Context, id uint) (*UserSummary, error)
	List(ctx context.Context) ([]model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user_summary:%d", id)
}

// GetSummary returns the account's public fields, read through the
// redis cache.
func (s *userService) GetSummary(ctx context.Context, id uint) (*UserSummary, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached UserSummary
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	summary := &UserSummary{
		Nom:       user.Nom,
		Telephone: user.Telephone,
		Email:     user.Mail,
	}
	if payload, err := json.Marshal(summary); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userSummaryTTL)
	}
	return summary, nil
}

// List returns every account, for the admin menu.
func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}
