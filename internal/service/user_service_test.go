package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"covoit/internal/errors"
	"covoit/internal/model"
)

// A nil cache client behaves as a permanent miss, so these tests
// exercise the repository path.
func TestUserService_GetSummary(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{
		ID:        7,
		Nom:       "Durand",
		Prenom:    "Paul",
		Telephone: "0601020304",
		Mail:      "paul.durand@covoit.fr",
	}, nil)

	svc := NewUserService(repo, nil)
	summary, err := svc.GetSummary(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, &UserSummary{
		Nom:       "Durand",
		Telephone: "0601020304",
		Email:     "paul.durand@covoit.fr",
	}, summary)
}

func TestUserService_GetSummaryUnknownUser(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(repo, nil)
	summary, err := svc.GetSummary(context.Background(), 404)

	assert.Equal(t, errors.ErrUserNotFound, err)
	assert.Nil(t, summary)
}

func TestUserService_List(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("List", mock.Anything).Return([]model.User{
		{ID: 1, Nom: "Martin"},
		{ID: 2, Nom: "Durand"},
	}, nil)

	svc := NewUserService(repo, nil)
	users, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, users, 2)
}
