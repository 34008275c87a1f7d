package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"covoit/internal/config"
	"covoit/internal/errors"
	"covoit/internal/model"
	"covoit/internal/repository"
)

// MockAgenceRepository is a mock implementation of AgenceRepository.
type MockAgenceRepository struct {
	mock.Mock
}

func (m *MockAgenceRepository) Create(ctx context.Context, agence *model.Agence) error {
	args := m.Called(ctx, agence)
	return args.Error(0)
}

func (m *MockAgenceRepository) FindByID(ctx context.Context, id uint) (*model.Agence, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Agence), args.Error(1)
}

func (m *MockAgenceRepository) Save(ctx context.Context, agence *model.Agence) error {
	args := m.Called(ctx, agence)
	return args.Error(0)
}

func (m *MockAgenceRepository) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAgenceRepository) CountReferencingTrajets(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAgenceRepository) DeleteReferencingTrajets(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAgenceRepository) List(ctx context.Context) ([]model.Agence, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Agence), args.Error(1)
}

func (m *MockAgenceRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.AgenceRepository) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx, m)
}

func TestAgenceService_Create(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedError error
	}{
		{
			name:          "successful creation",
			input:         "Agence de Lyon",
			expectedError: nil,
		},
		{
			name:          "trimmed name is stored",
			input:         "  Agence de Lyon  ",
			expectedError: nil,
		},
		{
			name:          "blank name",
			input:         "   ",
			expectedError: errors.ErrNomAgenceRequis,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockAgenceRepository)
			if tt.expectedError == nil {
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Agence")).Return(nil)
			}

			svc := NewAgenceService(repo, config.AgenceDeleteUnrestricted)
			agence, confirmation, err := svc.Create(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, agence)
				repo.AssertNotCalled(t, "Create")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Agence de Lyon", agence.Nom)
				assert.Equal(t, "Agence ajoutée : Agence de Lyon", confirmation)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAgenceService_Update(t *testing.T) {
	tests := []struct {
		name          string
		rawID         string
		newName       string
		setup         func(*MockAgenceRepository)
		expectedError error
	}{
		{
			name:    "successful rename",
			rawID:   "3",
			newName: "Agence de Nantes",
			setup: func(m *MockAgenceRepository) {
				m.On("FindByID", mock.Anything, uint(3)).Return(&model.Agence{ID: 3, Nom: "Agence de Lyon"}, nil)
				m.On("Save", mock.Anything, mock.AnythingOfType("*model.Agence")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "blank id",
			rawID:         "",
			newName:       "Agence de Nantes",
			setup:         func(m *MockAgenceRepository) {},
			expectedError: errors.ErrDonneesInvalides,
		},
		{
			name:          "blank name",
			rawID:         "3",
			newName:       "   ",
			setup:         func(m *MockAgenceRepository) {},
			expectedError: errors.ErrDonneesInvalides,
		},
		{
			name:    "unknown agency",
			rawID:   "404",
			newName: "Agence de Nantes",
			setup: func(m *MockAgenceRepository) {
				m.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrAgenceIntrouvable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockAgenceRepository)
			tt.setup(repo)

			svc := NewAgenceService(repo, config.AgenceDeleteUnrestricted)
			confirmation, err := svc.Update(context.Background(), tt.rawID, tt.newName)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				repo.AssertNotCalled(t, "Save")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Agence mise à jour : Agence de Nantes", confirmation)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAgenceService_DeleteUnrestricted(t *testing.T) {
	repo := new(MockAgenceRepository)
	repo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	repo.On("Delete", mock.Anything, uint(3)).Return(int64(1), nil)

	svc := NewAgenceService(repo, config.AgenceDeleteUnrestricted)
	confirmation, err := svc.Delete(context.Background(), "3")

	assert.NoError(t, err)
	assert.Equal(t, "Agence supprimée", confirmation)
	repo.AssertNotCalled(t, "CountReferencingTrajets")
	repo.AssertNotCalled(t, "DeleteReferencingTrajets")
}

// Deleting an id that was never created reports not-found rather than
// success.
func TestAgenceService_DeleteUnknownAgency(t *testing.T) {
	repo := new(MockAgenceRepository)
	repo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	repo.On("Delete", mock.Anything, uint(404)).Return(int64(0), nil)

	svc := NewAgenceService(repo, config.AgenceDeleteUnrestricted)
	_, err := svc.Delete(context.Background(), "404")

	assert.Equal(t, errors.ErrAgenceIntrouvable, err)
}

func TestAgenceService_DeleteBlockPolicy(t *testing.T) {
	repo := new(MockAgenceRepository)
	repo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	repo.On("CountReferencingTrajets", mock.Anything, uint(3)).Return(int64(2), nil)

	svc := NewAgenceService(repo, config.AgenceDeleteBlock)
	_, err := svc.Delete(context.Background(), "3")

	assert.Equal(t, errors.ErrAgenceUtilisee, err)
	repo.AssertNotCalled(t, "Delete")
}

func TestAgenceService_DeleteCascadePolicy(t *testing.T) {
	repo := new(MockAgenceRepository)
	repo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	repo.On("DeleteReferencingTrajets", mock.Anything, uint(3)).Return(nil)
	repo.On("Delete", mock.Anything, uint(3)).Return(int64(1), nil)

	svc := NewAgenceService(repo, config.AgenceDeleteCascade)
	confirmation, err := svc.Delete(context.Background(), "3")

	assert.NoError(t, err)
	assert.Equal(t, "Agence supprimée", confirmation)
	repo.AssertExpectations(t)
}
