package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"covoit/internal/auth"
	"covoit/internal/errors"
	"covoit/internal/model"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService("test-secret")
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_Authenticate(t *testing.T) {
	tests := []struct {
		name          string
		mail          string
		password      string
		setup         func(*testing.T, *MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			mail:     "claire.martin@covoit.fr",
			password: "motdepasse",
			setup: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByMail", mock.Anything, "claire.martin@covoit.fr").Return(&model.User{
					ID:       1,
					Nom:      "Martin",
					Prenom:   "Claire",
					Mail:     "claire.martin@covoit.fr",
					Password: hashFor(t, "motdepasse"),
					Role:     model.RoleAdmin,
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:          "password too short skips the store",
			mail:          "claire.martin@covoit.fr",
			password:      "court",
			setup:         func(t *testing.T, m *MockUserRepository) {},
			expectedError: errors.ErrPasswordTropCourt,
		},
		{
			name:     "unknown mail",
			mail:     "inconnu@covoit.fr",
			password: "motdepasse",
			setup: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByMail", mock.Anything, "inconnu@covoit.fr").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrMailInconnu,
		},
		{
			name:     "password never initialized",
			mail:     "paul.durand@covoit.fr",
			password: "motdepasse",
			setup: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByMail", mock.Anything, "paul.durand@covoit.fr").Return(&model.User{
					ID:   2,
					Mail: "paul.durand@covoit.fr",
				}, nil)
			},
			expectedError: errors.ErrPasswordNonDefini,
		},
		{
			name:     "wrong password",
			mail:     "claire.martin@covoit.fr",
			password: "mauvaispass",
			setup: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByMail", mock.Anything, "claire.martin@covoit.fr").Return(&model.User{
					ID:       1,
					Mail:     "claire.martin@covoit.fr",
					Password: hashFor(t, "motdepasse"),
				}, nil)
			},
			expectedError: errors.ErrPasswordIncorrect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.setup(t, userRepo)

			svc := NewAuthService(userRepo, testJWTService())
			token, user, err := svc.Authenticate(context.Background(), tt.mail, tt.password)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, uint(1), user.ID)
			}
			if tt.expectedError == errors.ErrPasswordTropCourt {
				userRepo.AssertNotCalled(t, "FindByMail")
			}
			userRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_VerifyAndRenew(t *testing.T) {
	jwtService := testJWTService()
	userRepo := new(MockUserRepository)
	userRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
		ID:   1,
		Nom:  "Martin",
		Mail: "claire.martin@covoit.fr",
		Role: model.RoleAdmin,
	}, nil)

	token, err := jwtService.GenerateSessionToken(1, "Martin", "Claire", "claire.martin@covoit.fr", model.RoleAdmin)
	assert.NoError(t, err)

	svc := NewAuthService(userRepo, jwtService)

	// The raw cookie value carries the scheme prefix.
	user, renewed, err := svc.VerifyAndRenew(context.Background(), auth.CookiePrefix+token)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.NotEmpty(t, renewed)

	claims, err := jwtService.ValidateToken(renewed)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestAuthService_VerifyAndRenewInvalidToken(t *testing.T) {
	userRepo := new(MockUserRepository)

	svc := NewAuthService(userRepo, testJWTService())
	_, _, err := svc.VerifyAndRenew(context.Background(), "Bearer pas-un-jeton")

	assert.Equal(t, errors.ErrSessionInvalide, err)
	userRepo.AssertNotCalled(t, "FindByID")
}

func TestAuthService_VerifyAndRenewDeletedAccount(t *testing.T) {
	jwtService := testJWTService()
	userRepo := new(MockUserRepository)
	userRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	token, err := jwtService.GenerateSessionToken(99, "Parti", "Gone", "parti@covoit.fr", model.RoleUser)
	assert.NoError(t, err)

	svc := NewAuthService(userRepo, jwtService)
	_, _, err = svc.VerifyAndRenew(context.Background(), auth.CookiePrefix+token)

	assert.Equal(t, errors.ErrUserNotFound, err)
}

func TestAuthService_InitializePassword(t *testing.T) {
	tests := []struct {
		name          string
		mail          string
		nom           string
		password      string
		setup         func(*testing.T, *MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful initialization",
			mail:     "paul.durand@covoit.fr",
			nom:      "Durand",
			password: "motdepasse",
			setup: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByMailAndNom", mock.Anything, "paul.durand@covoit.fr", "Durand").Return(&model.User{
					ID:   2,
					Nom:  "Durand",
					Mail: "paul.durand@covoit.fr",
				}, nil)
				m.On("UpdatePassword", mock.Anything, uint(2), mock.AnythingOfType("string")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "password too short",
			mail:          "paul.durand@covoit.fr",
			nom:           "Durand",
			password:      "court",
			setup:         func(t *testing.T, m *MockUserRepository) {},
			expectedError: errors.ErrPasswordTropCourt,
		},
		{
			name:     "no account matches mail and surname",
			mail:     "paul.durand@covoit.fr",
			nom:      "Dupont",
			password: "motdepasse",
			setup: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByMailAndNom", mock.Anything, "paul.durand@covoit.fr", "Dupont").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrUserNotFound,
		},
		{
			name:     "password already set",
			mail:     "claire.martin@covoit.fr",
			nom:      "Martin",
			password: "motdepasse",
			setup: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByMailAndNom", mock.Anything, "claire.martin@covoit.fr", "Martin").Return(&model.User{
					ID:       1,
					Nom:      "Martin",
					Mail:     "claire.martin@covoit.fr",
					Password: hashFor(t, "motdepasse"),
				}, nil)
			},
			expectedError: errors.ErrPasswordDejaDefini,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.setup(t, userRepo)

			svc := NewAuthService(userRepo, testJWTService())
			err := svc.InitializePassword(context.Background(), tt.mail, tt.nom, tt.password)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				userRepo.AssertNotCalled(t, "UpdatePassword")
			} else {
				assert.NoError(t, err)
			}
			userRepo.AssertExpectations(t)
		})
	}
}

// The stored hash must verify against the submitted password, and the
// initialization must be single-use.
func TestAuthService_InitializePasswordSingleUse(t *testing.T) {
	userRepo := new(MockUserRepository)
	account := &model.User{ID: 2, Nom: "Durand", Mail: "paul.durand@covoit.fr"}

	var stored string
	userRepo.On("FindByMailAndNom", mock.Anything, "paul.durand@covoit.fr", "Durand").Return(account, nil)
	userRepo.On("UpdatePassword", mock.Anything, uint(2), mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			stored = args.Get(2).(string)
			account.Password = stored
		}).Return(nil).Once()

	svc := NewAuthService(userRepo, testJWTService())

	err := svc.InitializePassword(context.Background(), "paul.durand@covoit.fr", "Durand", "motdepasse")
	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("motdepasse")))

	err = svc.InitializePassword(context.Background(), "paul.durand@covoit.fr", "Durand", "autrepasse")
	assert.Equal(t, errors.ErrPasswordDejaDefini, err)

	userRepo.AssertExpectations(t)
}
