package repository

import (
	"context"

	"gorm.io/gorm"

	"covoit/internal/model"
)

// UserRepository defines account persistence operations. The trip
// ledger only ever reads accounts; the single write path is the
// password initialization.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByMail(ctx context.Context, mail string) (*model.User, error)
	FindByMailAndNom(ctx context.Context, mail, nom string) (*model.User, error)
	UpdatePassword(ctx context.Context, id uint, hash string) error
	List(ctx context.Context) ([]model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByMail(ctx context.Context, mail string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("mail = ?", mail).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByMailAndNom(ctx context.Context, mail, nom string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("mail = ? AND nom = ?", mail, nom).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uint, hash string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id_user = ?", id).
		Update("password", hash).Error
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
