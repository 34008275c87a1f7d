package repository

import (
	"context"

	"gorm.io/gorm"

	"covoit/internal/model"
)

// AgenceRepository defines agency persistence operations.
type AgenceRepository interface {
	Create(ctx context.Context, agence *model.Agence) error
	FindByID(ctx context.Context, id uint) (*model.Agence, error)
	Save(ctx context.Context, agence *model.Agence) error
	// Delete removes the row and reports how many rows were affected,
	// so callers can distinguish "already gone" from success.
	Delete(ctx context.Context, id uint) (int64, error)
	CountReferencingTrajets(ctx context.Context, id uint) (int64, error)
	DeleteReferencingTrajets(ctx context.Context, id uint) error
	List(ctx context.Context) ([]model.Agence, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo AgenceRepository) error) error
}

type agenceRepository struct {
	db *gorm.DB
}

// NewAgenceRepository creates a new agency repository.
func NewAgenceRepository(db *gorm.DB) AgenceRepository {
	return &agenceRepository{db: db}
}

func (r *agenceRepository) Create(ctx context.Context, agence *model.Agence) error {
	return r.db.WithContext(ctx).Create(agence).Error
}

func (r *agenceRepository) FindByID(ctx context.Context, id uint) (*model.Agence, error) {
	var agence model.Agence
	if err := r.db.WithContext(ctx).First(&agence, id).Error; err != nil {
		return nil, err
	}
	return &agence, nil
}

func (r *agenceRepository) Save(ctx context.Context, agence *model.Agence) error {
	return r.db.WithContext(ctx).Save(agence).Error
}

func (r *agenceRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Agence{}, id)
	return res.RowsAffected, res.Error
}

func (r *agenceRepository) CountReferencingTrajets(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Trajet{}).
		Where("id_agence_depart = ? OR id_agence_arrivee = ?", id, id).
		Count(&count).Error
	return count, err
}

func (r *agenceRepository) DeleteReferencingTrajets(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Where("id_agence_depart = ? OR id_agence_arrivee = ?", id, id).
		Delete(&model.Trajet{}).Error
}

func (r *agenceRepository) List(ctx context.Context) ([]model.Agence, error) {
	var agences []model.Agence
	if err := r.db.WithContext(ctx).Find(&agences).Error; err != nil {
		return nil, err
	}
	return agences, nil
}

// WithTransaction executes fn against a transaction-bound repository.
func (r *agenceRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo AgenceRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &agenceRepository{db: tx})
	})
}
