package repository

import (
	"context"

	"gorm.io/gorm"

	"covoit/internal/model"
)

// TrajetRepository defines trip persistence operations.
type TrajetRepository interface {
	Create(ctx context.Context, trajet *model.Trajet) error
	FindByID(ctx context.Context, id uint) (*model.Trajet, error)
	Save(ctx context.Context, trajet *model.Trajet) error
	// Delete removes the row and reports how many rows were affected.
	Delete(ctx context.Context, id uint) (int64, error)
	ListAll(ctx context.Context) ([]model.Trajet, error)
	ListUpcoming(ctx context.Context, date, heure string) ([]model.Trajet, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo TrajetRepository) error) error
}

type trajetRepository struct {
	db *gorm.DB
}

// NewTrajetRepository creates a new trip repository.
func NewTrajetRepository(db *gorm.DB) TrajetRepository {
	return &trajetRepository{db: db}
}

func (r *trajetRepository) Create(ctx context.Context, trajet *model.Trajet) error {
	return r.db.WithContext(ctx).Create(trajet).Error
}

func (r *trajetRepository) FindByID(ctx context.Context, id uint) (*model.Trajet, error) {
	var trajet model.Trajet
	if err := r.db.WithContext(ctx).First(&trajet, id).Error; err != nil {
		return nil, err
	}
	return &trajet, nil
}

func (r *trajetRepository) Save(ctx context.Context, trajet *model.Trajet) error {
	return r.db.WithContext(ctx).Save(trajet).Error
}

func (r *trajetRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Trajet{}, id)
	return res.RowsAffected, res.Error
}

// ListAll returns every trip with its author and both agencies loaded.
func (r *trajetRepository) ListAll(ctx context.Context) ([]model.Trajet, error) {
	var trajets []model.Trajet
	err := r.db.WithContext(ctx).
		Preload("Auteur").Preload("Depart").Preload("Arrivee").
		Find(&trajets).Error
	if err != nil {
		return nil, err
	}
	return trajets, nil
}

// ListUpcoming returns trips departing strictly after the given local
// date and time, agencies loaded for the menu views.
func (r *trajetRepository) ListUpcoming(ctx context.Context, date, heure string) ([]model.Trajet, error) {
	var trajets []model.Trajet
	err := r.db.WithContext(ctx).
		Where("date_depart > ? OR (date_depart = ? AND heure_depart > ?)", date, date, heure).
		Preload("Depart").Preload("Arrivee").
		Find(&trajets).Error
	if err != nil {
		return nil, err
	}
	return trajets, nil
}

// WithTransaction executes fn against a transaction-bound repository,
// so an update's lookup and save happen under one isolation scope.
func (r *trajetRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo TrajetRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &trajetRepository{db: tx})
	})
}
