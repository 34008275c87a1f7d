package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"covoit/internal/config"
	"covoit/internal/errors"
	"covoit/internal/model"
	"covoit/internal/repository"
)

// AgenceService manages the agency catalog.
type AgenceService interface {
	Create(ctx context.Context, name string) (*model.Agence, string, error)
	Update(ctx context.Context, rawID, name string) (string, error)
	Delete(ctx context.Context, rawID string) (string, error)
	List(ctx context.Context) ([]model.Agence, error)
}

type agenceService struct {
	agenceRepo   repository.AgenceRepository
	deletePolicy string
}

// NewAgenceService creates a new agency service. deletePolicy decides
// what happens to an agency still referenced by trips (see config).
func NewAgenceService(agenceRepo repository.AgenceRepository, deletePolicy string) AgenceService {
	return &agenceService{
		agenceRepo:   agenceRepo,
		deletePolicy: deletePolicy,
	}
}

// Create inserts a new agency; the name must be non-blank after trimming.
func (s *agenceService) Create(ctx context.Context, name string) (*model.Agence, string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, "", errors.ErrNomAgenceRequis
	}

	agence := &model.Agence{Nom: trimmed}
	if err := s.agenceRepo.Create(ctx, agence); err != nil {
		return nil, "", fmt.Errorf("create agence: %w", err)
	}
	return agence, fmt.Sprintf("Agence ajoutée : %s", agence.Nom), nil
}

// Update renames an existing agency.
func (s *agenceService) Update(ctx context.Context, rawID, name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	id, err := parseID(rawID)
	if err != nil || trimmed == "" {
		return "", errors.ErrDonneesInvalides
	}

	agence, err := s.agenceRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", errors.ErrAgenceIntrouvable
		}
		return "", fmt.Errorf("find agence: %w", err)
	}

	agence.Nom = trimmed
	if err := s.agenceRepo.Save(ctx, agence); err != nil {
		return "", fmt.Errorf("save agence: %w", err)
	}
	return fmt.Sprintf("Agence mise à jour : %s", agence.Nom), nil
}

// Delete removes an agency by id. The fate of trips still referencing
// it depends on the configured policy: unrestricted deletes the agency
// and leaves the trips, block refuses, cascade removes the trips in
// the same transaction.
func (s *agenceService) Delete(ctx context.Context, rawID string) (string, error) {
	id, err := parseID(rawID)
	if err != nil {
		return "", errors.ErrDonneesInvalides
	}

	err = s.agenceRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.AgenceRepository) error {
		switch s.deletePolicy {
		case config.AgenceDeleteBlock:
			count, err := repo.CountReferencingTrajets(ctx, id)
			if err != nil {
				return fmt.Errorf("count trajets: %w", err)
			}
			if count > 0 {
				return errors.ErrAgenceUtilisee
			}
		case config.AgenceDeleteCascade:
			if err := repo.DeleteReferencingTrajets(ctx, id); err != nil {
				return fmt.Errorf("cascade trajets: %w", err)
			}
		}

		rows, err := repo.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("delete agence: %w", err)
		}
		if rows == 0 {
			return errors.ErrAgenceIntrouvable
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return "Agence supprimée", nil
}

// List returns every agency, for the menus and trip forms.
func (s *agenceService) List(ctx context.Context) ([]model.Agence, error) {
	return s.agenceRepo.List(ctx)
}
