package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"covoit/internal/errors"
	"covoit/internal/model"
	"covoit/internal/repository"
)

// TrajetField identifies a mutable trip field for update allow-lists.
type TrajetField string

// Mutable trip fields.
const (
	FieldUser          TrajetField = "id_user"
	FieldAgenceDepart  TrajetField = "id_agence_depart"
	FieldAgenceArrivee TrajetField = "id_agence_arrivee"
	FieldDateDepart    TrajetField = "date_depart"
	FieldHeureDepart   TrajetField = "heure_depart"
	FieldDateArrivee   TrajetField = "date_arrivee"
	FieldHeureArrivee  TrajetField = "heure_arrivee"
	FieldPlace         TrajetField = "place"
)

// FieldSet is the set of fields a caller is permitted to overwrite.
type FieldSet map[TrajetField]bool

// UserFields is the allow-list for regular users: everything except
// the author, which only admins may reassign.
func UserFields() FieldSet {
	return FieldSet{
		FieldAgenceDepart:  true,
		FieldAgenceArrivee: true,
		FieldDateDepart:    true,
		FieldHeureDepart:   true,
		FieldDateArrivee:   true,
		FieldHeureArrivee:  true,
		FieldPlace:         true,
	}
}

// AdminFields is the allow-list for admins.
func AdminFields() FieldSet {
	fields := UserFields()
	fields[FieldUser] = true
	return fields
}

// CreateTrajetInput carries the raw form values for a trip creation.
// Values arrive as strings from the page scripts and are parsed here.
type CreateTrajetInput struct {
	IDUser          string
	IDAgenceDepart  string
	IDAgenceArrivee string
	DateDepart      string
	HeureDepart     string
	DateArrivee     string
	HeureArrivee    string
	Place           string
}

// TrajetUpdate carries the raw form values for a partial update. A
// blank value leaves the stored field untouched.
type TrajetUpdate struct {
	IDUser          string
	IDAgenceDepart  string
	IDAgenceArrivee string
	DateDepart      string
	HeureDepart     string
	DateArrivee     string
	HeureArrivee    string
	Place           string
}

// TrajetService validates and mutates trip records. It is the only
// component with cross-field temporal and referential invariants, and
// serves both the user and admin route handlers.
type TrajetService interface {
	Create(ctx context.Context, input CreateTrajetInput) (*model.Trajet, string, error)
	Update(ctx context.Context, rawID string, fields TrajetUpdate, allowed FieldSet) (string, error)
	Delete(ctx context.Context, rawID string) (string, string, error)
	ListAll(ctx context.Context) ([]model.Trajet, error)
	ListUpcoming(ctx context.Context) ([]model.Trajet, error)
}

type trajetService struct {
	trajetRepo repository.TrajetRepository
	userRepo   repository.UserRepository
}

// NewTrajetService creates a new trip service.
func NewTrajetService(trajetRepo repository.TrajetRepository, userRepo repository.UserRepository) TrajetService {
	return &trajetService{
		trajetRepo: trajetRepo,
		userRepo:   userRepo,
	}
}

// Create validates and persists a new trip. Rules, in order: the
// author must exist, the two agencies must differ, the arrival must be
// strictly after the departure and the departure strictly in the
// future.
func (s *trajetService) Create(ctx context.Context, input CreateTrajetInput) (*model.Trajet, string, error) {
	userID, err := parseID(input.IDUser)
	if err != nil {
		return nil, "", errors.ErrUserNotFound
	}
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, "", errors.ErrUserNotFound
		}
		return nil, "", fmt.Errorf("find author: %w", err)
	}

	departID, err := parseID(input.IDAgenceDepart)
	if err != nil {
		return nil, "", errors.ErrDonneesInvalides
	}
	arriveeID, err := parseID(input.IDAgenceArrivee)
	if err != nil {
		return nil, "", errors.ErrDonneesInvalides
	}
	if departID == arriveeID {
		return nil, "", errors.ErrAgencesIdentiques
	}

	place, err := strconv.Atoi(strings.TrimSpace(input.Place))
	if err != nil || place < 0 {
		return nil, "", errors.ErrDonneesInvalides
	}

	depart, arrivee, err := validateInstants(input.DateDepart, input.HeureDepart, input.DateArrivee, input.HeureArrivee, time.Now())
	if err != nil {
		return nil, "", err
	}

	trajet := &model.Trajet{
		UserID:          userID,
		AgenceDepartID:  departID,
		AgenceArriveeID: arriveeID,
		DateDepart:      model.DateOnly(strings.TrimSpace(input.DateDepart)),
		HeureDepart:     model.TimeOfDay(strings.TrimSpace(input.HeureDepart)),
		DateArrivee:     model.DateOnly(strings.TrimSpace(input.DateArrivee)),
		HeureArrivee:    model.TimeOfDay(strings.TrimSpace(input.HeureArrivee)),
		Place:           place,
	}
	if err := s.trajetRepo.Create(ctx, trajet); err != nil {
		return nil, "", fmt.Errorf("create trajet: %w", err)
	}

	confirmation := fmt.Sprintf("Trajet créé avec succès du %s au %s.",
		depart.Format("02/01/2006"), arrivee.Format("02/01/2006"))
	return trajet, confirmation, nil
}

// Update applies each permitted, non-blank field to the stored trip,
// then re-validates the merged record against every creation rule
// before saving. Lookup, merge and save run in one transaction.
func (s *trajetService) Update(ctx context.Context, rawID string, fields TrajetUpdate, allowed FieldSet) (string, error) {
	id, err := parseID(rawID)
	if err != nil {
		return "", errors.ErrIDTrajetManquant
	}

	err = s.trajetRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.TrajetRepository) error {
		trajet, err := repo.FindByID(ctx, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrTrajetIntrouvable
			}
			return fmt.Errorf("find trajet: %w", err)
		}

		if err := s.merge(trajet, fields, allowed); err != nil {
			return err
		}

		if _, err := s.userRepo.FindByID(ctx, trajet.UserID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrUserNotFound
			}
			return fmt.Errorf("find author: %w", err)
		}
		if trajet.AgenceDepartID == trajet.AgenceArriveeID {
			return errors.ErrAgencesIdentiques
		}
		if _, _, err := validateInstants(string(trajet.DateDepart), string(trajet.HeureDepart), string(trajet.DateArrivee), string(trajet.HeureArrivee), time.Now()); err != nil {
			return err
		}

		if err := repo.Save(ctx, trajet); err != nil {
			return fmt.Errorf("save trajet: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return "Trajet mis à jour", nil
}

func (s *trajetService) merge(trajet *model.Trajet, fields TrajetUpdate, allowed FieldSet) error {
	set := func(field TrajetField, raw string, apply func(string) error) error {
		value := strings.TrimSpace(raw)
		if value == "" || !allowed[field] {
			return nil
		}
		return apply(value)
	}

	setID := func(dst *uint) func(string) error {
		return func(value string) error {
			id, err := parseID(value)
			if err != nil {
				return errors.ErrDonneesInvalides
			}
			*dst = id
			return nil
		}
	}
	setDate := func(dst *model.DateOnly) func(string) error {
		return func(value string) error {
			*dst = model.DateOnly(value)
			return nil
		}
	}
	setTime := func(dst *model.TimeOfDay) func(string) error {
		return func(value string) error {
			*dst = model.TimeOfDay(value)
			return nil
		}
	}

	if err := set(FieldUser, fields.IDUser, setID(&trajet.UserID)); err != nil {
		return err
	}
	if err := set(FieldAgenceDepart, fields.IDAgenceDepart, setID(&trajet.AgenceDepartID)); err != nil {
		return err
	}
	if err := set(FieldAgenceArrivee, fields.IDAgenceArrivee, setID(&trajet.AgenceArriveeID)); err != nil {
		return err
	}
	if err := set(FieldDateDepart, fields.DateDepart, setDate(&trajet.DateDepart)); err != nil {
		return err
	}
	if err := set(FieldHeureDepart, fields.HeureDepart, setTime(&trajet.HeureDepart)); err != nil {
		return err
	}
	if err := set(FieldDateArrivee, fields.DateArrivee, setDate(&trajet.DateArrivee)); err != nil {
		return err
	}
	if err := set(FieldHeureArrivee, fields.HeureArrivee, setTime(&trajet.HeureArrivee)); err != nil {
		return err
	}
	return set(FieldPlace, fields.Place, func(value string) error {
		place, err := strconv.Atoi(value)
		if err != nil || place < 0 {
			return errors.ErrDonneesInvalides
		}
		trajet.Place = place
		return nil
	})
}

// Delete removes a trip by id, idempotently reporting not-found, and
// returns a confirmation plus the redirect target derived from the
// trip's former author.
func (s *trajetService) Delete(ctx context.Context, rawID string) (string, string, error) {
	id, err := parseID(rawID)
	if err != nil {
		return "", "", errors.ErrIDTrajetManquant
	}

	redirectURL := "/user/menu"
	err = s.trajetRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.TrajetRepository) error {
		trajet, err := repo.FindByID(ctx, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrTrajetIntrouvable
			}
			return fmt.Errorf("find trajet: %w", err)
		}
		if trajet.UserID != 0 {
			redirectURL = fmt.Sprintf("/user/%d", trajet.UserID)
		}

		rows, err := repo.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("delete trajet: %w", err)
		}
		if rows == 0 {
			return errors.ErrTrajetIntrouvable
		}
		return nil
	})
	if err != nil {
		return "", "", err
	}
	return "Trajet supprimé", redirectURL, nil
}

// ListAll returns every trip with author and agencies, for the public
// landing page.
func (s *trajetService) ListAll(ctx context.Context) ([]model.Trajet, error) {
	return s.trajetRepo.ListAll(ctx)
}

// ListUpcoming returns trips whose departure instant is still in the
// future, for the menu pages.
func (s *trajetService) ListUpcoming(ctx context.Context) ([]model.Trajet, error) {
	now := time.Now()
	return s.trajetRepo.ListUpcoming(ctx, now.Format("2006-01-02"), now.Format("15:04:05"))
}

// parseID trims and parses a positive integer id submitted as a form
// string.
func parseID(raw string) (uint, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("empty id")
	}
	id, err := strconv.ParseUint(trimmed, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

// parseInstant combines a date and a time field into one comparable
// instant in the server's local zone. Seconds are optional, matching
// the form inputs.
func parseInstant(date, heure string) (time.Time, error) {
	combined := strings.TrimSpace(date) + " " + strings.TrimSpace(heure)
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02 15:04"} {
		if t, err := time.ParseInLocation(layout, combined, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.ErrDateInvalide
}

// validateInstants enforces the temporal invariants: departure
// strictly after now, arrival strictly after departure. Comparisons
// are strict; an exact tie is rejected.
func validateInstants(dateDepart, heureDepart, dateArrivee, heureArrivee string, now time.Time) (time.Time, time.Time, error) {
	depart, err := parseInstant(dateDepart, heureDepart)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	arrivee, err := parseInstant(dateArrivee, heureArrivee)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !arrivee.After(depart) {
		return time.Time{}, time.Time{}, errors.ErrArriveeAvantDepart
	}
	if !depart.After(now) {
		return time.Time{}, time.Time{}, errors.ErrDepartPasse
	}
	return depart, arrivee, nil
}
