package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when no account matches the given identity.
	ErrUserNotFound = errors.New("utilisateur introuvable")
	// ErrTrajetIntrouvable is returned when a trip id matches no row.
	ErrTrajetIntrouvable = errors.New("trajet introuvable ou déjà supprimé")
	// ErrIDTrajetManquant is returned when the trip id is blank or not numeric.
	ErrIDTrajetManquant = errors.New("ID du trajet manquant")
	// ErrAgencesIdentiques is returned when departure and arrival agencies are the same.
	ErrAgencesIdentiques = errors.New("l'agence de départ ne peut pas être identique à celle d'arrivée")
	// ErrDepartPasse is returned when the departure instant is not strictly in the future.
	ErrDepartPasse = errors.New("la date et l'heure de départ ne peuvent pas être dans le passé")
	// ErrArriveeAvantDepart is returned when the arrival instant is not strictly after departure.
	ErrArriveeAvantDepart = errors.New("la date et l'heure d'arrivée doivent être après celles du départ")
	// ErrDateInvalide is returned when a date or time field cannot be parsed.
	ErrDateInvalide = errors.New("date ou heure invalide")
	// ErrNomAgenceRequis is returned when the agency name trims to empty.
	ErrNomAgenceRequis = errors.New("le nom d'agence est requis")
	// ErrDonneesInvalides is returned on a malformed agency mutation payload.
	ErrDonneesInvalides = errors.New("données invalides")
	// ErrAgenceIntrouvable is returned when an agency id matches no row.
	ErrAgenceIntrouvable = errors.New("agence introuvable ou déjà supprimée")
	// ErrAgenceUtilisee is returned when deletion is blocked by referencing trips.
	ErrAgenceUtilisee = errors.New("agence encore référencée par des trajets")
	// ErrPasswordTropCourt is returned when a password is shorter than 8 characters.
	ErrPasswordTropCourt = errors.New("le mot de passe doit contenir au moins 8 caractères")
	// ErrMailInconnu is returned when no account matches the login email.
	ErrMailInconnu = errors.New("adresse email incorrecte")
	// ErrPasswordNonDefini is returned when the account has no password yet.
	ErrPasswordNonDefini = errors.New("ce compte n'a pas encore de mot de passe")
	// ErrPasswordIncorrect is returned on a bcrypt mismatch.
	ErrPasswordIncorrect = errors.New("mot de passe incorrect")
	// ErrPasswordDejaDefini is returned when the password was already initialized.
	ErrPasswordDejaDefini = errors.New("ce compte a déjà un mot de passe défini")
	// ErrSessionInvalide is returned when the session token is absent, malformed or expired.
	ErrSessionInvalide = errors.New("session invalide")
)

// Envelope is the JSON body returned by every mutation endpoint.
type Envelope struct {
	Success        bool   `json:"success"`
	SuccessMessage string `json:"successMessage,omitempty"`
	ErrorMessage   string `json:"errorMessage,omitempty"`
	IDTrajet       uint   `json:"id_trajet,omitempty"`
	IDAgence       uint   `json:"id_agence,omitempty"`
	RedirectURL    string `json:"redirectUrl,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrTrajetIntrouvable):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TRAJET_NOT_FOUND")
	case errors.Is(err, ErrAgenceIntrouvable):
		return NewHTTPError(http.StatusNotFound, err.Error(), "AGENCE_NOT_FOUND")
	case errors.Is(err, ErrIDTrajetManquant),
		errors.Is(err, ErrAgencesIdentiques),
		errors.Is(err, ErrDepartPasse),
		errors.Is(err, ErrArriveeAvantDepart),
		errors.Is(err, ErrDateInvalide),
		errors.Is(err, ErrNomAgenceRequis),
		errors.Is(err, ErrDonneesInvalides),
		errors.Is(err, ErrAgenceUtilisee),
		errors.Is(err, ErrPasswordTropCourt),
		errors.Is(err, ErrPasswordDejaDefini):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_INPUT")
	case errors.Is(err, ErrMailInconnu),
		errors.Is(err, ErrPasswordNonDefini),
		errors.Is(err, ErrPasswordIncorrect),
		errors.Is(err, ErrSessionInvalide):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "erreur serveur interne", "INTERNAL_ERROR")
	}
}
