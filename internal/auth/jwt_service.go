package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// SessionTokenExpiry is the sliding validity window of a session
// credential. A fresh token is reissued on every authenticated request.
const SessionTokenExpiry = 24 * time.Hour

// CookiePrefix is prepended to the token inside the session cookie.
const CookiePrefix = "Bearer "

// Claims represents the session credential payload.
type Claims struct {
	UserID uint   `json:"id_user"`
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
	Mail   string `json:"mail"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService handles session token generation and validation.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
	}
}

// GenerateSessionToken issues a signed session token for the user.
func (s *JWTService) GenerateSessionToken(userID uint, nom, prenom, mail, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Nom:    nom,
		Prenom: prenom,
		Mail:   mail,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates a session token and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// StripCookiePrefix removes the "Bearer " prefix stored in the cookie.
func StripCookiePrefix(raw string) string {
	return strings.TrimPrefix(raw, CookiePrefix)
}
