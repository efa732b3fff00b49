package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// devFallbackSecret keeps local development working when JWT_SECRET is
// unset. Known weak default, never rely on it in production.
const devFallbackSecret = "fallback-secret"

// Claims carries the registered claim set; the subject is the user ID.
type Claims struct {
	jwt.RegisteredClaims
}

// Service issues and validates signed stateless session tokens.
type Service struct {
	secret   []byte
	lifetime time.Duration
	log      *zap.Logger
}

func NewService(secret string, lifetime time.Duration, log *zap.Logger) *Service {
	if secret == "" {
		log.Warn("JWT secret not configured, using development fallback key")
		secret = devFallbackSecret
	}

	return &Service{
		secret:   []byte(secret),
		lifetime: lifetime,
		log:      log,
	}
}

// Issue signs a session token for the given user ID.
func (s *Service) Issue(userID uuid.UUID) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.lifetime)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// Validate verifies signature and expiry and returns the embedded user ID.
// Callers map every failure to the same unauthorized response; the
// distinct errors exist for logging only.
func (s *Service) Validate(tokenString string) (uuid.UUID, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrTokenExpired
		}
		return uuid.Nil, ErrTokenInvalid
	}

	if !parsed.Valid {
		return uuid.Nil, ErrTokenInvalid
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}

	return userID, nil
}
