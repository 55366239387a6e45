package auth

import (
	"errors"
	"time"

	"sentosa_backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingSecret = errors.New("jwt secret is not configured")
	ErrInvalidToken  = errors.New("invalid token")
)

// Claims is the session token payload: staff identity plus the role and
// avatar the frontend renders without a second round-trip.
type Claims struct {
	StaffID uint   `json:"id"`
	Jabatan string `json:"jabatan"`
	Image   string `json:"image"`
	jwt.RegisteredClaims
}

// GenerateToken mints an HS256 token for the given staff identity.
// A zero TTL omits the exp claim; the token then stays valid until the
// signing secret rotates.
func GenerateToken(staffID uint, jabatan, image string) (string, error) {
	cfg := config.GetConfig()
	if cfg.JWT.Secret == "" {
		return "", ErrMissingSecret
	}

	claims := Claims{
		StaffID: staffID,
		Jabatan: jabatan,
		Image:   image,
	}
	if cfg.JWT.TTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Duration(cfg.JWT.TTL) * time.Minute))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ParseToken validates the signature and returns the decoded claims.
func ParseToken(tokenStr string) (*Claims, error) {
	cfg := config.GetConfig()
	if cfg.JWT.Secret == "" {
		return nil, ErrMissingSecret
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
