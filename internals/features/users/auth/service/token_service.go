package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"actech_backend/internals/configs"
	userModel "actech_backend/internals/features/users/user/model"
)

var errNoSecret = errors.New("JWT_SECRET is not configured")

func nowUTC() time.Time { return time.Now().UTC() }

func buildAccessClaims(user userModel.UserModel, now time.Time, ttl time.Duration) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":       "access",
		"jti":       uuid.NewString(), // token unik walau login dua kali dalam detik yang sama
		"sub":       user.ID.String(),
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"is_staff":  user.IsStaff,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
}

// IssueAccessToken menandatangani access token HS256.
func IssueAccessToken(user userModel.UserModel, now time.Time) (string, time.Time, error) {
	if configs.JWTSecret == "" {
		return "", time.Time{}, errNoSecret
	}
	ttl := configs.AccessTokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, now, ttl)).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return token, now.Add(ttl), nil
}

// tokenExpiry membaca exp dari token yang signature-nya valid.
// ok=false bila token rusak / bukan milik kita.
func tokenExpiry(raw string) (time.Time, bool) {
	if raw == "" || configs.JWTSecret == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	_, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		return time.Time{}, false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(int64(exp), 0).UTC(), true
}
