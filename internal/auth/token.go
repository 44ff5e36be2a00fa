package auth

import (
	"strconv"
	"time"

	"github.com/and161185/posloyalty/internal/errs"
	"github.com/golang-jwt/jwt/v5"
)

const defaultTTL = 12 * time.Hour // одна смена кассира

type staffClaims struct {
	jwt.RegisteredClaims
	StaffID int `json:"staff_id"`
}

type TokenManager struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewTokenManager(secretKey string) *TokenManager {
	return &TokenManager{secretKey: []byte(secretKey), ttl: defaultTTL, now: time.Now}
}

func (tm *TokenManager) GenerateToken(staffID int) (string, error) {
	now := tm.now()
	claims := staffClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(staffID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
		StaffID: staffID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secretKey)
}

func (tm *TokenManager) ParseToken(tokenStr string) (int, error) {
	claims := &staffClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return tm.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	if err != nil || !token.Valid {
		return 0, errs.ErrInvalidToken
	}

	if claims.StaffID <= 0 {
		return 0, errs.ErrInvalidToken
	}

	return claims.StaffID, nil
}
