package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Refresh tokens use the lighter MapClaims shape; access tokens carry the
// richer typed claims in pkg/token.

// GenerateRefreshToken creates a refresh token
func GenerateRefreshToken(userID uint, secret string, days int) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Duration(days) * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyRefreshToken parses and validates a refresh token
func VerifyRefreshToken(tokenStr string, secret string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid refresh token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}
	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errors.New("invalid user_id claim")
	}
	return uint(rawID), nil
}
