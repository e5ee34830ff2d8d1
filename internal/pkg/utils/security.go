package utils

import (
	"time"

	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
)

// GenerateStaffJWT issues a short-lived token carrying the staff member's
// identifier. Issuance normally happens in the hospital SSO service; this
// exists for local development and tests.
func GenerateStaffJWT(staffID, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"staff_id": staffID,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}

	return tokenString, nil
}

func ParseStaffJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.WrapWithoutError(constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})

	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if staffID, ok := claims["staff_id"].(string); ok {
			return staffID, nil
		}
	}

	return "", exceptions.ErrTokenInvalidOrExpired(nil)
}
