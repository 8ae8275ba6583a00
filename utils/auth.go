package utils

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// adminTokenTTL bounds how long an issued admin token stays valid.
const adminTokenTTL = 24 * time.Hour

// GenerateAdminToken issues a signed admin token.
func GenerateAdminToken(key string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(adminTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(key))
}

// ParseAdminToken verifies a token issued by GenerateAdminToken.
func ParseAdminToken(key, tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(key), nil
	})
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return fmt.Errorf("invalid token")
	}
	if role, _ := claims["role"].(string); role != "admin" {
		return fmt.Errorf("invalid token role")
	}
	return nil
}
