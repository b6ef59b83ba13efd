package services

import (
	"fmt"
	"time"

	apperrors "hotelpms/errors"
	"hotelpms/models"

	"github.com/dgrijalva/jwt-go"
)

type UserInfo struct {
	StaffID uint             `json:"userid"`
	Role    models.StaffRole `json:"role"`
}

// Claims carries the acting staff member under "userinfo".
type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// GenerateToken issues an HS256 token for actor, valid for ttl.
func GenerateToken(secret string, actor models.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserInfo: UserInfo{StaffID: actor.StaffID, Role: actor.Role},
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken verifies the signature and expiry and returns the actor the token names.
func ParseToken(secret, tokenString string) (models.Actor, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return models.Actor{}, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "invalid token", err)
	}
	if !token.Valid {
		return models.Actor{}, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "invalid token", nil)
	}
	if claims.UserInfo.StaffID == 0 {
		return models.Actor{}, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "token carries no user id", nil)
	}
	if !claims.UserInfo.Role.Valid() {
		return models.Actor{}, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, fmt.Sprintf("unknown role %q", claims.UserInfo.Role), nil)
	}
	return models.Actor{StaffID: claims.UserInfo.StaffID, Role: claims.UserInfo.Role}, nil
}
