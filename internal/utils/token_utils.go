package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims are the claims carried by an access token.
// The subject holds the user ID.
type AccessClaims struct {
	Role      domain.UserRole `json:"role"`
	CompanyID int64           `json:"company_id"`
	jwt.RegisteredClaims
}

// Principal returns the identity the claims describe.
func (c *AccessClaims) Principal() (domain.Principal, error) {
	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return domain.Principal{}, errors.New("token subject is not a user id")
	}
	if !c.Role.IsValid() {
		return domain.Principal{}, errors.New("token carries an unknown role")
	}
	return domain.Principal{UserID: userID, Role: c.Role, CompanyID: c.CompanyID}, nil
}

// GenerateJWT generates a new HS256 token for user.
func GenerateJWT(user *domain.User, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Role:      user.Role,
		CompanyID: user.CompanyID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(user.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a JWT token string, validates its signature and standard claims.
// It returns the AccessClaims if the token is valid, or an error otherwise.
func ParseAndValidateJWT(tokenString string, secretKey string) (*AccessClaims, error) {
	claims := &AccessClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
