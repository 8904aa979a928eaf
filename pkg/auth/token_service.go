package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/internlink/internlink/pkg/kernel"
)

// JWTService implements TokenService using HMAC-signed JWTs
type JWTService struct {
	secretKey []byte
	tokenTTL  time.Duration
	issuer    string
}

// NewJWTService creates a JWT-backed token service
func NewJWTService(secretKey string, tokenTTL time.Duration, issuer string) *JWTService {
	return &JWTService{
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
		issuer:    issuer,
	}
}

type jwtClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed access token for a user
func (s *JWTService) GenerateToken(userID kernel.UserID, role Role) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken parses and verifies a token, returning its claims
func (s *JWTService) ValidateToken(tokenString string) (*TokenClaims, error) {
	var claims jwtClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken()
	}

	role := Role(claims.Role)
	if !role.IsValid() {
		return nil, ErrInvalidToken().WithDetail("role", claims.Role)
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &TokenClaims{
		UserID:    kernel.UserID(claims.Subject),
		Role:      role,
		ExpiresAt: expiresAt,
	}, nil
}
