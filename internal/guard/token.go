package guard

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/crewdeck-dev/crewdeck/internal/types"
)

// TokenGuard verifies a signed bearer token and authorizes on its role
// claim. It replaces the header guard when the service cannot trust the
// caller's claimed role.
type TokenGuard struct {
	secret []byte
}

func NewTokenGuard(secret string) *TokenGuard {
	return &TokenGuard{secret: []byte(secret)}
}

func (g *TokenGuard) CredentialHeader() string {
	return "Authorization"
}

func (g *TokenGuard) Authorize(credential string) error {
	parts := strings.SplitN(credential, " ", 2)

	if len(parts) != 2 || parts[0] != "Bearer" {
		return ErrDenied
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.secret, nil
	})

	if err != nil || !token.Valid {
		return ErrDenied
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return ErrDenied
	}

	role, ok := claims["role"].(string)

	if !ok || role != types.RoleAdmin {
		return ErrDenied
	}

	return nil
}

// GenerateToken signs a role-bearing token with the guard's secret. Used to
// mint admin tokens for the token-auth mode.
func (g *TokenGuard) GenerateToken(role string) (string, error) {
	claims := jwt.MapClaims{
		"role": role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}
