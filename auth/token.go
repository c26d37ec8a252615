package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// signingKey comes from the environment so deployments can rotate it.
// The fallback only exists for local runs and tests.
var signingKey = func() []byte {
	if secret := os.Getenv("COUNTER_JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("counter-lab-dev-signing-key-do-not-ship")
}()

// CustomClaims carries the user identity and roles inside the token.
type CustomClaims struct {
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for userID that expires after
// authTokenDuration.
func GenerateToken(userID string, roles []string,
	authTokenDuration time.Duration) (string, error) {
	now := time.Now()

	claims := &CustomClaims{
		UserID: userID,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(authTokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "counter-lab",
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
}

// ValidateToken checks the signature and expiration of tokenString and
// returns its claims. Only HS256 tokens are accepted.
func ValidateToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{},
		func(*jwt.Token) (interface{}, error) { return signingKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	return claims, nil
}
