package adapter

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry extracts the expiry instant from the access token's exp claim.
// The token is parsed without signature verification: the client only reads
// scheduling metadata from it, authenticity is the server's concern.
// Returns an error if the token cannot be parsed or carries no exp claim.
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	expiry, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if expiry == nil {
		return time.Time{}, errors.New("token has no expiry claim")
	}

	return expiry.Time, nil
}
