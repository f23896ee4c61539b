// Package auth issues and parses the short-lived access tokens.
package auth

import (
	"crypto/sha256"
	"errors"
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries subject (account id), jti and issued-at in the registered
// claims; there are no custom fields.
type Claims struct {
	jwt.RegisteredClaims
}

// IssuedToken is a signed access token and its unique id.
type IssuedToken struct {
	Token     string
	JTI       string
	ExpiresAt time.Time
}

// Issuer signs HS256 access tokens.
type Issuer struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewIssuer returns an Issuer. now may be nil for wall-clock time.
func NewIssuer(secretKey []byte, ttl time.Duration, now func() time.Time) *Issuer {
	if now == nil {
		now = time.Now
	}
	return &Issuer{secretKey: secretKey, ttl: ttl, now: now}
}

// NewJTI returns a fresh token id. Refresh pre-generates it so the hash can be
// stored with the rotated refresh token before the access token is signed.
func NewJTI() string {
	return uuid.NewString()
}

// HashJTI is what the refresh token store keeps next to each token.
func HashJTI(jti string) []byte {
	sum := sha256.Sum256([]byte(jti))
	return sum[:]
}

// Issue signs a token for accountID with a fresh jti.
func (i *Issuer) Issue(accountID string) (*IssuedToken, error) {
	return i.IssueWithJTI(accountID, NewJTI())
}

// IssueWithJTI signs a token for accountID with the given jti.
func (i *Issuer) IssueWithJTI(accountID, jti string) (*IssuedToken, error) {
	now := i.now()
	exp := now.Add(i.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})

	tokenString, err := token.SignedString(i.secretKey)
	if err != nil {
		return nil, err
	}

	return &IssuedToken{Token: tokenString, JTI: jti, ExpiresAt: exp}, nil
}

// Parse validates tokenString and returns its claims. An expired token gives
// common.ErrTokenExpired so clients know to refresh; anything else wrong
// gives common.ErrInvalidToken.
func (i *Issuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" || claims.ID == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
