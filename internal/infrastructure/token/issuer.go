package token

import (
	"errors"
	"log"
	"os"
	"time"

	"sellerhub/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuerName = "sellerhub"

// Issuer mints HS256 capability tokens whose subject is the invoice id.
// Anyone holding a valid token may view that one invoice; nothing else is
// encoded, so profile or session state never matters at verification time.
type Issuer struct {
	secret []byte
	now    func() time.Time
}

var _ interfaces.ITokenIssuer = (*Issuer)(nil)

// NewIssuerFromEnv reads the signing secret from INVOICE_TOKEN_SECRET.
func NewIssuerFromEnv() *Issuer {
	secret := os.Getenv("INVOICE_TOKEN_SECRET")
	if secret == "" {
		log.Fatal("INVOICE_TOKEN_SECRET is required")
	}
	return NewIssuer([]byte(secret))
}

func NewIssuer(secret []byte) *Issuer {
	return &Issuer{secret: secret, now: time.Now}
}

func (i *Issuer) Issue(invoiceID string, ttl time.Duration) (string, error) {
	now := i.now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    issuerName,
		Subject:   invoiceID,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

func (i *Issuer) Verify(token string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(issuerName),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", interfaces.ErrTokenExpired
		}
		return "", interfaces.ErrTokenInvalid
	}
	if claims.Subject == "" {
		return "", interfaces.ErrTokenInvalid
	}
	return claims.Subject, nil
}
