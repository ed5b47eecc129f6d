// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"crypto/rsa"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"beautymap/config"
	"beautymap/internal/domain/service"
)

const clockSkew = 5 * time.Second

// ClerkClaims are the session token claims Clerk issues.
type ClerkClaims struct {
	AuthorizedParty string `json:"azp,omitempty"`
	SessionID       string `json:"sid,omitempty"`
	Email           string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// clerkVerifier validates Clerk session tokens networklessly with the instance PEM key.
type clerkVerifier struct {
	publicKey         *rsa.PublicKey
	issuer            string
	authorizedParties []string
	parser            *jwt.Parser
}

// NewClerkVerifier is the constructor for clerkVerifier.
func NewClerkVerifier(cfg *config.Config) (service.IdentityVerifier, error) {
	if cfg.Clerk == nil || strings.TrimSpace(cfg.Clerk.PublicKey) == "" {
		return nil, errors.New("clerk public key must be provided")
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.Clerk.PublicKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse clerk public key")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithLeeway(clockSkew),
		jwt.WithExpirationRequired(),
	}
	if cfg.Clerk.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Clerk.Issuer))
	}

	return &clerkVerifier{
		publicKey:         publicKey,
		issuer:            cfg.Clerk.Issuer,
		authorizedParties: cfg.Clerk.AuthorizedParties,
		parser:            jwt.NewParser(opts...),
	}, nil
}

// Verify checks signature, expiry, issuer and authorized party, and returns the subject.
func (v *clerkVerifier) Verify(_ context.Context, token string) (*service.Identity, error) {
	claims := &ClerkClaims{}
	if _, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.publicKey, nil
	}); err != nil {
		return nil, errors.Wrap(err, "invalid session token")
	}

	if claims.Subject == "" {
		return nil, errors.New("session token has no subject")
	}

	if len(v.authorizedParties) > 0 && claims.AuthorizedParty != "" &&
		!slices.Contains(v.authorizedParties, claims.AuthorizedParty) {
		return nil, errors.Errorf("unauthorized party: %s", claims.AuthorizedParty)
	}

	return &service.Identity{
		Subject: claims.Subject,
		Email:   claims.Email,
	}, nil
}
