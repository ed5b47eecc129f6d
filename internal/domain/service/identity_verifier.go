package service

import "context"

// Identity is the verified subject of a bearer credential.
type Identity struct {
	Subject string
	Email   string
}

// IdentityVerifier validates bearer tokens issued by the external identity provider.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
