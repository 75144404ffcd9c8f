package pgident

// Package pgident implements the password identity provider backed by the
// credentials table. It owns the bcrypt hashing; profile creation stays in
// the auth service.

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/soilfarming/soil-agent/config"
	"github.com/soilfarming/soil-agent/internal/data"
	domainauth "github.com/soilfarming/soil-agent/internal/domain/auth"
	"github.com/soilfarming/soil-agent/internal/domain/model"
	"github.com/soilfarming/soil-agent/internal/ports"
)

// Provider authenticates against bcrypt-hashed credentials in Postgres.
type Provider struct {
	creds *data.CredentialRepo
	cfg   config.PasswordAuthConfig
}

// dummyCredentialHash is a valid bcrypt hash compared against on the
// missing-credential branch of SignIn, so an unknown email costs the same
// bcrypt work as a wrong password and the two are not distinguishable by
// response time.
var dummyCredentialHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// NewProvider creates a password identity provider.
func NewProvider(creds *data.CredentialRepo, cfg config.PasswordAuthConfig) *Provider {
	return &Provider{creds: creds, cfg: cfg}
}

// SignUp registers a new credential and mints a fresh principal id.
func (p *Provider) SignUp(ctx context.Context, in ports.SignUpInput) (domainauth.Identity, error) {
	if len(in.Password) < p.cfg.MinPasswordLength {
		return domainauth.Identity{}, ports.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), p.cfg.BcryptCost)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("hash password: %w", err)
	}

	principalID := uuid.NewString()
	err = p.creds.Create(ctx, data.Credential{
		PrincipalID:  principalID,
		Email:        in.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, data.ErrCredentialEmailExists) {
			return domainauth.Identity{}, ports.ErrEmailTaken
		}
		return domainauth.Identity{}, err
	}

	return domainauth.Identity{
		UserID: principalID,
		Name:   in.Name,
		Email:  model.NormalizeEmail(in.Email),
		Role:   in.Role,
	}, nil
}

// SignIn verifies an email/password pair. A missing credential and a wrong
// password report the same error.
func (p *Provider) SignIn(ctx context.Context, creds ports.Credentials) (domainauth.Identity, error) {
	stored, err := p.creds.GetByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, data.ErrCredentialNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyCredentialHash, []byte(creds.Password))
			return domainauth.Identity{}, ports.ErrInvalidCredentials
		}
		return domainauth.Identity{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(creds.Password)) != nil {
		return domainauth.Identity{}, ports.ErrInvalidCredentials
	}

	return domainauth.Identity{
		UserID: stored.PrincipalID,
		Email:  stored.Email,
	}, nil
}

var _ ports.IdentityProvider = (*Provider)(nil)
