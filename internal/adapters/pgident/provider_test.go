package pgident

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/soilfarming/soil-agent/config"
	"github.com/soilfarming/soil-agent/internal/data"
	domainauth "github.com/soilfarming/soil-agent/internal/domain/auth"
	"github.com/soilfarming/soil-agent/internal/ports"
	"github.com/soilfarming/soil-agent/internal/testutil"
)

func testProvider(db *sql.DB) *Provider {
	return NewProvider(data.NewCredentialRepo(db), config.PasswordAuthConfig{
		MinPasswordLength: 6,
		// Low cost keeps the test fast; production uses the config default.
		BcryptCost: 4,
	})
}

func TestProvider_SignUpAndSignIn(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		p := testProvider(db)

		identity, err := p.SignUp(ctx, ports.SignUpInput{
			Credentials: ports.Credentials{Email: "Grower@Example.com", Password: "plowshare"},
			Name:        "Pat Grower",
			Role:        domainauth.RoleFarmer,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, identity.UserID)
		assert.Equal(t, "grower@example.com", identity.Email)
		assert.Equal(t, "Pat Grower", identity.Name)
		assert.Equal(t, domainauth.RoleFarmer, identity.Role)

		// Sign in with the original casing; lookup is case-insensitive.
		signedIn, err := p.SignIn(ctx, ports.Credentials{Email: "Grower@Example.com", Password: "plowshare"})
		require.NoError(t, err)
		assert.Equal(t, identity.UserID, signedIn.UserID)
		assert.Equal(t, "grower@example.com", signedIn.Email)
	})
}

func TestProvider_SignUpDuplicateEmail(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		p := testProvider(db)

		in := ports.SignUpInput{
			Credentials: ports.Credentials{Email: "taken@example.com", Password: "plowshare"},
			Name:        "First",
			Role:        domainauth.RoleFarmer,
		}
		_, err := p.SignUp(ctx, in)
		require.NoError(t, err)

		_, err = p.SignUp(ctx, in)
		assert.ErrorIs(t, err, ports.ErrEmailTaken)
	})
}

func TestProvider_SignUpWeakPassword(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		p := testProvider(db)

		_, err := p.SignUp(context.Background(), ports.SignUpInput{
			Credentials: ports.Credentials{Email: "short@example.com", Password: "abc"},
			Name:        "Short",
		})
		assert.ErrorIs(t, err, ports.ErrWeakPassword)
	})
}

func TestProvider_SignInFailures(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		p := testProvider(db)

		_, err := p.SignUp(ctx, ports.SignUpInput{
			Credentials: ports.Credentials{Email: "known@example.com", Password: "plowshare"},
			Name:        "Known",
			Role:        domainauth.RoleFarmer,
		})
		require.NoError(t, err)

		// Unknown email and wrong password return the same sentinel.
		_, err = p.SignIn(ctx, ports.Credentials{Email: "ghost@example.com", Password: "plowshare"})
		assert.ErrorIs(t, err, ports.ErrInvalidCredentials)

		_, err = p.SignIn(ctx, ports.Credentials{Email: "known@example.com", Password: "wrong-pass"})
		assert.ErrorIs(t, err, ports.ErrInvalidCredentials)
	})
}

// The unknown-email branch burns a real bcrypt comparison so it costs the
// same as a wrong password. That only holds if the dummy hash parses.
func TestDummyCredentialHashIsValidBcrypt(t *testing.T) {
	cost, err := bcrypt.Cost(dummyCredentialHash)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)

	err = bcrypt.CompareHashAndPassword(dummyCredentialHash, []byte("not-the-plaintext"))
	assert.ErrorIs(t, err, bcrypt.ErrMismatchedHashAndPassword)
}
