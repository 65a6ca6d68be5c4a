package password_test

import (
	"errors"
	"hotelbook/config"
	"hotelbook/shared/password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, password.DefaultCost)
}

func TestErrors(t *testing.T) {
	assert.Equal(t, "invalid password", password.ErrInvalidPassword.Error())
	assert.Equal(t, "password cannot be empty", password.ErrEmptyPassword.Error())
	assert.Equal(t, "error hashing password", password.ErrHashingPassword.Error())
	assert.Equal(t, "error verifying password", password.ErrVerifyingPassword.Error())
}

func TestSHA256_MatchesLegacyDigest(t *testing.T) {
	hasher := password.NewSHA256()

	digest, err := hasher.Hash("admin123")
	require.NoError(t, err)

	assert.Equal(t, "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9", digest)
	assert.Equal(t, password.AlgorithmSHA256, hasher.Algorithm())
}

func TestSHA256_IsUnsalted(t *testing.T) {
	hasher := password.NewSHA256()

	first, err := hasher.Hash("secret1")
	require.NoError(t, err)

	second, err := hasher.Hash("secret1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHashers_Verify(t *testing.T) {
	hashers := []password.Hasher{
		password.NewSHA256(),
		password.NewBcrypt(bcrypt.MinCost),
	}

	for _, hasher := range hashers {
		digest, err := hasher.Hash("testPassword123")
		require.NoError(t, err)

		tests := []struct {
			name          string
			password      string
			hash          string
			expectedError error
		}{
			{name: "valid password and hash", password: "testPassword123", hash: digest},
			{name: "wrong password", password: "wrongPassword", hash: digest, expectedError: password.ErrInvalidPassword},
			{name: "empty password", password: "", hash: digest, expectedError: password.ErrInvalidPassword},
			{name: "empty hash", password: "testPassword123", hash: "", expectedError: password.ErrInvalidPassword},
			{name: "invalid hash format", password: "testPassword123", hash: "invalid_hash", expectedError: password.ErrVerifyingPassword},
		}

		for _, tt := range tests {
			t.Run(hasher.Algorithm()+"/"+tt.name, func(t *testing.T) {
				err := hasher.Verify(tt.password, tt.hash)

				if tt.expectedError == nil {
					assert.NoError(t, err)

					return
				}

				assert.True(t, errors.Is(err, tt.expectedError), "expected %v, got %v", tt.expectedError, err)
			})
		}
	}
}

func TestHash_Empty(t *testing.T) {
	_, err := password.NewSHA256().Hash("")
	assert.ErrorIs(t, err, password.ErrEmptyPassword)

	_, err = password.NewBcrypt(bcrypt.MinCost).Hash("")
	assert.ErrorIs(t, err, password.ErrEmptyPassword)
}

func TestBcrypt_LongPassword(t *testing.T) {
	_, err := password.NewBcrypt(bcrypt.MinCost).Hash(strings.Repeat("a", 100))

	assert.ErrorIs(t, err, password.ErrHashingPassword)
}

func TestBcrypt_IsSalted(t *testing.T) {
	hasher := password.NewBcrypt(bcrypt.MinCost)

	first, err := hasher.Hash("testPassword")
	require.NoError(t, err)

	second, err := hasher.Hash("testPassword")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, password.IsBcryptDigest(first))
	assert.NoError(t, hasher.Verify("testPassword", second))
}

func TestNew_VerifiesBothDigestFormats(t *testing.T) {
	cfg := &config.Config{}
	cfg.Credential.Algorithm = password.AlgorithmBcrypt
	cfg.Credential.BcryptCost = bcrypt.MinCost

	hasher := password.New(cfg)
	assert.Equal(t, password.AlgorithmBcrypt, hasher.Algorithm())

	fresh, err := hasher.Hash("test123")
	require.NoError(t, err)
	assert.True(t, password.IsBcryptDigest(fresh))

	legacy, err := password.NewSHA256().Hash("test123")
	require.NoError(t, err)

	assert.NoError(t, hasher.Verify("test123", fresh))
	assert.NoError(t, hasher.Verify("test123", legacy))
	assert.ErrorIs(t, hasher.Verify("test124", legacy), password.ErrInvalidPassword)
}

func TestNew_DefaultsToSHA256(t *testing.T) {
	hasher := password.New(&config.Config{})

	assert.Equal(t, password.AlgorithmSHA256, hasher.Algorithm())
}

func TestNormalizeAnswer(t *testing.T) {
	assert.Equal(t, "testanswer", password.NormalizeAnswer("  TestAnswer \n"))
	assert.Equal(t, "", password.NormalizeAnswer("   "))
}
