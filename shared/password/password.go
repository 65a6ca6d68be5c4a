package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"hotelbook/config"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default cost for bcrypt hashing
	DefaultCost = bcrypt.DefaultCost

	AlgorithmSHA256 = "sha256"
	AlgorithmBcrypt = "bcrypt"

	sha256DigestLength = sha256.Size * 2
)

var (
	ErrInvalidPassword   = errors.New("invalid password")
	ErrEmptyPassword     = errors.New("password cannot be empty")
	ErrHashingPassword   = errors.New("error hashing password")
	ErrVerifyingPassword = errors.New("error verifying password")
)

// Hasher turns a plain secret into a stored digest and checks candidates against it.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) error
	Algorithm() string
}

type sha256Hasher struct{}

var unsaltedWarning sync.Once

// NewSHA256 returns the hasher compatible with legacy rows: a hex SHA-256 digest with no salt.
// Identical passwords produce identical digests, so prefer bcrypt for new deployments.
func NewSHA256() Hasher {
	unsaltedWarning.Do(func() {
		log.Warn().Str("algorithm", AlgorithmSHA256).Msg("password hashing is unsalted; switch CREDENTIAL_ALGORITHM to bcrypt")
	})

	return sha256Hasher{}
}

func (sha256Hasher) Algorithm() string {
	return AlgorithmSHA256
}

func (sha256Hasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	sum := sha256.Sum256([]byte(plain))

	return hex.EncodeToString(sum[:]), nil
}

func (h sha256Hasher) Verify(plain, digest string) error {
	if plain == "" || digest == "" {
		return ErrInvalidPassword
	}

	if len(digest) != sha256DigestLength {
		return ErrVerifyingPassword
	}

	candidate, _ := h.Hash(plain)
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(strings.ToLower(digest))) != 1 {
		return ErrInvalidPassword
	}

	return nil
}

type bcryptHasher struct {
	cost int
}

// NewBcrypt returns a salted bcrypt hasher. A cost outside bcrypt's range falls back to DefaultCost.
func NewBcrypt(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}

	return bcryptHasher{cost: cost}
}

func (bcryptHasher) Algorithm() string {
	return AlgorithmBcrypt
}

func (h bcryptHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	return string(bytes), nil
}

func (bcryptHasher) Verify(plain, digest string) error {
	if plain == "" || digest == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}

		return fmt.Errorf("%w: %w", ErrVerifyingPassword, err)
	}

	return nil
}

// dispatcher hashes with the configured algorithm and verifies by inspecting the stored digest,
// so rows written before an algorithm switch keep working.
type dispatcher struct {
	primary Hasher
	legacy  Hasher
	bcrypt  Hasher
}

func (d dispatcher) Algorithm() string {
	return d.primary.Algorithm()
}

func (d dispatcher) Hash(plain string) (string, error) {
	return d.primary.Hash(plain) //nolint:wrapcheck
}

func (d dispatcher) Verify(plain, digest string) error {
	if IsBcryptDigest(digest) {
		return d.bcrypt.Verify(plain, digest) //nolint:wrapcheck
	}

	return d.legacy.Verify(plain, digest) //nolint:wrapcheck
}

// New builds the hasher selected by CREDENTIAL_ALGORITHM, defaulting to sha256 for legacy data.
func New(cfg *config.Config) Hasher {
	bcryptHash := NewBcrypt(cfg.Credential.BcryptCost)

	if strings.EqualFold(cfg.Credential.Algorithm, AlgorithmBcrypt) {
		return dispatcher{primary: bcryptHash, legacy: sha256Hasher{}, bcrypt: bcryptHash}
	}

	legacy := NewSHA256()

	return dispatcher{primary: legacy, legacy: legacy, bcrypt: bcryptHash}
}

// IsBcryptDigest reports whether digest was produced by bcrypt.
func IsBcryptDigest(digest string) bool {
	return strings.HasPrefix(digest, "$2a$") || strings.HasPrefix(digest, "$2b$") || strings.HasPrefix(digest, "$2y$")
}

// NormalizeAnswer canonicalises a security answer before hashing so that case and surrounding
// whitespace do not matter.
func NormalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
