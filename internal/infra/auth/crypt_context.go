package auth

import (
	"strings"

	"github.com/pkg/errors"

	"sitd/config"
	"sitd/internal/domain/service"
)

// Supported hash scheme names.
const (
	SchemePBKDF2SHA256 = "pbkdf2_sha256"
	SchemeBcrypt       = "bcrypt"
	SchemeArgon2ID     = "argon2id"
)

// cryptContext hashes with one configured scheme and verifies any supported scheme,
// so stored hashes keep working after the default scheme changes.
type cryptContext struct {
	primary service.PasswordHasher
	pbkdf2  service.PasswordHasher
	bcrypt  service.PasswordHasher
	argon2  service.PasswordHasher
}

// NewPasswordHasher builds the process-wide PasswordHasher from the auth config.
func NewPasswordHasher(cfg *config.Config) (service.PasswordHasher, error) {
	authCfg := cfg.Auth
	if authCfg == nil {
		authCfg = &config.AuthConfig{}
	}

	ctx := &cryptContext{
		pbkdf2: NewPBKDF2Hasher(authCfg.PBKDF2Rounds),
		bcrypt: NewBcryptHasher(authCfg.BcryptCost),
		argon2: NewArgon2Hasher(),
	}

	switch strings.ToLower(authCfg.HashScheme) {
	case "", SchemePBKDF2SHA256:
		ctx.primary = ctx.pbkdf2
	case SchemeBcrypt:
		ctx.primary = ctx.bcrypt
	case SchemeArgon2ID:
		ctx.primary = ctx.argon2
	default:
		return nil, errors.Errorf("unsupported hash scheme %q", authCfg.HashScheme)
	}

	return ctx, nil
}

func (c *cryptContext) Hash(password string) (string, error) {
	return c.primary.Hash(password)
}

func (c *cryptContext) Check(password, hash string) bool {
	switch {
	case strings.HasPrefix(hash, pbkdf2Prefix):
		return c.pbkdf2.Check(password, hash)
	case isBcryptHash(hash):
		return c.bcrypt.Check(password, hash)
	case isArgon2Hash(hash):
		return c.argon2.Check(password, hash)
	default:
		return false
	}
}
