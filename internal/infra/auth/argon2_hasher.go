package auth

import (
	"strings"

	"github.com/matthewhartstonge/argon2"

	"sitd/internal/domain/service"
)

const argon2Prefix = "$argon2"

type argon2Hasher struct {
	cfg argon2.Config
}

// NewArgon2Hasher returns an argon2id hasher using the library's recommended parameters.
func NewArgon2Hasher() service.PasswordHasher {
	return &argon2Hasher{cfg: argon2.DefaultConfig()}
}

func (h *argon2Hasher) Hash(password string) (string, error) {
	encoded, err := h.cfg.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

func (h *argon2Hasher) Check(password, hash string) bool {
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(hash))

	return err == nil && ok
}

func isArgon2Hash(hash string) bool {
	return strings.HasPrefix(hash, argon2Prefix)
}
