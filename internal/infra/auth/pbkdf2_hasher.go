package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"

	"sitd/internal/domain/service"
)

const (
	pbkdf2Prefix       = "$pbkdf2-sha256$"
	pbkdf2SaltBytes    = 16
	pbkdf2KeyBytes     = 32
	pbkdf2DefaultRound = 29000
)

// ab64 is standard base64 without padding where '+' is written as '.'.
// Stored hashes from the previous deployment use this alphabet.
var ab64 = base64.NewEncoding("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789./").WithPadding(base64.NoPadding)

// pbkdf2Hasher produces "$pbkdf2-sha256$<rounds>$<salt>$<digest>" hashes.
type pbkdf2Hasher struct {
	rounds int
}

// NewPBKDF2Hasher returns a PBKDF2-HMAC-SHA256 hasher. Non-positive rounds use the default of 29000.
func NewPBKDF2Hasher(rounds int) service.PasswordHasher {
	if rounds <= 0 {
		rounds = pbkdf2DefaultRound
	}

	return &pbkdf2Hasher{rounds: rounds}
}

func (h *pbkdf2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, pbkdf2SaltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "generate salt")
	}

	digest := pbkdf2.Key([]byte(password), salt, h.rounds, pbkdf2KeyBytes, sha256.New)

	return pbkdf2Prefix + strconv.Itoa(h.rounds) + "$" + ab64.EncodeToString(salt) + "$" + ab64.EncodeToString(digest), nil
}

func (h *pbkdf2Hasher) Check(password, hash string) bool {
	rounds, salt, digest, ok := parsePBKDF2Hash(hash)
	if !ok {
		return false
	}

	candidate := pbkdf2.Key([]byte(password), salt, rounds, len(digest), sha256.New)

	return subtle.ConstantTimeCompare(candidate, digest) == 1
}

func parsePBKDF2Hash(hash string) (rounds int, salt, digest []byte, ok bool) {
	rest, found := strings.CutPrefix(hash, pbkdf2Prefix)
	if !found {
		return 0, nil, nil, false
	}

	parts := strings.Split(rest, "$")
	if len(parts) != 3 {
		return 0, nil, nil, false
	}

	rounds, err := strconv.Atoi(parts[0])
	if err != nil || rounds <= 0 {
		return 0, nil, nil, false
	}

	salt, err = ab64.DecodeString(parts[1])
	if err != nil {
		return 0, nil, nil, false
	}

	digest, err = ab64.DecodeString(parts[2])
	if err != nil || len(digest) == 0 {
		return 0, nil, nil, false
	}

	return rounds, salt, digest, true
}
