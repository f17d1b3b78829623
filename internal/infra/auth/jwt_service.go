package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"sitd/config"
	domainerrors "sitd/internal/domain/errors"
	"sitd/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte            // Shared HMAC key.
	method jwt.SigningMethod // Configured HMAC algorithm.
	ttl    time.Duration     // Default access token lifetime.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// Only HMAC algorithms are accepted since tokens are signed with a shared secret.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	method, ok := jwt.GetSigningMethod(cfg.JWT.Algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, errors.Errorf("unsupported jwt algorithm %q", cfg.JWT.Algorithm)
	}

	ttl := cfg.JWT.ExpireDuration()
	if ttl <= 0 {
		return nil, errors.Errorf("jwt expiry must be positive, got %d minutes", cfg.JWT.ExpireMinutes)
	}

	return &jwtService{
		secret: []byte(cfg.JWT.Secret),
		method: method,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a token carrying sub, role, iat and exp.
func (s *jwtService) Issue(subject, role string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := service.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

func (s *jwtService) IssueDefault(subject, role string) (string, error) {
	return s.Issue(subject, role, s.ttl)
}

// Verify parses tokenString and maps every failure onto ErrTokenExpired or ErrInvalidToken.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage(err.Error())
		}

		return nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	if !token.Valid || claims.Subject == "" {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token has no subject")
	}

	return claims, nil
}

func (s *jwtService) DefaultTTL() time.Duration {
	return s.ttl
}
