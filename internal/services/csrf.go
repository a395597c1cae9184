package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/skins-api/internal/jwt"
	"github.com/sbilibin2017/skins-api/internal/logger"
)

//go:generate mockgen -source=csrf.go -destination=mock_csrf.go -package=services

// CSRFTokener signs and verifies the plaintext of strict CSRF tokens.
type CSRFTokener interface {
	Generate(ctx context.Context, nonce string) (string, error)
	Parse(ctx context.Context, token string) (*jwt.Claims, error)
}

// NonceStore records consumed token nonces.
type NonceStore interface {
	Consume(ctx context.Context, nonce string, ttl time.Duration) (bool, error)
}

// CSRFService issues and validates x-csrf header values.
//
// By default a token is valid when it decrypts under the server key to a
// non-empty plaintext. In strict mode the plaintext must also be a signed,
// unexpired token whose nonce has not been used before.
type CSRFService struct {
	codec  Encrypter
	tokens CSRFTokener
	nonces NonceStore
}

// CSRFOption configures a CSRFService.
type CSRFOption func(*CSRFService)

// WithStrictTokens enables signed single-use tokens. nonces may be nil, in
// which case tokens are checked for signature and expiry only.
func WithStrictTokens(tokens CSRFTokener, nonces NonceStore) CSRFOption {
	return func(s *CSRFService) {
		s.tokens = tokens
		s.nonces = nonces
	}
}

// NewCSRFService creates a new CSRFService instance.
func NewCSRFService(codec Encrypter, opts ...CSRFOption) *CSRFService {
	s := &CSRFService{codec: codec}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Strict reports whether signed single-use tokens are required.
func (svc *CSRFService) Strict() bool {
	return svc.tokens != nil
}

// Issue returns a fresh token for the x-csrf header.
func (svc *CSRFService) Issue(ctx context.Context) (string, error) {
	plaintext := uuid.NewString()
	if svc.Strict() {
		signed, err := svc.tokens.Generate(ctx, plaintext)
		if err != nil {
			logger.Log.Errorw("failed to sign csrf token", "err", err)
			return "", err
		}
		plaintext = signed
	}
	return svc.codec.Encrypt(plaintext), nil
}

// Validate checks token. It returns ErrInvalidCSRF for any rejected token and
// a different error only when the nonce store fails.
func (svc *CSRFService) Validate(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidCSRF
	}

	plaintext, err := svc.codec.Decrypt(token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCSRF, err)
	}
	if plaintext == "" {
		return ErrInvalidCSRF
	}

	if !svc.Strict() {
		return nil
	}

	claims, err := svc.tokens.Parse(ctx, plaintext)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCSRF, err)
	}
	if svc.nonces == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt)
	if ttl < time.Second {
		ttl = time.Second
	}

	fresh, err := svc.nonces.Consume(ctx, claims.Nonce, ttl)
	if err != nil {
		logger.Log.Errorw("failed to consume csrf nonce", "err", err)
		return err
	}
	if !fresh {
		logger.Log.Infow("csrf nonce replayed", "nonce", claims.Nonce)
		return ErrInvalidCSRF
	}
	return nil
}
