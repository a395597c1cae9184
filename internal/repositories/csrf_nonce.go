package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/skins-api/internal/logger"
)

// CSRFNonceRepository records used CSRF nonces in Redis so each token is accepted once.
type CSRFNonceRepository struct {
	client *redis.Client
}

func NewCSRFNonceRepository(client *redis.Client) *CSRFNonceRepository {
	return &CSRFNonceRepository{client: client}
}

// Consume marks nonce as used for ttl. It returns false when the nonce was already used.
func (r *CSRFNonceRepository) Consume(ctx context.Context, nonce string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("csrf:nonce:%s", nonce)

	ok, err := r.client.SetNX(ctx, key, "1", ttl).Result()

	logger.Log.Infow("csrf nonce",
		"key", key,
		"result", ok,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return ok, nil
}
