// Package trust resolves auxiliary trust signals for certainty boosting.
//
// The signals themselves are produced by the out-of-scope verification
// pipeline (phone verification, identity checks); this package only reads
// them. A missing signal is a normal state, not an error.
package trust

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"kredi/pkg/domain"
)

// RedisProvider reads phone trust scores seeded by the verification pipeline.
type RedisProvider struct {
	client *redis.Client
}

func NewRedisProvider(client *redis.Client) *RedisProvider {
	return &RedisProvider{client: client}
}

func phoneTrustKey(borrowerID domain.BorrowerID) string {
	return "trust:phone:" + borrowerID.String()
}

func (p *RedisProvider) PhoneTrustScore(ctx context.Context, borrowerID domain.BorrowerID) (float64, bool, error) {
	score, err := p.client.Get(ctx, phoneTrustKey(borrowerID)).Float64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("read phone trust score: %w", err)
	}
	return score, true, nil
}

// StaticProvider serves fixed scores for tests and local development.
type StaticProvider struct {
	scores map[domain.BorrowerID]float64
}

func NewStaticProvider(scores map[domain.BorrowerID]float64) *StaticProvider {
	return &StaticProvider{scores: scores}
}

func (p *StaticProvider) PhoneTrustScore(_ context.Context, borrowerID domain.BorrowerID) (float64, bool, error) {
	score, ok := p.scores[borrowerID]
	return score, ok, nil
}
