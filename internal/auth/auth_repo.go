package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const otpKeyPrefix = "otp:"

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock

// OTPStore holds short-lived verification codes. Consume deletes the stored
// code only on a match, so a wrong guess leaves the code redeemable and a
// correct one is single-use.
type OTPStore interface {
	Save(ctx context.Context, email, code string, ttl time.Duration) error
	Consume(ctx context.Context, email, code string) (bool, error)
}

type redisOTPStore struct {
	rdb *redis.Client
}

func NewOTPStore(rdb *redis.Client) OTPStore {
	return &redisOTPStore{rdb: rdb}
}

func (s *redisOTPStore) Save(ctx context.Context, email, code string, ttl time.Duration) error {
	return s.rdb.Set(ctx, otpKeyPrefix+email, code, ttl).Err()
}

func (s *redisOTPStore) Consume(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.rdb.Get(ctx, otpKeyPrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if stored != code {
		return false, nil
	}
	if err := s.rdb.Del(ctx, otpKeyPrefix+email).Err(); err != nil {
		return false, err
	}
	return true, nil
}
