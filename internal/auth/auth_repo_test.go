package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/sahil00000001/Employee-Appraisal-System/internal/auth"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisOTPStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save writes code with ttl", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := auth.NewOTPStore(rdb)

		mock.ExpectSet("otp:alice@example.com", "123456", 10*time.Minute).SetVal("OK")

		err := store.Save(ctx, "alice@example.com", "123456", 10*time.Minute)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wrong guess leaves the code redeemable", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := auth.NewOTPStore(rdb)

		mock.ExpectGet("otp:alice@example.com").SetVal("123456")
		mock.ExpectGet("otp:alice@example.com").SetVal("123456")
		mock.ExpectDel("otp:alice@example.com").SetVal(1)

		ok, err := store.Consume(ctx, "alice@example.com", "000000")
		assert.NoError(t, err)
		assert.False(t, ok)

		ok, err = store.Consume(ctx, "alice@example.com", "123456")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("correct code is single use", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := auth.NewOTPStore(rdb)

		mock.ExpectGet("otp:alice@example.com").SetVal("123456")
		mock.ExpectDel("otp:alice@example.com").SetVal(1)
		mock.ExpectGet("otp:alice@example.com").RedisNil()

		ok, err := store.Consume(ctx, "alice@example.com", "123456")
		assert.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Consume(ctx, "alice@example.com", "123456")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
