package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultEmailCodeTTL = 5 * time.Minute
	ResetCodePrefix     = "email:code:reset"
)

var (
	ErrCodeNotFound  = errors.New("reset code not found")
	ErrCodeSetFailed = errors.New("reset code set failed")
	ErrCodeDelFailed = errors.New("reset code delete failed")
)

// EmailRepository keeps short-lived password-reset codes.
type EmailRepository struct{}

func (e *EmailRepository) resetKey(email string) string {
	return fmt.Sprintf("%s:%s", ResetCodePrefix, email)
}

func (e *EmailRepository) SetResetCode(ctx context.Context, email, code string) error {
	if err := Client.Set(ctx, e.resetKey(email), code, DefaultEmailCodeTTL).Err(); err != nil {
		return ErrCodeSetFailed
	}
	return nil
}

func (e *EmailRepository) GetResetCode(ctx context.Context, email string) (string, error) {
	val, err := Client.Get(ctx, e.resetKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCodeNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// DeleteResetCode removes a consumed code. Deleting a missing key is
// fine, a code is one-shot either way.
func (e *EmailRepository) DeleteResetCode(ctx context.Context, email string) error {
	if err := Client.Del(ctx, e.resetKey(email)).Err(); err != nil {
		return ErrCodeDelFailed
	}
	return nil
}
