package service

import (
	"context"
	"errors"
	"testing"

	"yatube/internal/config"
	"yatube/internal/repository/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmailService(t *testing.T) (*EmailService, *string) {
	t.Helper()
	mr := miniredis.RunT(t)
	require.NoError(t, redis.Init(mr.Addr(), "", 0))
	t.Cleanup(func() { _ = redis.Close() })

	var sent string
	svc := NewEmailService(config.SMTPConfig{})
	svc.send = func(_ config.SMTPConfig, to, subject, htmlBody string) error {
		sent = htmlBody
		return nil
	}
	return svc, &sent
}

func TestResetCodeRoundTrip(t *testing.T) {
	svc, sent := testEmailService(t)
	ctx := context.Background()

	require.NoError(t, svc.SendResetCode(ctx, "leo@example.com"))
	assert.NotEmpty(t, *sent)

	code, err := svc.rds.GetResetCode(ctx, "leo@example.com")
	require.NoError(t, err)
	assert.Contains(t, *sent, code)

	ok, err := svc.VerifyResetCode(ctx, "leo@example.com", code)
	require.NoError(t, err)
	assert.True(t, ok)

	// Consumed: the same code no longer verifies.
	_, err = svc.VerifyResetCode(ctx, "leo@example.com", code)
	assert.ErrorIs(t, err, redis.ErrCodeNotFound)
}

func TestVerifyWrongCodeKeepsStoredCode(t *testing.T) {
	svc, _ := testEmailService(t)
	ctx := context.Background()

	require.NoError(t, svc.SendResetCode(ctx, "leo@example.com"))

	ok, err := svc.VerifyResetCode(ctx, "leo@example.com", "000000")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.rds.GetResetCode(ctx, "leo@example.com")
	assert.NoError(t, err)
}

func TestSendFailureDropsStoredCode(t *testing.T) {
	svc, _ := testEmailService(t)
	svc.send = func(config.SMTPConfig, string, string, string) error {
		return errors.New("smtp down")
	}
	ctx := context.Background()

	err := svc.SendResetCode(ctx, "leo@example.com")
	assert.Error(t, err)

	_, err = svc.rds.GetResetCode(ctx, "leo@example.com")
	assert.ErrorIs(t, err, redis.ErrCodeNotFound)
}
