package service

import (
	"context"

	"yatube/internal/config"
	"yatube/internal/pkg"
	"yatube/internal/repository/redis"
)

// Sender delivers one email. Extracted so tests can stub SMTP.
type Sender func(cfg config.SMTPConfig, to, subject, htmlBody string) error

type EmailService struct {
	emailCfg config.SMTPConfig
	rds      *redis.EmailRepository
	send     Sender
}

func NewEmailService(cfg config.SMTPConfig) *EmailService {
	return &EmailService{
		emailCfg: cfg,
		rds:      &redis.EmailRepository{},
		send:     pkg.SendEmail,
	}
}

// SendResetCode stores a fresh 6-digit code under a TTL, then mails it.
func (s *EmailService) SendResetCode(ctx context.Context, email string) error {
	code, err := pkg.RandDigits(6)
	if err != nil {
		return err
	}
	if err = s.rds.SetResetCode(ctx, email, code); err != nil {
		return err
	}

	html := pkg.EmailCodeHTML("сброс пароля", code, redis.DefaultEmailCodeTTL)
	if err = s.send(s.emailCfg, email, "Код восстановления пароля", html); err != nil {
		_ = s.rds.DeleteResetCode(ctx, email)
		return err
	}
	return nil
}

// VerifyResetCode checks and consumes a code. A matching code is
// deleted so it cannot be replayed.
func (s *EmailService) VerifyResetCode(ctx context.Context, email, code string) (bool, error) {
	val, err := s.rds.GetResetCode(ctx, email)
	if err != nil {
		return false, err
	}
	if val != code {
		return false, nil
	}
	if err := s.rds.DeleteResetCode(ctx, email); err != nil {
		return false, err
	}
	return true, nil
}
