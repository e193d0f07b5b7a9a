package service

import (
	"context"
	"errors"

	"yatube/internal/model"
	"yatube/internal/pkg"
	"yatube/internal/repository/mysql"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

type UserService struct {
	repo     *mysql.UserRepository
	emailSvc *EmailService
}

func NewUserService(db *gorm.DB, emailSvc *EmailService) *UserService {
	return &UserService{
		repo:     &mysql.UserRepository{DB: db},
		emailSvc: emailSvc,
	}
}

func (s *UserService) Register(username, password, email string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.Create(&model.User{
		Username: username,
		Password: string(hash),
		Email:    email,
	})
}

// Login verifies credentials and returns a signed session token.
func (s *UserService) Login(username, password string) (string, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		return "", ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrInvalidPassword
	}
	return pkg.GenerateSession(user.ID)
}

func (s *UserService) FindByID(id uint64) (*model.User, error) {
	return s.repo.FindByID(id)
}

// RequestPasswordReset emails a one-shot code to an existing account.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) error {
	if _, err := s.repo.FindByEmail(email); err != nil {
		return ErrUserNotFound
	}
	return s.emailSvc.SendResetCode(ctx, email)
}

// ConfirmPasswordReset checks the emailed code and stores the new
// bcrypt hash.
func (s *UserService) ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error {
	ok, err := s.emailSvc.VerifyResetCode(ctx, email, code)
	if err != nil || !ok {
		return errors.New("verification failed")
	}
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(user, string(hash))
}
