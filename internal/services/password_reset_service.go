package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"github.com/revertpixels/CardReminder/internal/repositories"
)

var (
	ErrInvalidOrExpiredCode = errors.New("invalid or expired code")
	ErrChallengeNotVerified = errors.New("code not verified")
)

const resetCodeTTL = 10 * time.Minute

// PasswordResetService drives the three-step reset flow: request a
// code, verify it, then set a new password. A user holds at most one
// live challenge; requesting again overwrites the previous code, and
// a successful password change consumes the challenge.
//
// There is no attempt counter or lock-out on verification. Known gap,
// kept as-is.
type PasswordResetService interface {
	RequestReset(email string) error
	VerifyCode(email, code string) error
	ResetPassword(email, newPassword string) error
}

type passwordResetService struct {
	userRepo repositories.UserRepository
	repo     repositories.PasswordResetRepository
	emails   EmailService
	auth     AuthService
}

func NewPasswordResetService(userRepo repositories.UserRepository, repo repositories.PasswordResetRepository, emails EmailService, auth AuthService) PasswordResetService {
	return &passwordResetService{
		userRepo: userRepo,
		repo:     repo,
		emails:   emails,
		auth:     auth,
	}
}

func (s *passwordResetService) RequestReset(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return fmt.Errorf("email is required")
	}
	user, err := s.userRepo.GetByEmail(email)
	if err != nil || user == nil {
		// don't leak existence
		log.Printf("[password-reset] request for %q: user not found or error: %v", email, err)
		return nil
	}

	code, err := generateResetCode()
	if err != nil {
		return err
	}
	expires := time.Now().Add(resetCodeTTL)
	if _, err := s.repo.Upsert(user.ID, code, expires); err != nil {
		return err
	}

	// the code itself is never logged
	if err := s.emails.SendResetCode(user.Email, code); err != nil {
		log.Printf("[password-reset] failed to send code to %s: %v", user.Email, err)
		return fmt.Errorf("failed to send reset code")
	}
	log.Printf("[password-reset] code sent to %s, expires at %s", user.Email, expires.Format(time.RFC3339))
	return nil
}

func (s *passwordResetService) VerifyCode(email, code string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	code = strings.TrimSpace(code)
	if email == "" || code == "" {
		return ErrInvalidOrExpiredCode
	}
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidOrExpiredCode
	}

	ok, err := s.repo.MarkVerified(user.ID, code, time.Now())
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidOrExpiredCode
	}
	return nil
}

func (s *passwordResetService) ResetPassword(email, newPassword string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	newPassword = strings.TrimSpace(newPassword)
	if newPassword == "" {
		return fmt.Errorf("password is required")
	}
	if len(newPassword) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrChallengeNotVerified
	}

	challenge, err := s.repo.GetByUserID(user.ID)
	if err != nil {
		return err
	}
	if challenge == nil || !challenge.Verified {
		return ErrChallengeNotVerified
	}

	hash, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(user.ID, hash); err != nil {
		return err
	}
	// challenge is single-use
	return s.repo.Delete(user.ID)
}

// generateResetCode returns a uniformly random 6-digit code in
// [100000, 999999].
func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate reset code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
