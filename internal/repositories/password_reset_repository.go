package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/revertpixels/CardReminder/internal/models"
)

type PasswordResetRepository interface {
	// Upsert replaces any live challenge for the user: new code, new
	// expiry, verified cleared.
	Upsert(userID int, code string, expiresAt time.Time) (*models.PasswordReset, error)
	GetByUserID(userID int) (*models.PasswordReset, error)
	// MarkVerified flips verified on the user's challenge only when the
	// stored code matches and the expiry has not passed. Returns false
	// when no row qualified.
	MarkVerified(userID int, code string, now time.Time) (bool, error)
	Delete(userID int) error
}

type passwordResetRepository struct {
	DB *sql.DB
}

func NewPasswordResetRepository(db *sql.DB) PasswordResetRepository {
	return &passwordResetRepository{DB: db}
}

func (r *passwordResetRepository) Upsert(userID int, code string, expiresAt time.Time) (*models.PasswordReset, error) {
	const q = `
                INSERT INTO password_resets (user_id, code, expires_at, verified)
                VALUES ($1, $2, $3, FALSE)
                ON CONFLICT (user_id) DO UPDATE
                SET code = EXCLUDED.code,
                    expires_at = EXCLUDED.expires_at,
                    verified = FALSE,
                    created_at = NOW()
                RETURNING id, created_at
        `
	pr := &models.PasswordReset{UserID: userID, Code: code, ExpiresAt: expiresAt}
	if err := r.DB.QueryRow(q, userID, code, expiresAt).Scan(&pr.ID, &pr.CreatedAt); err != nil {
		return nil, fmt.Errorf("upsert password reset: %w", err)
	}
	return pr, nil
}

func (r *passwordResetRepository) GetByUserID(userID int) (*models.PasswordReset, error) {
	const q = `
                SELECT id, user_id, code, expires_at, verified, created_at
                FROM password_resets
                WHERE user_id = $1
        `
	pr := &models.PasswordReset{}
	if err := r.DB.QueryRow(q, userID).
		Scan(&pr.ID, &pr.UserID, &pr.Code, &pr.ExpiresAt, &pr.Verified, &pr.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get password reset: %w", err)
	}
	return pr, nil
}

func (r *passwordResetRepository) MarkVerified(userID int, code string, now time.Time) (bool, error) {
	const q = `
                UPDATE password_resets
                SET verified = TRUE
                WHERE user_id = $1 AND code = $2 AND expires_at > $3
        `
	res, err := r.DB.Exec(q, userID, code, now)
	if err != nil {
		return false, fmt.Errorf("mark verified: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *passwordResetRepository) Delete(userID int) error {
	const q = `
                DELETE FROM password_resets WHERE user_id = $1
        `
	if _, err := r.DB.Exec(q, userID); err != nil {
		return fmt.Errorf("delete password reset: %w", err)
	}
	return nil
}
