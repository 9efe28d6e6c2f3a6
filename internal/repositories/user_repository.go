package repositories

import (
	"database/sql"
	"fmt"

	"github.com/revertpixels/CardReminder/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdatePassword(userID int, passwordHash string) error
	UpdateTelegramChatID(userID int, chatID *int64) error
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) Create(user *models.User) error {
	const q = `
                INSERT INTO users (name, email, password_hash)
                VALUES ($1, $2, $3)
                RETURNING id, created_at
        `
	if err := r.DB.QueryRow(q, user.Name, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(id int) (*models.User, error) {
	const q = `
                SELECT id, name, email, password_hash, telegram_chat_id, created_at
                FROM users
                WHERE id = $1
        `
	return r.scanOne(r.DB.QueryRow(q, id))
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	const q = `
                SELECT id, name, email, password_hash, telegram_chat_id, created_at
                FROM users
                WHERE email = $1
        `
	return r.scanOne(r.DB.QueryRow(q, email))
}

func (r *userRepository) scanOne(row *sql.Row) (*models.User, error) {
	var u models.User
	var chatID sql.NullInt64
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &chatID, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if chatID.Valid {
		u.TelegramChatID = &chatID.Int64
	}
	return &u, nil
}

func (r *userRepository) UpdatePassword(userID int, passwordHash string) error {
	const q = `
                UPDATE users SET password_hash = $1 WHERE id = $2
        `
	if _, err := r.DB.Exec(q, passwordHash, userID); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (r *userRepository) UpdateTelegramChatID(userID int, chatID *int64) error {
	const q = `
                UPDATE users SET telegram_chat_id = $1 WHERE id = $2
        `
	var v sql.NullInt64
	if chatID != nil {
		v = sql.NullInt64{Int64: *chatID, Valid: true}
	}
	if _, err := r.DB.Exec(q, v, userID); err != nil {
		return fmt.Errorf("update telegram chat id: %w", err)
	}
	return nil
}
