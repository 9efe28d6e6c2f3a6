package repositories

import (
	"database/sql"
	"fmt"

	"github.com/revertpixels/CardReminder/internal/models"
)

type CardRepository interface {
	Create(card *models.Card) (int64, error)
	Update(card *models.Card) (bool, error)
	Delete(id, ownerID int) (bool, error)
	GetByID(id, ownerID int) (*models.Card, error)
	ListByOwner(ownerID int) ([]*models.Card, error)
	ListAllWithOwner() ([]*models.CardWithOwner, error)
	SetPaid(id, ownerID int, paid bool) (bool, error)
}

type cardRepository struct {
	DB *sql.DB
}

func NewCardRepository(db *sql.DB) CardRepository {
	return &cardRepository{DB: db}
}

const cardColumns = `
                id, owner_id, holder_name, nickname, bank_name, is_other_bank,
                network, last_four, billing_day, due_day, credit_limit, color,
                notify_on_billing, notify_before_due, notify_days_before,
                paid_this_cycle, created_at`

func (r *cardRepository) Create(card *models.Card) (int64, error) {
	const q = `
                INSERT INTO cards (
                        owner_id, holder_name, nickname, bank_name, is_other_bank,
                        network, last_four, billing_day, due_day, credit_limit, color,
                        notify_on_billing, notify_before_due, notify_days_before,
                        paid_this_cycle
                )
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, FALSE)
                RETURNING id, created_at
        `
	var id int64
	if err := r.DB.QueryRow(q,
		card.OwnerID, card.HolderName, card.Nickname, card.BankName, card.IsOtherBank,
		card.Network, card.LastFour, card.BillingDay, card.DueDay, card.CreditLimit, card.Color,
		card.NotifyOnBilling, card.NotifyBeforeDue, nullableInt(card.NotifyDaysBefore),
	).Scan(&id, &card.CreatedAt); err != nil {
		return 0, fmt.Errorf("create card: %w", err)
	}
	return id, nil
}

// Update rewrites the card's terms and clears paid_this_cycle, scoped
// to (id, owner_id) in a single statement.
func (r *cardRepository) Update(card *models.Card) (bool, error) {
	const q = `
                UPDATE cards
                SET holder_name=$1, nickname=$2, bank_name=$3, is_other_bank=$4,
                    network=$5, last_four=$6, billing_day=$7, due_day=$8,
                    credit_limit=$9, color=$10, notify_on_billing=$11,
                    notify_before_due=$12, notify_days_before=$13,
                    paid_this_cycle=FALSE
                WHERE id=$14 AND owner_id=$15
        `
	res, err := r.DB.Exec(q,
		card.HolderName, card.Nickname, card.BankName, card.IsOtherBank,
		card.Network, card.LastFour, card.BillingDay, card.DueDay,
		card.CreditLimit, card.Color, card.NotifyOnBilling,
		card.NotifyBeforeDue, nullableInt(card.NotifyDaysBefore),
		card.ID, card.OwnerID,
	)
	if err != nil {
		return false, fmt.Errorf("update card: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *cardRepository) Delete(id, ownerID int) (bool, error) {
	const q = `
                DELETE FROM cards WHERE id=$1 AND owner_id=$2
        `
	res, err := r.DB.Exec(q, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete card: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *cardRepository) GetByID(id, ownerID int) (*models.Card, error) {
	const q = `
                SELECT ` + cardColumns + `
                FROM cards
                WHERE id=$1 AND owner_id=$2
        `
	var c models.Card
	if err := scanCard(r.DB.QueryRow(q, id, ownerID), &c); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get card: %w", err)
	}
	return &c, nil
}

func (r *cardRepository) ListByOwner(ownerID int) ([]*models.Card, error) {
	const q = `
                SELECT ` + cardColumns + `
                FROM cards
                WHERE owner_id=$1
                ORDER BY created_at DESC
        `
	rows, err := r.DB.Query(q, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	var res []*models.Card
	for rows.Next() {
		var c models.Card
		if err := scanCard(rows, &c); err != nil {
			return nil, err
		}
		res = append(res, &c)
	}
	return res, rows.Err()
}

// ListAllWithOwner joins every card with its owner's contact channels.
// The reminder scan iterates this across all users.
func (r *cardRepository) ListAllWithOwner() ([]*models.CardWithOwner, error) {
	const q = `
                SELECT c.id, c.owner_id, c.holder_name, c.nickname, c.bank_name,
                       c.is_other_bank, c.network, c.last_four, c.billing_day,
                       c.due_day, c.credit_limit, c.color, c.notify_on_billing,
                       c.notify_before_due, c.notify_days_before,
                       c.paid_this_cycle, c.created_at,
                       u.email, u.telegram_chat_id
                FROM cards c
                JOIN users u ON u.id = c.owner_id
        `
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, fmt.Errorf("list cards with owner: %w", err)
	}
	defer rows.Close()

	var res []*models.CardWithOwner
	for rows.Next() {
		var c models.CardWithOwner
		var days sql.NullInt64
		var chatID sql.NullInt64
		if err := rows.Scan(
			&c.ID, &c.OwnerID, &c.HolderName, &c.Nickname, &c.BankName,
			&c.IsOtherBank, &c.Network, &c.LastFour, &c.BillingDay,
			&c.DueDay, &c.CreditLimit, &c.Color, &c.NotifyOnBilling,
			&c.NotifyBeforeDue, &days, &c.PaidThisCycle, &c.CreatedAt,
			&c.OwnerEmail, &chatID,
		); err != nil {
			return nil, fmt.Errorf("scan card with owner: %w", err)
		}
		if days.Valid {
			v := int(days.Int64)
			c.NotifyDaysBefore = &v
		}
		if chatID.Valid {
			c.TelegramChatID = &chatID.Int64
		}
		res = append(res, &c)
	}
	return res, rows.Err()
}

// SetPaid flips paid_this_cycle in a single conditional update scoped
// to (id, owner_id). Repeating the same call is a no-op that still
// reports success.
func (r *cardRepository) SetPaid(id, ownerID int, paid bool) (bool, error) {
	const q = `
                UPDATE cards SET paid_this_cycle=$1 WHERE id=$2 AND owner_id=$3
        `
	res, err := r.DB.Exec(q, paid, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("set paid: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner, c *models.Card) error {
	var days sql.NullInt64
	if err := row.Scan(
		&c.ID, &c.OwnerID, &c.HolderName, &c.Nickname, &c.BankName, &c.IsOtherBank,
		&c.Network, &c.LastFour, &c.BillingDay, &c.DueDay, &c.CreditLimit, &c.Color,
		&c.NotifyOnBilling, &c.NotifyBeforeDue, &days, &c.PaidThisCycle, &c.CreatedAt,
	); err != nil {
		return err
	}
	if days.Valid {
		v := int(days.Int64)
		c.NotifyDaysBefore = &v
	}
	return nil
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
