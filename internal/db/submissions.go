package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Submission struct {
	ID             int64      `db:"id"`
	TelegramUserID int64      `db:"telegram_user_id"`
	Username       *string    `db:"username"`
	PhoneModel     string     `db:"phone_model"`
	Location       string     `db:"location"`
	Description    string     `db:"description"`
	Tag            string     `db:"tag"`
	PhotoFileID    string     `db:"photo_file_id"`
	Status         string     `db:"status"`
	ResolvedAt     *time.Time `db:"resolved_at"`
	CreatedAt      time.Time  `db:"created_at"`
}

type SubmissionRepository struct {
	db *sqlx.DB
}

func NewSubmissionRepository(db *sqlx.DB) *SubmissionRepository {
	return &SubmissionRepository{
		db: db,
	}
}

func (r *SubmissionRepository) Create(sub *Submission) error {
	_, err := r.db.Exec(`
	    INSERT INTO submissions
		(telegram_user_id, username, phone_model, location, description,
		tag, photo_file_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending')
	`,
		sub.TelegramUserID,
		sub.Username,
		sub.PhoneModel,
		sub.Location,
		sub.Description,
		sub.Tag,
		sub.PhotoFileID,
	)
	if err != nil {
		return fmt.Errorf("SubmissionRepository.Create: %w", err)
	}

	return nil
}

// GetLatestPending возвращает nil, nil, если нерешенных заявок у
// пользователя нет - так обнаруживается повторное решение модератора.
func (r *SubmissionRepository) GetLatestPending(telegramUserID int64) (*Submission, error) {
	var sub Submission

	err := r.db.Get(&sub, `
	    SELECT * FROM submissions
		WHERE telegram_user_id = $1 AND status = 'pending'
		ORDER BY created_at DESC
		LIMIT 1
	`, telegramUserID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("SubmissionRepository.GetLatestPending: %w", err)
	}

	return &sub, nil
}

func (r *SubmissionRepository) Resolve(submissionID int64, newStatus string) error {
	_, err := r.db.Exec(`
	    UPDATE submissions
		SET status = $1, resolved_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`, newStatus, submissionID)

	if err != nil {
		return fmt.Errorf("SubmissionRepository.Resolve: %w", err)
	}

	return nil
}
