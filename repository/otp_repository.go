package repository

import (
	"database/sql"
	"fmt"

	"github.com/SadatRiyad/BB-Vote-Server/entity"

	"github.com/jmoiron/sqlx"
)

// OTPRepository interface defines OTP ledger operations. The ledger is
// append-only: rows are never deleted, the only mutation is the single
// pending -> used status flip.
type OTPRepository interface {
	Create(otp *entity.OTP) (*entity.OTP, error)
	GetLatestPendingByEmail(email string) (*entity.OTP, error)
	MarkUsed(id int) error
}

// otpRepository implements OTPRepository interface
type otpRepository struct {
	db *sqlx.DB
}

// NewOTPRepository creates a new OTP repository instance
func NewOTPRepository(db *sqlx.DB) OTPRepository {
	return &otpRepository{
		db: db,
	}
}

// Create appends a new pending OTP to the ledger
func (r *otpRepository) Create(otp *entity.OTP) (*entity.OTP, error) {
	query := `
		INSERT INTO otps (email, code, purpose, status, issued_at, expires_at)
		VALUES (:email, :code, :purpose, :status, :issued_at, :expires_at)
		RETURNING id, email, code, purpose, status, issued_at, expires_at, used_at
	`

	otp.Status = entity.OTPStatusPending

	rows, err := r.db.NamedQuery(query, otp)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTP: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("failed to get created OTP")
	}

	var createdOTP entity.OTP
	if err := rows.StructScan(&createdOTP); err != nil {
		return nil, fmt.Errorf("failed to scan created OTP: %w", err)
	}

	return &createdOTP, nil
}

// GetLatestPendingByEmail retrieves the most-recently-issued pending OTP for
// an email, regardless of expiry. Expired pending rows are still selected so
// verification can report expiry rather than absence.
func (r *otpRepository) GetLatestPendingByEmail(email string) (*entity.OTP, error) {
	query := `
		SELECT id, email, code, purpose, status, issued_at, expires_at, used_at
		FROM otps
		WHERE email = $1 AND status = $2
		ORDER BY issued_at DESC
		LIMIT 1
	`

	var otp entity.OTP
	err := r.db.Get(&otp, query, email, entity.OTPStatusPending)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pending OTP: %w", err)
	}

	return &otp, nil
}

// MarkUsed flips a pending OTP to used. The status guard in the WHERE clause
// makes the flip atomic: a concurrent verification that got there first
// leaves zero rows affected here.
func (r *otpRepository) MarkUsed(id int) error {
	query := `
		UPDATE otps
		SET status = $2, used_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND status = $3
	`

	result, err := r.db.Exec(query, id, entity.OTPStatusUsed, entity.OTPStatusPending)
	if err != nil {
		return fmt.Errorf("failed to mark OTP as used: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entity.ErrNoPendingCode
	}

	return nil
}
