package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a payment reference does not exist.
var ErrNotFound = errors.New("payment not found")

// Payment statuses.
const (
	StatusPending = "pending"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Payment is one Paystack transaction tied to a plan bundle.
type Payment struct {
	ID         string
	BundleID   string
	Email      string
	Reference  string
	AmountKobo int64
	Currency   string
	Status     string
	Channel    string
	PaidAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Repository is a database-backed store for payments.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a pending payment. References are unique; re-inserting an
// existing one fails.
func (r *Repository) Create(ctx context.Context, p *Payment) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = StatusPending
	}
	if p.Currency == "" {
		p.Currency = "NGN"
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO payments (id, bundle_id, email, reference, amount_kobo, currency, status, channel, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.BundleID, p.Email, p.Reference, p.AmountKobo, p.Currency, p.Status, p.Channel, now, now)
	if err != nil {
		return fmt.Errorf("failed to insert payment %s: %w", p.Reference, err)
	}
	return nil
}

// GetByReference retrieves a payment, or ErrNotFound.
func (r *Repository) GetByReference(ctx context.Context, reference string) (*Payment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, bundle_id, email, reference, amount_kobo, currency, status, channel, paid_at, created_at, updated_at
		FROM payments WHERE reference = ?`, reference)

	var p Payment
	var paidAt sql.NullTime
	if err := row.Scan(&p.ID, &p.BundleID, &p.Email, &p.Reference, &p.AmountKobo, &p.Currency,
		&p.Status, &p.Channel, &paidAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load payment %s: %w", reference, err)
	}
	if paidAt.Valid {
		p.PaidAt = &paidAt.Time
	}
	return &p, nil
}

// MarkStatus transitions a payment to the given status. Success also stamps
// paid_at and the channel.
func (r *Repository) MarkStatus(ctx context.Context, reference, status, channel string) error {
	now := time.Now().UTC()
	var res sql.Result
	var err error
	if status == StatusSuccess {
		res, err = r.db.ExecContext(ctx, `
			UPDATE payments SET status = ?, channel = ?, paid_at = ?, updated_at = ? WHERE reference = ?`,
			status, channel, now, now, reference)
	} else {
		res, err = r.db.ExecContext(ctx, `
			UPDATE payments SET status = ?, updated_at = ? WHERE reference = ?`,
			status, now, reference)
	}
	if err != nil {
		return fmt.Errorf("failed to update payment %s: %w", reference, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
