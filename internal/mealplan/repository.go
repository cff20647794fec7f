package mealplan

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a bundle id does not exist.
var ErrNotFound = errors.New("meal plan bundle not found")

// Repository is a database-backed store for plan bundles.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new bundle. The caller supplies the id.
func (r *Repository) Create(ctx context.Context, b *Bundle) error {
	answers, err := json.Marshal(b.Answers)
	if err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}
	assess, err := json.Marshal(b.Assessment)
	if err != nil {
		return fmt.Errorf("failed to encode assessment: %w", err)
	}
	cat, err := json.Marshal(b.Catalog)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO meal_plan_bundles (id, email, category, answers, assessment, catalog, selected_ids, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, '[]', ?, ?)`,
		b.ID, b.Email, b.Category, string(answers), string(assess), string(cat), now, now)
	if err != nil {
		return fmt.Errorf("failed to insert meal plan bundle: %w", err)
	}
	return nil
}

// GetByID retrieves a bundle, or ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id string) (*Bundle, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, category, answers, assessment, catalog, selected_ids,
		       preview_plan, full_plan, paid, payment_ref, created_at, updated_at
		FROM meal_plan_bundles WHERE id = ?`, id)

	var b Bundle
	var answers, assess, cat, selected string
	var preview, full sql.NullString
	if err := row.Scan(&b.ID, &b.Email, &b.Category, &answers, &assess, &cat, &selected,
		&preview, &full, &b.Paid, &b.PaymentRef, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load meal plan bundle %s: %w", id, err)
	}

	if err := decodeBundleJSON(&b, answers, assess, cat, selected, preview, full); err != nil {
		return nil, fmt.Errorf("failed to decode meal plan bundle %s: %w", id, err)
	}
	return &b, nil
}

func decodeBundleJSON(b *Bundle, answers, assess, cat, selected string, preview, full sql.NullString) error {
	if err := json.Unmarshal([]byte(answers), &b.Answers); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(assess), &b.Assessment); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(cat), &b.Catalog); err != nil {
		return err
	}
	if selected != "" {
		if err := json.Unmarshal([]byte(selected), &b.SelectedIDs); err != nil {
			return err
		}
	}
	if preview.Valid {
		b.Preview = &Plan{}
		if err := json.Unmarshal([]byte(preview.String), b.Preview); err != nil {
			return err
		}
	}
	if full.Valid {
		b.Full = &Plan{}
		if err := json.Unmarshal([]byte(full.String), b.Full); err != nil {
			return err
		}
	}
	return nil
}

// GetLatestByEmailCategory retrieves the most recent bundle for an email and
// category, preferring bundles that already hold a full plan.
func (r *Repository) GetLatestByEmailCategory(ctx context.Context, email, category string) (*Bundle, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id FROM meal_plan_bundles
		WHERE email = ? AND category = ?
		ORDER BY (full_plan IS NOT NULL) DESC, created_at DESC
		LIMIT 1`, email, category)

	var id string
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find meal plan bundle for %s/%s: %w", email, category, err)
	}
	return r.GetByID(ctx, id)
}

// SaveSelection stores the user's selected catalog ids.
func (r *Repository) SaveSelection(ctx context.Context, id string, selectedIDs []int) error {
	encoded, err := json.Marshal(selectedIDs)
	if err != nil {
		return fmt.Errorf("failed to encode selection: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE meal_plan_bundles SET selected_ids = ?, updated_at = ? WHERE id = ?`,
		string(encoded), time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to save selection for bundle %s: %w", id, err)
	}
	return requireRow(res, id)
}

// SavePreviewPlan stores a generated preview with first-write-wins
// semantics. It reports whether this call performed the write; false means a
// preview already existed and the caller should re-read the stored one.
func (r *Repository) SavePreviewPlan(ctx context.Context, id string, plan *Plan) (bool, error) {
	return r.savePlanColumn(ctx, id, "preview_plan", plan)
}

// SaveFullPlan stores a generated full plan with first-write-wins semantics.
func (r *Repository) SaveFullPlan(ctx context.Context, id string, plan *Plan) (bool, error) {
	return r.savePlanColumn(ctx, id, "full_plan", plan)
}

func (r *Repository) savePlanColumn(ctx context.Context, id, column string, plan *Plan) (bool, error) {
	encoded, err := json.Marshal(plan)
	if err != nil {
		return false, fmt.Errorf("failed to encode plan: %w", err)
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE meal_plan_bundles SET `+column+` = ?, updated_at = ? WHERE id = ? AND `+column+` IS NULL`,
		string(encoded), time.Now().UTC(), id)
	if err != nil {
		return false, fmt.Errorf("failed to save %s for bundle %s: %w", column, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n == 1, nil
}

// MarkPaid flags a bundle as paid and records the payment reference.
func (r *Repository) MarkPaid(ctx context.Context, id, paymentRef string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE meal_plan_bundles SET paid = 1, payment_ref = ?, updated_at = ? WHERE id = ?`,
		paymentRef, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to mark bundle %s paid: %w", id, err)
	}
	return requireRow(res, id)
}

// HasFreePlanForEmail reports whether any other bundle for the email holds a
// preview that was never upgraded. A bundle with a full plan has been paid
// for and no longer consumes the free slot. Implements PreviewLookup.
func (r *Repository) HasFreePlanForEmail(ctx context.Context, email, excludeBundleID string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM meal_plan_bundles
		WHERE email = ? AND id <> ? AND preview_plan IS NOT NULL AND full_plan IS NULL`,
		email, excludeBundleID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to count free plans for %s: %w", email, err)
	}
	return count > 0, nil
}

func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
