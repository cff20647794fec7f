package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/horlamiedea/ura-health-backend/internal/survey"
)

// ErrNotFound is returned when no profile exists for an email.
var ErrNotFound = errors.New("guest profile not found")

// Profile is the stored biodata of one guest, keyed by email.
type Profile struct {
	ID            string
	Email         string
	FullName      string
	Phone         string
	Gender        string
	MaritalStatus string
	DateOfBirth   string
	Address       string
	Occupation    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Biodata converts the profile to the survey biodata shape used for answer
// prefill.
func (p *Profile) Biodata() survey.Biodata {
	return survey.Biodata{
		FullName:      p.FullName,
		Email:         p.Email,
		Phone:         p.Phone,
		Gender:        p.Gender,
		MaritalStatus: p.MaritalStatus,
		DateOfBirth:   p.DateOfBirth,
		Address:       p.Address,
		Occupation:    p.Occupation,
	}
}

// Repository is a database-backed store for guest profiles.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// GetByEmail retrieves a profile, or ErrNotFound.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, full_name, phone, gender, marital_status, date_of_birth, address, occupation, created_at, updated_at
		FROM guest_profiles WHERE email = ?`, email)

	var p Profile
	if err := row.Scan(&p.ID, &p.Email, &p.FullName, &p.Phone, &p.Gender, &p.MaritalStatus,
		&p.DateOfBirth, &p.Address, &p.Occupation, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load guest profile for %s: %w", email, err)
	}
	return &p, nil
}

// Upsert inserts or updates the profile for bio.Email. Non-empty incoming
// fields overwrite stored ones; blanks leave existing values untouched.
func (r *Repository) Upsert(ctx context.Context, bio survey.Biodata) (*Profile, error) {
	if bio.Email == "" {
		return nil, errors.New("guest profile requires an email")
	}

	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO guest_profiles (id, email, full_name, phone, gender, marital_status, date_of_birth, address, occupation, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (email) DO UPDATE SET
			full_name = CASE WHEN excluded.full_name <> '' THEN excluded.full_name ELSE full_name END,
			phone = CASE WHEN excluded.phone <> '' THEN excluded.phone ELSE phone END,
			gender = CASE WHEN excluded.gender <> '' THEN excluded.gender ELSE gender END,
			marital_status = CASE WHEN excluded.marital_status <> '' THEN excluded.marital_status ELSE marital_status END,
			date_of_birth = CASE WHEN excluded.date_of_birth <> '' THEN excluded.date_of_birth ELSE date_of_birth END,
			address = CASE WHEN excluded.address <> '' THEN excluded.address ELSE address END,
			occupation = CASE WHEN excluded.occupation <> '' THEN excluded.occupation ELSE occupation END,
			updated_at = excluded.updated_at`,
		uuid.NewString(), bio.Email, bio.FullName, bio.Phone, bio.Gender, bio.MaritalStatus,
		bio.DateOfBirth, bio.Address, bio.Occupation, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert guest profile for %s: %w", bio.Email, err)
	}

	return r.GetByEmail(ctx, bio.Email)
}
