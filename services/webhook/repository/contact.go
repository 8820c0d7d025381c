package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/giving/internal/pkg/models"
)

// ContactRepo resolves donors against the contacts table
type ContactRepo struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

// FindByEmail looks a contact up case-insensitively
func (r *ContactRepo) FindByEmail(ctx context.Context, email string) (string, bool, error) {
	query := `SELECT id FROM contacts WHERE lower(email) = lower($1) LIMIT 1`

	var id string
	err := r.db.GetContext(ctx, &id, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to find contact by email: %w", err)
	}

	return id, true, nil
}

// Create inserts a contact. A concurrent insert of the same email yields the existing id.
func (r *ContactRepo) Create(ctx context.Context, fields models.ContactFields) (string, error) {
	query := `
		INSERT INTO contacts (id, first_name, last_name, email, source, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT ((lower(email))) DO UPDATE SET email = contacts.email
		RETURNING id
	`

	var id string
	err := r.db.QueryRowxContext(ctx, query,
		uuid.NewString(),
		fields.FirstName,
		fields.LastName,
		fields.Email,
		fields.Source,
		time.Now().UTC(),
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create contact: %w", err)
	}

	return id, nil
}
