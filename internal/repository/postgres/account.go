package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fraudlens/fraudlens/internal/domain/account"
	"github.com/fraudlens/fraudlens/internal/domain/subscription"
	"github.com/fraudlens/fraudlens/internal/pkg/errors"
	"github.com/google/uuid"
)

// AccountRepository implements account.Repository
type AccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *sql.DB) account.Repository {
	return &AccountRepository{db: db}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key")
}

// CreateWithSubscription creates an account and its subscription in a single
// transaction. A failure of either insert rolls back both.
func (r *AccountRepository) CreateWithSubscription(ctx context.Context, a *account.Account, s *subscription.Subscription) error {
	now := time.Now()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.CreatedAt = now
	a.UpdatedAt = now

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.AccountID = a.ID
	s.StartDate = now
	s.CreatedAt = now
	s.UpdatedAt = now

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.DatabaseError("Failed to start transaction", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO accounts (id, email, password_hash, name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, a.ID, a.Email, a.PasswordHash, a.Name, now.Unix(), now.Unix())
	if err != nil {
		if isUniqueViolation(err) {
			return errors.Conflict("Email already registered")
		}
		return errors.DatabaseError("Failed to create account", err)
	}

	var endDate sql.NullInt64
	if s.EndDate != nil {
		endDate = sql.NullInt64{Int64: s.EndDate.Unix(), Valid: true}
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO subscriptions (id, account_id, tier, start_date, end_date, is_active, csv_uploads_this_month, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, s.ID, s.AccountID, s.Tier, s.StartDate.Unix(), endDate, s.IsActive, s.CSVUploadsThisMonth, now.Unix(), now.Unix())
	if err != nil {
		if isUniqueViolation(err) {
			return errors.Conflict("Account already has a subscription")
		}
		return errors.DatabaseError("Failed to create subscription", err)
	}

	if err := tx.Commit(); err != nil {
		return errors.DatabaseError("Failed to commit registration", err)
	}

	return nil
}

func scanAccount(row *sql.Row) (*account.Account, error) {
	var a account.Account
	var name sql.NullString
	var createdAt, updatedAt int64

	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &name, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Account")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get account", err)
	}

	if name.Valid {
		a.Name = &name.String
	}
	a.CreatedAt = time.Unix(createdAt, 0)
	a.UpdatedAt = time.Unix(updatedAt, 0)

	return &a, nil
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*account.Account, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, name, created_at, updated_at
		FROM accounts WHERE id = ?
	`, id)
	return scanAccount(row)
}

// GetByEmail retrieves an account by normalized email
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, name, created_at, updated_at
		FROM accounts WHERE email = ?
	`, email)
	return scanAccount(row)
}

// Update updates an account's mutable fields
func (r *AccountRepository) Update(ctx context.Context, a *account.Account) error {
	a.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET email = ?, password_hash = ?, name = ?, updated_at = ?
		WHERE id = ?
	`, a.Email, a.PasswordHash, a.Name, a.UpdatedAt.Unix(), a.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.Conflict("Email already registered")
		}
		return errors.DatabaseError("Failed to update account", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Account")
	}

	return nil
}

// Delete deletes an account. Cases, integrations and the subscription are
// removed by the storage layer's ON DELETE CASCADE.
func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return errors.DatabaseError("Failed to delete account", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Account")
	}

	return nil
}

// List retrieves accounts with pagination
func (r *AccountRepository) List(ctx context.Context, limit, offset int) ([]*account.Account, int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM accounts").Scan(&total)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to count accounts", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, email, password_hash, name, created_at, updated_at
		FROM accounts
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list accounts", err)
	}
	defer rows.Close()

	var accounts []*account.Account
	for rows.Next() {
		var a account.Account
		var name sql.NullString
		var createdAt, updatedAt int64

		if err := rows.Scan(&a.ID, &a.Email, &a.PasswordHash, &name, &createdAt, &updatedAt); err != nil {
			return nil, 0, errors.DatabaseError("Failed to scan account", err)
		}

		if name.Valid {
			a.Name = &name.String
		}
		a.CreatedAt = time.Unix(createdAt, 0)
		a.UpdatedAt = time.Unix(updatedAt, 0)

		accounts = append(accounts, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, errors.DatabaseError("Failed to iterate accounts", err)
	}

	return accounts, total, nil
}
