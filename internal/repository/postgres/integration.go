package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/fraudlens/fraudlens/internal/domain/integration"
	"github.com/fraudlens/fraudlens/internal/pkg/errors"
	"github.com/google/uuid"
)

// IntegrationRepository implements integration.Repository
type IntegrationRepository struct {
	db *sql.DB
}

// NewIntegrationRepository creates a new integration repository
func NewIntegrationRepository(db *sql.DB) integration.Repository {
	return &IntegrationRepository{db: db}
}

// Create creates a new integration
func (r *IntegrationRepository) Create(ctx context.Context, i *integration.Integration) error {
	now := time.Now()
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	i.CreatedAt = now
	i.UpdatedAt = now

	config := "{}"
	if len(i.Config) > 0 {
		config = string(i.Config)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO integrations (id, account_id, name, type, config, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, i.ID, i.AccountID, i.Name, i.Type, config, i.IsActive, now.Unix(), now.Unix())
	if err != nil {
		return errors.DatabaseError("Failed to create integration", err)
	}

	return nil
}

func scanIntegration(scan func(dest ...interface{}) error) (*integration.Integration, error) {
	var i integration.Integration
	var config string
	var createdAt, updatedAt int64

	err := scan(&i.ID, &i.AccountID, &i.Name, &i.Type, &config, &i.IsActive, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	i.Config = json.RawMessage(config)
	i.CreatedAt = time.Unix(createdAt, 0)
	i.UpdatedAt = time.Unix(updatedAt, 0)

	return &i, nil
}

// GetByID retrieves an integration owned by accountID
func (r *IntegrationRepository) GetByID(ctx context.Context, accountID, id string) (*integration.Integration, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, account_id, name, type, config, is_active, created_at, updated_at
		FROM integrations WHERE id = ? AND account_id = ?
	`, id, accountID)

	i, err := scanIntegration(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Integration")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get integration", err)
	}

	return i, nil
}

// List retrieves an account's integrations
func (r *IntegrationRepository) List(ctx context.Context, accountID string) ([]*integration.Integration, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, account_id, name, type, config, is_active, created_at, updated_at
		FROM integrations
		WHERE account_id = ?
		ORDER BY created_at DESC
	`, accountID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list integrations", err)
	}
	defer rows.Close()

	var list []*integration.Integration
	for rows.Next() {
		i, err := scanIntegration(rows.Scan)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan integration", err)
		}
		list = append(list, i)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate integrations", err)
	}

	return list, nil
}

// Update updates an integration's name and configuration
func (r *IntegrationRepository) Update(ctx context.Context, i *integration.Integration) error {
	i.UpdatedAt = time.Now()

	config := "{}"
	if len(i.Config) > 0 {
		config = string(i.Config)
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE integrations SET name = ?, config = ?, updated_at = ?
		WHERE id = ? AND account_id = ?
	`, i.Name, config, i.UpdatedAt.Unix(), i.ID, i.AccountID)
	if err != nil {
		return errors.DatabaseError("Failed to update integration", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Integration")
	}

	return nil
}

// SetActive toggles an integration's active flag
func (r *IntegrationRepository) SetActive(ctx context.Context, accountID, id string, active bool) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE integrations SET is_active = ?, updated_at = ?
		WHERE id = ? AND account_id = ?
	`, active, time.Now().Unix(), id, accountID)
	if err != nil {
		return errors.DatabaseError("Failed to update integration", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Integration")
	}

	return nil
}

// Delete deletes an integration
func (r *IntegrationRepository) Delete(ctx context.Context, accountID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM integrations WHERE id = ? AND account_id = ?`, id, accountID)
	if err != nil {
		return errors.DatabaseError("Failed to delete integration", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Integration")
	}

	return nil
}
