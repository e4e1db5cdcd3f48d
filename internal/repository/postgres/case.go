package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/fraudlens/fraudlens/internal/domain/cases"
	"github.com/fraudlens/fraudlens/internal/pkg/errors"
	"github.com/google/uuid"
)

// CaseRepository implements cases.Repository
type CaseRepository struct {
	db *sql.DB
}

// NewCaseRepository creates a new case repository
func NewCaseRepository(db *sql.DB) cases.Repository {
	return &CaseRepository{db: db}
}

// Create creates a new case
func (r *CaseRepository) Create(ctx context.Context, c *cases.Case) error {
	now := time.Now()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = cases.StatusPending
	}
	c.CreatedAt = now
	c.UpdatedAt = now

	var results sql.NullString
	if len(c.Results) > 0 {
		results = sql.NullString{String: string(c.Results), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cases (id, account_id, name, description, status, file_url, results, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.AccountID, c.Name, c.Description, c.Status, c.FileURL, results, now.Unix(), now.Unix())
	if err != nil {
		return errors.DatabaseError("Failed to create case", err)
	}

	return nil
}

func scanCase(scan func(dest ...interface{}) error) (*cases.Case, error) {
	var c cases.Case
	var description, fileURL, results sql.NullString
	var createdAt, updatedAt int64

	err := scan(&c.ID, &c.AccountID, &c.Name, &description, &c.Status, &fileURL, &results, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		c.Description = &description.String
	}
	if fileURL.Valid {
		c.FileURL = &fileURL.String
	}
	if results.Valid {
		c.Results = json.RawMessage(results.String)
	}
	c.CreatedAt = time.Unix(createdAt, 0)
	c.UpdatedAt = time.Unix(updatedAt, 0)

	return &c, nil
}

// GetByID retrieves a case owned by accountID
func (r *CaseRepository) GetByID(ctx context.Context, accountID, id string) (*cases.Case, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, account_id, name, description, status, file_url, results, created_at, updated_at
		FROM cases WHERE id = ? AND account_id = ?
	`, id, accountID)

	c, err := scanCase(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Case")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get case", err)
	}

	return c, nil
}

// List retrieves an account's cases with pagination
func (r *CaseRepository) List(ctx context.Context, accountID string, limit, offset int) ([]*cases.Case, int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cases WHERE account_id = ?", accountID).Scan(&total)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to count cases", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, account_id, name, description, status, file_url, results, created_at, updated_at
		FROM cases
		WHERE account_id = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, accountID, limit, offset)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list cases", err)
	}
	defer rows.Close()

	var list []*cases.Case
	for rows.Next() {
		c, err := scanCase(rows.Scan)
		if err != nil {
			return nil, 0, errors.DatabaseError("Failed to scan case", err)
		}
		list = append(list, c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, errors.DatabaseError("Failed to iterate cases", err)
	}

	return list, total, nil
}

// UpdateStatus records a status transition and optional results payload
func (r *CaseRepository) UpdateStatus(ctx context.Context, accountID, id, status string, results json.RawMessage) error {
	var res sql.NullString
	if len(results) > 0 {
		res = sql.NullString{String: string(results), Valid: true}
	}

	var result sql.Result
	var err error
	if res.Valid {
		result, err = r.db.ExecContext(ctx, `
			UPDATE cases SET status = ?, results = ?, updated_at = ?
			WHERE id = ? AND account_id = ?
		`, status, res, time.Now().Unix(), id, accountID)
	} else {
		result, err = r.db.ExecContext(ctx, `
			UPDATE cases SET status = ?, updated_at = ?
			WHERE id = ? AND account_id = ?
		`, status, time.Now().Unix(), id, accountID)
	}
	if err != nil {
		return errors.DatabaseError("Failed to update case status", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Case")
	}

	return nil
}

// AttachFile records the uploaded-file reference of a case
func (r *CaseRepository) AttachFile(ctx context.Context, accountID, id, fileURL string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE cases SET file_url = ?, updated_at = ?
		WHERE id = ? AND account_id = ?
	`, fileURL, time.Now().Unix(), id, accountID)
	if err != nil {
		return errors.DatabaseError("Failed to attach case file", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Case")
	}

	return nil
}

// Delete deletes a case
func (r *CaseRepository) Delete(ctx context.Context, accountID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cases WHERE id = ? AND account_id = ?`, id, accountID)
	if err != nil {
		return errors.DatabaseError("Failed to delete case", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Case")
	}

	return nil
}
