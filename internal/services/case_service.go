package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/fraudlens/fraudlens/internal/domain/cases"
	"github.com/fraudlens/fraudlens/internal/domain/subscription"
	"github.com/fraudlens/fraudlens/internal/pkg/errors"
	"github.com/fraudlens/fraudlens/internal/pkg/logger"
	"github.com/fraudlens/fraudlens/internal/pkg/metrics"
	"github.com/fraudlens/fraudlens/internal/storage"
)

// CaseService implements cases.Service
type CaseService struct {
	repo     cases.Repository
	subs     subscription.Repository
	uploader storage.Uploader
	logger   *logger.Logger
}

// NewCaseService creates a new case service
func NewCaseService(repo cases.Repository, subs subscription.Repository, uploader storage.Uploader, log *logger.Logger) cases.Service {
	return &CaseService{
		repo:     repo,
		subs:     subs,
		uploader: uploader,
		logger:   log,
	}
}

// Create creates a pending case for the account
func (s *CaseService) Create(ctx context.Context, accountID, name string, description *string) (*cases.Case, error) {
	c := &cases.Case{
		AccountID:   accountID,
		Name:        name,
		Description: description,
		Status:      cases.StatusPending,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create case")
		return nil, err
	}

	metrics.RecordCaseCreated()
	s.logger.WithFields(map[string]interface{}{
		"case_id":    c.ID,
		"account_id": accountID,
	}).Info("Case created")

	return c, nil
}

// GetByID retrieves a case owned by the account
func (s *CaseService) GetByID(ctx context.Context, accountID, id string) (*cases.Case, error) {
	return s.repo.GetByID(ctx, accountID, id)
}

// List retrieves an account's cases with pagination
func (s *CaseService) List(ctx context.Context, accountID string, limit, offset int) ([]*cases.Case, int64, error) {
	return s.repo.List(ctx, accountID, limit, offset)
}

// Upload stores a case's data file and charges one upload against the
// subscription's monthly quota. Uploads beyond the quota are rejected
// before anything is stored.
func (s *CaseService) Upload(ctx context.Context, accountID, id, filename string, r io.Reader, size int64) (*cases.Case, error) {
	c, err := s.repo.GetByID(ctx, accountID, id)
	if err != nil {
		return nil, err
	}

	sub, err := s.subs.GetByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !sub.CanUpload() {
		return nil, errors.Forbidden(fmt.Sprintf("Monthly upload limit of %d reached for the %s plan", subscription.UploadLimit(sub.Tier), sub.Tier))
	}

	key := path.Join(accountID, id, sanitizeFilename(filename))
	fileURL, err := s.uploader.Upload(ctx, key, r, size, "text/csv")
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to store case file")
		return nil, errors.Internal("Failed to store file", err)
	}

	if err := s.repo.AttachFile(ctx, accountID, id, fileURL); err != nil {
		return nil, err
	}
	if err := s.subs.IncrementUsage(ctx, accountID); err != nil {
		s.logger.ErrorWithErr(err, "Failed to record upload usage")
		return nil, err
	}

	metrics.RecordCaseUpload()
	s.logger.WithFields(map[string]interface{}{
		"case_id":    id,
		"account_id": accountID,
		"file_url":   fileURL,
	}).Info("Case file uploaded")

	c.FileURL = &fileURL
	return c, nil
}

// UpdateStatus applies a status transition reported by the analysis process
func (s *CaseService) UpdateStatus(ctx context.Context, accountID, id, status string, results json.RawMessage) (*cases.Case, error) {
	if !cases.ValidStatus(status) {
		return nil, errors.BadRequest("Unknown case status: " + status)
	}

	c, err := s.repo.GetByID(ctx, accountID, id)
	if err != nil {
		return nil, err
	}
	if !cases.ValidTransition(c.Status, status) {
		return nil, errors.Conflict(fmt.Sprintf("Cannot move case from %s to %s", c.Status, status))
	}

	if err := s.repo.UpdateStatus(ctx, accountID, id, status, results); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"case_id": id,
		"from":    c.Status,
		"to":      status,
	}).Info("Case status updated")

	c.Status = status
	if results != nil {
		c.Results = results
	}
	return c, nil
}

// Delete deletes a case
func (s *CaseService) Delete(ctx context.Context, accountID, id string) error {
	if err := s.repo.Delete(ctx, accountID, id); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"case_id":    id,
		"account_id": accountID,
	}).Info("Case deleted")

	return nil
}

// sanitizeFilename strips path separators so uploaded names cannot escape
// the case's storage prefix
func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == ".." || name == "/" || name == "" {
		return "upload.csv"
	}
	return name
}
