package testutil

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/fraudlens/fraudlens/internal/domain/account"
	"github.com/fraudlens/fraudlens/internal/domain/cases"
	"github.com/fraudlens/fraudlens/internal/domain/integration"
	"github.com/fraudlens/fraudlens/internal/domain/subscription"
	"github.com/fraudlens/fraudlens/internal/pkg/errors"
)

// MockAccountRepository is a mock implementation of account.Repository
type MockAccountRepository struct {
	Accounts      map[string]*account.Account
	EmailIndex    map[string]*account.Account
	Subscriptions *MockSubscriptionRepository
	CreateError   error
	GetError      error
	UpdateError   error
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		Accounts:      make(map[string]*account.Account),
		EmailIndex:    make(map[string]*account.Account),
		Subscriptions: NewMockSubscriptionRepository(),
	}
}

func (m *MockAccountRepository) CreateWithSubscription(ctx context.Context, a *account.Account, s *subscription.Subscription) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	if _, exists := m.EmailIndex[a.Email]; exists {
		return errors.Conflict("Email already registered")
	}
	a.ID = uuid.New().String()
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	m.Accounts[a.ID] = a
	m.EmailIndex[a.Email] = a

	s.ID = uuid.New().String()
	s.AccountID = a.ID
	s.CreatedAt = now
	s.UpdatedAt = now
	m.Subscriptions.Subscriptions[a.ID] = s
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*account.Account, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	a, ok := m.Accounts[id]
	if !ok {
		return nil, errors.NotFound("Account")
	}
	return a, nil
}

func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	a, ok := m.EmailIndex[email]
	if !ok {
		return nil, errors.NotFound("Account")
	}
	return a, nil
}

func (m *MockAccountRepository) Update(ctx context.Context, a *account.Account) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if _, ok := m.Accounts[a.ID]; !ok {
		return errors.NotFound("Account")
	}
	a.UpdatedAt = time.Now()
	m.Accounts[a.ID] = a
	return nil
}

func (m *MockAccountRepository) Delete(ctx context.Context, id string) error {
	a, ok := m.Accounts[id]
	if !ok {
		return errors.NotFound("Account")
	}
	delete(m.EmailIndex, a.Email)
	delete(m.Accounts, id)
	delete(m.Subscriptions.Subscriptions, id)
	return nil
}

func (m *MockAccountRepository) List(ctx context.Context, limit, offset int) ([]*account.Account, int64, error) {
	out := make([]*account.Account, 0, len(m.Accounts))
	for _, a := range m.Accounts {
		out = append(out, a)
	}
	return out, int64(len(m.Accounts)), nil
}

// MockSubscriptionRepository is a mock implementation of subscription.Repository
type MockSubscriptionRepository struct {
	Subscriptions map[string]*subscription.Subscription
	GetError      error
	UpdateError   error
}

func NewMockSubscriptionRepository() *MockSubscriptionRepository {
	return &MockSubscriptionRepository{
		Subscriptions: make(map[string]*subscription.Subscription),
	}
}

// Seed adds a subscription for an account and returns it
func (m *MockSubscriptionRepository) Seed(accountID, tier string, uploads int) *subscription.Subscription {
	s := &subscription.Subscription{
		ID:                  uuid.New().String(),
		AccountID:           accountID,
		Tier:                tier,
		StartDate:           time.Now(),
		IsActive:            true,
		CSVUploadsThisMonth: uploads,
	}
	m.Subscriptions[accountID] = s
	return s
}

func (m *MockSubscriptionRepository) GetByAccount(ctx context.Context, accountID string) (*subscription.Subscription, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	s, ok := m.Subscriptions[accountID]
	if !ok {
		return nil, errors.NotFound("Subscription")
	}
	return s, nil
}

func (m *MockSubscriptionRepository) UpdateTier(ctx context.Context, accountID, tier string) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	s, ok := m.Subscriptions[accountID]
	if !ok {
		return errors.NotFound("Subscription")
	}
	s.Tier = tier
	return nil
}

func (m *MockSubscriptionRepository) IncrementUsage(ctx context.Context, accountID string) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	s, ok := m.Subscriptions[accountID]
	if !ok {
		return errors.NotFound("Subscription")
	}
	s.CSVUploadsThisMonth++
	return nil
}

func (m *MockSubscriptionRepository) ResetAllUsage(ctx context.Context) (int64, error) {
	if m.UpdateError != nil {
		return 0, m.UpdateError
	}
	var n int64
	for _, s := range m.Subscriptions {
		if s.CSVUploadsThisMonth > 0 {
			s.CSVUploadsThisMonth = 0
			n++
		}
	}
	return n, nil
}

// MockCaseRepository is a mock implementation of cases.Repository
type MockCaseRepository struct {
	Cases       map[string]*cases.Case
	CreateError error
	GetError    error
	UpdateError error
}

func NewMockCaseRepository() *MockCaseRepository {
	return &MockCaseRepository{
		Cases: make(map[string]*cases.Case),
	}
}

func (m *MockCaseRepository) Create(ctx context.Context, c *cases.Case) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	c.ID = uuid.New().String()
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	m.Cases[c.ID] = c
	return nil
}

func (m *MockCaseRepository) GetByID(ctx context.Context, accountID, id string) (*cases.Case, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	c, ok := m.Cases[id]
	if !ok || c.AccountID != accountID {
		return nil, errors.NotFound("Case")
	}
	return c, nil
}

func (m *MockCaseRepository) List(ctx context.Context, accountID string, limit, offset int) ([]*cases.Case, int64, error) {
	out := []*cases.Case{}
	for _, c := range m.Cases {
		if c.AccountID == accountID {
			out = append(out, c)
		}
	}
	return out, int64(len(out)), nil
}

func (m *MockCaseRepository) UpdateStatus(ctx context.Context, accountID, id, status string, results json.RawMessage) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	c, ok := m.Cases[id]
	if !ok || c.AccountID != accountID {
		return errors.NotFound("Case")
	}
	c.Status = status
	if results != nil {
		c.Results = results
	}
	c.UpdatedAt = time.Now()
	return nil
}

func (m *MockCaseRepository) AttachFile(ctx context.Context, accountID, id, fileURL string) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	c, ok := m.Cases[id]
	if !ok || c.AccountID != accountID {
		return errors.NotFound("Case")
	}
	c.FileURL = &fileURL
	c.UpdatedAt = time.Now()
	return nil
}

func (m *MockCaseRepository) Delete(ctx context.Context, accountID, id string) error {
	c, ok := m.Cases[id]
	if !ok || c.AccountID != accountID {
		return errors.NotFound("Case")
	}
	delete(m.Cases, id)
	return nil
}

// MockIntegrationRepository is a mock implementation of integration.Repository
type MockIntegrationRepository struct {
	Integrations map[string]*integration.Integration
	CreateError  error
	GetError     error
	UpdateError  error
}

func NewMockIntegrationRepository() *MockIntegrationRepository {
	return &MockIntegrationRepository{
		Integrations: make(map[string]*integration.Integration),
	}
}

func (m *MockIntegrationRepository) Create(ctx context.Context, i *integration.Integration) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	i.ID = uuid.New().String()
	now := time.Now()
	i.CreatedAt = now
	i.UpdatedAt = now
	m.Integrations[i.ID] = i
	return nil
}

func (m *MockIntegrationRepository) GetByID(ctx context.Context, accountID, id string) (*integration.Integration, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	i, ok := m.Integrations[id]
	if !ok || i.AccountID != accountID {
		return nil, errors.NotFound("Integration")
	}
	return i, nil
}

func (m *MockIntegrationRepository) List(ctx context.Context, accountID string) ([]*integration.Integration, error) {
	out := []*integration.Integration{}
	for _, i := range m.Integrations {
		if i.AccountID == accountID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (m *MockIntegrationRepository) Update(ctx context.Context, i *integration.Integration) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	existing, ok := m.Integrations[i.ID]
	if !ok || existing.AccountID != i.AccountID {
		return errors.NotFound("Integration")
	}
	i.UpdatedAt = time.Now()
	m.Integrations[i.ID] = i
	return nil
}

func (m *MockIntegrationRepository) SetActive(ctx context.Context, accountID, id string, active bool) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	i, ok := m.Integrations[id]
	if !ok || i.AccountID != accountID {
		return errors.NotFound("Integration")
	}
	i.IsActive = active
	i.UpdatedAt = time.Now()
	return nil
}

func (m *MockIntegrationRepository) Delete(ctx context.Context, accountID, id string) error {
	i, ok := m.Integrations[id]
	if !ok || i.AccountID != accountID {
		return errors.NotFound("Integration")
	}
	delete(m.Integrations, id)
	return nil
}

// MockUploader records uploads without touching any real storage
type MockUploader struct {
	Uploads     map[string][]byte
	UploadError error
}

func NewMockUploader() *MockUploader {
	return &MockUploader{Uploads: make(map[string][]byte)}
}

func (m *MockUploader) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	if m.UploadError != nil {
		return "", m.UploadError
	}
	buf, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.Uploads[key] = buf
	return "mock://" + key, nil
}

func (m *MockUploader) Delete(ctx context.Context, key string) error {
	delete(m.Uploads, key)
	return nil
}
