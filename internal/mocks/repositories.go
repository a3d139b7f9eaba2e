package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/collections-admin-api/internal/models"
	"github.com/collections-admin-api/internal/repository"
	"github.com/google/uuid"
)

// SaveCall records one CreateOrUpdate invocation
type SaveCall struct {
	Collection models.Collection
	IsEditing  bool
}

// MockCollectionRepository is a mock implementation of CollectionRepository
type MockCollectionRepository struct {
	mu          sync.Mutex
	Collections map[string]*models.Collection
	SaveError   error
	DeleteError error
	SaveCalls   []SaveCall
	// SaveFunc, when set, replaces the default CreateOrUpdate behaviour
	SaveFunc func(ctx context.Context, c *models.Collection, isEditing bool) error
}

// Verify interface compliance
var _ repository.CollectionRepository = (*MockCollectionRepository)(nil)

func NewMockCollectionRepository() *MockCollectionRepository {
	return &MockCollectionRepository{
		Collections: make(map[string]*models.Collection),
	}
}

func (m *MockCollectionRepository) Create(ctx context.Context, c *models.Collection) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.create(c)
}

func (m *MockCollectionRepository) create(c *models.Collection) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	stored := *c
	m.Collections[c.ID] = &stored
	return nil
}

func (m *MockCollectionRepository) Update(ctx context.Context, c *models.Collection) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.update(c)
}

func (m *MockCollectionRepository) update(c *models.Collection) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	existing, ok := m.Collections[c.ID]
	if !ok {
		return repository.ErrNotFound
	}
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now()
	stored := *c
	m.Collections[c.ID] = &stored
	return nil
}

func (m *MockCollectionRepository) CreateOrUpdate(ctx context.Context, c *models.Collection, isEditing bool) error {
	m.mu.Lock()
	m.SaveCalls = append(m.SaveCalls, SaveCall{Collection: *c, IsEditing: isEditing})
	fn := m.SaveFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, c, isEditing)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if isEditing {
		return m.update(c)
	}
	return m.create(c)
}

func (m *MockCollectionRepository) GetByID(ctx context.Context, id string) (*models.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.Collections[id]
	if !ok {
		return nil, nil
	}
	out := *c
	return &out, nil
}

func (m *MockCollectionRepository) List(ctx context.Context, limit, offset int) ([]*models.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]*models.Collection, 0, len(m.Collections))
	for _, c := range m.Collections {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return page(all, limit, offset), nil
}

func (m *MockCollectionRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteError != nil {
		return m.DeleteError
	}
	if _, ok := m.Collections[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.Collections, id)
	return nil
}

func (m *MockCollectionRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Collections), nil
}

// Calls returns the recorded CreateOrUpdate calls
func (m *MockCollectionRepository) Calls() []SaveCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SaveCall, len(m.SaveCalls))
	copy(out, m.SaveCalls)
	return out
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mu        sync.Mutex
	Users     map[string]*models.User
	ListError error
}

// Verify interface compliance
var _ repository.UserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users: make(map[string]*models.User),
	}
}

// Add stores a user for later retrieval
func (m *MockUserRepository) Add(u *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Users[u.ID] = u
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Users[id], nil
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListError != nil {
		return nil, m.ListError
	}
	all := make([]*models.User, 0, len(m.Users))
	for _, u := range m.Users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, limit, offset), nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.Users, id)
	return nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Users), nil
}

func page[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return []T{}
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end]
}
