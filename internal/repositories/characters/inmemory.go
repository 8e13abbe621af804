package characters

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/passive-skills/internal/domain/character"
	passerr "github.com/KirkDiggler/passive-skills/internal/errors"
	"github.com/KirkDiggler/passive-skills/internal/uuid"
)

// InMemoryRepository is an in-memory implementation of the character repository
// Useful for testing and development
type InMemoryRepository struct {
	mu            sync.RWMutex
	records       map[string]*Data
	uuidGenerator uuid.Generator
	clock         TimeProvider
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		records:       make(map[string]*Data),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
		clock:         utcClock{},
	}
}

// Create stores a new character
func (r *InMemoryRepository) Create(ctx context.Context, c *character.Character) error {
	if err := validate(c); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		c.ID = r.uuidGenerator.New()
	}
	if _, exists := r.records[c.ID]; exists {
		return passerr.AlreadyExistsf("character with ID '%s' already exists", c.ID).
			WithMeta("character_id", c.ID)
	}

	// Store a copy to avoid external modifications
	data := toData(c)
	data.CreatedAt = r.clock.Now()
	data.UpdatedAt = data.CreatedAt
	r.records[c.ID] = data

	return nil
}

// Get retrieves a character by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, passerr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.records[id]
	if !exists {
		return nil, notFound(id)
	}
	return fromData(data), nil
}

// GetMany retrieves characters in the order of ids
func (r *InMemoryRepository) GetMany(ctx context.Context, ids []string) ([]*character.Character, error) {
	out := make([]*character.Character, 0, len(ids))
	for _, id := range ids {
		c, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// List returns every stored id
func (r *InMemoryRepository) List(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.records))
	for id := range r.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Update updates an existing character
func (r *InMemoryRepository) Update(ctx context.Context, c *character.Character) error {
	if err := validate(c); err != nil {
		return err
	}
	if c.ID == "" {
		return passerr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.records[c.ID]
	if !exists {
		return notFound(c.ID)
	}

	data := toData(c)
	data.CreatedAt = existing.CreatedAt
	data.UpdatedAt = r.clock.Now()
	r.records[c.ID] = data

	return nil
}

// Delete removes a character
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return passerr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; !exists {
		return notFound(id)
	}

	delete(r.records, id)
	return nil
}
