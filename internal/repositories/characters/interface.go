package characters

import (
	"context"
	"time"

	"github.com/KirkDiggler/passive-skills/internal/domain/character"
)

// Repository defines the interface for character persistence.
// Stored records carry the passive index snapshot, so a loaded character
// rejoins a party without re-firing its menu passives.
type Repository interface {
	// Create stores a new character, assigning an id when it has none
	Create(ctx context.Context, c *character.Character) error

	// Get retrieves a character by ID
	Get(ctx context.Context, id string) (*character.Character, error)

	// GetMany retrieves characters in the order of ids. Any missing id fails the call.
	GetMany(ctx context.Context, ids []string) ([]*character.Character, error)

	// List returns the ids of every stored character, sorted
	List(ctx context.Context) ([]string, error)

	// Update replaces an existing character
	Update(ctx context.Context, c *character.Character) error

	// Delete removes a character
	Delete(ctx context.Context, id string) error
}

// TimeProvider stamps records
type TimeProvider interface {
	Now() time.Time
}

type utcClock struct{}

func (utcClock) Now() time.Time { return time.Now().UTC() }
