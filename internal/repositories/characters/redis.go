package characters

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/passive-skills/internal/domain/character"
	passerr "github.com/KirkDiggler/passive-skills/internal/errors"
	"github.com/KirkDiggler/passive-skills/internal/uuid"
)

// allCharactersKey is the set of every stored character id
const allCharactersKey = "characters"

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	clock         TimeProvider
	logger        *zap.Logger
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
	TimeProvider  TimeProvider
	Logger        *zap.Logger
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	r := &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
		clock:         cfg.TimeProvider,
		logger:        cfg.Logger,
	}
	if r.uuidGenerator == nil {
		r.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if r.clock == nil {
		r.clock = utcClock{}
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	return r
}

// NewRedis creates a Redis repository with default collaborators
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

// key generates the Redis key for a character
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, c *character.Character) error {
	if err := validate(c); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = r.uuidGenerator.New()
	}

	exists, err := r.client.Exists(ctx, r.key(c.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists > 0 {
		return passerr.AlreadyExistsf("character with ID '%s' already exists", c.ID).
			WithMeta("character_id", c.ID)
	}

	data := toData(c)
	data.CreatedAt = r.clock.Now()
	data.UpdatedAt = data.CreatedAt

	return r.set(ctx, data)
}

func (r *redisRepo) set(ctx context.Context, data *Data) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(data.ID), string(jsonData), 0)
	pipe.SAdd(ctx, allCharactersKey, data.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store character: %w", err)
	}

	r.logger.Debug("character stored",
		zap.String("character_id", data.ID),
		zap.Bool("with_passives", data.Passives != nil),
	)
	return nil
}

func (r *redisRepo) getData(ctx context.Context, id string) (*Data, error) {
	if id == "" {
		return nil, passerr.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err == redis.Nil {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}
	return &data, nil
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	data, err := r.getData(ctx, id)
	if err != nil {
		return nil, err
	}
	return fromData(data), nil
}

// GetMany loads every id concurrently
func (r *redisRepo) GetMany(ctx context.Context, ids []string) ([]*character.Character, error) {
	out := make([]*character.Character, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			c, err := r.Get(ctx, id)
			if err != nil {
				return err
			}
			out[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// List returns every stored id
func (r *redisRepo) List(ctx context.Context) ([]string, error) {
	ids, err := r.client.SMembers(ctx, allCharactersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

// Update replaces an existing character, keeping its creation time
func (r *redisRepo) Update(ctx context.Context, c *character.Character) error {
	if err := validate(c); err != nil {
		return err
	}

	existing, err := r.getData(ctx, c.ID)
	if err != nil {
		return err
	}

	data := toData(c)
	data.CreatedAt = existing.CreatedAt
	data.UpdatedAt = r.clock.Now()

	return r.set(ctx, data)
}

// Delete removes a character
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return passerr.InvalidArgument("character ID is required")
	}

	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, allCharactersKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	if del.Val() == 0 {
		return notFound(id)
	}
	return nil
}
