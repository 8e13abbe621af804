package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/passive-skills/internal/config"
	"github.com/KirkDiggler/passive-skills/internal/dice"
	"github.com/KirkDiggler/passive-skills/internal/domain/character"
	"github.com/KirkDiggler/passive-skills/internal/domain/game/combat"
	"github.com/KirkDiggler/passive-skills/internal/domain/passive"
	"github.com/KirkDiggler/passive-skills/internal/domain/skill"
	passerr "github.com/KirkDiggler/passive-skills/internal/errors"
	"github.com/KirkDiggler/passive-skills/internal/events"
	"github.com/KirkDiggler/passive-skills/internal/gamedata"
	"github.com/KirkDiggler/passive-skills/internal/logging"
	"github.com/KirkDiggler/passive-skills/internal/repositories/characters"
	"github.com/KirkDiggler/passive-skills/internal/services/action"
	passivesvc "github.com/KirkDiggler/passive-skills/internal/services/passive"
	"github.com/KirkDiggler/passive-skills/internal/uuid"
)

// memberFile is one entry of the party file
type memberFile struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	MaxHP  int        `json:"max_hp"`
	MaxMP  int        `json:"max_mp"`
	Skills []skill.ID `json:"skills"`
	States []int      `json:"states"`

	CommandSkillTypes []int `json:"command_skill_types"`
}

func main() {
	configPath := flag.String("config", os.Getenv("PASSIVE_CONFIG"), "optional config file")
	partyPath := flag.String("party", "", "party file (JSON list of members)")
	load := flag.String("load", "", "comma separated character ids to load from redis instead of a party file")
	save := flag.Bool("save", false, "store the party in redis after the run")
	seed := flag.Int64("seed", 0, "dice seed; 0 picks one from the clock")
	dummyHP := flag.Int("dummy-hp", 500, "training dummy hit points")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	raw, err := gamedata.Load(cfg.DataDir)
	if err != nil {
		logger.Fatal("failed to load game data", zap.String("data_dir", cfg.DataDir), zap.Error(err))
	}
	db := raw.Classify(skill.NewClassifier(&skill.ClassifierConfig{
		PassiveTypes: cfg.SkillTypes,
		States:       raw,
		Logger:       logger,
	}), logger)

	var repo characters.Repository
	if cfg.Redis.Enabled() {
		client, redisErr := newRedisClient(ctx, cfg.Redis)
		if redisErr != nil {
			logger.Fatal("failed to connect to redis", zap.Error(redisErr))
		}
		defer client.Close()
		repo = characters.NewRedisRepository(&characters.RedisRepoConfig{Client: client, Logger: logger})
	} else if *load != "" || *save {
		logger.Fatal("redis is not configured (set PASSIVE_REDIS_URL or PASSIVE_REDIS_ADDR)")
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	roller := dice.NewSeededRoller(*seed)

	bus := events.NewBus(logger)
	engine := action.NewEngine(&action.EngineConfig{
		Skills: db,
		Roller: roller,
		Logger: logger,
	})
	svc := passivesvc.NewService(&passivesvc.ServiceConfig{
		Bus:       bus,
		Catalog:   db,
		Activator: engine,
		Logger:    logger,
	})
	engine.SetRoster(svc)

	var members []*character.Character
	if *load != "" {
		members, err = repo.GetMany(ctx, strings.Split(*load, ","))
	} else {
		members, err = readParty(*partyPath)
	}
	if err != nil {
		logger.Fatal("failed to load party", zap.Error(err))
	}

	hostCfg := &character.Config{Bus: bus, States: db, DeathStateID: cfg.DeathStateID}
	for _, m := range members {
		m.Configure(hostCfg)
	}

	party := svc.FormParty(members...)
	logger.Info("party formed",
		zap.Int("members", len(party.Members())),
		zap.Int("party_traits", len(party.Contributions())),
		zap.Int64("seed", *seed),
	)

	ids := uuid.NewSequenceGenerator("action")
	encounter := combat.NewEncounter(uuid.NewGoogleUUIDGenerator().New(), "Training Grounds",
		combat.NewPassivePhase(&combat.PassivePhaseConfig{
			Engine:        engine,
			Skills:        db,
			UUIDGenerator: ids,
			Logger:        logger,
		}))
	for _, m := range members {
		encounter.AddAlly(m)
	}
	encounter.AddEnemy(combat.NewEnemy("dummy", "Training Dummy", *dummyHP))

	if err := encounter.Start(ctx); err != nil {
		logger.Fatal("failed to start encounter", zap.Error(err))
	}
	if _, err := encounter.RunPassives(ctx); err != nil {
		logger.Fatal("passive phase failed", zap.Error(err))
	}

	fmt.Printf("Encounter %s (%s)\n", encounter.Name, encounter.Status)
	for _, entry := range encounter.CombatLog {
		fmt.Printf("  %s\n", entry)
	}

	filter := passive.NewSelectionFilter(cfg.SkillTypes)

	fmt.Println("\nTrait sources")
	for _, m := range members {
		sources, srcErr := m.TraitSources()
		if srcErr != nil {
			logger.Fatal("failed to collect traits", zap.String("character_id", m.ID), zap.Error(srcErr))
		}
		names := make([]string, 0, len(sources))
		for _, src := range sources {
			names = append(names, src.SourceName())
		}
		fmt.Printf("  %s (HP %d/%d): %s\n", m.Name, m.HP, m.MaxHP(), strings.Join(names, ", "))
		fmt.Printf("    battle commands: %v\n", filter.CommandSkillTypes(m.CommandSkillTypes))
	}

	if *save {
		for _, m := range members {
			if err := upsert(ctx, repo, m); err != nil {
				logger.Fatal("failed to save character", zap.String("character_id", m.ID), zap.Error(err))
			}
		}
		logger.Info("party saved", zap.Int("members", len(members)))
	}
}

func newRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

func readParty(path string) ([]*character.Character, error) {
	if path == "" {
		return nil, fmt.Errorf("a party file or -load ids are required")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read party file: %w", err)
	}

	var entries []memberFile
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse party file %s: %w", path, err)
	}

	members := make([]*character.Character, 0, len(entries))
	for _, e := range entries {
		c := character.New(e.ID, e.Name, e.MaxHP, e.MaxMP)
		c.Skills = append(c.Skills, e.Skills...)
		c.States = append(c.States, e.States...)
		c.CommandSkillTypes = e.CommandSkillTypes
		members = append(members, c)
	}
	return members, nil
}

func upsert(ctx context.Context, repo characters.Repository, c *character.Character) error {
	err := repo.Update(ctx, c)
	if err == nil || !passerr.IsNotFound(err) {
		return err
	}
	return repo.Create(ctx, c)
}
