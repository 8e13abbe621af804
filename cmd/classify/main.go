package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/KirkDiggler/passive-skills/internal/config"
	"github.com/KirkDiggler/passive-skills/internal/domain/passive"
	"github.com/KirkDiggler/passive-skills/internal/domain/skill"
	"github.com/KirkDiggler/passive-skills/internal/gamedata"
	"github.com/KirkDiggler/passive-skills/internal/logging"
)

// classifiedSkill is one line of the report
type classifiedSkill struct {
	*skill.Definition
	Categories []string `json:"categories"`
	Hidden     bool     `json:"hidden_from_selection"`
}

func main() {
	configPath := flag.String("config", os.Getenv("PASSIVE_CONFIG"), "optional config file")
	all := flag.Bool("all", false, "include non-passive skills")
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

	raw, err := gamedata.Load(cfg.DataDir)
	if err != nil {
		logger.Fatal("failed to load game data", zap.String("data_dir", cfg.DataDir), zap.Error(err))
	}

	db := raw.Classify(skill.NewClassifier(&skill.ClassifierConfig{
		PassiveTypes: cfg.SkillTypes,
		States:       raw,
		Logger:       logger,
	}), logger)
	filter := passive.NewSelectionFilter(cfg.SkillTypes)

	report := []classifiedSkill{}
	for _, def := range db.Skills() {
		if !def.IsPassive && !*all {
			continue
		}

		categories := []string{}
		for _, c := range passive.Categories {
			if passive.Matches(c, def) {
				categories = append(categories, c.String())
			}
		}
		report = append(report, classifiedSkill{
			Definition: def,
			Categories: categories,
			Hidden:     filter.Excludes(def),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		logger.Fatal("failed to write report", zap.Error(err))
	}
}
