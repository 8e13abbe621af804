package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. PASSIVE_DATA_DIR
const EnvPrefix = "PASSIVE"

// Config holds all configuration for the passive skill tools
type Config struct {
	// SkillTypes are the skill type ids whose skills are classified as passive
	SkillTypes   []int       `mapstructure:"-"`
	DataDir      string      `mapstructure:"data_dir"`
	DeathStateID int         `mapstructure:"death_state_id"`
	LogLevel     string      `mapstructure:"log_level"`
	Redis        RedisConfig `mapstructure:"redis"`
}

// RedisConfig holds Redis-specific configuration. URL wins over Addr when both are set.
type RedisConfig struct {
	URL      string `mapstructure:"url"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Enabled reports whether any redis endpoint was configured
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Addr != ""
}

// Load reads configuration from an optional file plus PASSIVE_* environment variables.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default so AutomaticEnv can see it during Unmarshal
	v.SetDefault("skill_types", "")
	v.SetDefault("data_dir", "")
	v.SetDefault("death_state_id", 1)
	v.SetDefault("log_level", "info")
	v.SetDefault("redis.url", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	skillTypes, err := parseSkillTypes(v.Get("skill_types"))
	if err != nil {
		return nil, err
	}
	cfg.SkillTypes = skillTypes

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required (set %s_DATA_DIR)", EnvPrefix)
	}
	if c.DeathStateID <= 0 {
		return fmt.Errorf("death_state_id must be positive, got %d", c.DeathStateID)
	}
	for _, t := range c.SkillTypes {
		if t <= 0 {
			return fmt.Errorf("skill type ids must be positive, got %d", t)
		}
	}
	return nil
}

// parseSkillTypes accepts "3,4" from the environment or a list from a config file
func parseSkillTypes(raw any) ([]int, error) {
	if value, ok := raw.(string); ok {
		if strings.TrimSpace(value) == "" {
			return nil, nil
		}
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		raw = parts
	}
	if raw == nil {
		return nil, nil
	}

	types, err := cast.ToIntSliceE(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid skill type list %v: %w", raw, err)
	}
	return types, nil
}
