package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"daifugo/internal/domain"
)

// Config is the server-wide configuration, loadable from a yaml file and
// overridable through DAIFUGO_* environment variables.
type Config struct {
	Rules   RulesConfig   `mapstructure:"rules"`
	Bot     BotConfig     `mapstructure:"bot"`
	Match   MatchConfig   `mapstructure:"match"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type RulesConfig struct {
	Shibari         bool `mapstructure:"shibari"`
	EnableSequences bool `mapstructure:"enable_sequences"`
	Revolution      bool `mapstructure:"revolution"`
	EightCut        bool `mapstructure:"eight_cut"`
	ElevenBack      bool `mapstructure:"eleven_back"`
	SevenGive       bool `mapstructure:"seven_give"`
	TenDiscard      bool `mapstructure:"ten_discard"`
	QueenBomb       bool `mapstructure:"queen_bomb"`
	JokerCount      int  `mapstructure:"joker_count"`
}

type BotConfig struct {
	// AutoFillDelaySeconds configures how long a solo human lobby waits
	// before bots take the empty seats.
	AutoFillDelaySeconds int    `mapstructure:"auto_fill_delay_seconds"`
	ThinkMinMillis       int    `mapstructure:"think_min_millis"`
	ThinkMaxMillis       int    `mapstructure:"think_max_millis"`
	IdentitiesPath       string `mapstructure:"identities_path"`
}

type MatchConfig struct {
	TurnDurationSeconds int `mapstructure:"turn_duration_seconds"`
}

type LoggingConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

var (
	loaded   *Config
	loadOnce sync.Once
	loadErr  error
)

// Load reads the configuration once and caches it for the process. An
// empty path loads defaults and environment overrides only.
func Load(path string) (*Config, error) {
	loadOnce.Do(func() {
		loaded, loadErr = load(path)
	})
	return loaded, loadErr
}

// Get returns the cached configuration, or defaults when Load has not
// run yet.
func Get() *Config {
	if loaded == nil {
		cfg, _ := load("")
		return cfg
	}
	return loaded
}

func load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("daifugo")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := domain.DefaultRules()
	v.SetDefault("rules.shibari", defaults.Shibari)
	v.SetDefault("rules.enable_sequences", defaults.EnableSequences)
	v.SetDefault("rules.revolution", defaults.Revolution)
	v.SetDefault("rules.eight_cut", defaults.EightCut)
	v.SetDefault("rules.eleven_back", defaults.ElevenBack)
	v.SetDefault("rules.seven_give", defaults.SevenGive)
	v.SetDefault("rules.ten_discard", defaults.TenDiscard)
	v.SetDefault("rules.queen_bomb", defaults.QueenBomb)
	v.SetDefault("rules.joker_count", defaults.JokerCount)

	v.SetDefault("bot.auto_fill_delay_seconds", 5)
	v.SetDefault("bot.think_min_millis", 600)
	v.SetDefault("bot.think_max_millis", 1800)
	v.SetDefault("bot.identities_path", "data/bot_identities.json")

	v.SetDefault("match.turn_duration_seconds", 30)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.development", false)
}

// RuleSettings converts the configured rule toggles into engine settings.
func (c *Config) RuleSettings() domain.RuleSettings {
	return domain.RuleSettings{
		Shibari:         c.Rules.Shibari,
		EnableSequences: c.Rules.EnableSequences,
		Revolution:      c.Rules.Revolution,
		EightCut:        c.Rules.EightCut,
		ElevenBack:      c.Rules.ElevenBack,
		SevenGive:       c.Rules.SevenGive,
		TenDiscard:      c.Rules.TenDiscard,
		QueenBomb:       c.Rules.QueenBomb,
		JokerCount:      c.Rules.JokerCount,
	}
}
