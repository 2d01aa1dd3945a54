package config

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"petpal/internal/brain"
	"petpal/internal/pet"
)

// Frontends
const (
	FrontendDesktop  = "desktop"
	FrontendTerminal = "terminal"
)

// DefaultPath is used when PETPAL_CONFIG is unset.
const DefaultPath = "petpal.yaml"

type Config struct {
	UI     UIConfig     `yaml:"ui"`
	Pet    PetConfig    `yaml:"pet"`
	AI     AIConfig     `yaml:"ai"`
	Claude ClaudeConfig `yaml:"claude"`
	Gemini GeminiConfig `yaml:"gemini"`
	Log    LogConfig    `yaml:"log"`
}

type UIConfig struct {
	Frontend  string `yaml:"frontend"` // "desktop" or "terminal"
	TickRate  int    `yaml:"tick_rate"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	AssetsDir string `yaml:"assets_dir"`
}

type PetConfig struct {
	Name          string      `yaml:"name"`
	Decay         string      `yaml:"decay"`       // "fine" or "coarse"
	DecayRates    *DecayRates `yaml:"decay_rates"` // overrides the preset when set
	Cap           string      `yaml:"cap"`         // "standard" or "overshoot"
	SpeechTicks   int         `yaml:"speech_ticks"`
	CongratsTicks int         `yaml:"congrats_ticks"`
}

type DecayRates struct {
	Hunger    float64 `yaml:"hunger"`
	Energy    float64 `yaml:"energy"`
	Happiness float64 `yaml:"happiness"`
}

type AIConfig struct {
	Provider string        `yaml:"provider"` // "claude", "gemini", or "" (auto-detect)
	Timeout  time.Duration `yaml:"timeout"`
	Async    bool          `yaml:"async"`
	MaxChars int           `yaml:"max_chars"`
	// Sliding window rate limiter
	RateLimit  int           `yaml:"rate_limit"`
	RateWindow time.Duration `yaml:"rate_window"`
}

type ClaudeConfig struct {
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model"`
	MaxTokens int64  `yaml:"max_tokens"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // terminal frontend only
}

// Path returns the config file location.
func Path() string {
	if env := os.Getenv("PETPAL_CONFIG"); env != "" {
		return env
	}
	return DefaultPath
}

func Load(path string) (*Config, error) {
	cfg := defaults()

	// Load .env file first (from the working dir)
	loadDotEnv(".env")

	// Load YAML config if it exists
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// File doesn't exist, use defaults + env vars
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	// Env vars override config file (secrets live in .env or environment)
	if env := os.Getenv("ANTHROPIC_API_KEY"); env != "" {
		cfg.Claude.APIKey = env
	}
	if env := os.Getenv("GOOGLE_API_KEY"); env != "" {
		cfg.Gemini.APIKey = env
	}
	if env := os.Getenv("AI_PROVIDER"); env != "" {
		cfg.AI.Provider = env
	}
	if env := os.Getenv("PETPAL_FRONTEND"); env != "" {
		cfg.UI.Frontend = env
	}
	if env := os.Getenv("PETPAL_LOG_LEVEL"); env != "" {
		cfg.Log.Level = env
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadDotEnv reads a .env file and sets env vars that aren't already set.
func loadDotEnv(path string) {
	f, err := os.Open(path)
	if err != nil {
		return // no .env, that's fine
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
		val = strings.TrimSpace(val)

		// Strip surrounding quotes
		if len(val) >= 2 {
			if (val[0] == '"' && val[len(val)-1] == '"') ||
				(val[0] == '\'' && val[len(val)-1] == '\'') {
				val = val[1 : len(val)-1]
			}
		}

		// Only set if not already in environment
		if os.Getenv(key) == "" && val != "" {
			os.Setenv(key, val)
		}
	}
}

func defaults() *Config {
	return &Config{
		UI: UIConfig{
			Frontend:  FrontendDesktop,
			TickRate:  pet.ReferenceTickRate,
			Width:     1500,
			Height:    1000,
			Title:     "Pet Pal",
			AssetsDir: "assets",
		},
		Pet: PetConfig{
			Name:          pet.DefaultPetName,
			Decay:         "fine",
			Cap:           "standard",
			SpeechTicks:   pet.SpeechBubbleTicks,
			CongratsTicks: pet.CongratsPopupTicks,
		},
		AI: AIConfig{
			Timeout:    pet.DefaultReplyTimeout,
			Async:      true,
			MaxChars:   60,
			RateLimit:  30,
			RateWindow: time.Minute,
		},
		Claude: ClaudeConfig{
			Model:     "claude-haiku-4-5",
			MaxTokens: 64,
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.5-flash",
		},
		Log: LogConfig{
			Level: "info",
			File:  "petpal.log",
		},
	}
}

var (
	decayPresets = map[string]pet.DecayRates{"fine": pet.FineDecay, "coarse": pet.CoarseDecay}
	capPresets   = map[string]pet.PlayCap{"standard": pet.StandardCap, "overshoot": pet.OvershootCap}
)

func validate(cfg *Config) error {
	switch cfg.UI.Frontend {
	case FrontendDesktop, FrontendTerminal:
	default:
		return fmt.Errorf("unknown frontend %q (want %q or %q)", cfg.UI.Frontend, FrontendDesktop, FrontendTerminal)
	}
	if cfg.UI.TickRate <= 0 {
		return fmt.Errorf("ui.tick_rate must be positive, got %d", cfg.UI.TickRate)
	}
	if cfg.UI.Width <= 0 || cfg.UI.Height <= 0 {
		return fmt.Errorf("ui size must be positive, got %dx%d", cfg.UI.Width, cfg.UI.Height)
	}
	if _, ok := decayPresets[cfg.Pet.Decay]; !ok {
		return fmt.Errorf("unknown decay preset %q", cfg.Pet.Decay)
	}
	if r := cfg.Pet.DecayRates; r != nil && (r.Hunger < 0 || r.Energy < 0 || r.Happiness < 0) {
		return fmt.Errorf("pet.decay_rates must not be negative")
	}
	if _, ok := capPresets[cfg.Pet.Cap]; !ok {
		return fmt.Errorf("unknown cap preset %q", cfg.Pet.Cap)
	}
	if cfg.Pet.SpeechTicks < 0 || cfg.Pet.CongratsTicks < 0 {
		return fmt.Errorf("pet tick durations must not be negative")
	}
	if cfg.AI.Timeout <= 0 {
		return fmt.Errorf("ai.timeout must be positive, got %s", cfg.AI.Timeout)
	}
	if cfg.AI.RateLimit < 0 || cfg.AI.RateWindow < 0 {
		return fmt.Errorf("ai rate limit must not be negative")
	}
	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		return err
	}
	return nil
}

// Tuning builds the pet simulation tuning.
func (c *Config) Tuning() pet.Tuning {
	t := pet.DefaultTuning()
	t.Decay = decayPresets[c.Pet.Decay]
	if r := c.Pet.DecayRates; r != nil {
		t.Decay = pet.DecayRates{Hunger: r.Hunger, Energy: r.Energy, Happiness: r.Happiness}
	}
	t.Cap = capPresets[c.Pet.Cap]
	t.SpeechTicks = c.Pet.SpeechTicks
	t.CongratsTicks = c.Pet.CongratsTicks
	return t
}

// Brain builds the message generator config.
func (c *Config) Brain() brain.Config {
	return brain.Config{
		ClaudeAPIKey: c.Claude.APIKey,
		ClaudeModel:  c.Claude.Model,
		GeminiAPIKey: c.Gemini.APIKey,
		GeminiModel:  c.Gemini.Model,
		Provider:     c.AI.Provider,
		MaxTokens:    c.Claude.MaxTokens,
		MaxChars:     c.AI.MaxChars,
		RateLimit:    c.AI.RateLimit,
		RateWindow:   c.AI.RateWindow,
	}
}

// ParseLevel maps a log level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
