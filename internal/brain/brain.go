package brain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"petpal/internal/pet"
)

// Sentinel errors
var (
	ErrRateLimited = errors.New("brain: rate limit reached")
	ErrEmptyReply  = errors.New("brain: empty reply")
)

// timeNow is swapped in tests
var timeNow = time.Now

const defaultMaxChars = 60

// Brain writes pet reactions with an AI provider. It implements pet.Generator.
type Brain struct {
	provider Provider
	maxChars int

	// Sliding-window rate limiter
	mu      sync.Mutex
	window  []time.Time
	rateMax int
	rateDur time.Duration
}

// Config for creating a Brain.
type Config struct {
	// Claude
	ClaudeAPIKey string
	ClaudeModel  string

	// Gemini
	GeminiAPIKey string
	GeminiModel  string

	// Which provider to force ("claude", "gemini", or "" for auto-detect)
	Provider string

	MaxTokens  int64
	MaxChars   int
	RateLimit  int
	RateWindow time.Duration
}

// New creates a Brain. Returns nil if no API key is configured.
func New(ctx context.Context, cfg Config) *Brain {
	provider := newProvider(ctx, cfg)
	if provider == nil {
		slog.Info("brain: no API key configured, using canned messages")
		return nil
	}
	return newBrain(provider, cfg)
}

func newBrain(provider Provider, cfg Config) *Brain {
	maxChars := cfg.MaxChars
	if maxChars <= 0 {
		maxChars = defaultMaxChars
	}
	return &Brain{
		provider: provider,
		maxChars: maxChars,
		rateMax:  cfg.RateLimit,
		rateDur:  cfg.RateWindow,
	}
}

// newProvider auto-detects or forces the AI provider.
func newProvider(ctx context.Context, cfg Config) Provider {
	pick := cfg.Provider

	if pick == "" {
		switch {
		case cfg.ClaudeAPIKey != "":
			pick = "claude"
		case cfg.GeminiAPIKey != "":
			pick = "gemini"
		}
	}

	switch pick {
	case "claude":
		if cfg.ClaudeAPIKey == "" {
			slog.Error("brain: AI_PROVIDER=claude but ANTHROPIC_API_KEY is not set")
			return nil
		}
		slog.Info("brain: using claude", "model", cfg.ClaudeModel)
		return newClaudeProvider(cfg.ClaudeAPIKey, cfg.ClaudeModel, cfg.MaxTokens)
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			slog.Error("brain: AI_PROVIDER=gemini but GOOGLE_API_KEY is not set")
			return nil
		}
		slog.Info("brain: using gemini", "model", cfg.GeminiModel)
		p, err := newGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.MaxTokens)
		if err != nil {
			slog.Error("brain: failed to create gemini provider", "err", err)
			return nil
		}
		return p
	default:
		return nil
	}
}

// Generate asks the provider for a one-line reaction.
func (b *Brain) Generate(ctx context.Context, req pet.Request) (string, error) {
	if !b.rateAllow() {
		return "", ErrRateLimited
	}

	text, err := b.provider.Complete(ctx, buildSystemPrompt(req.Name), buildPrompt(req))
	if err != nil {
		slog.Warn("brain: AI API error", "err", err)
		return "", fmt.Errorf("AI API error: %w", err)
	}

	line := cleanReply(text, b.maxChars)
	if line == "" {
		return "", ErrEmptyReply
	}
	return line, nil
}

func buildSystemPrompt(name string) string {
	return fmt.Sprintf(`You are %s, a small virtual pet living on your owner's screen.

## Guidelines
- Answer with one short line of speech, 7 words or fewer.
- Speak in the first person, like a playful pet.
- No narration, no quotes, no emoji descriptions.
- React to how you feel right now.`, name)
}

func buildPrompt(req pet.Request) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `## Current State
- Mood: %s
- Hunger: %.0f/100 (0=full, 100=starving)
- Energy: %.0f/100
- Happiness: %.0f/100
`, req.Mood, req.Hunger, req.Energy, req.Happiness)

	if event := actionEvent(req.Action); event != "" {
		fmt.Fprintf(&sb, "\nThe owner just %s.\n", event)
	}
	sb.WriteString("\nWhat do you say?")
	return sb.String()
}

func actionEvent(a pet.Action) string {
	switch a {
	case pet.ActionFed:
		return "fed you"
	case pet.ActionPlayed:
		return "played with you"
	case pet.ActionSlept:
		return "put you to bed"
	default:
		return ""
	}
}

// cleanReply keeps the first non-empty line, strips quotes and cuts it to
// maxChars at a word boundary.
func cleanReply(text string, maxChars int) string {
	line := ""
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			line = l
			break
		}
	}
	line = strings.TrimSpace(strings.Trim(line, "\"'`“”"))

	runes := []rune(line)
	if len(runes) <= maxChars {
		return line
	}
	cut := string(runes[:maxChars])
	if runes[maxChars] == ' ' {
		return strings.TrimSpace(cut)
	}
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut)
}

// --- Sliding-window rate limiter ---

func (b *Brain) rateAllow() bool {
	if b.rateMax <= 0 {
		return true
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := timeNow()
	cutoff := now.Add(-b.rateDur)

	// Remove expired entries
	valid := b.window[:0]
	for _, t := range b.window {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}
	b.window = valid

	if len(b.window) >= b.rateMax {
		return false
	}

	b.window = append(b.window, now)
	return true
}
