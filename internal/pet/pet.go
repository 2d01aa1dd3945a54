package pet

import "log/slog"

// Pet represents the virtual pet's state
type Pet struct {
	Name      string
	Hunger    float64 // 0=full, 100=starving
	Energy    float64
	Happiness float64

	// Speech bubble, hidden when SpeechTimer is 0
	SpeechText  string
	SpeechTimer int

	// One-way latch and the celebration it arms
	MaxFriendship bool
	CongratsTimer int

	mood   Mood // last mood seen by Advance
	tuning Tuning
	voice  *Voice
}

// Option configures a new Pet.
type Option func(*Pet)

// WithName sets the pet's name.
func WithName(name string) Option {
	return func(p *Pet) {
		if name != "" {
			p.Name = name
		}
	}
}

// WithTuning replaces the default tuning.
func WithTuning(t Tuning) Option {
	return func(p *Pet) {
		p.tuning = t
	}
}

// WithVoice sets where reaction messages come from.
func WithVoice(v *Voice) Option {
	return func(p *Pet) {
		p.voice = v
	}
}

// WithStats overrides the starting stats. Values are clamped.
func WithStats(hunger, energy, happiness float64) Option {
	return func(p *Pet) {
		p.Hunger = clamp(hunger, MinStat, MaxStat)
		p.Energy = clamp(energy, MinStat, MaxStat)
		p.Happiness = clamp(happiness, MinStat, p.tuning.Cap.HappinessCap)
	}
}

// New creates a pet with every stat at 50, the latch off and both timers hidden.
func New(opts ...Option) *Pet {
	p := &Pet{
		Name:      DefaultPetName,
		Hunger:    StartingStat,
		Energy:    StartingStat,
		Happiness: StartingStat,
		tuning:    DefaultTuning(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.voice == nil {
		p.voice = NewVoice(Silent{})
	}
	p.mood = p.Mood()
	return p
}

// Mood derives the mood from the current stats.
func (p *Pet) Mood() Mood {
	return DetermineMood(p.Hunger, p.Energy, p.Happiness)
}

// CurrentMood returns the mood cached by the last Advance.
func (p *Pet) CurrentMood() Mood {
	return p.mood
}

// Tuning returns the pet's simulation tuning.
func (p *Pet) Tuning() Tuning {
	return p.tuning
}

// Feed lowers hunger and asks for a "fed" reaction.
func (p *Pet) Feed() {
	p.Do(ActionFed)
}

// Play raises happiness, costs energy and asks for a "played" reaction.
func (p *Pet) Play() {
	p.Do(ActionPlayed)
}

// Sleep restores energy and asks for a "slept" reaction.
func (p *Pet) Sleep() {
	p.Do(ActionSlept)
}

// Advance runs the per-tick simulation ticks times (at least once).
func (p *Pet) Advance(ticks int) {
	if ticks < 1 {
		ticks = 1
	}
	for range ticks {
		p.tick()
	}
}

func (p *Pet) tick() {
	if text, ok := p.voice.Latest(); ok {
		p.showSpeech(text)
	}

	d := p.tuning.Decay
	p.Hunger = clamp(p.Hunger+d.Hunger, MinStat, MaxStat)
	p.Energy = clamp(p.Energy-d.Energy, MinStat, MaxStat)
	p.Happiness = clamp(p.Happiness-d.Happiness, MinStat, p.tuning.Cap.HappinessCap)

	if mood := p.Mood(); mood != p.mood {
		slog.Debug("pet: mood changed", "name", p.Name, "from", p.mood, "to", mood)
		p.mood = mood
		p.react(ActionNone)
	}

	if p.SpeechTimer > 0 {
		p.SpeechTimer--
	}

	p.checkFriendship()

	if p.CongratsTimer > 0 {
		p.CongratsTimer--
	}
}

// checkFriendship trips the one-way latch the first time happiness reaches
// the threshold and arms the celebration popup.
func (p *Pet) checkFriendship() {
	if p.MaxFriendship || p.Happiness < MaxFriendshipThreshold {
		return
	}
	p.MaxFriendship = true
	p.CongratsTimer = p.tuning.CongratsTicks
	slog.Info("pet: max friendship achieved", "name", p.Name)
}

func (p *Pet) react(action Action) {
	req := Request{
		Name:      p.Name,
		Mood:      p.Mood(),
		Hunger:    p.Hunger,
		Energy:    p.Energy,
		Happiness: p.Happiness,
		Action:    action,
	}
	p.showSpeech(p.voice.Ask(req))
}

func (p *Pet) showSpeech(text string) {
	p.SpeechText = text
	p.SpeechTimer = p.tuning.SpeechTicks
}

// SpeechVisible reports whether the speech bubble should be drawn.
func (p *Pet) SpeechVisible() bool {
	return p.SpeechTimer > 0
}

// CongratsVisible reports whether the celebration popup should be drawn.
func (p *Pet) CongratsVisible() bool {
	return p.CongratsTimer > 0
}

// Close cancels any reaction still being generated.
func (p *Pet) Close() {
	p.voice.Close()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
