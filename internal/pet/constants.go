package pet

import "time"

// Game constants
const (
	DefaultPetName = "Fluffy"
	MaxStat        = 100
	MinStat        = 0
	StartingStat   = 50

	// Action effects
	FeedHungerDecrease  = 20
	PlayEnergyDecrease  = 10
	SleepEnergyIncrease = 25

	// Mood thresholds
	HungryThreshold        = 75 // Hunger above this is "hungry"
	TiredThreshold         = 20 // Energy below this is "tired"
	SadThreshold           = 30 // Happiness below this is "sad"
	ExcitedHappyThreshold  = 80 // Happiness above this (with the two below) is "excited"
	ExcitedEnergyThreshold = 70
	ExcitedHungerThreshold = 40

	// Friendship latch fires when happiness reaches this
	MaxFriendshipThreshold = 100

	// Timer durations in ticks at the reference rate
	ReferenceTickRate   = 60
	SpeechBubbleTicks   = 3 * ReferenceTickRate
	CongratsPopupTicks  = 5 * ReferenceTickRate
	DefaultReplyTimeout = 4 * time.Second
	replyBufferSize     = 8
)

// DecayRates are the per-tick stat changes applied by Advance.
// Hunger rises, energy and happiness fall.
type DecayRates struct {
	Hunger    float64
	Energy    float64
	Happiness float64
}

// Decay presets
var (
	FineDecay   = DecayRates{Hunger: 0.01, Energy: 0.005, Happiness: 0.007}
	CoarseDecay = DecayRates{Hunger: 0.05, Energy: 0.02, Happiness: 0.03}
)

// PlayCap pairs the happiness ceiling with the gain from one Play.
type PlayCap struct {
	HappinessCap float64
	PlayGain     float64
}

// Cap presets. OvershootCap lets happiness sit above the friendship threshold
// after a tick of decay.
var (
	StandardCap  = PlayCap{HappinessCap: 100, PlayGain: 15}
	OvershootCap = PlayCap{HappinessCap: 101, PlayGain: 20}
)

// Tuning holds every adjustable number of the simulation.
type Tuning struct {
	Decay          DecayRates
	Cap            PlayCap
	FeedAmount     float64
	PlayEnergyCost float64
	SleepGain      float64
	SpeechTicks    int
	CongratsTicks  int
}

// DefaultTuning returns the reference tuning: fine decay and the 100/15 cap.
func DefaultTuning() Tuning {
	return Tuning{
		Decay:          FineDecay,
		Cap:            StandardCap,
		FeedAmount:     FeedHungerDecrease,
		PlayEnergyCost: PlayEnergyDecrease,
		SleepGain:      SleepEnergyIncrease,
		SpeechTicks:    SpeechBubbleTicks,
		CongratsTicks:  CongratsPopupTicks,
	}
}
