package pet

// Mood is the pet's discrete emotional state, derived from its stats.
type Mood int

const (
	MoodHappy Mood = iota
	MoodHungry
	MoodTired
	MoodSad
	MoodExcited
)

// Status emojis
const (
	StatusEmojiHappy   = "😸"
	StatusEmojiHungry  = "🙀"
	StatusEmojiTired   = "😾"
	StatusEmojiSad     = "😿"
	StatusEmojiExcited = "😻"
	StatusEmojiUnknown = "❓"
)

// DetermineMood returns a mood based on priority-ordered rules.
// Priority: Hungry > Tired > Sad > Excited > Happy
func DetermineMood(hunger, energy, happiness float64) Mood {
	if hunger > HungryThreshold {
		return MoodHungry
	}
	if energy < TiredThreshold {
		return MoodTired
	}
	if happiness < SadThreshold {
		return MoodSad
	}
	if happiness > ExcitedHappyThreshold && energy > ExcitedEnergyThreshold && hunger < ExcitedHungerThreshold {
		return MoodExcited
	}
	return MoodHappy
}

// String returns the lowercase mood label sent to message generators.
func (m Mood) String() string {
	switch m {
	case MoodHappy:
		return "happy"
	case MoodHungry:
		return "hungry"
	case MoodTired:
		return "tired"
	case MoodSad:
		return "sad"
	case MoodExcited:
		return "excited"
	default:
		return "unknown"
	}
}

// Title returns the label for display, e.g. "Mood: Hungry".
func (m Mood) Title() string {
	s := m.String()
	return string(s[0]-'a'+'A') + s[1:]
}

// Emoji returns the face shown for the mood
func (m Mood) Emoji() string {
	switch m {
	case MoodHappy:
		return StatusEmojiHappy
	case MoodHungry:
		return StatusEmojiHungry
	case MoodTired:
		return StatusEmojiTired
	case MoodSad:
		return StatusEmojiSad
	case MoodExcited:
		return StatusEmojiExcited
	default:
		return StatusEmojiUnknown
	}
}
