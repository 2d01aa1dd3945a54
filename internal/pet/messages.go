package pet

import (
	"context"
	"errors"
)

// Action tags a reaction with the user action that caused it.
type Action int

const (
	ActionNone Action = iota
	ActionFed
	ActionPlayed
	ActionSlept
)

// String returns the action label passed to message generators ("" for none).
func (a Action) String() string {
	switch a {
	case ActionNone:
		return ""
	case ActionFed:
		return "fed"
	case ActionPlayed:
		return "played"
	case ActionSlept:
		return "slept"
	default:
		return "unknown"
	}
}

// Request is everything a generator may use to write a reaction.
type Request struct {
	Name      string
	Mood      Mood
	Hunger    float64
	Energy    float64
	Happiness float64
	Action    Action
}

// Generator writes a short reaction line for the pet. Implementations may block
// and may fail; the pet never surfaces their errors.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// ErrNoGenerator is returned by Silent.
var ErrNoGenerator = errors.New("pet: no message generator configured")

// Silent is the absent generator. Every reaction comes from the fallback table.
type Silent struct{}

// Generate always fails with ErrNoGenerator.
func (Silent) Generate(context.Context, Request) (string, error) {
	return "", ErrNoGenerator
}

// Fallback messages
const (
	MessageHungry  = "I'm so hungry! :("
	MessageTired   = "I need a nap..."
	MessageSad     = "I'm feeling lonely... :'("
	MessageExcited = "This is amazing!"
	MessageHappy   = "I'm feeling great! :DDD"
	MessageGreet   = "Hi there!"

	MessageFed    = "Yum! Thanks for the food! :)"
	MessagePlayed = "That was so fun! :D"
	MessageSlept  = "I feel so much better now! Zzz..."
	MessageThanks = "Thanks!"
)

// FallbackMessage returns the static line for a request. Action-tagged
// requests use the action table, the rest use the mood table.
func FallbackMessage(req Request) string {
	if req.Action != ActionNone {
		return actionMessage(req.Action)
	}
	return moodMessage(req.Mood)
}

func moodMessage(m Mood) string {
	switch m {
	case MoodHungry:
		return MessageHungry
	case MoodTired:
		return MessageTired
	case MoodSad:
		return MessageSad
	case MoodExcited:
		return MessageExcited
	case MoodHappy:
		return MessageHappy
	default:
		return MessageGreet
	}
}

func actionMessage(a Action) string {
	switch a {
	case ActionFed:
		return MessageFed
	case ActionPlayed:
		return MessagePlayed
	case ActionSlept:
		return MessageSlept
	default:
		return MessageThanks
	}
}
