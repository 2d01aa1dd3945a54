package pet

import "log/slog"

// ActionDefinition describes a user action's label and its effect on the pet
type ActionDefinition struct {
	Action Action
	Label  string
	Emoji  string
	Apply  func(p *Pet)
}

// GetActionDefinitions returns all user actions in button order
func GetActionDefinitions() []ActionDefinition {
	return []ActionDefinition{
		{
			Action: ActionFed,
			Label:  "Feed",
			Emoji:  "🍖",
			Apply: func(p *Pet) {
				p.Hunger = clamp(p.Hunger-p.tuning.FeedAmount, MinStat, MaxStat)
				slog.Debug("pet: fed", "name", p.Name, "hunger", p.Hunger)
			},
		},
		{
			Action: ActionPlayed,
			Label:  "Play",
			Emoji:  "🎾",
			Apply: func(p *Pet) {
				p.Happiness = clamp(p.Happiness+p.tuning.Cap.PlayGain, MinStat, p.tuning.Cap.HappinessCap)
				p.Energy = clamp(p.Energy-p.tuning.PlayEnergyCost, MinStat, MaxStat)
				slog.Debug("pet: played", "name", p.Name, "happiness", p.Happiness, "energy", p.Energy)
				p.checkFriendship()
			},
		},
		{
			Action: ActionSlept,
			Label:  "Sleep",
			Emoji:  "🛌",
			Apply: func(p *Pet) {
				p.Energy = clamp(p.Energy+p.tuning.SleepGain, MinStat, MaxStat)
				slog.Debug("pet: slept", "name", p.Name, "energy", p.Energy)
			},
		},
	}
}

// GetActionDefinition returns the definition for a given action
func GetActionDefinition(action Action) *ActionDefinition {
	for _, def := range GetActionDefinitions() {
		if def.Action == action {
			return &def
		}
	}
	return nil
}

// Do applies a user action and asks for a reaction tagged with it.
// Unknown actions are ignored and report false.
func (p *Pet) Do(action Action) bool {
	def := GetActionDefinition(action)
	if def == nil {
		return false
	}
	def.Apply(p)
	p.react(action)
	return true
}
