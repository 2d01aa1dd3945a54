package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"petpal/internal/game"
	"petpal/internal/pet"
)

var gameStyles = struct {
	title    lipgloss.Style
	status   lipgloss.Style
	stats    lipgloss.Style
	text     lipgloss.Style
	button   lipgloss.Style
	pet      lipgloss.Style
	bubble   lipgloss.Style
	congrats lipgloss.Style
	anim     lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(34),

	text: lipgloss.NewStyle().
		Padding(0, 2),

	button: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#64C864")).
		Padding(0, 3),

	pet: lipgloss.NewStyle().
		Padding(1, 4),

	bubble: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1),

	congrats: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("#FFD700")).
		Foreground(lipgloss.Color("#FFD700")).
		Bold(true).
		Align(lipgloss.Center).
		Padding(1, 4),

	anim: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700")).
		Bold(true).
		Padding(1, 2),
}

// petFaces are drawn for each mood
var petFaces = map[pet.Mood]string{
	pet.MoodHappy:   " /\\_/\\\n( ^.^ )\n > ~ <",
	pet.MoodHungry:  " /\\_/\\\n( o.o )\n > O <",
	pet.MoodTired:   " /\\_/\\\n( -.- )\n > ~ < z",
	pet.MoodSad:     " /\\_/\\\n( ;.; )\n > n <",
	pet.MoodExcited: " /\\_/\\\n( *o* )\n>> w <<",
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for playing!\n"
	}

	switch m.App.Screen() {
	case game.ScreenLanding:
		return m.landingView()
	case game.ScreenTutorial:
		return m.tutorialView()
	default:
		return m.gameView()
	}
}

func (m Model) landingView() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		"",
		gameStyles.title.Render(pet.StatusEmojiHappy+" "+game.Title+" "+pet.StatusEmojiHappy),
		"",
		gameStyles.button.Render("PLAY"),
		"",
		gameStyles.status.Render("Press enter to play • q to quit"),
	)
}

func (m Model) tutorialView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.title.Render("How to Play"),
		"",
		gameStyles.text.Render(strings.Join(game.TutorialLines, "\n")),
		"",
		gameStyles.button.Render("START GAME"),
		"",
		gameStyles.status.Render("Press enter to start • q to quit"),
	)
}

func (m Model) gameView() string {
	p := m.App.Pet()
	mood := p.Mood()
	title := gameStyles.title.Render(mood.Emoji() + " " + p.Name + " " + mood.Emoji())

	sections := []string{title, ""}

	if p.CongratsVisible() {
		sections = append(sections, renderCongrats(), "")
	}

	if p.SpeechVisible() {
		sections = append(sections, gameStyles.bubble.Render(p.SpeechText))
	}

	if m.Animation.Type != AnimNone {
		sections = append(sections, gameStyles.anim.Render(GetAnimationFrame(m.Animation)))
	} else {
		sections = append(sections, gameStyles.pet.Render(petFace(mood)))
	}

	sections = append(sections,
		renderStats(p),
		"",
		gameStyles.status.Render(renderActions()+" • [R] Restart • q Quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func petFace(mood pet.Mood) string {
	if face, ok := petFaces[mood]; ok {
		return face
	}
	return petFaces[pet.MoodHappy]
}

func renderActions() string {
	var items []string
	for _, def := range pet.GetActionDefinitions() {
		items = append(items, "["+def.Label[:1]+"] "+def.Emoji+" "+def.Label)
	}
	return strings.Join(items, " • ")
}

func renderCongrats() string {
	return gameStyles.congrats.Render(strings.Join([]string{
		"★  CONGRATULATIONS!  ★",
		"Max Friendship Achieved!",
		"Your pet loves you very much!",
	}, "\n"))
}
