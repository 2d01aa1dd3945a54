package ui

import (
	"fmt"
	"strings"

	"petpal/internal/pet"
)

// barCells is the width of a stat bar
const barCells = 10

// makeBar draws value out of limit as a row of filled and empty cells.
func makeBar(value, limit float64) string {
	filled := int(value / limit * barCells)
	filled = min(max(filled, 0), barCells)
	return strings.Repeat("█", filled) + strings.Repeat("░", barCells-filled)
}

// renderStats lists the three stats with bars, then the mood.
func renderStats(p *pet.Pet) string {
	stats := []struct {
		name  string
		value float64
	}{
		{"Hunger", p.Hunger},
		{"Energy", p.Energy},
		{"Happiness", p.Happiness},
	}

	var lines []string
	for _, stat := range stats {
		lines = append(lines, fmt.Sprintf("%-10s [%s] %3d", stat.name+":", makeBar(stat.value, pet.MaxStat), int(stat.value)))
	}
	mood := p.Mood()
	lines = append(lines, fmt.Sprintf("%-10s %s %s", "Mood:", mood.Emoji(), mood.Title()))
	if p.MaxFriendship {
		lines = append(lines, fmt.Sprintf("%-10s %s", "Bond:", "Best friends ★"))
	}

	return gameStyles.stats.Render(strings.Join(lines, "\n"))
}
