package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MenuChoice identifies what a menu entry does.
type MenuChoice int

const (
	ChoicePlay MenuChoice = iota
	ChoicePractice
	ChoiceClaim
	ChoiceShare
	ChoiceScores
	ChoiceReset
	ChoiceQuit
)

// MenuItem is a selectable menu entry.
type MenuItem struct {
	Label  string
	Choice MenuChoice
}

// Menu is the list shown between sessions.
type Menu struct {
	items  []MenuItem
	cursor int
}

// MenuState is what the menu needs to know to decide which entries to offer.
type MenuState struct {
	Claimable int  // Unclaimed coins for today
	LastScore int  // Score of the most recent session
	HasScore  bool // Whether a session has finished yet
	Ledger    bool // Whether a coin ledger is attached
	Scores    bool // Whether score storage is attached
}

// BuildMenu returns the entries available in st.
func BuildMenu(st MenuState) []MenuItem {
	items := []MenuItem{
		{Label: "Play", Choice: ChoicePlay},
		{Label: "Practice (no coins)", Choice: ChoicePractice},
	}
	if st.Ledger {
		items = append(items, MenuItem{Label: fmt.Sprintf("Claim %d coins", st.Claimable), Choice: ChoiceClaim})
	}
	if st.HasScore {
		items = append(items, MenuItem{Label: fmt.Sprintf("Share score (%d)", st.LastScore), Choice: ChoiceShare})
	}
	if st.Scores {
		items = append(items, MenuItem{Label: "High scores", Choice: ChoiceScores})
	}
	if st.Ledger {
		items = append(items, MenuItem{Label: "Reset today's coins", Choice: ChoiceReset})
	}
	return append(items, MenuItem{Label: "Quit", Choice: ChoiceQuit})
}

// SetItems replaces the entries, keeping the cursor on the same choice when
// it is still offered.
func (m *Menu) SetItems(items []MenuItem) {
	current, ok := m.Selected()
	m.items = items
	m.cursor = 0
	if !ok {
		return
	}
	for i, it := range items {
		if it.Choice == current.Choice {
			m.cursor = i
			return
		}
	}
}

// Move shifts the cursor by delta, clamped to the list.
func (m *Menu) Move(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > len(m.items)-1 {
		m.cursor = len(m.items) - 1
	}
}

// Selected returns the entry under the cursor.
func (m Menu) Selected() (MenuItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return MenuItem{}, false
	}
	return m.items[m.cursor], true
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

// View renders the menu centered in width, with info lines under the title
// and a status line under the entries.
func (m Menu) View(width int, info []string, status string) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("F L A P P Y   G A R G O Y L E"), width))
	b.WriteString("\n\n")

	for _, line := range info {
		b.WriteString(centerText(infoStyle.Render(line), width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		line := "  " + item.Label
		if i == m.cursor {
			line = cursorStyle.Render("> " + item.Label)
		}
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	if status != "" {
		b.WriteString("\n")
		for _, line := range strings.Split(status, "\n") {
			b.WriteString(centerText(statusStyle.Render(line), width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(infoStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), width))
	b.WriteString("\n")

	return b.String()
}
