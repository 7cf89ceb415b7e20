package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/deitrix/drilltris/game"
)

// tickMsg advances the game by one frame.
type tickMsg struct{}

// Model is the Bubbletea model for playing in a terminal.
type Model struct {
	game *game.Game
	// hover is the board row under the mouse, or -1.
	hover    int
	quitting bool
}

// NewModel wraps a game session. The session starts on its title screen.
func NewModel(g *game.Game) Model {
	return Model{game: g, hover: -1}
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return tick(m.game.Config.TickRate)
}

func tick(rate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(rate, 1)), func(time.Time) tea.Msg { return tickMsg{} })
}

// Update handles key presses, mouse input and the frame clock.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.game.Tick()
		return m, tick(m.game.Config.TickRate)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	}
	return m, nil
}

// View renders the board with the HUD to its right.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	s := m.game.Snapshot()
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		RenderBoard(s, m.hover),
		"  ",
		RenderHUD(s, m.game.Config.ClearScore),
	) + "\n"
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	}
	for _, a := range KeyActions(msg.String()) {
		m.game.Apply(a)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	row, col, ok := CellAt(msg.X, msg.Y, m.game.Config.Rows, m.game.Config.Cols)
	m.hover = -1
	if ok {
		m.hover = row
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m
	}
	switch m.game.Mode {
	case game.ModeTitle:
		m.game.Apply(game.Action{Type: game.ActionStart})
	case game.ModeGameOver:
		m.game.Apply(game.Action{Type: game.ActionAcknowledge})
	default:
		if ok {
			m.game.Apply(game.Action{Type: game.ActionActivateCell, Row: row, Col: col})
		}
	}
	return m
}

// KeyActions maps a key to the commands it issues. Enter both starts and acknowledges; the game
// ignores whichever does not apply to its mode.
func KeyActions(key string) []game.Action {
	act := func(types ...game.ActionType) []game.Action {
		acts := make([]game.Action, len(types))
		for i, t := range types {
			acts[i] = game.Action{Type: t}
		}
		return acts
	}
	switch key {
	case "left", "h":
		return act(game.ActionMoveLeft)
	case "right", "l":
		return act(game.ActionMoveRight)
	case "down", "j":
		return act(game.ActionSoftDrop)
	case "up", "k", "x":
		return act(game.ActionRotate)
	case " ":
		return act(game.ActionHardDrop)
	case "c":
		return act(game.ActionHold)
	case "enter":
		return act(game.ActionStart, game.ActionAcknowledge)
	case "d":
		return act(game.ActionToggleDrill)
	case "b":
		return act(game.ActionPurchaseDrill)
	case "t":
		return act(game.ActionPurchaseTNT)
	}
	return nil
}

// CellAt converts a terminal position to a board cell. The board is drawn at the origin inside
// a one character border, with each cell two characters wide.
func CellAt(x, y, rows, cols int) (row, col int, ok bool) {
	x, y = x-1, y-1
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y, x/2
	if row >= rows || col >= cols {
		return 0, 0, false
	}
	return row, col, true
}
