package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/deitrix/drilltris/cell"
	"github.com/deitrix/drilltris/game"
	"github.com/deitrix/drilltris/piece"
)

var (
	emptyStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#333355"))

	boardBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("#505870"))

	hudBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffd700")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9090a0"))

	alertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5050")).
			Bold(true)

	toolStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c08020")).
			Bold(true)
)

func hex(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// glyph marks block types so they stay distinguishable without color.
func glyph(t cell.Type) string {
	switch t {
	case cell.Gold:
		return "$$"
	case cell.Platinum:
		return "<>"
	case cell.Jank:
		return "::"
	}
	return "  "
}

func renderBlock(t cell.Type, tint cell.Tint) string {
	return lipgloss.NewStyle().
		Background(hex(cell.Color(t, tint))).
		Foreground(lipgloss.Color("#000000")).
		Render(glyph(t))
}

// RenderBoard draws the locked blocks, the ghost and the falling piece inside a border. In a tool
// mode, the hover row is highlighted when the armed tool could act on it.
func RenderBoard(s game.Snapshot, hover int) string {
	type overlay struct {
		t    cell.Type
		tint cell.Tint
	}
	pieceCells := make(map[[2]int]overlay)
	ghostCells := make(map[[2]int]bool)
	if s.Active() {
		ghost := s.Current
		ghost.Y = s.GhostY
		ghost.Each(func(x, y, _ int) { ghostCells[[2]int{x, y}] = true })
		s.Current.Each(func(x, y, i int) {
			pieceCells[[2]int{x, y}] = overlay{s.Current.Blocks[i], s.Current.Tint()}
		})
	}

	hoverStyle, hoverOK := targetStyle(s, hover)

	rows := make([]string, 0, s.Grid.Rows)
	for y := 0; y < s.Grid.Rows; y++ {
		var b strings.Builder
		for x := 0; x < s.Grid.Cols; x++ {
			if o, ok := pieceCells[[2]int{x, y}]; ok {
				b.WriteString(renderBlock(o.t, o.tint))
				continue
			}
			if t := s.Grid.Types[y][x]; t != cell.Empty {
				if hoverOK && y == hover {
					b.WriteString(hoverStyle.Render(glyph(t)))
				} else {
					b.WriteString(renderBlock(t, s.Grid.Tints[y][x]))
				}
				continue
			}
			if ghostCells[[2]int{x, y}] {
				b.WriteString(emptyStyle.Render("[]"))
				continue
			}
			b.WriteString(emptyStyle.Render(" ."))
		}
		rows = append(rows, b.String())
	}
	return boardBorderStyle.Render(strings.Join(rows, "\n"))
}

// targetStyle picks the highlight for the hovered row, or reports false when the armed tool
// cannot act on it.
func targetStyle(s game.Snapshot, row int) (lipgloss.Style, bool) {
	if row < 0 || !s.Grid.IsRowFull(row) {
		return lipgloss.Style{}, false
	}
	base := lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Bold(true)
	switch s.Mode {
	case game.ModeDrill:
		if s.Grid.RowHasPlatinum(row) {
			return base.Background(lipgloss.Color("#e0e0ff")), true
		}
		return base.Background(lipgloss.Color("#ffd700")), true
	case game.ModeTNT:
		if s.Grid.RowHasGold(row) {
			return lipgloss.Style{}, false
		}
		return base.Background(lipgloss.Color("#ff4020")), true
	}
	return lipgloss.Style{}, false
}

// renderPreview draws a piece on its own, as for the next and held slots.
func renderPreview(p *piece.Piece) string {
	if p == nil {
		return "\n"
	}
	q := *p
	q.X, q.Y = 0, 0
	grid := make([][]string, q.Shape.Height)
	for y := range grid {
		grid[y] = make([]string, q.Shape.Width)
		for x := range grid[y] {
			grid[y][x] = "  "
		}
	}
	q.Each(func(x, y, i int) {
		grid[y][x] = renderBlock(q.Blocks[i], q.Tint())
	})
	lines := make([]string, len(grid))
	for y, row := range grid {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

// RenderHUD draws the status panel: time, score, money, tools, previews and the mode banner.
func RenderHUD(s game.Snapshot, clearScore int) string {
	var lines []string
	add := func(label, value string) {
		lines = append(lines, labelStyle.Render(fmt.Sprintf("%-6s", label))+value)
	}

	lines = append(lines, titleStyle.Render("DRILLTRIS"), "")

	timeText := fmt.Sprintf("%d:%02d", s.Remaining/60, s.Remaining%60)
	if s.Remaining <= 10 {
		timeText = alertStyle.Render(timeText)
	}
	add("TIME", timeText)
	add("SCORE", fmt.Sprintf("%d / %d", s.Score, clearScore))
	add("MONEY", fmt.Sprintf("$%d", s.Money))
	add("DRILL", fmt.Sprintf("%d", s.DrillUses))
	add("TNT", fmt.Sprintf("%d", s.TNTAmmo))
	lines = append(lines, "")

	if s.Mode != game.ModeTitle {
		next := s.Next
		lines = append(lines, labelStyle.Render("NEXT"), renderPreview(&next), "")
	}
	held := labelStyle.Render("HOLD")
	if !s.CanHold {
		held += labelStyle.Render(" (used)")
	}
	lines = append(lines, held, renderPreview(s.Held), "")

	lines = append(lines, banner(s))
	lines = append(lines, "",
		labelStyle.Render("←→ move  ↑ rotate  ↓ drop"),
		labelStyle.Render("space hard drop  c hold"),
		labelStyle.Render(fmt.Sprintf("d drill  b drill x%d $%d", s.DrillPack, s.DrillPrice)),
		labelStyle.Render(fmt.Sprintf("t tnt x%d $%d  q quit", s.TNTPack, s.TNTPrice)),
	)
	return hudBorderStyle.Render(strings.Join(lines, "\n"))
}

func banner(s game.Snapshot) string {
	switch s.Mode {
	case game.ModeTitle:
		return titleStyle.Render("Press ENTER to Start")
	case game.ModeDrill:
		return toolStyle.Render("DRILL MODE: click a full row")
	case game.ModeTNT:
		return toolStyle.Render(fmt.Sprintf("TNT MODE x%d: click a full row", s.TNTAmmo))
	case game.ModeGameOver:
		if s.Cleared {
			return titleStyle.Render("NIGHT CLEAR!") + "\n" + labelStyle.Render("Press ENTER to Retry")
		}
		return alertStyle.Render("GAME OVER") + "\n" + labelStyle.Render("Press ENTER to Retry")
	}
	return ""
}
