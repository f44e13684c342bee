package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/perchui/perch/pkg/geometry"
	"github.com/perchui/perch/pkg/position"
)

// playgroundCommand creates the playground command for interactive placement.
func (c *CLI) playgroundCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "playground",
		Short: "Explore placements interactively in the terminal",
		Long: `Explore placements interactively in the terminal.

The playground renders the viewport as a character grid with a movable
anchor and shows live where the floating element lands as you change the
settings. Push the anchor against an edge to watch the fallback strategies
kick in.

Keys:
  arrows / hjkl   move the anchor
  s               cycle the side
  a               cycle the alignment
  p               toggle inside/outside placement
  o               toggle overflow prevention
  q               quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := newPlaygroundModel()
			if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("playground: %w", err)
			}
			return nil
		},
	}

	return cmd
}

// =============================================================================
// PlaygroundModel - Interactive placement explorer
// =============================================================================

// Canvas glyphs.
const (
	cellEmpty    = '·'
	cellAnchor   = '█'
	cellFloating = '▒'
	cellOverlap  = '▓'
)

// playgroundModel is the bubbletea model for the placement playground. The
// canvas cells map one to one onto viewport pixels, so the math is exactly
// what a caller of the library would see, just at terminal resolution.
type playgroundModel struct {
	canvasW  int
	canvasH  int
	anchor   geometry.Rect
	floating geometry.Size
	settings position.Settings

	at  geometry.Point
	err error
}

func newPlaygroundModel() playgroundModel {
	m := playgroundModel{
		canvasW:  60,
		canvasH:  16,
		anchor:   geometry.NewRect(26, 7, 8, 2),
		floating: geometry.Size{Width: 14, Height: 3},
		settings: position.DefaultSettings(),
	}
	m.recompute()
	return m
}

func (m playgroundModel) Init() tea.Cmd {
	return nil
}

func (m playgroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.moveAnchor(0, -1)
		case "down", "j":
			m.moveAnchor(0, 1)
		case "left", "h":
			m.moveAnchor(-1, 0)
		case "right", "l":
			m.moveAnchor(1, 0)
		case "s":
			m.settings.Side = m.nextSide()
		case "a":
			m.settings.Align = nextAlign(m.settings.Align)
		case "p":
			m.togglePlacement()
		case "o":
			m.settings.PreventOverflow = !m.settings.PreventOverflow
		}
		m.recompute()
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.recompute()
	}
	return m, nil
}

// moveAnchor shifts the anchor by one cell, kept inside the canvas.
func (m *playgroundModel) moveAnchor(dx, dy float64) {
	left := m.anchor.Left + dx
	top := m.anchor.Top + dy
	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}
	if left+m.anchor.Width > float64(m.canvasW) {
		left = float64(m.canvasW) - m.anchor.Width
	}
	if top+m.anchor.Height > float64(m.canvasH) {
		top = float64(m.canvasH) - m.anchor.Height
	}
	m.anchor = geometry.NewRect(left, top, m.anchor.Width, m.anchor.Height)
}

// nextSide cycles through the sides valid for the current placement.
// Centered is skipped for outside placement, where it is not a valid side.
func (m *playgroundModel) nextSide() position.Side {
	order := []position.Side{
		position.SideTop, position.SideBottom,
		position.SideLeft, position.SideRight,
		position.SideCentered,
	}
	if m.settings.Placement == position.PlaceOutside {
		order = order[:4]
	}
	for i, s := range order {
		if s == m.settings.Side {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

// togglePlacement flips inside/outside, resetting a side that would become
// invalid.
func (m *playgroundModel) togglePlacement() {
	if m.settings.Placement == position.PlaceOutside {
		m.settings.Placement = position.PlaceInside
		return
	}
	m.settings.Placement = position.PlaceOutside
	if m.settings.Side == position.SideCentered {
		m.settings.Side = position.SideBottom
	}
}

func nextAlign(a position.Align) position.Align {
	switch a {
	case position.AlignFirst:
		return position.AlignCenter
	case position.AlignCenter:
		return position.AlignLast
	default:
		return position.AlignFirst
	}
}

// resize fits the canvas into the terminal, leaving room for the status
// lines, and keeps the anchor on it.
func (m *playgroundModel) resize(w, h int) {
	m.canvasW = w - 4
	m.canvasH = h - 8
	if m.canvasW < 20 {
		m.canvasW = 20
	}
	if m.canvasH < 8 {
		m.canvasH = 8
	}
	m.moveAnchor(0, 0)
}

func (m *playgroundModel) recompute() {
	viewport := geometry.Size{Width: float64(m.canvasW), Height: float64(m.canvasH)}
	floating := geometry.NewRect(0, 0, m.floating.Width, m.floating.Height)

	// The playground keeps the anchor gap at one cell so outside placements
	// stay readable at terminal resolution.
	s := m.settings
	s.AnchorOffset = 1

	m.at, m.err = position.ComputeSettings(floating, m.anchor, viewport, s)
}

func (m playgroundModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Placement Playground"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("arrows move anchor  s side  a align  p placement  o overflow  q quit"))
	b.WriteString("\n\n")

	b.WriteString(m.renderCanvas())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	return b.String()
}

// renderCanvas paints the viewport grid with the anchor and, when the
// settings are valid, the placed floating element.
func (m playgroundModel) renderCanvas() string {
	grid := make([][]rune, m.canvasH)
	for y := range grid {
		grid[y] = make([]rune, m.canvasW)
		for x := range grid[y] {
			grid[y][x] = cellEmpty
		}
	}

	if m.err == nil {
		m.paint(grid, geometry.NewRect(m.at.Left, m.at.Top, m.floating.Width, m.floating.Height), cellFloating)
	}
	m.paint(grid, m.anchor, cellAnchor)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorDim)

	lines := make([]string, len(grid))
	for y, row := range grid {
		lines[y] = string(row)
	}
	return border.Render(strings.Join(lines, "\n"))
}

// paint fills the cells covered by r, marking overlap with already painted
// anchor or floating cells.
func (m playgroundModel) paint(grid [][]rune, r geometry.Rect, glyph rune) {
	for y := int(r.Top); y < int(r.Top+r.Height); y++ {
		if y < 0 || y >= m.canvasH {
			continue
		}
		for x := int(r.Left); x < int(r.Left+r.Width); x++ {
			if x < 0 || x >= m.canvasW {
				continue
			}
			if grid[y][x] != cellEmpty && grid[y][x] != glyph {
				grid[y][x] = cellOverlap
			} else {
				grid[y][x] = glyph
			}
		}
	}
}

func (m playgroundModel) renderStatus() string {
	overflow := "on"
	if !m.settings.PreventOverflow {
		overflow = "off"
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("Placement", "Side", "Align", "Overflow").
		Rows([]string{
			string(m.settings.Placement),
			string(m.settings.Side),
			string(m.settings.Align),
			overflow,
		}).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			}
			return StyleValue
		})

	var result string
	if m.err != nil {
		result = StyleWarning.Render(m.err.Error())
	} else {
		result = StyleDim.Render(fmt.Sprintf("floating at top=%g left=%g", m.at.Top, m.at.Left))
	}

	return t.Render() + "\n" + result
}
