package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Styles are bound to the renderer of the screen output, so colors are dropped when it is not a terminal.
type Styles struct {
	renderer *lipgloss.Renderer

	Title     lipgloss.Style
	Heading   lipgloss.Style
	Prompt    lipgloss.Style
	Legend    lipgloss.Style
	EmptyCell lipgloss.Style
	SymbolX   lipgloss.Style
	SymbolO   lipgloss.Style
	Error     lipgloss.Style
	Winner    lipgloss.Style
	Info      lipgloss.Style
}

func NewStyles(out io.Writer) *Styles {
	renderer := lipgloss.NewRenderer(out)

	return &Styles{
		renderer: renderer,

		Title: renderer.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Heading: renderer.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Prompt: renderer.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Legend: renderer.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		EmptyCell: renderer.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		SymbolX: renderer.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		SymbolO: renderer.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Error: renderer.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Winner: renderer.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Info: renderer.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
	}
}

// Frame returns a style that boxes its content with the given character.
func (that *Styles) Frame(char string) lipgloss.Style {
	border := lipgloss.Border{
		Top:         char,
		Bottom:      char,
		Left:        char,
		Right:       char,
		TopLeft:     char,
		TopRight:    char,
		BottomLeft:  char,
		BottomRight: char,
	}

	return that.renderer.NewStyle().
		Border(border).
		Padding(0, 1)
}

func (that *Styles) Symbol(symbol entity.Symbol) string {
	switch symbol {
	case entity.SymbolX:
		return that.SymbolX.Render(string(symbol))
	case entity.SymbolO:
		return that.SymbolO.Render(string(symbol))
	default:
		return that.EmptyCell.Render("_")
	}
}
