package list

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

const currentBranchColorConstant = "2"

// Renderer writes branch listings, optionally highlighting the current branch.
type Renderer struct {
	writer       io.Writer
	highlight    bool
	currentStyle lipgloss.Style
}

// NewRenderer constructs a Renderer for the writer. Highlighting styles are
// resolved against the writer's terminal capabilities.
func NewRenderer(writer io.Writer, highlight bool) *Renderer {
	styleRenderer := lipgloss.NewRenderer(writer)
	return &Renderer{
		writer:       writer,
		highlight:    highlight,
		currentStyle: styleRenderer.NewStyle().Bold(true).Foreground(lipgloss.Color(currentBranchColorConstant)),
	}
}

// Render prints one branch per line.
func (renderer *Renderer) Render(result Result) error {
	for _, branchName := range result.Branches {
		line := branchName
		if renderer.highlight && len(result.CurrentBranch) > 0 && branchName == result.CurrentBranch {
			line = renderer.currentStyle.Render(branchName)
		}
		if _, writeError := fmt.Fprintln(renderer.writer, line); writeError != nil {
			return writeError
		}
	}
	return nil
}
