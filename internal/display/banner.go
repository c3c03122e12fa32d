package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/backmassage/namecorpus/internal/term"
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("13")).
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// Banner returns the startup banner. Styling is applied only when colors
// are enabled.
func Banner(version string) string {
	text := fmt.Sprintf("namecorpus v%s\nfilename fixtures for renaming tools", version)
	if !term.Enabled() {
		return text
	}
	return bannerStyle.Render(text)
}

// PrintBanner writes [Banner] followed by a newline to w.
func PrintBanner(w io.Writer, version string) {
	fmt.Fprintln(w, Banner(version))
}
