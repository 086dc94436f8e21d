package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer FooterTheme
	Panel  PanelTheme
	List   ListTheme
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Key    lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame  lipgloss.Style
	Title  lipgloss.Style
	Tab    lipgloss.Style
	TabOn  lipgloss.Style
	Prompt lipgloss.Style
}

// ListTheme styles item rows.
type ListTheme struct {
	Number   lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Sequence lipgloss.Style
	Received lipgloss.Style
	Empty    lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	tab := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1)

	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Key:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1),
			Title:  lipgloss.NewStyle().Bold(true),
			Tab:    tab,
			TabOn:  tab.Foreground(lipgloss.Color("212")).Bold(true).Underline(true),
			Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		},
		List: ListTheme{
			Number:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Item:     lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Reverse(true),
			Sequence: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Received: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		},
	}
}
