package form

import (
	"charm.land/lipgloss/v2"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/ui/styles"
)

// Style functions return fresh styles so a theme switch at startup is
// picked up.

func borderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Current().Primary).
		MarginTop(1).
		MarginBottom(1).
		PaddingLeft(2).
		PaddingRight(2)
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Current().Primary)
}

func tabActiveStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Current().Accent)
}

func tabInactiveStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Current().Muted)
}

func tabSeparatorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Current().Muted)
}

func errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Current().Error)
}

func warningStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Current().Warning)
}

func helpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Current().Muted)
}
