package status

import (
	"fmt"
	"strings"

	"github.com/winsweep/winsweep/internal/core"
	"github.com/winsweep/winsweep/internal/ui"
)

func (m Model) renderView() string {
	var s strings.Builder

	s.WriteString(ui.Title.Render("WinSweep · Disk overview"))
	s.WriteString("  ")
	s.WriteString(ui.Muted.Render(core.OSVersionString()))
	s.WriteString("\n\n")

	switch {
	case !m.loaded:
		s.WriteString(m.spin.View())
		s.WriteString(ui.Muted.Italic(true).Render(" Reading partitions…"))
	case m.Err != nil:
		s.WriteString(ui.Error.Render("cannot read disk usage: " + m.Err.Error()))
	case len(m.Disks) == 0:
		s.WriteString(ui.Muted.Render("No readable partitions."))
	default:
		s.WriteString(m.tbl.View())
	}

	s.WriteString("\n")
	s.WriteString(ui.Muted.Render("q quit · refreshes every " + m.refreshInterval.String()))
	return s.String()
}

// percent renders a used-space share, colored by pressure.
func percent(v float64) string {
	label := fmt.Sprintf("%.0f%%", v)
	switch {
	case v >= 90:
		return ui.Error.Render(label)
	case v >= 75:
		return ui.Warn.Render(label)
	default:
		return label
	}
}
