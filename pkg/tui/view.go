package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/subtrack/pkg/item"
	"tableflip.dev/subtrack/pkg/timeutil"
)

const inputPrompt = "+ "

// View renders the tabs, the active panel and the footer.
func (m *Model) View() (string, *tea.Cursor) {
	tabs := m.renderTabs()

	lines, inputRow := m.body()
	frame := m.theme.Panel.Frame
	if m.width > 4 {
		frame = frame.Width(m.width - 2)
	}
	panel := frame.Render(strings.Join(lines, "\n"))

	footer := []string{m.renderStatus(), m.renderHelp()}
	out := lipgloss.JoinVertical(lipgloss.Left, tabs, panel, strings.Join(footer, "\n"))

	if !m.inputing || inputRow < 0 {
		return out, nil
	}
	c := m.input.Cursor()
	if c == nil {
		return out, nil
	}
	cursor := *c
	cursor.Position.X += lipgloss.Width(inputPrompt)
	cursor.Position.X += 1 + 1 // border, padding
	cursor.Position.Y += 1     // tabs
	cursor.Position.Y += 1     // top border
	cursor.Position.Y += inputRow
	return out, &cursor
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, int(viewCount))
	for v := view(0); v < viewCount; v++ {
		style := m.theme.Panel.Tab
		if v == m.view {
			style = m.theme.Panel.TabOn
		}
		parts = append(parts, style.Render(v.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// body returns the panel lines and the index of the input line, or -1.
func (m *Model) body() ([]string, int) {
	switch m.view {
	case viewHistory:
		return m.historyBody(), -1
	case viewStats:
		return m.statsBody(), -1
	}
	return m.todayBody()
}

func (m *Model) todayBody() ([]string, int) {
	cur := m.store.CurrentItems()
	lines := []string{m.title("Pending", len(cur))}
	lines = append(lines, m.rows(cur)...)

	inputRow := -1
	if m.inputing {
		inputRow = len(lines)
		lines = append(lines, m.theme.Panel.Prompt.Render(inputPrompt)+m.input.View())
	}

	if len(m.quick) > 0 {
		quick := make([]string, 0, len(m.quick))
		for i, q := range m.quick {
			quick = append(quick, m.theme.Footer.Key.Render(fmt.Sprint(i+1))+" "+q)
		}
		lines = append(lines, "", m.theme.Footer.Help.Render("Quick: ")+strings.Join(quick, "  "))
	}
	if m.store.CanUndo() {
		buf, at := m.store.LastSubmission()
		lines = append(lines, m.theme.Footer.Help.Render(fmt.Sprintf("Last submission: %d %s at %s",
			len(buf), plural(len(buf), "item", "items"), at.In(m.store.Location()).Format("15:04"))))
	}
	return lines, inputRow
}

func (m *Model) historyBody() []string {
	list := m.store.ItemsForDate(m.day)
	head := timeutil.FormatDayLong(m.day)
	if m.day.Equal(m.store.Today()) {
		head += " (today)"
	}
	lines := []string{m.title(head, len(list))}
	lines = append(lines, m.rows(list)...)

	received := 0
	for _, it := range list {
		if it.IsReceived {
			received++
		}
	}
	if len(list) > 0 {
		lines = append(lines, "", m.theme.Footer.Help.Render(fmt.Sprintf("%d of %d received", received, len(list))))
	}
	return lines
}

func (m *Model) statsBody() []string {
	stats := m.store.Statistics()
	total := 0
	for _, s := range stats {
		total += s.Count
	}
	lines := []string{m.title("Submitted", total)}
	if len(stats) == 0 {
		return append(lines, m.theme.List.Empty.Render("no history"))
	}

	width := 0
	for _, s := range stats {
		width = max(width, lipgloss.Width(s.Name))
	}
	for _, s := range stats {
		lines = append(lines, fmt.Sprintf("%-*s %4d  %s", width, s.Name, s.Count,
			m.theme.List.Sequence.Render(fmt.Sprintf("%5.1f%%", s.Percentage))))
	}

	lines = append(lines, "", m.theme.Panel.Title.Render("By month"))
	for _, mc := range m.store.MonthlyStats() {
		lines = append(lines, fmt.Sprintf("%-16s %4d", timeutil.FormatMonth(mc.Month), mc.Count))
	}
	return lines
}

func (m *Model) title(s string, count int) string {
	return m.theme.Panel.Title.Render(s) + m.theme.List.Number.Render(fmt.Sprintf(" - %d %s", count, plural(count, "item", "items")))
}

func (m *Model) rows(items []item.Item) []string {
	if len(items) == 0 {
		return []string{m.theme.List.Empty.Render("none")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		row := it.Description
		if it.SequenceNumber != nil {
			row += m.theme.List.Sequence.Render(fmt.Sprintf(" (%d)", *it.SequenceNumber))
		}
		if it.IsReceived {
			row += m.theme.List.Received.Render(" ✓")
		}
		if i == m.cursor && !m.inputing {
			row = m.theme.List.Selected.Render(row)
		}
		out = append(out, m.theme.List.Number.Render(fmt.Sprintf("%2d. ", i+1))+row)
	}
	return out
}

func (m *Model) renderStatus() string {
	if m.isError {
		return m.theme.Footer.Error.Render(m.status)
	}
	return m.theme.Footer.Status.Render(m.status)
}

func (m *Model) renderHelp() string {
	bindings := m.keys.help(m.view, m.inputing)
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, m.theme.Footer.Key.Render(h.Key)+" "+m.theme.Footer.Help.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}
