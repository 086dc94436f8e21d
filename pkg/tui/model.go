// Package tui is the interactive front end: the pending list, submission
// and undo, history browsing by day and the statistics view.
//
// All store mutations, including the periodic retention pass and reloads
// triggered by file changes, happen inside Update.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/subtrack/pkg/app"
	"tableflip.dev/subtrack/pkg/item"
	"tableflip.dev/subtrack/pkg/store"
	"tableflip.dev/subtrack/pkg/submission"
	"tableflip.dev/subtrack/pkg/timeutil"
	"tableflip.dev/subtrack/pkg/tui/theme"
)

type view int

const (
	viewToday view = iota
	viewHistory
	viewStats
	viewCount
)

func (v view) String() string {
	switch v {
	case viewToday:
		return "Today"
	case viewHistory:
		return "History"
	case viewStats:
		return "Statistics"
	}
	return ""
}

type cleanTickMsg time.Time

type historyChangedMsg struct {
	event store.Event
}

type watchClosedMsg struct{}

// Options configure a Model.
type Options struct {
	// QuickItems are added with the number keys, in order.
	QuickItems []string
	// CleanInterval is how often old history is pruned. Zero disables it.
	CleanInterval time.Duration
	// Changes, when set, triggers a reload whenever the history file changes.
	Changes <-chan store.Event
}

// Model is the root Bubble Tea model.
type Model struct {
	store *submission.Store
	keys  keyMap
	theme theme.Theme

	quick    []string
	interval time.Duration
	changes  <-chan store.Event

	view   view
	cursor int
	day    time.Time

	input    textinput.Model
	inputing bool

	status  string
	isError bool

	width  int
	height int
}

// New builds a model over an open store.
func New(s *submission.Store, opts Options) *Model {
	in := textinput.New()
	in.Placeholder = "Describe the item…"
	in.Prompt = ""
	in.CharLimit = 120

	quick := opts.QuickItems
	if len(quick) > 9 {
		quick = quick[:9]
	}

	return &Model{
		store:    s,
		keys:     defaultKeys(),
		theme:    theme.Default(),
		quick:    quick,
		interval: opts.CleanInterval,
		changes:  opts.Changes,
		day:      s.Today(),
		input:    in,
		status:   "Ready",
	}
}

// Run launches the Bubble Tea program for svc until the user quits.
func Run(ctx context.Context, svc *app.Service) error {
	if svc == nil || svc.Store == nil {
		return app.ErrNoStore
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := Options{}
	if svc.Config != nil {
		opts.QuickItems = svc.Config.QuickItems()
		opts.CleanInterval = svc.Config.CleanInterval()
	}
	if ch, err := svc.Watch(ctx); err == nil {
		opts.Changes = ch
	}

	p := tea.NewProgram(New(svc.Store, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.scheduleClean(), m.waitForChange())
}

func (m *Model) scheduleClean() tea.Cmd {
	if m.interval <= 0 {
		return nil
	}
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return cleanTickMsg(t)
	})
}

func (m *Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		evt, ok := <-ch
		if !ok {
			return watchClosedMsg{}
		}
		return historyChangedMsg{event: evt}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(max(10, msg.Width-12))
		return m, nil
	case cleanTickMsg:
		if n := m.store.CleanOldHistory(); n > 0 {
			m.setStatus(fmt.Sprintf("Pruned %d old %s", n, plural(n, "day", "days")))
			m.clampDay()
		}
		return m, m.scheduleClean()
	case historyChangedMsg:
		if msg.event.Type == store.EventWatchError {
			m.setError(fmt.Sprintf("Watch error: %v", msg.event.Err))
		} else if m.store.Reload() {
			m.setStatus("History changed on disk, reloaded")
			m.clampDay()
		}
		return m, m.waitForChange()
	case watchClosedMsg:
		m.changes = nil
		return m, nil
	case tea.KeyMsg:
		if m.inputing {
			return m.updateInput(msg)
		}
		return m.handleKey(msg)
	}

	if m.inputing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		desc := strings.TrimSpace(m.input.Value())
		m.stopInput()
		if desc == "" {
			m.setError("Nothing to add")
			return m, nil
		}
		it := m.store.AddItem(desc)
		m.cursor = len(m.store.CurrentItems()) - 1
		m.setStatus("Added " + label(it))
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.stopInput()
		m.setStatus("Ready")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextView):
		m.view = (m.view + 1) % viewCount
		m.cursor = 0
		if m.view == viewHistory {
			m.day = m.latestDay()
		}
		return m, nil
	case key.Matches(msg, m.keys.Undo):
		m.undo()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil
	}

	switch m.view {
	case viewToday:
		return m.handleTodayKey(msg)
	case viewHistory:
		m.handleHistoryKey(msg)
	}
	return m, nil
}

func (m *Model) handleTodayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		m.inputing = true
		m.input.Reset()
		m.setStatus("New item")
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Quick):
		n := int(msg.String()[0] - '1')
		if n >= len(m.quick) {
			m.setError(fmt.Sprintf("No quick item %d", n+1))
			return m, nil
		}
		it := m.store.AddItem(m.quick[n])
		m.cursor = len(m.store.CurrentItems()) - 1
		m.setStatus("Added " + label(it))
	case key.Matches(msg, m.keys.Delete):
		cur := m.store.CurrentItems()
		if len(cur) == 0 {
			return m, nil
		}
		it := cur[min(m.cursor, len(cur)-1)]
		if m.store.RemoveCurrentItem(it.ID) {
			m.setStatus("Removed " + label(it))
		}
		m.moveCursor(0)
	case key.Matches(msg, m.keys.Submit):
		n := len(m.store.CurrentItems())
		if n == 0 {
			m.setError("Nothing to submit")
			return m, nil
		}
		m.store.MarkAsSubmitted()
		m.cursor = 0
		m.setStatus(fmt.Sprintf("Submitted %d %s (u to undo)", n, plural(n, "item", "items")))
		m.reportSave()
	}
	return m, nil
}

func (m *Model) handleHistoryKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.PrevDay):
		if d, ok := m.adjacentDay(-1); ok {
			m.day = d
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.NextDay):
		if d, ok := m.adjacentDay(1); ok {
			m.day = d
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.Today):
		m.day = m.store.Today()
		m.cursor = 0
	case key.Matches(msg, m.keys.Received):
		list := m.store.ItemsForDate(m.day)
		if len(list) == 0 {
			return
		}
		it := list[min(m.cursor, len(list)-1)]
		if m.store.ToggleItemReceived(it.ID, m.day) {
			if it.IsReceived {
				m.setStatus(label(it) + " outstanding")
			} else {
				m.setStatus(label(it) + " received")
			}
			m.reportSave()
		}
	case key.Matches(msg, m.keys.Delete):
		list := m.store.ItemsForDate(m.day)
		if len(list) == 0 {
			return
		}
		it := list[min(m.cursor, len(list)-1)]
		if m.store.RemoveHistoryItem(it.ID, m.day) {
			m.setStatus("Removed " + label(it) + " from " + timeutil.FormatDay(m.day))
			m.reportSave()
		}
		m.moveCursor(0)
	}
}

func (m *Model) undo() {
	buf, at := m.store.LastSubmission()
	if !m.store.UndoLastSubmission() {
		m.setError("Nothing to undo")
		return
	}
	m.view = viewToday
	m.cursor = 0
	m.setStatus(fmt.Sprintf("Restored %d %s submitted %s", len(buf), plural(len(buf), "item", "items"), at.In(m.store.Location()).Format("15:04")))
	m.reportSave()
	m.clampDay()
}

func (m *Model) stopInput() {
	m.inputing = false
	m.input.Blur()
	m.input.Reset()
}

// visible is the list the cursor moves over.
func (m *Model) visible() []item.Item {
	switch m.view {
	case viewToday:
		return m.store.CurrentItems()
	case viewHistory:
		return m.store.ItemsForDate(m.day)
	}
	return nil
}

func (m *Model) moveCursor(delta int) {
	n := len(m.visible())
	m.cursor += delta
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// adjacentDay steps through days that have history. Today is always a
// valid stop so new submissions are one key away.
func (m *Model) adjacentDay(dir int) (time.Time, bool) {
	days := m.store.Days()
	today := m.store.Today()
	if dir < 0 {
		for i := len(days) - 1; i >= 0; i-- {
			if days[i].Before(m.day) {
				return days[i], true
			}
		}
		return time.Time{}, false
	}
	for _, d := range days {
		if d.After(m.day) {
			return d, true
		}
	}
	if m.day.Before(today) {
		return today, true
	}
	return time.Time{}, false
}

func (m *Model) latestDay() time.Time {
	days := m.store.Days()
	if len(days) == 0 {
		return m.store.Today()
	}
	return days[len(days)-1]
}

// clampDay keeps the browsed day valid after history shrank underneath it.
func (m *Model) clampDay() {
	if m.view == viewHistory && len(m.store.ItemsForDate(m.day)) == 0 {
		m.day = m.latestDay()
	}
	m.moveCursor(0)
}

func (m *Model) reportSave() {
	if err := m.store.LastSaveError(); err != nil {
		m.setError(fmt.Sprintf("%s (not saved: %v)", m.status, err))
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.isError = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.isError = true
}

func label(it item.Item) string {
	if it.SequenceNumber != nil {
		return fmt.Sprintf("%s (%d)", it.Description, *it.SequenceNumber)
	}
	return it.Description
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
