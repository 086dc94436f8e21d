package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/subtrack/pkg/item"
	"tableflip.dev/subtrack/pkg/store"
	"tableflip.dev/subtrack/pkg/submission"
)

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }

func newTestModel(t *testing.T, opts Options) (*Model, *submission.Store, *testClock) {
	t.Helper()
	c := &testClock{t: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	s := submission.New(nil, submission.WithClock(c.now), submission.WithLocation(time.UTC))
	return New(s, opts), s, c
}

func press(t *testing.T, m *Model, keys ...string) {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyPressMsg
		switch k {
		case "enter":
			msg = tea.KeyPressMsg{Code: tea.KeyEnter}
		case "esc":
			msg = tea.KeyPressMsg{Code: tea.KeyEscape}
		case "tab":
			msg = tea.KeyPressMsg{Code: tea.KeyTab}
		case "down":
			msg = tea.KeyPressMsg{Code: tea.KeyDown}
		case "left":
			msg = tea.KeyPressMsg{Code: tea.KeyLeft}
		case "right":
			msg = tea.KeyPressMsg{Code: tea.KeyRight}
		default:
			msg = tea.KeyPressMsg{Text: k, Code: rune(k[0])}
		}
		next, _ := m.Update(msg)
		if next != m {
			t.Fatalf("expected Update to return the same model")
		}
	}
}

func descriptions(items []item.Item) string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Description
	}
	return strings.Join(out, ",")
}

func TestAddWithInput(t *testing.T) {
	m, s, _ := newTestModel(t, Options{})

	press(t, m, "a")
	if !m.inputing {
		t.Fatalf("expected input mode after 'a'")
	}
	m.input.SetValue("Towel")
	press(t, m, "enter")

	if m.inputing {
		t.Fatalf("expected input mode to end on enter")
	}
	if got := descriptions(s.CurrentItems()); got != "Towel" {
		t.Fatalf("expected Towel pending, got %q", got)
	}
}

func TestBlankInputIsRejected(t *testing.T) {
	m, s, _ := newTestModel(t, Options{})

	press(t, m, "a")
	m.input.SetValue("   ")
	press(t, m, "enter")

	if len(s.CurrentItems()) != 0 {
		t.Fatalf("blank description must not be added")
	}
	if !m.isError {
		t.Fatalf("expected an error status, got %q", m.status)
	}

	press(t, m, "a")
	m.input.SetValue("Sock")
	press(t, m, "esc")
	if len(s.CurrentItems()) != 0 || m.inputing {
		t.Fatalf("esc should cancel without adding")
	}
}

func TestQuickAddSubmitUndo(t *testing.T) {
	m, s, _ := newTestModel(t, Options{QuickItems: []string{"TShirt", "Shirt", "Pajama"}})

	press(t, m, "2", "2", "3")
	cur := s.CurrentItems()
	if got := descriptions(cur); got != "Shirt,Shirt,Pajama" {
		t.Fatalf("unexpected pending list %q", got)
	}
	if cur[1].SequenceNumber == nil || *cur[1].SequenceNumber != 2 {
		t.Fatalf("expected second Shirt to be numbered 2")
	}

	press(t, m, "9")
	if !m.isError || len(s.CurrentItems()) != 3 {
		t.Fatalf("expected unknown quick slot to be rejected")
	}

	press(t, m, "s")
	if len(s.CurrentItems()) != 0 {
		t.Fatalf("expected pending list to be submitted")
	}
	if got := descriptions(s.ItemsForDate(s.Today())); got != "Shirt,Shirt,Pajama" {
		t.Fatalf("unexpected day %q", got)
	}

	press(t, m, "u")
	if got := descriptions(s.CurrentItems()); got != "Shirt,Shirt,Pajama" {
		t.Fatalf("undo should restore the pending list, got %q", got)
	}
	if len(s.Days()) != 0 {
		t.Fatalf("undo should remove the emptied day")
	}

	press(t, m, "u")
	if !m.isError {
		t.Fatalf("second undo should report nothing to undo")
	}
}

func TestDeleteSelected(t *testing.T) {
	m, s, _ := newTestModel(t, Options{QuickItems: []string{"Shirt", "Towel"}})
	press(t, m, "1", "2", "1")

	m.cursor = 0
	press(t, m, "down", "d")
	cur := s.CurrentItems()
	if got := descriptions(cur); got != "Shirt,Shirt" {
		t.Fatalf("expected Towel removed, got %q", got)
	}
	if cur[0].ID != 1 || cur[1].ID != 2 {
		t.Fatalf("expected ids compacted, got %d,%d", cur[0].ID, cur[1].ID)
	}
	if m.cursor != 1 {
		t.Fatalf("expected cursor to stay in range, got %d", m.cursor)
	}
}

func TestHistoryBrowsing(t *testing.T) {
	m, s, c := newTestModel(t, Options{})
	s.AddItem("Shirt")
	s.MarkAsSubmitted()
	c.t = c.t.AddDate(0, 0, 2)
	s.AddItem("Pajama")
	s.AddItem("Towel")
	s.MarkAsSubmitted()

	press(t, m, "tab")
	if m.view != viewHistory {
		t.Fatalf("expected history view")
	}
	if !m.day.Equal(s.Today()) {
		t.Fatalf("expected newest day selected, got %v", m.day)
	}

	press(t, m, "left")
	if got := descriptions(m.visible()); got != "Shirt" {
		t.Fatalf("expected the older day, got %q", got)
	}
	press(t, m, "left")
	if got := descriptions(m.visible()); got != "Shirt" {
		t.Fatalf("expected to stay on the oldest day, got %q", got)
	}

	press(t, m, "r")
	if !s.ItemsForDate(m.day)[0].IsReceived {
		t.Fatalf("expected Shirt marked received")
	}

	press(t, m, "right", "down", "d")
	if got := descriptions(s.ItemsForDate(s.Today())); got != "Pajama" {
		t.Fatalf("expected Towel removed from today, got %q", got)
	}
}

func TestCleanTick(t *testing.T) {
	m, s, c := newTestModel(t, Options{CleanInterval: time.Hour})
	s.AddItem("Shirt")
	s.MarkAsSubmitted()

	c.t = c.t.AddDate(0, 5, 0)
	_, cmd := m.Update(cleanTickMsg(c.t))
	if len(s.Days()) != 0 {
		t.Fatalf("expected old day pruned on tick")
	}
	if cmd == nil {
		t.Fatalf("expected the clean tick to be rescheduled")
	}
}

func TestHistoryChangedReloads(t *testing.T) {
	ch := make(chan store.Event, 1)
	m, s, _ := newTestModel(t, Options{Changes: ch})

	_, cmd := m.Update(historyChangedMsg{event: store.Event{Type: store.EventHistoryChanged}})
	if cmd == nil {
		t.Fatalf("expected watch to be re-armed")
	}
	if len(s.Days()) != 0 {
		t.Fatalf("memory store has nothing to reload")
	}

	close(ch)
	if msg := m.waitForChange()(); msg != (watchClosedMsg{}) {
		t.Fatalf("expected watchClosedMsg, got %#v", msg)
	}
}

func TestViewRenders(t *testing.T) {
	m, s, _ := newTestModel(t, Options{QuickItems: []string{"Shirt"}})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	s.AddItem("Shirt")
	s.AddItem("Shirt")

	view, cursor := m.View()
	if cursor != nil {
		t.Fatalf("no cursor outside input mode")
	}
	out := ansi.Strip(view)
	for _, want := range []string{"Today", "Pending", "Shirt", "(2)", "Quick:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}

	press(t, m, "s", "tab", "tab")
	view, _ = m.View()
	out = ansi.Strip(view)
	if !strings.Contains(out, "100.0%") {
		t.Fatalf("statistics view missing share:\n%s", out)
	}
}

func TestQuitKey(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	_, cmd := m.Update(tea.KeyPressMsg{Text: "q", Code: 'q'})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
